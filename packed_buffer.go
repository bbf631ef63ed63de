package ren

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
)

const (
	packedFormatRGBA32 = 1
	packedMaxSize      = 32000
	packedPixelSize    = 4
)

// PackedBuffer is a run-length encoded buffer. Each row is a sequence of
// (count, pixel) runs with 1 <= count <= 255, terminated by a zero byte.
type PackedBuffer struct {
	Data   []byte
	Width  int
	Height int
}

// PackBuffer packs buf.
func PackBuffer(buf *Buffer) *PackedBuffer {
	packed := &PackedBuffer{
		Width:  buf.Width,
		Height: buf.Height,
	}

	for y := 0; y < buf.Height; y++ {
		row := buf.pix[buf.offset(0, y):buf.offset(buf.Width, y)]
		for x := 0; x < len(row); {
			pix := row[x]
			var eqPixCount byte = 1
			x++
			for x < len(row) && eqPixCount < 0xFF && row[x] == pix {
				eqPixCount++
				x++
			}
			packed.Data = append(packed.Data, eqPixCount, pix.R, pix.G, pix.B, pix.A)
		}
		packed.Data = append(packed.Data, 0x00) // New row
	}

	return packed
}

// Unpack unpacks the buffer into a new owned Buffer.
func (packed *PackedBuffer) Unpack() (*Buffer, error) {
	buf := NewBuffer(packed.Width, packed.Height)

	rowCount := 0
	rowSize := 0
	out := 0
	data := packed.Data
	for pos := 0; pos < len(data); {
		pixCount := int(data[pos])
		pos++
		if pixCount == 0 {
			// New row
			if rowSize != packed.Width {
				return nil, errors.New("Invalid data")
			}
			rowCount++
			rowSize = 0
			continue
		}

		if pos+packedPixelSize > len(data) || rowSize+pixCount > packed.Width || rowCount >= packed.Height {
			return nil, errors.New("Invalid data")
		}
		pix := Pixel{R: data[pos], G: data[pos+1], B: data[pos+2], A: data[pos+3]}
		for i := 0; i < pixCount; i++ {
			buf.pix[out] = pix
			out++
		}

		rowSize += pixCount
		pos += packedPixelSize
	}

	if rowCount != packed.Height || rowSize != 0 {
		return nil, errors.New("Invalid data")
	}
	return buf, nil
}

// WriteTo writes the header and the packed data to w.
func (packed *PackedBuffer) WriteTo(w io.Writer) (int64, error) {
	header := []uint32{
		packedFormatRGBA32,
		uint32(packed.Width),
		uint32(packed.Height),
	}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return 0, err
		}
	}

	n, err := w.Write(packed.Data)
	return int64(len(header)*4 + n), err
}

// Save saves the packed buffer to fileName.
func (packed *PackedBuffer) Save(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err = packed.WriteTo(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return err
	}
	return file.Sync()
}

// ReadPackedBuffer reads a packed buffer written by WriteTo and checks
// that its runs describe exactly width x height pixels.
func ReadPackedBuffer(r io.Reader) (*PackedBuffer, error) {
	header := [3]uint32{}
	for i := 0; i < len(header); i++ {
		if err := binary.Read(r, binary.LittleEndian, &header[i]); err != nil {
			return nil, err
		}
	}
	if header[0] != packedFormatRGBA32 {
		return nil, errors.New("Unsupported pixel format")
	}
	width := int(header[1])
	if width > packedMaxSize {
		return nil, errors.New("Invalid width")
	}
	height := int(header[2])
	if height > packedMaxSize {
		return nil, errors.New("Invalid height")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	rowCount := 0
	rowSize := 0
	for pos := 0; pos < len(data); {
		pixCount := data[pos]
		if pixCount == 0 {
			// New row
			if rowSize != width {
				return nil, errors.New("Invalid data")
			}
			rowCount++
			rowSize = 0
			pos++
			continue
		}

		rowSize += int(pixCount)
		pos += 1 + packedPixelSize
	}
	if rowCount != height || rowSize != 0 {
		return nil, errors.New("Invalid data")
	}

	return &PackedBuffer{
		Data:   data,
		Width:  width,
		Height: height,
	}, nil
}

// LoadPackedBuffer loads a packed buffer saved with Save.
func LoadPackedBuffer(fileName string) (*PackedBuffer, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadPackedBuffer(bufio.NewReader(file))
}
