package ren

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackBufferRoundTrip(t *testing.T) {
	buf := gridBuffer(5, 3)
	buf.Set(1, 1, buf.At(0, 1))
	buf.Set(2, 1, buf.At(0, 1))

	packed := PackBuffer(buf)
	assert.Equal(t, 5, packed.Width)
	assert.Equal(t, 3, packed.Height)

	unpacked, err := packed.Unpack()
	require.NoError(t, err)
	assert.True(t, unpacked.Owned())
	assert.Equal(t, buf.Bytes(), unpacked.Bytes())
}

func TestPackBufferLongRun(t *testing.T) {
	buf := NewBuffer(300, 1)
	packed := PackBuffer(buf)
	assert.Equal(t, []byte{255, 0, 0, 0, 0, 45, 0, 0, 0, 0, 0}, packed.Data)

	unpacked, err := packed.Unpack()
	require.NoError(t, err)
	assert.Equal(t, 300, unpacked.Width)
}

func TestUnpackInvalid(t *testing.T) {
	for name, packed := range map[string]*PackedBuffer{
		"short row":     {Data: []byte{1, 1, 2, 3, 4, 0}, Width: 2, Height: 1},
		"long row":      {Data: []byte{3, 1, 2, 3, 4, 0}, Width: 2, Height: 1},
		"missing row":   {Data: []byte{2, 1, 2, 3, 4, 0}, Width: 2, Height: 2},
		"extra row":     {Data: []byte{2, 1, 2, 3, 4, 0, 2, 1, 2, 3, 4, 0}, Width: 2, Height: 1},
		"truncated run": {Data: []byte{2, 1, 2}, Width: 2, Height: 1},
		"unterminated":  {Data: []byte{2, 1, 2, 3, 4}, Width: 2, Height: 1},
	} {
		_, err := packed.Unpack()
		assert.Error(t, err, name)
	}
}

func TestPackedBufferReadWrite(t *testing.T) {
	packed := PackBuffer(gridBuffer(3, 2))

	var out bytes.Buffer
	n, err := packed.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(out.Len()), n)
	assert.Equal(t, []byte{1, 0, 0, 0, 3, 0, 0, 0, 2, 0, 0, 0}, out.Bytes()[:12])

	read, err := ReadPackedBuffer(&out)
	require.NoError(t, err)
	assert.Equal(t, packed, read)
}

func TestReadPackedBufferErrors(t *testing.T) {
	header := func(format, width, height uint32) []byte {
		var b bytes.Buffer
		_ = binary.Write(&b, binary.LittleEndian, [3]uint32{format, width, height})
		return b.Bytes()
	}

	_, err := ReadPackedBuffer(bytes.NewReader([]byte{1, 0, 0}))
	assert.Error(t, err)

	_, err = ReadPackedBuffer(bytes.NewReader(header(2, 1, 1)))
	assert.EqualError(t, err, "Unsupported pixel format")

	_, err = ReadPackedBuffer(bytes.NewReader(header(1, 40000, 1)))
	assert.EqualError(t, err, "Invalid width")

	_, err = ReadPackedBuffer(bytes.NewReader(header(1, 1, 40000)))
	assert.EqualError(t, err, "Invalid height")

	data := append(header(1, 2, 2), 2, 1, 2, 3, 4, 0)
	_, err = ReadPackedBuffer(bytes.NewReader(data))
	assert.EqualError(t, err, "Invalid data")
}

func TestPackedBufferSaveLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "grid.rbuf")
	packed := PackBuffer(gridBuffer(4, 4))
	require.NoError(t, packed.Save(fileName))

	loaded, err := LoadPackedBuffer(fileName)
	require.NoError(t, err)
	assert.Equal(t, packed, loaded)

	_, err = LoadPackedBuffer(filepath.Join(t.TempDir(), "missing.rbuf"))
	assert.Error(t, err)
}

func TestDrawPackedBufferOperation(t *testing.T) {
	src := gridBuffer(2, 2)
	op, err := NewDrawPackedBufferOperation(Point{1, 1}, PackBuffer(src))
	require.NoError(t, err)

	r, target := newBlitRenderer(4, 4)
	op.Draw(r)
	assert.Equal(t, src.At(0, 0), target.At(1, 1))
	assert.Equal(t, src.At(1, 1), target.At(2, 2))

	_, err = NewDrawPackedBufferOperation(Point{}, &PackedBuffer{Data: []byte{1}, Width: 1, Height: 1})
	assert.Error(t, err)
}
