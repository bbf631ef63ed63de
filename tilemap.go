package ren

// NoTile marks an empty tilemap cell.
const NoTile = -1

// Tileset cuts a buffer into equally sized tiles, numbered row by row.
type Tileset struct {
	TileWidth  int
	TileHeight int
	// Buffer is not owned by the tileset.
	Buffer *Buffer
}

// NewTileset creates a tileset of tileWidth x tileHeight tiles.
func NewTileset(buf *Buffer, tileWidth int, tileHeight int) *Tileset {
	return &Tileset{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Buffer:     buf,
	}
}

func (ts *Tileset) columns() int {
	if ts.TileWidth <= 0 {
		return 0
	}
	return ts.Buffer.Width / ts.TileWidth
}

// Count returns the number of complete tiles in the tileset.
func (ts *Tileset) Count() int {
	if ts.TileHeight <= 0 {
		return 0
	}
	return ts.columns() * (ts.Buffer.Height / ts.TileHeight)
}

func (ts *Tileset) tileRect(tile int) (Rect, bool) {
	if tile < 0 || tile >= ts.Count() {
		return Rect{}, false
	}
	cols := ts.columns()
	return Rect{
		X: tile % cols * ts.TileWidth,
		Y: tile / cols * ts.TileHeight,
		W: ts.TileWidth,
		H: ts.TileHeight,
	}, true
}

// Tilemap is a layered grid of tile indices.
type Tilemap struct {
	Tileset *Tileset
	Width   int
	Height  int
	layers  [][]int
}

// NewTilemap creates a width x height tilemap with the given number of
// layers, all cells empty.
func NewTilemap(ts *Tileset, width int, height int, layers int) *Tilemap {
	width, height = max(width, 0), max(height, 0)
	tm := &Tilemap{
		Tileset: ts,
		Width:   width,
		Height:  height,
		layers:  make([][]int, max(layers, 0)),
	}
	for i := range tm.layers {
		cells := make([]int, width*height)
		for j := range cells {
			cells[j] = NoTile
		}
		tm.layers[i] = cells
	}
	return tm
}

// Layers returns the number of layers.
func (tm *Tilemap) Layers() int {
	return len(tm.layers)
}

func (tm *Tilemap) index(layer, x, y int) (int, bool) {
	if layer < 0 || layer >= len(tm.layers) || x < 0 || x >= tm.Width || y < 0 || y >= tm.Height {
		return 0, false
	}
	return y*tm.Width + x, true
}

// Set stores tile at (x, y) of layer. Cells outside the map are ignored.
func (tm *Tilemap) Set(layer, x, y, tile int) {
	if i, ok := tm.index(layer, x, y); ok {
		tm.layers[layer][i] = tile
	}
}

// Get returns the tile at (x, y) of layer, NoTile outside the map.
func (tm *Tilemap) Get(layer, x, y int) int {
	if i, ok := tm.index(layer, x, y); ok {
		return tm.layers[layer][i]
	}
	return NoTile
}

// Tilemap draws the cells of view (in tiles) of every layer, bottom layer
// first, with the top left of view at (x, y). The view is transformed as
// one image about the transform origin.
func (r *Renderer) Tilemap(tm *Tilemap, x, y int, view Rect, tr Transform) {
	ts := tm.Tileset
	view = view.Intersect(Rect{W: tm.Width, H: tm.Height})
	for layer := range tm.layers {
		for ty := view.Y; ty < view.Y+view.H; ty++ {
			for tx := view.X; tx < view.X+view.W; tx++ {
				src, ok := ts.tileRect(tm.Get(layer, tx, ty))
				if !ok {
					continue
				}
				tileTr := tr
				tileTr.OriginX -= float32((tx - view.X) * ts.TileWidth)
				tileTr.OriginY -= float32((ty - view.Y) * ts.TileHeight)
				r.Blit(ts.Buffer, x, y, src, tileTr)
			}
		}
	}
}
