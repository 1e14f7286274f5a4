package levels

import (
	"fmt"
	"image"
)

// Kind is the type of a placed tile.
type Kind int

const (
	Wall Kind = iota
	Goal
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Wall || k == Goal
}

// Tile is a single placed grid cell. X and Y are always multiples of the
// cell size it was created with, and Width == Height == that cell size.
type Tile struct {
	Kind   Kind
	X      int
	Y      int
	Width  int
	Height int
}

// SnapToGrid floors a pixel coordinate down to the nearest multiple of cellSize.
func SnapToGrid(v, cellSize int) int {
	q := v / cellSize
	if v%cellSize != 0 && v < 0 {
		q--
	}
	return q * cellSize
}

// NewTile builds a tile of the given kind at the grid cell containing (px, py).
func NewTile(kind Kind, px, py, cellSize int) Tile {
	return Tile{
		Kind:   kind,
		X:      SnapToGrid(px, cellSize),
		Y:      SnapToGrid(py, cellSize),
		Width:  cellSize,
		Height: cellSize,
	}
}

// Rect is the on-screen area covered by the tile.
func (t Tile) Rect() image.Rectangle {
	return image.Rect(t.X, t.Y, t.X+t.Width, t.Y+t.Height)
}

// Record is the exported form of a tile.
type Record struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (t Tile) Record() Record {
	return Record{
		Type:   t.Kind.String(),
		X:      t.X,
		Y:      t.Y,
		Width:  t.Width,
		Height: t.Height,
	}
}
