package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/levels"
)

// Surface draws one frame of the editing canvas. The canvas occupies the
// top-left CanvasW x CanvasH pixels of the screen.
type Surface struct {
	CanvasW  int
	CanvasH  int
	CellSize int
	Palette  config.Palette
}

func (s *Surface) clear(dst *ebiten.Image) {
	vector.FillRect(dst, 0, 0, float32(s.CanvasW), float32(s.CanvasH), s.Palette.Background, false)
}

// drawGrid strokes a line at every multiple of the cell size. Lines sit on
// pixel centers so they stay one pixel wide.
func (s *Surface) drawGrid(dst *ebiten.Image) {
	w, h := float32(s.CanvasW), float32(s.CanvasH)
	for x := 0; x < s.CanvasW; x += s.CellSize {
		fx := float32(x) + 0.5
		vector.StrokeLine(dst, fx, 0, fx, h, 1, s.Palette.Grid, false)
	}
	for y := 0; y < s.CanvasH; y += s.CellSize {
		fy := float32(y) + 0.5
		vector.StrokeLine(dst, 0, fy, w, fy, 1, s.Palette.Grid, false)
	}
}

func (s *Surface) drawTiles(dst *ebiten.Image, tiles *levels.Store) {
	for t := range tiles.All() {
		r := t.Rect()
		vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), s.tileColor(t.Kind), false)
	}
}

func (s *Surface) tileColor(kind levels.Kind) color.RGBA {
	switch kind {
	case levels.Wall:
		return s.Palette.Wall
	case levels.Goal:
		return s.Palette.Goal
	default:
		return s.Palette.Grid
	}
}

// Draw renders background, grid and tiles in that order.
func (s *Surface) Draw(dst *ebiten.Image, tiles *levels.Store) {
	s.clear(dst)
	s.drawGrid(dst)
	s.drawTiles(dst, tiles)
}
