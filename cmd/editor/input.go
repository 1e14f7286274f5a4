package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mapeditor/editor"
)

// inputPoller turns this tick's raw ebiten input into editor events.
type inputPoller struct {
	canvasW, canvasH int
	keys             []ebiten.Key
}

func (p *inputPoller) Poll(events []editor.Event) []editor.Event {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, editor.Quit{})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, editor.KeyPress{Key: k.String()})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		// presses below the canvas belong to the toolbar
		if mx >= 0 && my >= 0 && mx < p.canvasW && my < p.canvasH {
			events = append(events, editor.MousePress{X: mx, Y: my})
		}
	}
	return events
}
