package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/mapeditor/levels"
)

// ToolBar holds the radio-group state for the tool buttons and the status line.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	kinds   []levels.Kind
	status  *widget.Label
}

func (tb *ToolBar) SetTool(kind levels.Kind) {
	if tb == nil || tb.group == nil {
		return
	}
	for i, k := range tb.kinds {
		if k == kind {
			tb.group.SetActive(tb.buttons[i])
			return
		}
	}
}

func (tb *ToolBar) SetStatus(s string) {
	if tb == nil || tb.status == nil || tb.status.Label == s {
		return
	}
	tb.status.Label = s
}
