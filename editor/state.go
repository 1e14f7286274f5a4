// Package editor holds the editor's state and applies input to it. It has no
// dependency on the windowing layer so the rules can be exercised headless.
package editor

import (
	"log"
	"strings"

	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/levels"
)

// Action is what a bound key does.
type Action int

const (
	ActionNone Action = iota
	ActionSelectWall
	ActionSelectGoal
	ActionExport
)

func (a Action) String() string {
	switch a {
	case ActionSelectWall:
		return "select_wall"
	case ActionSelectGoal:
		return "select_goal"
	case ActionExport:
		return "export"
	default:
		return "none"
	}
}

// Keymap maps upper-cased key names to actions.
type Keymap map[string]Action

func NewKeymap(keys config.KeysSpec) Keymap {
	return Keymap{
		normalizeKey(keys.SelectWall): ActionSelectWall,
		normalizeKey(keys.SelectGoal): ActionSelectGoal,
		normalizeKey(keys.Export):     ActionExport,
	}
}

func (k Keymap) Lookup(key string) Action {
	return k[normalizeKey(key)]
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// State is everything the editor knows during a run. It is owned by the game
// loop and must only be touched from the update goroutine.
type State struct {
	ActiveTool levels.Kind
	Tiles      *levels.Store
	Running    bool

	Keymap       Keymap
	CellSize     int
	ExportPath   string
	ExportIndent int

	// OnToolChanged, when set, is called after ActiveTool changes.
	OnToolChanged func(levels.Kind)
}

func NewState(cfg config.Config) *State {
	return &State{
		ActiveTool:   levels.Wall,
		Tiles:        levels.NewStore(),
		Running:      true,
		Keymap:       NewKeymap(cfg.Keys),
		CellSize:     cfg.Grid.CellSize,
		ExportPath:   cfg.Export.Path,
		ExportIndent: cfg.Export.Indent,
	}
}

func (s *State) SelectTool(kind levels.Kind) {
	if !kind.Valid() || kind == s.ActiveTool {
		return
	}
	s.ActiveTool = kind
	log.Printf("Switched to %s tool", ToolLabel(kind))
	if s.OnToolChanged != nil {
		s.OnToolChanged(kind)
	}
}

// Place appends a tile of the active kind at the grid cell containing (x, y).
func (s *State) Place(x, y int) levels.Tile {
	tile := levels.NewTile(s.ActiveTool, x, y, s.CellSize)
	s.Tiles.Append(tile)
	return tile
}

func (s *State) Export() error {
	return s.Tiles.Export(s.ExportPath, s.ExportIndent)
}

// ApplyReload takes the settings from a reloaded config that are safe to
// change mid-run. Cell size is fixed for the life of the tile store.
func (s *State) ApplyReload(cfg config.Config) {
	s.Keymap = NewKeymap(cfg.Keys)
	if cfg.Grid.CellSize != s.CellSize {
		log.Printf("grid.cell_size change to %d ignored until restart", cfg.Grid.CellSize)
	}
}

// ToolLabel is the display name of a tile kind.
func ToolLabel(kind levels.Kind) string {
	switch kind {
	case levels.Wall:
		return "Wall"
	case levels.Goal:
		return "Goal"
	default:
		return kind.String()
	}
}
