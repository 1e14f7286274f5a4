package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/editor"
)

// EditorGame is the Ebiten game for the editor.
type EditorGame struct {
	state      *editor.State
	surface    *Surface
	poller     inputPoller
	events     []editor.Event
	ui         *ebitenui.UI
	toolBar    *ToolBar
	toolbarH   int
	keys       config.KeysSpec
	configPath string
	watcher    *config.Watcher
	// uiErr carries an export failure from a toolbar click out of Update.
	uiErr    error
	quitting bool
}

func NewEditorGame(cfg config.Config, configPath string, watcher *config.Watcher) (*EditorGame, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	if cfg.Keys, err = resolveKeys(cfg.Keys); err != nil {
		return nil, err
	}

	g := &EditorGame{
		state: editor.NewState(cfg),
		surface: &Surface{
			CanvasW:  cfg.Canvas.Width,
			CanvasH:  cfg.Canvas.Height,
			CellSize: cfg.Grid.CellSize,
			Palette:  palette,
		},
		poller:     inputPoller{canvasW: cfg.Canvas.Width, canvasH: cfg.Canvas.Height},
		keys:       cfg.Keys,
		configPath: configPath,
		watcher:    watcher,
	}

	if cfg.Toolbar.Enabled {
		g.toolbarH = cfg.Toolbar.Height
		g.ui, g.toolBar = BuildEditorUI(
			g.toolbarH,
			g.state.SelectTool,
			func() {
				if err := g.state.Export(); err != nil && g.uiErr == nil {
					g.uiErr = err
				}
			},
			g.state.ActiveTool,
		)
		g.state.OnToolChanged = g.toolBar.SetTool
		g.toolBar.SetStatus(g.statusLine())
	}
	return g, nil
}

func (g *EditorGame) Update() error {
	g.drainReloads()
	g.events = g.poller.Poll(g.events[:0])
	return g.step(g.events)
}

// step applies one tick of input. After a quit it still returns nil once so
// the frame in progress is drawn; the following tick terminates.
func (g *EditorGame) step(events []editor.Event) error {
	if g.quitting {
		log.Println("Editor exiting")
		return ebiten.Termination
	}

	if err := g.state.Dispatch(events); err != nil {
		return err
	}

	if g.ui != nil {
		g.ui.Update()
		if err := g.uiErr; err != nil {
			g.uiErr = nil
			return err
		}
		g.toolBar.SetStatus(g.statusLine())
	}

	if !g.state.Running {
		g.quitting = true
	}
	return nil
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen, g.state.Tiles)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.CanvasW, g.surface.CanvasH + g.toolbarH
}

func (g *EditorGame) statusLine() string {
	return fmt.Sprintf("Tool: %s   Tiles: %d   %s wall / %s goal / %s export to %s",
		editor.ToolLabel(g.state.ActiveTool),
		g.state.Tiles.Len(),
		g.keys.SelectWall, g.keys.SelectGoal, g.keys.Export,
		g.state.ExportPath,
	)
}

// drainReloads applies pending config changes without blocking the frame.
func (g *EditorGame) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadConfig()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Config watch error: %v", err)
		default:
			return
		}
	}
}

// reloadConfig picks up colors and key bindings. Canvas size, cell size and
// the export target stay as they were at startup.
func (g *EditorGame) reloadConfig() {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		log.Printf("Config reload failed, keeping previous settings: %v", err)
		return
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Printf("Config reload failed, keeping previous settings: %v", err)
		return
	}
	if cfg.Keys, err = resolveKeys(cfg.Keys); err != nil {
		log.Printf("Config reload failed, keeping previous settings: %v", err)
		return
	}
	g.surface.Palette = palette
	g.keys = cfg.Keys
	g.state.ApplyReload(cfg)
	log.Printf("Reloaded config: %s", g.configPath)
}

var _ ebiten.Game = (*EditorGame)(nil)
