package editor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/mapeditor/config"
	"github.com/milk9111/mapeditor/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Export.Path = filepath.Join(t.TempDir(), "map_data.json")
	return NewState(cfg)
}

func TestNewStateDefaults(t *testing.T) {
	s := newTestState(t)
	assert.Equal(t, levels.Wall, s.ActiveTool)
	assert.True(t, s.Running)
	assert.Equal(t, 0, s.Tiles.Len())
	assert.Equal(t, 10, s.CellSize)
}

func TestActiveToolFollowsLastSelector(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want levels.Kind
	}{
		{"no_keys", nil, levels.Wall},
		{"goal", []string{"G"}, levels.Goal},
		{"goal_then_wall", []string{"G", "W"}, levels.Wall},
		{"lowercase", []string{"g"}, levels.Goal},
		{"unbound_keys_ignored", []string{"G", "X", "Space", "Q"}, levels.Goal},
		{"only_unbound", []string{"Z", "Enter"}, levels.Wall},
		{"repeat", []string{"G", "G", "W", "G"}, levels.Goal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestState(t)
			var changes []levels.Kind
			s.OnToolChanged = func(k levels.Kind) { changes = append(changes, k) }

			events := make([]Event, 0, len(c.keys))
			for _, k := range c.keys {
				events = append(events, KeyPress{Key: k})
			}
			require.NoError(t, s.Dispatch(events))
			assert.Equal(t, c.want, s.ActiveTool)
			assert.Equal(t, 0, s.Tiles.Len())
			if len(changes) > 0 {
				assert.Equal(t, c.want, changes[len(changes)-1])
			}
		})
	}
}

func TestMousePressPlacesSnappedTile(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Dispatch([]Event{
		MousePress{X: 0, Y: 0},
		MousePress{X: 1999, Y: 1199},
		MousePress{X: 9, Y: 10},
	}))

	assert.Equal(t, []levels.Tile{
		{Kind: levels.Wall, X: 0, Y: 0, Width: 10, Height: 10},
		{Kind: levels.Wall, X: 1990, Y: 1190, Width: 10, Height: 10},
		{Kind: levels.Wall, X: 0, Y: 10, Width: 10, Height: 10},
	}, s.Tiles.Tiles())
}

func TestQuitStopsRunning(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Dispatch([]Event{MousePress{X: 5, Y: 5}, Quit{}, MousePress{X: 15, Y: 5}}))
	assert.False(t, s.Running)
	// the rest of the frame is still processed
	assert.Equal(t, 2, s.Tiles.Len())
}

func TestEndToEndScenario(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Dispatch([]Event{
		MousePress{X: 23, Y: 47},
		KeyPress{Key: "G"},
		MousePress{X: 100, Y: 100},
		KeyPress{Key: "S"},
	}))

	data, err := os.ReadFile(s.ExportPath)
	require.NoError(t, err)
	var got []levels.Record
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []levels.Record{
		{Type: "wall", X: 20, Y: 40, Width: 10, Height: 10},
		{Type: "goal", X: 100, Y: 100, Width: 10, Height: 10},
	}, got)

	// export leaves the tool and tiles alone
	assert.Equal(t, levels.Goal, s.ActiveTool)
	assert.Equal(t, 2, s.Tiles.Len())
}

func TestExportTwiceIsByteIdentical(t *testing.T) {
	s := newTestState(t)
	require.NoError(t, s.Dispatch([]Event{MousePress{X: 3, Y: 3}, KeyPress{Key: "S"}}))
	first, err := os.ReadFile(s.ExportPath)
	require.NoError(t, err)

	require.NoError(t, s.Dispatch([]Event{KeyPress{Key: "G"}, KeyPress{Key: "S"}}))
	second, err := os.ReadFile(s.ExportPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExportFailureStopsBatch(t *testing.T) {
	s := newTestState(t)
	s.ExportPath = t.TempDir()

	err := s.Dispatch([]Event{
		MousePress{X: 1, Y: 1},
		KeyPress{Key: "S"},
		MousePress{X: 50, Y: 50},
	})
	require.Error(t, err)
	assert.Equal(t, 1, s.Tiles.Len())
	assert.True(t, s.Running)
}

func TestApplyReload(t *testing.T) {
	s := newTestState(t)
	cfg, err := config.Default()
	require.NoError(t, err)
	cfg.Keys = config.KeysSpec{SelectWall: "Digit1", SelectGoal: "Digit2", Export: "E"}
	cfg.Grid.CellSize = 32

	s.ApplyReload(cfg)
	assert.Equal(t, 10, s.CellSize)
	assert.Equal(t, ActionSelectGoal, s.Keymap.Lookup("Digit2"))
	assert.Equal(t, ActionNone, s.Keymap.Lookup("G"))

	require.NoError(t, s.Dispatch([]Event{KeyPress{Key: "Digit2"}}))
	assert.Equal(t, levels.Goal, s.ActiveTool)
}
