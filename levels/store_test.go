package levels

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	s.Append(NewTile(Wall, 5, 5, 10))
	s.Append(NewTile(Goal, 5, 5, 10))
	s.Append(NewTile(Wall, 31, 0, 10))

	require.Equal(t, 3, s.Len())

	var kinds []Kind
	for tile := range s.All() {
		kinds = append(kinds, tile.Kind)
	}
	assert.Equal(t, []Kind{Wall, Goal, Wall}, kinds)

	// overlapping placements are both kept
	tiles := s.Tiles()
	assert.Equal(t, tiles[0].Rect(), tiles[1].Rect())

	// Tiles hands out a copy
	tiles[0].X = 999
	assert.Equal(t, 0, s.Tiles()[0].X)
}

func TestEncodeEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, NewStore().Records(), DefaultIndent))
	assert.Equal(t, "[]\n", buf.String())

	var decoded []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, decoded)
}

func TestEncodeLayout(t *testing.T) {
	s := NewStore()
	s.Append(NewTile(Goal, 100, 100, 10))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s.Records(), 4))
	want := "[\n" +
		"    {\n" +
		"        \"type\": \"goal\",\n" +
		"        \"x\": 100,\n" +
		"        \"y\": 100,\n" +
		"        \"width\": 10,\n" +
		"        \"height\": 10\n" +
		"    }\n" +
		"]\n"
	assert.Equal(t, want, buf.String())
}

func TestExport(t *testing.T) {
	t.Run("overwrites_and_is_idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), DefaultExportPath)
		require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the export"), 0o644))

		s := NewStore()
		s.Append(NewTile(Wall, 23, 47, 10))
		s.Append(NewTile(Goal, 100, 100, 10))

		require.NoError(t, s.Export(path, DefaultIndent))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		require.NoError(t, s.Export(path, DefaultIndent))
		second, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		var got []Record
		require.NoError(t, json.Unmarshal(first, &got))
		assert.Equal(t, []Record{
			{Type: "wall", X: 20, Y: 40, Width: 10, Height: 10},
			{Type: "goal", X: 100, Y: 100, Width: 10, Height: 10},
		}, got)
	})

	t.Run("creates_parent_dir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out", "maps", "level.json")
		require.NoError(t, NewStore().Export(path, DefaultIndent))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("unwritable_path", func(t *testing.T) {
		dir := t.TempDir()
		err := NewStore().Export(dir, DefaultIndent)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "levels: export")
	})

	t.Run("empty_path", func(t *testing.T) {
		assert.Error(t, NewStore().Export("", DefaultIndent))
	})
}
