package levels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExportPath is where Export writes when no path is configured.
const DefaultExportPath = "map_data.json"

// DefaultIndent is the number of spaces per nesting level in exported files.
const DefaultIndent = 4

// Encode writes records as an indented JSON array followed by a newline.
func Encode(w io.Writer, records []Record, indent int) error {
	if records == nil {
		records = []Record{}
	}
	if indent < 0 {
		indent = 0
	}
	data, err := json.MarshalIndent(records, "", strings.Repeat(" ", indent))
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Export overwrites path with the JSON encoding of every placed tile.
func (s *Store) Export(path string, indent int) error {
	if path == "" {
		return fmt.Errorf("levels: empty export path")
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s.Records(), indent); err != nil {
		return fmt.Errorf("levels: export %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("levels: export %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("levels: export %s: %w", path, err)
	}
	log.Printf("Map exported to %s", path)
	return nil
}
