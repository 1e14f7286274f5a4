package editor

import "github.com/milk9111/mapeditor/levels"

// Event is one input occurrence for a tick.
type Event interface {
	isEvent()
}

// Quit asks the editor to stop after the current frame.
type Quit struct{}

// KeyPress is a key going down, identified by name (e.g. "W").
type KeyPress struct {
	Key string
}

// MousePress is a primary button press at canvas-local pixel coordinates.
type MousePress struct {
	X, Y int
}

func (Quit) isEvent()       {}
func (KeyPress) isEvent()   {}
func (MousePress) isEvent() {}

// Dispatch applies events in arrival order. An export failure stops the batch
// and is returned to the caller unchanged.
func (s *State) Dispatch(events []Event) error {
	for _, ev := range events {
		switch ev := ev.(type) {
		case Quit:
			s.Running = false
		case KeyPress:
			if err := s.handleKey(ev.Key); err != nil {
				return err
			}
		case MousePress:
			s.Place(ev.X, ev.Y)
		}
	}
	return nil
}

func (s *State) handleKey(key string) error {
	switch s.Keymap.Lookup(key) {
	case ActionSelectWall:
		s.SelectTool(levels.Wall)
	case ActionSelectGoal:
		s.SelectTool(levels.Goal)
	case ActionExport:
		return s.Export()
	}
	return nil
}
