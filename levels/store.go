package levels

import "iter"

// Store is the append-only, insertion-ordered collection of placed tiles.
// Insertion order is also draw order.
type Store struct {
	tiles []Tile
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(t Tile) {
	s.tiles = append(s.tiles, t)
}

func (s *Store) Len() int {
	return len(s.tiles)
}

// Tiles returns a copy of the placed tiles in insertion order.
func (s *Store) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// All iterates the placed tiles in insertion order without copying.
func (s *Store) All() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for _, t := range s.tiles {
			if !yield(t) {
				return
			}
		}
	}
}

// Records converts every tile to its export record. The result is never nil.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.tiles))
	for _, t := range s.tiles {
		out = append(out, t.Record())
	}
	return out
}
