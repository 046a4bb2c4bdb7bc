package selection

import (
	"errors"
	"fmt"
	"sort"
)

// ErrTileOutOfRange is returned when an index does not name a tile.
var ErrTileOutOfRange = errors.New("tile index out of range")

// Snapshot describes the grid right after a mutation.
type Snapshot struct {
	Selected []int // sorted
	Total    int

	// Index is the toggled tile, or -1 when the snapshot comes from Clear.
	Index   int
	Added   bool
	Cleared bool
}

// Count is the number of selected tiles.
func (s Snapshot) Count() int { return len(s.Selected) }

type observer struct {
	id int
	fn func(Snapshot)
}

// Grid is a fixed list of tiles plus the set of selected tile indices.
type Grid struct {
	tiles     []Tile
	selected  map[int]struct{}
	observers []observer
	nextID    int
}

// NewGrid returns a grid over the standard palette with nothing selected.
func NewGrid() *Grid {
	return NewGridWithTiles(Palette())
}

// NewGridWithTiles builds a grid over an arbitrary tile list.
func NewGridWithTiles(tiles []Tile) *Grid {
	return &Grid{
		tiles:    tiles,
		selected: make(map[int]struct{}),
	}
}

func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

func (g *Grid) Total() int { return len(g.tiles) }

func (g *Grid) Len() int { return len(g.selected) }

func (g *Grid) Contains(index int) bool {
	_, ok := g.selected[index]
	return ok
}

// CanClear reports whether the clear control should be enabled.
func (g *Grid) CanClear() bool { return len(g.selected) > 0 }

// Selected returns the selected indices in ascending order.
func (g *Grid) Selected() []int {
	out := make([]int, 0, len(g.selected))
	for i := range g.selected {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Summary is the counter line shown above the grid.
func (g *Grid) Summary() string {
	return fmt.Sprintf("Selected: %d of %d", g.Len(), g.Total())
}

// Toggle removes index from the selection if present, otherwise adds it.
// It reports whether the tile is selected afterwards.
func (g *Grid) Toggle(index int) (bool, error) {
	if index < 0 || index >= len(g.tiles) {
		return false, fmt.Errorf("%w: %d (have %d tiles)", ErrTileOutOfRange, index, len(g.tiles))
	}

	added := true
	if g.Contains(index) {
		delete(g.selected, index)
		added = false
	} else {
		g.selected[index] = struct{}{}
	}

	g.notify(Snapshot{Index: index, Added: added})
	return added, nil
}

// Clear empties the selection unconditionally.
func (g *Grid) Clear() {
	g.selected = make(map[int]struct{})
	g.notify(Snapshot{Index: -1, Cleared: true})
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription.
func (g *Grid) Subscribe(fn func(Snapshot)) func() {
	g.nextID++
	id := g.nextID
	g.observers = append(g.observers, observer{id: id, fn: fn})

	return func() {
		for i, o := range g.observers {
			if o.id == id {
				g.observers = append(g.observers[:i], g.observers[i+1:]...)
				return
			}
		}
	}
}

func (g *Grid) notify(s Snapshot) {
	if len(g.observers) == 0 {
		return
	}
	s.Selected = g.Selected()
	s.Total = g.Total()
	for _, o := range append([]observer(nil), g.observers...) {
		o.fn(s)
	}
}
