package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPalette(t *testing.T) {
	tiles := Palette()
	require.Len(t, tiles, 24)
	assert.Equal(t, "1", tiles[0].Label)
	assert.Equal(t, "#E57373", tiles[0].Color)
	assert.Equal(t, "24", tiles[23].Label)
	assert.Equal(t, "Lime", tiles[23].Name)

	// Callers get a copy.
	tiles[0].Label = "changed"
	assert.Equal(t, "1", Palette()[0].Label)
}

func TestGrid_Toggle(t *testing.T) {
	g := NewGrid()

	added, err := g.Toggle(2)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, g.Contains(2))

	added, err = g.Toggle(2)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, g.Contains(2))
	assert.Equal(t, 0, g.Len())
}

func TestGrid_ToggleTwiceRestoresSet(t *testing.T) {
	g := NewGrid()
	for _, i := range []int{0, 7, 13} {
		_, err := g.Toggle(i)
		require.NoError(t, err)
	}
	before := g.Selected()

	for i := 0; i < g.Total(); i++ {
		_, err := g.Toggle(i)
		require.NoError(t, err)
		_, err = g.Toggle(i)
		require.NoError(t, err)
		assert.Equal(t, before, g.Selected(), "index %d", i)
	}
}

func TestGrid_ToggleOutOfRange(t *testing.T) {
	g := NewGrid()
	_, _ = g.Toggle(4)

	for _, i := range []int{-1, 24, 100} {
		_, err := g.Toggle(i)
		assert.ErrorIs(t, err, ErrTileOutOfRange)
	}
	assert.Equal(t, []int{4}, g.Selected())
}

func TestGrid_Clear(t *testing.T) {
	sequences := [][]int{
		{},
		{1},
		{1, 1},
		{0, 5, 23, 5, 9},
		{3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	}

	for _, seq := range sequences {
		g := NewGrid()
		for _, i := range seq {
			_, err := g.Toggle(i)
			require.NoError(t, err)
		}
		g.Clear()
		assert.Equal(t, 0, g.Len())
		assert.Empty(t, g.Selected())
		assert.False(t, g.CanClear())
	}
}

func TestGrid_SummaryScenario(t *testing.T) {
	g := NewGrid()
	assert.Equal(t, "Selected: 0 of 24", g.Summary())
	assert.False(t, g.CanClear())

	_, _ = g.Toggle(2)
	_, _ = g.Toggle(5)
	_, _ = g.Toggle(2)

	assert.Equal(t, []int{5}, g.Selected())
	assert.Equal(t, "Selected: 1 of 24", g.Summary())
	assert.True(t, g.CanClear())
}

func TestGrid_Subscribe(t *testing.T) {
	g := NewGrid()

	var got []Snapshot
	cancel := g.Subscribe(func(s Snapshot) {
		got = append(got, s)
	})

	_, _ = g.Toggle(3)
	_, _ = g.Toggle(1)
	_, _ = g.Toggle(3)
	g.Clear()

	require.Len(t, got, 4)
	assert.Equal(t, Snapshot{Selected: []int{3}, Total: 24, Index: 3, Added: true}, got[0])
	assert.Equal(t, []int{1, 3}, got[1].Selected)
	assert.False(t, got[2].Added)
	assert.Equal(t, 1, got[2].Count())
	assert.True(t, got[3].Cleared)
	assert.Equal(t, -1, got[3].Index)
	assert.Empty(t, got[3].Selected)

	cancel()
	_, _ = g.Toggle(0)
	assert.Len(t, got, 4)
}

func TestGrid_UnsubscribeInsideCallback(t *testing.T) {
	g := NewGrid()

	calls := 0
	var cancel func()
	cancel = g.Subscribe(func(Snapshot) {
		calls++
		cancel()
	})
	other := 0
	g.Subscribe(func(Snapshot) { other++ })

	_, _ = g.Toggle(0)
	_, _ = g.Toggle(0)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}
