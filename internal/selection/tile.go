package selection

// Tile is one selectable cell of the grid. Tiles are values and are never
// mutated after the palette is built.
type Tile struct {
	Color string // hex, e.g. "#E57373"
	Name  string
	Label string
}

var palette = []Tile{
	{Color: "#E57373", Name: "Red", Label: "1"},
	{Color: "#81C784", Name: "Green", Label: "2"},
	{Color: "#64B5F6", Name: "Blue", Label: "3"},
	{Color: "#FFB74D", Name: "Orange", Label: "4"},
	{Color: "#BA68C8", Name: "Purple", Label: "5"},
	{Color: "#4DB6AC", Name: "Teal", Label: "6"},
	{Color: "#FF8A65", Name: "Deep Orange", Label: "7"},
	{Color: "#90A4AE", Name: "Blue Grey", Label: "8"},
	{Color: "#F06292", Name: "Pink", Label: "9"},
	{Color: "#7986CB", Name: "Indigo", Label: "10"},
	{Color: "#4DD0E1", Name: "Cyan", Label: "11"},
	{Color: "#FFD54F", Name: "Yellow", Label: "12"},
	{Color: "#8D6E63", Name: "Brown", Label: "13"},
	{Color: "#9575CD", Name: "Deep Purple", Label: "14"},
	{Color: "#4FC3F7", Name: "Light Blue", Label: "15"},
	{Color: "#66BB6A", Name: "Light Green", Label: "16"},
	{Color: "#FFCC02", Name: "Amber", Label: "17"},
	{Color: "#EC407A", Name: "Pink", Label: "18"},
	{Color: "#42A5F5", Name: "Blue", Label: "19"},
	{Color: "#26A69A", Name: "Teal", Label: "20"},
	{Color: "#FF7043", Name: "Deep Orange", Label: "21"},
	{Color: "#9CCC65", Name: "Light Green", Label: "22"},
	{Color: "#26C6DA", Name: "Cyan", Label: "23"},
	{Color: "#D4E157", Name: "Lime", Label: "24"},
}

// Palette returns a copy of the fixed 24-tile list.
func Palette() []Tile {
	out := make([]Tile, len(palette))
	copy(out, palette)
	return out
}
