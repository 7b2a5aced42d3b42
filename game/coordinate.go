package game

import "fmt"

type Coordinate struct {
	X uint `json:"x" schema:"x,required"`
	Y uint `json:"y" schema:"y,required"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// neighborOffsets lists the 8-connected neighbourhood. Flood and mine counting
// both walk it in this order.
var neighborOffsets = [8][2]int{
	{-1, 1},
	{0, 1},
	{1, 1},
	{-1, 0},
	{1, 0},
	{-1, -1},
	{0, -1},
	{1, -1},
}

// neighbors returns the in-bounds neighbours of c on a width x height grid.
func neighbors(c Coordinate, width, height uint) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		x := int(c.X) + offset[0]
		y := int(c.Y) + offset[1]
		if x < 0 || y < 0 || x >= int(width) || y >= int(height) {
			continue
		}
		out = append(out, Coordinate{uint(x), uint(y)})
	}
	return out
}
