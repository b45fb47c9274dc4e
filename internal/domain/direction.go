package domain

import "iter"

// Direction is one of the eight grid-adjacency vectors.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var offsets = [...][2]int{
	North:     {-1, 0},
	NorthEast: {-1, 1},
	East:      {0, 1},
	SouthEast: {1, 1},
	South:     {1, 0},
	SouthWest: {1, -1},
	West:      {0, -1},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
}

// Directions returns all eight directions, clockwise from North.
func Directions() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// Offset returns the row and column delta of one step.
func (d Direction) Offset() (dr, dc int) {
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string { return directionNames[d] }

// Ray yields from and every following square in direction d, stopping at
// the first coordinate that leaves the board. Nothing is yielded when from
// itself is off the board.
func Ray(from Square, d Direction) iter.Seq[Square] {
	dr, dc := d.Offset()
	return func(yield func(Square) bool) {
		for sq := from; InBounds(sq.Row, sq.Col); sq = (Square{Row: sq.Row + dr, Col: sq.Col + dc}) {
			if !yield(sq) {
				return
			}
		}
	}
}
