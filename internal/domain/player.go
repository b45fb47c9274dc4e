package domain

// Player identifies a side. The zero value marks an empty cell.
type Player uint8

const (
	None Player = iota
	A
	B
)

// Other returns the opposing side. None has no opponent.
func (p Player) Other() Player {
	switch p {
	case A:
		return B
	case B:
		return A
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "-"
	}
}
