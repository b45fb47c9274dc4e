package domain

// StatusKind tags a GameState.
type StatusKind uint8

const (
	InProgress StatusKind = iota
	Win
	Tie
)

func (k StatusKind) String() string {
	switch k {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

// GameState is the status of a game. Winner is set only when Kind is Win.
type GameState struct {
	Kind   StatusKind
	Winner Player
}

// WinFor returns the terminal state won by p.
func WinFor(p Player) GameState { return GameState{Kind: Win, Winner: p} }

func (s GameState) String() string {
	if s.Kind == Win {
		return "win(" + s.Winner.String() + ")"
	}
	return s.Kind.String()
}

// evaluate tallies a finished board.
func evaluate(b Board) GameState {
	var a, bb int
	for _, row := range b {
		for _, c := range row {
			switch c {
			case A:
				a++
			case B:
				bb++
			}
		}
	}
	switch {
	case a > bb:
		return WinFor(A)
	case bb > a:
		return WinFor(B)
	default:
		return GameState{Kind: Tie}
	}
}
