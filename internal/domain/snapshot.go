package domain

import (
	"encoding/json"
	"fmt"
)

type snapshot struct {
	Board  []string `json:"board"`
	Next   string   `json:"next"`
	Status string   `json:"status"`
	Winner string   `json:"winner,omitempty"`
}

var cellSymbols = map[Player]byte{None: '.', A: 'A', B: 'B'}

// MarshalJSON encodes the game as eight row strings over ".AB" plus the
// turn and status.
func (g Game) MarshalJSON() ([]byte, error) {
	s := snapshot{Board: make([]string, Size)}
	for r, row := range g.board {
		buf := make([]byte, Size)
		for c, p := range row {
			buf[c] = cellSymbols[p]
		}
		s.Board[r] = string(buf)
	}
	s.Next = g.next.String()
	s.Status = g.status.Kind.String()
	if g.status.Kind == Win {
		s.Winner = g.status.Winner.String()
	}
	return json.Marshal(s)
}

// UnmarshalJSON restores a game written by MarshalJSON.
func (g *Game) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if len(s.Board) != Size {
		return fmt.Errorf("snapshot: board has %d rows", len(s.Board))
	}
	var out Game
	for r, row := range s.Board {
		if len(row) != Size {
			return fmt.Errorf("snapshot: row %d has %d cells", r, len(row))
		}
		for c := 0; c < Size; c++ {
			p, err := parseSymbol(row[c])
			if err != nil {
				return fmt.Errorf("snapshot: row %d col %d: %w", r, c, err)
			}
			out.board[r][c] = p
		}
	}
	next, err := parsePlayer(s.Next)
	if err != nil {
		return fmt.Errorf("snapshot: next: %w", err)
	}
	out.next = next
	switch s.Status {
	case InProgress.String():
		out.status = GameState{Kind: InProgress}
	case Tie.String():
		out.status = GameState{Kind: Tie}
	case Win.String():
		w, err := parsePlayer(s.Winner)
		if err != nil {
			return fmt.Errorf("snapshot: winner: %w", err)
		}
		out.status = WinFor(w)
	default:
		return fmt.Errorf("snapshot: unknown status %q", s.Status)
	}
	*g = out
	return nil
}

func parseSymbol(b byte) (Player, error) {
	switch b {
	case '.':
		return None, nil
	case 'A':
		return A, nil
	case 'B':
		return B, nil
	}
	return None, fmt.Errorf("unknown cell %q", b)
}

func parsePlayer(v string) (Player, error) {
	if len(v) != 1 {
		return None, fmt.Errorf("unknown player %q", v)
	}
	p, err := parseSymbol(v[0])
	if err != nil || p == None {
		return None, fmt.Errorf("unknown player %q", v)
	}
	return p, nil
}
