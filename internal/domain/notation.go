package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Squares use Othello notation: a column letter a-h followed by a row
// number 1-8, with a1 at the top-left corner (row 0, col 0).

func (s Square) String() string {
	if !InBounds(s.Row, s.Col) {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row+1)
}

// ParseSquare converts notation such as "d3" to a Square.
func ParseSquare(v string) (Square, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if len(v) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrBadNotation, v)
	}
	col := int(v[0]) - 'a'
	row := int(v[1]) - '1'
	if !InBounds(row, col) {
		return Square{}, fmt.Errorf("%w: %q out of bounds", ErrBadNotation, v)
	}
	return Square{Row: row, Col: col}, nil
}

// ParseTranscript reads a move list. Moves may be separated by whitespace
// or commas, or written back to back as in "f5d6c3".
func ParseTranscript(s string) ([]Square, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	var moves []Square
	for _, f := range fields {
		if len(f)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadNotation, f)
		}
		for i := 0; i < len(f); i += 2 {
			sq, err := ParseSquare(f[i : i+2])
			if err != nil {
				return nil, fmt.Errorf("move %d: %w", len(moves)+1, err)
			}
			moves = append(moves, sq)
		}
	}
	return moves, nil
}
