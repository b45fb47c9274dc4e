package domain

import "fmt"

// Size is the side length of the board.
const Size = 8

// Board is the 8x8 grid stored row-major. None marks an empty cell.
type Board [Size][Size]Player

// Square is a (row, col) coordinate on the board.
type Square struct {
	Row, Col int
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Game holds the current state of a Reversi match. The zero value is not a
// valid game; use New. Copying a Game copies the whole board.
type Game struct {
	board  Board
	next   Player
	status GameState
}

// New returns a game in the standard starting position with A to move.
func New() Game {
	var b Board
	b[3][3] = A
	b[4][4] = A
	b[3][4] = B
	b[4][3] = B
	return Game{board: b, next: A, status: GameState{Kind: InProgress}}
}

// Get returns the owner of a cell. It panics when (row, col) is off the
// board; use InBounds to check untrusted input first.
func (g Game) Get(row, col int) Player {
	if !InBounds(row, col) {
		panic(fmt.Sprintf("domain: cell (%d, %d) out of bounds", row, col))
	}
	return g.board[row][col]
}

// Board returns a copy of the grid.
func (g Game) Board() Board { return g.board }

// IsEnded reports whether the game has reached a terminal state.
func (g Game) IsEnded() bool { return g.status.Kind != InProgress }

// Winner returns the winning side. ok is false while the game is running
// and on a tie.
func (g Game) Winner() (p Player, ok bool) {
	if g.status.Kind != Win {
		return None, false
	}
	return g.status.Winner, true
}

// Status returns the full game state.
func (g Game) Status() GameState { return g.status }

// NextPlayer returns the side whose turn it is.
func (g Game) NextPlayer() Player { return g.next }

// Count returns how many cells p owns.
func (g Game) Count(p Player) int {
	n := 0
	for _, row := range g.board {
		for _, c := range row {
			if c == p {
				n++
			}
		}
	}
	return n
}
