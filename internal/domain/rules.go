package domain

// CheckPositionValidity reports whether p may place a piece at (row, col)
// right now. Checks run in order: bounds, game over, turn, occupancy, and
// finally whether any line is captured.
func (g Game) CheckPositionValidity(row, col int, p Player) error {
	if err := g.precheck(p, row, col); err != nil {
		return err
	}
	if !g.captures(row, col, p) {
		return &MoveError{Player: p, Square: Square{row, col}, Err: ErrInvalidPosition}
	}
	return nil
}

// Place puts a piece for p at (row, col), flips every sandwiched run and
// advances the turn. When the opponent cannot move the turn stays with p;
// when neither side can move the game ends. A rejected move leaves the game
// unchanged.
func (g *Game) Place(p Player, row, col int) error {
	if err := g.precheck(p, row, col); err != nil {
		return err
	}

	from := Square{row, col}
	flipped := false
	for _, d := range Directions() {
		end, ok := g.scan(from, d, p)
		if !ok {
			continue
		}
		g.flip(from, end, d, p)
		flipped = true
	}
	if !flipped {
		return &MoveError{Player: p, Square: from, Err: ErrInvalidPosition}
	}

	g.next = p.Other()
	if !g.CanMove(g.next) {
		// forced pass
		g.next = p
		if !g.CanMove(p) {
			g.status = evaluate(g.board)
		}
	}
	return nil
}

// CanMove reports whether p has a capturing placement anywhere on the
// board. It ignores whose turn it is and whether the game has ended.
func (g Game) CanMove(p Player) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.board[r][c] == None && g.captures(r, c, p) {
				return true
			}
		}
	}
	return false
}

// ValidMoves lists the squares where p could capture, in row-major order.
func (g Game) ValidMoves(p Player) []Square {
	var out []Square
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.board[r][c] == None && g.captures(r, c, p) {
				out = append(out, Square{r, c})
			}
		}
	}
	return out
}

func (g Game) precheck(p Player, row, col int) error {
	sq := Square{row, col}
	if !InBounds(row, col) {
		return &MoveError{Player: p, Square: sq, Err: ErrOutOfBounds}
	}
	if g.IsEnded() {
		return &MoveError{Player: p, Square: sq, Err: ErrGameOver}
	}
	if p != g.next {
		return &MoveError{Player: p, Square: sq, Err: ErrWrongPlayer}
	}
	if g.board[row][col] != None {
		return &MoveError{Player: p, Square: sq, Err: ErrOccupied}
	}
	return nil
}

func (g Game) captures(row, col int, p Player) bool {
	if p == None {
		return false
	}
	from := Square{row, col}
	for _, d := range Directions() {
		if _, ok := g.scan(from, d, p); ok {
			return true
		}
	}
	return false
}

// scan walks from (exclusive) in direction d. It returns the square of
// p's piece that closes a run of one or more opponent pieces.
func (g Game) scan(from Square, d Direction, p Player) (Square, bool) {
	opp := p.Other()
	run := 0
	for sq := range Ray(from, d) {
		if sq == from {
			continue
		}
		switch g.board[sq.Row][sq.Col] {
		case opp:
			run++
		case p:
			return sq, run > 0
		default:
			return Square{}, false
		}
	}
	return Square{}, false
}

// flip claims from and every square up to, but not including, end.
func (g *Game) flip(from, end Square, d Direction, p Player) {
	for sq := range Ray(from, d) {
		if sq == end {
			return
		}
		g.board[sq.Row][sq.Col] = p
	}
}
