package app

import (
	"fmt"

	"github.com/jaminalder/codex-reversi/internal/domain"
)

// Replay seats two players, plays moves in order for whichever side is to
// move, and returns the resulting session. Forced passes need no entry in
// the transcript. On a rejected move the session holds the state up to
// that move and the error names it.
func (s *Service) Replay(moves []domain.Square) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, err := s.createLocked()
	if err != nil {
		return nil, err
	}
	gs.A, gs.B = "replay-a", "replay-b"
	for i, sq := range moves {
		p := gs.Game.NextPlayer()
		if err := s.placeLocked(gs, p, sq.Row, sq.Col); err != nil {
			return gs.snapshot(), fmt.Errorf("move %d (%s): %w", i+1, sq, err)
		}
	}
	return gs.snapshot(), nil
}
