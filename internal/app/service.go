package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/jaminalder/codex-reversi/internal/domain"
)

// Errors exposed by the service layer.
var (
	ErrNotFound     = errors.New("game not found")
	ErrNotAPlayer   = errors.New("not a player")
	ErrTooManyGames = errors.New("too many games")
)

// Move records one accepted placement.
type Move struct {
	Player  domain.Player
	Square  domain.Square
	Flipped int
	At      time.Time
}

// Session is the in-memory state tracked per game.
type Session struct {
	ID      string
	Game    domain.Game
	A       string
	B       string
	Moves   []Move
	Created time.Time
	Updated time.Time
}

// snapshot returns a copy that shares nothing with s.
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Moves = append([]Move(nil), s.Moves...)
	return &cp
}

type subscriber struct {
	ch        chan []byte
	closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers. Every access to a session's Game
// goes through mu.
type Service struct {
	mu     sync.Mutex
	cfg    Config
	games  map[string]*Session
	subs   map[string]map[*subscriber]struct{}
	render func(Session) []byte
}

// NewService creates a service with the default config and JSON renderer.
func NewService() *Service { return New(DefaultConfig(), nil) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(Session) []byte) *Service {
	return New(DefaultConfig(), renderer)
}

// New creates a service. A nil renderer broadcasts the JSON snapshot of
// the game.
func New(cfg Config, renderer func(Session) []byte) *Service {
	if renderer == nil {
		renderer = renderJSON
	}
	if cfg.SubscriberBuffer < 1 {
		cfg.SubscriberBuffer = 1
	}
	return &Service{
		cfg:    cfg,
		games:  make(map[string]*Session),
		subs:   make(map[string]map[*subscriber]struct{}),
		render: renderer,
	}
}

func renderJSON(s Session) []byte {
	b, err := json.Marshal(s.Game)
	if err != nil {
		return nil
	}
	return b
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(Session) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = renderJSON
		return
	}
	s.render = renderer
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, err := s.createLocked()
	if err != nil {
		return nil, err
	}
	return gs.snapshot(), nil
}

func (s *Service) createLocked() (*Session, error) { return s.registerLocked(newID()) }

// registerLocked adds a fresh session under id, honouring MaxGames.
func (s *Service) registerLocked(id string) (*Session, error) {
	if s.cfg.MaxGames > 0 && len(s.games) >= s.cfg.MaxGames {
		return nil, ErrTooManyGames
	}
	now := time.Now()
	gs := &Session{ID: id, Game: domain.New(), Created: now, Updated: now}
	s.games[id] = gs
	return gs, nil
}

// Get returns a copy of the session if present.
func (s *Service) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return nil, false
	}
	return gs.snapshot(), true
}

// Join assigns a seat to the player if available; returns None for spectators.
func (s *Service) Join(id, playerID string) (domain.Player, *Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs, ok := s.games[id]
	if !ok {
		return domain.None, nil, ErrNotFound
	}
	side := domain.None
	if gs.A == "" || gs.A == playerID {
		gs.A = playerID
		side = domain.A
	} else if gs.B == "" || gs.B == playerID {
		gs.B = playerID
		side = domain.B
	}
	gs.Updated = time.Now()
	return side, gs.snapshot(), nil
}

// Play places a piece for the seated player and broadcasts the new state.
// Turn order and move legality are left to the game so its error
// precedence holds.
func (s *Service) Play(id, playerID string, r, c int) (*Session, error) {
	s.mu.Lock()
	gs, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	seat := domain.None
	switch {
	case playerID == "":
	case playerID == gs.A:
		seat = domain.A
	case playerID == gs.B:
		seat = domain.B
	}
	if seat == domain.None {
		s.mu.Unlock()
		return nil, ErrNotAPlayer
	}
	if err := s.placeLocked(gs, seat, r, c); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	cp := gs.snapshot()
	subs := s.copySubsLocked(id)
	payload := s.render(*cp)
	s.mu.Unlock()

	s.broadcast(id, subs, payload)
	return cp, nil
}

func (s *Service) placeLocked(gs *Session, p domain.Player, r, c int) error {
	before := gs.Game.Count(p)
	if err := gs.Game.Place(p, r, c); err != nil {
		return err
	}
	now := time.Now()
	gs.Moves = append(gs.Moves, Move{
		Player:  p,
		Square:  domain.Square{Row: r, Col: c},
		Flipped: gs.Game.Count(p) - before - 1,
		At:      now,
	})
	gs.Updated = now
	return nil
}

// broadcast fans out; slow subscribers are closed and removed.
func (s *Service) broadcast(id string, subs map[*subscriber]struct{}, payload []byte) {
	var toDrop []*subscriber
	for sub := range subs {
		select {
		case sub.ch <- payload:
		default:
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) > 0 {
		s.mu.Lock()
		for _, sub := range toDrop {
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
		}
		s.mu.Unlock()
	}
}

// Subscribe registers a subscriber for a game. Returns a channel and an
// unsubscribe func. An unknown id registers a new game, which fails with
// ErrTooManyGames once MaxGames is reached.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		// create lazily to allow subscriptions before CreateGame in some flows
		if _, err := s.registerLocked(id); err != nil {
			return nil, nil, err
		}
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, s.cfg.SubscriberBuffer)}
	set[sub] = struct{}{}

	done := make(chan struct{})
	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			close(done)
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		select {
		case <-ctx.Done():
			unsub()
		case <-done:
		}
	}()
	return sub.ch, unsub, nil
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
