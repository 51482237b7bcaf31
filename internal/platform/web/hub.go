// Package web serves minesweeper sessions over HTTP and websockets. Every
// session owns one engine; the hub serialises calls per session.
package web

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// ErrSessionNotFound is returned for unknown or evicted session ids.
var ErrSessionNotFound = errors.New("web: session not found")

// HubConfig holds session lifetime settings.
type HubConfig struct {
	// TTL is how long a session may stay unused before eviction.
	TTL time.Duration
	// CleanupPeriod is how often expired sessions are looked for.
	CleanupPeriod time.Duration
	// Placer returns the mine placer for a new session. Nil means a
	// randomly seeded placer per session.
	Placer func() mines.Placer
}

// DefaultHubConfig returns sensible defaults.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		TTL:           time.Hour,
		CleanupPeriod: time.Minute,
	}
}

// session is one engine and the lock that guards it.
type session struct {
	mu       sync.Mutex
	id       uuid.UUID
	preset   config.Preset
	engine   *mines.Engine
	lastUsed time.Time
}

// MoveResponse is returned by every session operation.
type MoveResponse struct {
	ID       uuid.UUID      `json:"id"`
	Preset   config.Preset  `json:"preset"`
	Changed  bool           `json:"changed"`
	Revealed []mines.Coord  `json:"revealed,omitempty"`
	Events   []mines.Event  `json:"events,omitempty"`
	Board    mines.Snapshot `json:"board"`
}

// Hub tracks live sessions. Safe for concurrent use.
type Hub struct {
	config HubConfig
	logger *log.Logger
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewHub creates an empty hub.
func NewHub(cfg HubConfig, logger *log.Logger) *Hub {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultHubConfig().TTL
	}
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = DefaultHubConfig().CleanupPeriod
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		config:   cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*session),
	}
}

func (h *Hub) placer() mines.Placer {
	if h.config.Placer != nil {
		return h.config.Placer()
	}
	return mines.NewRandomPlacer()
}

// Create starts a session sized by the preset.
func (h *Hub) Create(p config.Preset) (MoveResponse, error) {
	engine, err := p.NewEngine(mines.WithPlacer(h.placer()))
	if err != nil {
		return MoveResponse{}, err
	}

	s := &session{
		id:       uuid.New(),
		preset:   p,
		engine:   engine,
		lastUsed: h.now(),
	}
	resp := s.response(mines.Result{Changed: true})

	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()

	h.logger.Info("session created", "id", s.id, "preset", p.String())
	return resp, nil
}

// with runs fn on the session while holding its lock.
func (h *Hub) with(id uuid.UUID, fn func(s *session) (mines.Result, error)) (MoveResponse, error) {
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return MoveResponse{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = h.now()

	res, err := fn(s)
	if err != nil {
		return MoveResponse{}, err
	}
	if res.Has(mines.EventWon) || res.Has(mines.EventLost) {
		h.logger.Info("session finished", "id", s.id, "phase", s.engine.Phase(),
			"elapsed", s.engine.Elapsed(time.Time{}))
	}
	return s.response(res), nil
}

// Get returns the current state of a session.
func (h *Hub) Get(id uuid.UUID) (MoveResponse, error) {
	return h.with(id, func(*session) (mines.Result, error) {
		return mines.Result{}, nil
	})
}

// Reveal opens a cell.
func (h *Hub) Reveal(id uuid.UUID, row, col int) (MoveResponse, error) {
	return h.with(id, func(s *session) (mines.Result, error) {
		return s.engine.Reveal(row, col)
	})
}

// Flag toggles the flag on a cell.
func (h *Hub) Flag(id uuid.UUID, row, col int) (MoveResponse, error) {
	return h.with(id, func(s *session) (mines.Result, error) {
		return s.engine.ToggleFlag(row, col)
	})
}

// Restart begins a new game on the same board size.
func (h *Hub) Restart(id uuid.UUID) (MoveResponse, error) {
	return h.with(id, func(s *session) (mines.Result, error) {
		if err := s.engine.Restart(); err != nil {
			return mines.Result{}, err
		}
		return mines.Result{Changed: true}, nil
	})
}

// Delete ends a session.
func (h *Hub) Delete(id uuid.UUID) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(h.sessions, id)
	h.logger.Info("session deleted", "id", id)
	return nil
}

// Len returns the number of live sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Evict removes sessions unused since before now minus the TTL and returns
// how many were removed.
func (h *Hub) Evict(now time.Time) int {
	cutoff := now.Add(-h.config.TTL)

	h.mu.Lock()
	defer h.mu.Unlock()

	n := 0
	for id, s := range h.sessions {
		s.mu.Lock()
		expired := s.lastUsed.Before(cutoff)
		s.mu.Unlock()
		if expired {
			delete(h.sessions, id)
			n++
		}
	}
	if n > 0 {
		h.logger.Debug("evicted idle sessions", "count", n, "remaining", len(h.sessions))
	}
	return n
}

// RunJanitor evicts idle sessions every CleanupPeriod until ctx is done.
func (h *Hub) RunJanitor(ctx context.Context) error {
	ticker := time.NewTicker(h.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			h.Evict(t)
		}
	}
}

// response must be called with s.mu held.
func (s *session) response(res mines.Result) MoveResponse {
	return MoveResponse{
		ID:       s.id,
		Preset:   s.preset,
		Changed:  res.Changed,
		Revealed: res.Revealed,
		Events:   res.Events,
		Board:    s.engine.Snapshot(),
	}
}
