package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionRunning SessionStatus = "running"
	SessionEnded   SessionStatus = "ended"
)

var (
	ErrSessionEnded   = errors.New("session has ended")
	ErrUnknownCommand = errors.New("invalid menu choice")
)

type SessionConfig struct {
	PlayerName string
	PlayerAge  int
	Seed       int64
	Catalog    *Catalog
	// Rand overrides the seeded source, mainly for tests.
	Rand   Rand
	Logger *log.Logger
}

type Session struct {
	ID      uuid.UUID
	Seed    int64
	Player  PlayerState
	Catalog Catalog
	History History
	Status  SessionStatus

	rng    Rand
	logger *log.Logger
}

type CommandKind int

const (
	CommandActivity CommandKind = iota
	CommandHistory
	CommandEnd
)

// CommandResult is what one menu command produced. Outcome is only set for
// CommandActivity and Entries only for CommandHistory.
type CommandResult struct {
	Kind    CommandKind
	Outcome Outcome
	Entries []HistoryEntry
}

func NewSession(cfg SessionConfig) (*Session, error) {
	catalog := DefaultCatalog()
	if cfg.Catalog != nil {
		if err := cfg.Catalog.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		catalog = *cfg.Catalog
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = seededRNG(seed)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		ID:      uuid.New(),
		Seed:    seed,
		Player:  NewPlayer(cfg.PlayerName, cfg.PlayerAge),
		Catalog: catalog,
		Status:  SessionRunning,
		rng:     rng,
	}
	s.logger = logger.With("run", s.ID.String())
	s.logger.Info("session started", "seed", s.Seed, "player", s.Player.Name, "age", s.Player.Age)
	return s, nil
}

// HistoryChoice and EndChoice are the menu numbers after the activities.
func (s *Session) HistoryChoice() int {
	return s.Catalog.Len() + 1
}

func (s *Session) EndChoice() int {
	return s.Catalog.Len() + 2
}

func (s *Session) Running() bool {
	return s.Status == SessionRunning
}

// Execute runs the menu command with the given number.
func (s *Session) Execute(number int) (CommandResult, error) {
	if !s.Running() {
		return CommandResult{}, ErrSessionEnded
	}

	switch {
	case number >= 1 && number <= s.Catalog.Len():
		activity, _ := s.Catalog.At(number)
		return CommandResult{Kind: CommandActivity, Outcome: s.perform(activity)}, nil
	case number == s.HistoryChoice():
		return CommandResult{Kind: CommandHistory, Entries: s.History.Entries()}, nil
	case number == s.EndChoice():
		s.End()
		return CommandResult{Kind: CommandEnd}, nil
	default:
		return CommandResult{}, fmt.Errorf("%w: %d", ErrUnknownCommand, number)
	}
}

func (s *Session) perform(activity Activity) Outcome {
	day := s.Player.Day
	next, outcome := activity.Perform(s.Player, s.rng)
	s.Player = next
	s.History.Append(day, outcome.Message)
	s.Player.AdvanceDay()

	s.logger.Debug("activity performed",
		"activity", outcome.Kind,
		"day", day,
		"energy", outcome.Deltas.Energy,
		"motivation", outcome.Deltas.Motivation,
		"performance", outcome.Deltas.Performance,
	)
	return outcome
}

// End moves the session to its terminal state. Calling it again is a no-op.
func (s *Session) End() {
	if !s.Running() {
		return
	}
	s.Status = SessionEnded
	s.logger.Info("session ended", "summary", s.Player.StatusSummary(), "activities", s.History.Len())
}
