// Package respawn drives the dead → invulnerable → alive sequence after a death.
package respawn

import (
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/physics"
)

// State is a stage of the respawn sequence.
type State int

const (
	Alive State = iota
	Dead
	Invulnerable
)

func (s State) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Invulnerable:
		return "invulnerable"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Default stage lengths in seconds.
const (
	DefaultDeadDelay            = 0.25
	DefaultInvulnerableDuration = 2.75
)

// Config holds the stage lengths.
type Config struct {
	DeadDelay            float64 // Hidden time after death
	InvulnerableDuration float64 // Protected time after reappearing
}

// DefaultConfig returns the default stage lengths.
func DefaultConfig() Config {
	return Config{DeadDelay: DefaultDeadDelay, InvulnerableDuration: DefaultInvulnerableDuration}
}

// Target is the entity being respawned.
type Target interface {
	SetVisible(visible bool)
	SetInputEnabled(enabled bool)
	SetInvulnerable(invulnerable bool)
	SetCue(on bool)
	// Respawn moves the target to pos and restores its health.
	Respawn(pos physics.Vec)
}

// Sequencer is a tick-driven state machine. It never blocks; the owner
// calls Tick with the frame delta.
type Sequencer struct {
	cfg      Config
	state    State
	elapsed  float64
	initial  physics.Vec
	target   Target
	onChange func(from, to State)
}

// New creates a sequencer in the Alive state.
func New(cfg Config, initial physics.Vec, target Target) (*Sequencer, error) {
	if cfg.DeadDelay < 0 || cfg.InvulnerableDuration < 0 {
		return nil, fmt.Errorf("respawn delays must not be negative: %w", combat.ErrInvalidArgument)
	}
	if target == nil {
		return nil, fmt.Errorf("respawn target is nil: %w", combat.ErrInvalidArgument)
	}
	return &Sequencer{cfg: cfg, initial: initial, target: target}, nil
}

// OnChange registers fn to be called after every state transition.
// Passing nil removes the callback.
func (s *Sequencer) OnChange(fn func(from, to State)) {
	s.onChange = fn
}

// State returns the current stage.
func (s *Sequencer) State() State { return s.state }

// Remaining returns the seconds left in the current timed stage, 0 when Alive.
func (s *Sequencer) Remaining() float64 {
	switch s.state {
	case Dead:
		return s.cfg.DeadDelay - s.elapsed
	case Invulnerable:
		return s.cfg.InvulnerableDuration - s.elapsed
	default:
		return 0
	}
}

// Kill starts the sequence. It returns false if the target is not Alive.
func (s *Sequencer) Kill() bool {
	if s.state != Alive {
		return false
	}
	s.target.SetVisible(false)
	s.target.SetInputEnabled(false)
	s.target.SetInvulnerable(true)
	s.elapsed = 0
	s.transition(Dead)
	return true
}

// Tick advances the sequence by dt seconds. Time left over after a stage
// ends counts toward the next one, so a large dt may pass several stages.
func (s *Sequencer) Tick(dt float64) {
	if s.state == Alive || dt <= 0 {
		return
	}
	s.elapsed += dt

	if s.state == Dead && s.elapsed >= s.cfg.DeadDelay {
		s.elapsed -= s.cfg.DeadDelay
		s.target.Respawn(s.initial)
		s.target.SetVisible(true)
		s.target.SetInputEnabled(true)
		s.target.SetCue(true)
		s.transition(Invulnerable)
	}
	if s.state == Invulnerable && s.elapsed >= s.cfg.InvulnerableDuration {
		s.target.SetCue(false)
		s.target.SetInvulnerable(false)
		s.elapsed = 0
		s.transition(Alive)
	}
}

func (s *Sequencer) transition(to State) {
	from := s.state
	s.state = to
	if s.onChange != nil {
		s.onChange(from, to)
	}
}
