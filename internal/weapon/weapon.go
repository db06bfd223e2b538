// Package weapon rate-limits fire requests and delegates them to a pluggable launcher.
package weapon

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// Mount supplies the position and orientation projectiles leave from.
type Mount interface {
	MountPoint() (pos physics.Vec, angle float64)
}

// FireResult reports the outcome of a fire request.
type FireResult struct {
	Fired bool  // The rate limiter accepted the request
	Err   error // Launcher error, if any; the request still counts as fired
}

// Weapon gates fire requests by a refresh interval. It never looks at what
// the attached launcher produces.
type Weapon struct {
	interval     float64
	nextFireTime float64
	launcher     Launcher
	mount        Mount
	owner        object.Kind
	host         Host
	logger       *log.Logger
}

// Option configures a Weapon.
type Option func(*Weapon)

// WithLogger sets the logger used for skipped or failed launches.
func WithLogger(l *log.Logger) Option {
	return func(w *Weapon) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a weapon that may fire once every interval seconds.
func New(interval float64, launcher Launcher, mount Mount, owner object.Kind, host Host, opts ...Option) (*Weapon, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("fire interval %.3f: %w", interval, combat.ErrInvalidArgument)
	}
	if launcher == nil || mount == nil || host == nil {
		return nil, fmt.Errorf("weapon needs a launcher, mount and host: %w", combat.ErrInvalidArgument)
	}
	w := &Weapon{
		interval: interval,
		launcher: launcher,
		mount:    mount,
		owner:    owner,
		host:     host,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// RequestFire fires if now has reached the next allowed fire time. Early
// requests return Fired=false and change nothing.
func (w *Weapon) RequestFire(now float64) FireResult {
	if now < w.nextFireTime {
		return FireResult{}
	}
	w.nextFireTime = now + w.interval

	origin, angle := w.mount.MountPoint()
	err := w.launcher.Launch(Context{
		Host:   w.host,
		Origin: origin,
		Angle:  angle,
		Owner:  w.owner,
	})
	switch {
	case err == nil:
	case errors.Is(err, combat.ErrNoTargetAvailable):
		w.logger.Debug("launch skipped", "owner", w.owner, "launcher", w.launcher, "err", err)
	default:
		w.logger.Warn("launch failed", "owner", w.owner, "launcher", w.launcher, "err", err)
	}
	return FireResult{Fired: true, Err: err}
}

// SetLauncher swaps the attached launcher. The rate limiter is unaffected.
func (w *Weapon) SetLauncher(l Launcher) {
	if l != nil {
		w.launcher = l
	}
}

// Launcher returns the attached launcher.
func (w *Weapon) Launcher() Launcher { return w.launcher }

// NextFireTime returns the earliest time the next request can fire.
func (w *Weapon) NextFireTime() float64 { return w.nextFireTime }

// Interval returns the refresh interval in seconds.
func (w *Weapon) Interval() float64 { return w.interval }
