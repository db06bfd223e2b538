package weapon

import (
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/projectile"
)

// DefaultSelfDestructDelay is how long a homing projectile flies before it blows up on its own.
const DefaultSelfDestructDelay = 5.0

// TargetSelector picks a target for a homing launch from the live bodies.
type TargetSelector func(origin physics.Vec, candidates []object.Body) (object.Body, bool)

// Nearest selects the live body of one of the given kinds closest to origin.
// Equal distances resolve to the body that comes first in world order.
func Nearest(kinds ...object.Kind) TargetSelector {
	return func(origin physics.Vec, candidates []object.Body) (object.Body, bool) {
		var best object.Body
		bestDist := 0.0
		for _, c := range candidates {
			if !matchesKind(c.Kind(), kinds) || !object.IsLive(c) {
				continue
			}
			d := physics.DistanceSquared(origin, c.GetPosition())
			if best == nil || d < bestDist {
				best, bestDist = c, d
			}
		}
		return best, best != nil
	}
}

func matchesKind(k object.Kind, kinds []object.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// HomingLauncher fires a projectile that steers toward a selected target and
// self-destructs after a fixed delay whether or not it hit.
type HomingLauncher struct {
	Projectile        projectile.Config
	Select            TargetSelector
	SelfDestructDelay float64
}

// NewHoming creates a homing launcher. A nil selector or a non-positive delay is rejected.
func NewHoming(cfg projectile.Config, sel TargetSelector, delay float64) (*HomingLauncher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sel == nil || delay <= 0 {
		return nil, fmt.Errorf("homing launcher needs a selector and a positive delay: %w", combat.ErrInvalidArgument)
	}
	return &HomingLauncher{Projectile: cfg, Select: sel, SelfDestructDelay: delay}, nil
}

// Launch implements Launcher. Without a target nothing is spawned and
// combat.ErrNoTargetAvailable is returned.
func (l *HomingLauncher) Launch(ctx Context) error {
	target, ok := l.Select(ctx.Origin, ctx.Host.Bodies())
	if !ok {
		return fmt.Errorf("homing launch: %w", combat.ErrNoTargetAvailable)
	}

	p := projectile.New(l.Projectile, ctx.Origin, ctx.Angle, ctx.Owner, ctx.Host)
	p.Track(target)
	p.Fire()
	// A projectile that already hit ignores this.
	ctx.Host.After(l.SelfDestructDelay, p.SelfDestruct)
	return nil
}

func (l *HomingLauncher) String() string { return "missile" }
