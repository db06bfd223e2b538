package weapon

import (
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/projectile"
)

// Host is what launchers need from the world they fire into.
type Host interface {
	object.Spawner
	// After runs fn once, delay seconds of simulation time from now.
	After(delay float64, fn func())
	// Bodies returns the live bodies in world order.
	Bodies() []object.Body
}

// Context is everything a launcher gets for a single launch.
type Context struct {
	Host   Host
	Origin physics.Vec
	Angle  float64
	Owner  object.Kind
}

// Launcher produces and launches one kind of projectile.
// New projectile kinds are new Launcher implementations.
type Launcher interface {
	Launch(ctx Context) error
}

// DirectLauncher fires a projectile straight along the mount orientation.
type DirectLauncher struct {
	Projectile projectile.Config
}

// NewDirect creates a direct launcher for the given projectile variant.
func NewDirect(cfg projectile.Config) (*DirectLauncher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &DirectLauncher{Projectile: cfg}, nil
}

// Launch implements Launcher.
func (l *DirectLauncher) Launch(ctx Context) error {
	projectile.New(l.Projectile, ctx.Origin, ctx.Angle, ctx.Owner, ctx.Host).Fire()
	return nil
}

func (l *DirectLauncher) String() string { return "bullet" }

// SpreadLauncher fires a fan of direct projectiles centred on the mount orientation.
type SpreadLauncher struct {
	Projectile projectile.Config
	Count      int
	Arc        float64 // Total fan width in radians
}

// NewSpread creates a spread launcher. Count must be at least 1.
func NewSpread(cfg projectile.Config, count int, arc float64) (*SpreadLauncher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if count < 1 || arc < 0 {
		return nil, fmt.Errorf("spread count %d arc %.2f: %w", count, arc, combat.ErrInvalidArgument)
	}
	return &SpreadLauncher{Projectile: cfg, Count: count, Arc: arc}, nil
}

// Launch implements Launcher.
func (l *SpreadLauncher) Launch(ctx Context) error {
	start, step := ctx.Angle, 0.0
	if l.Count > 1 {
		start = ctx.Angle - l.Arc/2
		step = l.Arc / float64(l.Count-1)
	}
	for i := 0; i < l.Count; i++ {
		angle := start + step*float64(i)
		projectile.New(l.Projectile, ctx.Origin, angle, ctx.Owner, ctx.Host).Fire()
	}
	return nil
}

func (l *SpreadLauncher) String() string { return "spread" }
