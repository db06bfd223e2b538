// Package projectile implements the in-flight lifecycle of anything a launcher fires.
package projectile

import (
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// State is the lifecycle stage of a projectile.
type State int

const (
	InFlight State = iota
	Hit
	SelfDestructed
	Destroyed
)

func (s State) String() string {
	switch s {
	case InFlight:
		return "in-flight"
	case Hit:
		return "hit"
	case SelfDestructed:
		return "self-destructed"
	case Destroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config describes one projectile variant.
type Config struct {
	Damage       int
	Speed        float64
	Radius       float64
	Lifetime     float64 // Seconds before quiet expiry, 0 = until it leaves the arena
	Symbol       rune
	LaunchEffect object.Effect
	DeathEffect  object.Effect
}

// Validate rejects negative damage, speed or radius.
func (c Config) Validate() error {
	if c.Damage < 0 {
		return fmt.Errorf("projectile damage %d: %w", c.Damage, combat.ErrInvalidArgument)
	}
	if c.Speed < 0 || c.Radius < 0 || c.Lifetime < 0 {
		return fmt.Errorf("projectile speed/radius/lifetime must not be negative: %w", combat.ErrInvalidArgument)
	}
	return nil
}

// offscreenMargin is how far outside the arena a projectile may travel before removal.
const offscreenMargin = 5.0

// Projectile travels each tick and damages the first damageable body it touches.
type Projectile struct {
	Pos physics.Vec
	Vel physics.Vec

	cfg       Config
	ownerKind object.Kind // Bodies of this kind are never hit
	target    object.Body // Steering target, nil for straight shots
	spawner   object.Spawner
	state     State
	age       float64
}

// New creates a projectile at pos heading along angle. It does not enter the
// world until Fire is called.
func New(cfg Config, pos physics.Vec, angle float64, ownerKind object.Kind, spawner object.Spawner) *Projectile {
	return &Projectile{
		Pos:       pos,
		Vel:       physics.FromAngle(angle, cfg.Speed),
		cfg:       cfg,
		ownerKind: ownerKind,
		spawner:   spawner,
	}
}

// Fire hands the projectile to the spawner and plays the launch effect.
func (p *Projectile) Fire() {
	p.spawner.Spawn(p)
	object.SpawnEffect(p.spawner, p.cfg.LaunchEffect, p.Pos)
}

// Track makes the projectile steer toward target while the target is live.
func (p *Projectile) Track(target object.Body) {
	p.target = target
	p.aim()
}

// State returns the current lifecycle stage.
func (p *Projectile) State() State { return p.state }

// Damage returns the damage dealt on hit.
func (p *Projectile) Damage() int { return p.cfg.Damage }

// OnCollision damages other if it is damageable and not on the owner's side.
// Only the first qualifying contact counts; later calls are no-ops.
func (p *Projectile) OnCollision(other object.Body) {
	if p.state != InFlight {
		return
	}
	target, ok := other.(combat.Damageable)
	if !ok || (p.ownerKind != "" && other.Kind() == p.ownerKind) {
		return
	}

	p.state = Hit
	object.SpawnEffect(p.spawner, p.cfg.DeathEffect, p.Pos)
	// The result is irrelevant here: an invulnerable target still absorbs the shot.
	_, _ = target.ApplyDamage(p.cfg.Damage)
	p.destroy()
}

// SelfDestruct ends the flight without damaging anything.
func (p *Projectile) SelfDestruct() {
	if p.state != InFlight {
		return
	}
	p.state = SelfDestructed
	object.SpawnEffect(p.spawner, p.cfg.DeathEffect, p.Pos)
	p.destroy()
}

func (p *Projectile) destroy() {
	p.state = Destroyed
	p.spawner.Destroy(p)
}

// aim points the velocity at the target, if it is still live.
func (p *Projectile) aim() {
	if p.target == nil {
		return
	}
	if !object.IsLive(p.target) {
		p.target = nil
		return
	}
	dir := p.target.GetPosition().Sub(p.Pos).Normalize()
	if dir == (physics.Vec{}) {
		return
	}
	p.Vel = dir.Scale(p.cfg.Speed)
}

// Update moves the projectile and checks lifetime and arena bounds.
func (p *Projectile) Update(ctx object.UpdateContext) (bool, error) {
	if p.state != InFlight {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	p.age += dt
	if p.cfg.Lifetime > 0 && p.age >= p.cfg.Lifetime {
		p.state = Destroyed
		return true, nil
	}

	p.aim()
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if !ctx.Bounds.Contains(p.Pos, offscreenMargin) {
		p.state = Destroyed
		return true, nil
	}
	return false, nil
}

// MarkDestroyed removes the projectile without effects.
func (p *Projectile) MarkDestroyed() {
	if p.state == InFlight {
		p.state = Destroyed
	}
}

// IsDestroyed returns true once the projectile has left flight.
func (p *Projectile) IsDestroyed() bool {
	return p.state != InFlight
}

func (p *Projectile) Kind() object.Kind        { return object.KindProjectile }
func (p *Projectile) GetPosition() physics.Vec { return p.Pos }
func (p *Projectile) GetRadius() float64       { return p.cfg.Radius }

// Glyph returns the configured symbol while in flight.
func (p *Projectile) Glyph() (rune, bool) {
	return p.cfg.Symbol, p.state == InFlight
}
