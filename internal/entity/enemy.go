package entity

import (
	"math"

	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/projectile"
	"github.com/tomz197/shooter/internal/weapon"
)

// EnemyConfig describes the enemy ship.
type EnemyConfig struct {
	MaxHealth     int
	ContactDamage int
	Speed         float64 // Leftward drift
	Wobble        float64 // Vertical sway amplitude (units/sec)
	FireInterval  float64
	Bullet        projectile.Config
	Score         int
}

// Enemy drifts across the arena from the right and fires straight ahead.
type Enemy struct {
	Entity
	weapon *weapon.Weapon
	wobble float64
	phase  float64
	age    float64
}

// NewEnemy creates an enemy ship at pos with its own direct-fire weapon.
func (f *Factory) NewEnemy(pos physics.Vec) (*Enemy, error) {
	cfg := f.Enemy
	spec := Spec{
		Kind:          object.KindEnemy,
		MaxHealth:     cfg.MaxHealth,
		ContactDamage: cfg.ContactDamage,
		Radius:        1.5,
		Symbol:        '<',
	}
	policy := DestroyPolicy{Effect: object.EffectExplosion, Score: cfg.Score}
	e, err := newEntity(spec, pos, policy, f.Host, f.Events)
	if err != nil {
		return nil, err
	}

	en := &Enemy{
		Entity: e,
		wobble: cfg.Wobble,
		phase:  f.rand().Float64() * 2 * math.Pi,
	}
	en.Vel = physics.V(-cfg.Speed, 0)

	launcher, err := weapon.NewDirect(cfg.Bullet)
	if err != nil {
		return nil, err
	}
	en.weapon, err = weapon.New(cfg.FireInterval, launcher, en, object.KindEnemy, f.Host, weapon.WithLogger(f.logger()))
	if err != nil {
		return nil, err
	}
	return en, nil
}

// MountPoint implements weapon.Mount: the nose of the ship, facing left.
func (en *Enemy) MountPoint() (physics.Vec, float64) {
	return en.Pos.Sub(physics.V(en.Radius+0.5, 0)), math.Pi
}

// Weapon returns the enemy's weapon.
func (en *Enemy) Weapon() *weapon.Weapon { return en.weapon }

// Update sways the ship, moves it left and fires while it is inside the arena.
func (en *Enemy) Update(ctx object.UpdateContext) (bool, error) {
	if en.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()
	en.age += dt

	en.Vel.Y = math.Sin(en.age*2+en.phase) * en.wobble
	en.Pos = en.Pos.Add(en.Vel.Scale(dt))
	en.Pos.Y = ctx.Bounds.ClampY(en.Pos.Y, en.Radius)

	if en.Pos.X < -en.Radius*2 {
		en.destroyed = true
		return true, nil
	}
	if en.Pos.X < ctx.Bounds.Width {
		en.weapon.RequestFire(ctx.Now)
	}
	return false, nil
}
