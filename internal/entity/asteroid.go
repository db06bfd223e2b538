package entity

import (
	"math"

	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Size properties for each asteroid size.
var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  1.0,
	AsteroidMedium: 1.5,
	AsteroidLarge:  2.5,
}

var asteroidSpeeds = map[AsteroidSize]float64{
	AsteroidSmall:  12.0,
	AsteroidMedium: 8.0,
	AsteroidLarge:  5.0,
}

var asteroidSymbols = map[AsteroidSize]rune{
	AsteroidSmall:  'o',
	AsteroidMedium: 'O',
	AsteroidLarge:  '@',
}

// Scoring
const (
	ScoreLargeAsteroid  = 20
	ScoreMediumAsteroid = 50
	ScoreSmallAsteroid  = 100
)

func asteroidScore(size AsteroidSize) int {
	switch size {
	case AsteroidLarge:
		return ScoreLargeAsteroid
	case AsteroidMedium:
		return ScoreMediumAsteroid
	case AsteroidSmall:
		return ScoreSmallAsteroid
	default:
		return 0
	}
}

// AsteroidConfig scales asteroid stats by size.
type AsteroidConfig struct {
	HealthPerSize int // Max health = HealthPerSize * size
	DamagePerSize int // Contact damage = DamagePerSize * size
}

// Asteroid is a destructible space rock. It breaks into two smaller rocks
// when destroyed, unless it is already the smallest size.
type Asteroid struct {
	Entity
	Size     AsteroidSize
	Rotation float64 // Radians/sec, drives the glyph flicker
	angle    float64
}

// NewAsteroid creates an asteroid at pos moving along heading.
func (f *Factory) NewAsteroid(pos physics.Vec, size AsteroidSize, heading float64) (*Asteroid, error) {
	cfg := f.Asteroid
	spec := Spec{
		Kind:          object.KindAsteroid,
		MaxHealth:     cfg.HealthPerSize * int(size),
		ContactDamage: cfg.DamagePerSize * int(size),
		Radius:        asteroidRadii[size],
		Symbol:        asteroidSymbols[size],
	}

	a := &Asteroid{Size: size, Rotation: (f.rand().Float64() - 0.5) * 2.0}
	policy := DestroyPolicy{
		Effect: object.EffectBreakApart,
		Score:  asteroidScore(size),
	}
	if size > AsteroidSmall {
		policy.Fragments = f.asteroidFragments(size - 1)
	}

	e, err := newEntity(spec, pos, policy, f.Host, f.Events)
	if err != nil {
		return nil, err
	}
	a.Entity = e
	a.Vel = physics.FromAngle(heading, asteroidSpeeds[size])
	return a, nil
}

// asteroidFragments spawns two rocks of the given size flying apart, both still heading left.
func (f *Factory) asteroidFragments(size AsteroidSize) func(at physics.Vec) []object.Object {
	return func(at physics.Vec) []object.Object {
		var out []object.Object
		for _, spread := range []float64{-0.6, 0.6} {
			heading := math.Pi + spread + (f.rand().Float64()-0.5)*0.3
			child, err := f.NewAsteroid(at, size, heading)
			if err != nil {
				f.logger().Warn("asteroid fragment", "size", size, "err", err)
				continue
			}
			out = append(out, child)
		}
		return out
	}
}

// populationWeight counts a rock as the number of small rocks it will split into.
func (a *Asteroid) populationWeight() int {
	switch a.Size {
	case AsteroidLarge:
		return 4
	case AsteroidMedium:
		return 2
	default:
		return 1
	}
}

// Update drifts the asteroid, bouncing off the top and bottom of the arena.
func (a *Asteroid) Update(ctx object.UpdateContext) (bool, error) {
	if a.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	a.angle += a.Rotation * dt
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	if a.Pos.Y < a.Radius && a.Vel.Y < 0 || a.Pos.Y > ctx.Bounds.Height-a.Radius && a.Vel.Y > 0 {
		a.Vel.Y = -a.Vel.Y
	}

	// Gone past the left edge: leave without effects.
	if a.Pos.X < -a.Radius*2 {
		a.destroyed = true
		return true, nil
	}
	return false, nil
}

// Glyph alternates between the size symbol and '*' as the rock tumbles.
func (a *Asteroid) Glyph() (rune, bool) {
	if a.destroyed {
		return a.Symbol, false
	}
	if a.Size > AsteroidSmall && int(math.Abs(a.angle)*2)%4 == 3 {
		return '*', true
	}
	return a.Symbol, true
}
