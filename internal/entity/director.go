package entity

import (
	"math"

	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// Director keeps the asteroid and enemy populations at their targets by
// spawning new ones just past the right edge of the arena.
type Director struct {
	factory        *Factory
	asteroidTarget int
	enemyTarget    int
	enemyInterval  float64
	enemyCooldown  float64
}

// NewDirector creates a director. Negative targets are treated as zero.
func NewDirector(f *Factory, asteroidTarget, enemyTarget int, enemyInterval float64) *Director {
	if asteroidTarget < 0 {
		asteroidTarget = 0
	}
	if enemyTarget < 0 {
		enemyTarget = 0
	}
	return &Director{
		factory:        f,
		asteroidTarget: asteroidTarget,
		enemyTarget:    enemyTarget,
		enemyInterval:  enemyInterval,
	}
}

// Update tops up both populations.
func (d *Director) Update(ctx object.UpdateContext) (bool, error) {
	asteroids, enemies := d.census()

	// Weighted by size so a large rock counts for the rocks it will split into.
	for d.asteroidTarget-asteroids > 0 {
		var size AsteroidSize
		switch missing := d.asteroidTarget - asteroids; {
		case missing >= 4:
			size = AsteroidLarge
			asteroids += 4
		case missing >= 2:
			size = AsteroidMedium
			asteroids += 2
		default:
			size = AsteroidSmall
			asteroids++
		}
		d.spawnAsteroid(ctx.Bounds, size)
	}

	d.enemyCooldown -= ctx.Delta.Seconds()
	if enemies < d.enemyTarget && d.enemyCooldown <= 0 {
		d.enemyCooldown = d.enemyInterval
		d.spawnEnemy(ctx.Bounds)
	}
	return false, nil
}

func (d *Director) census() (asteroids, enemies int) {
	for _, b := range d.factory.Host.Bodies() {
		if !object.IsLive(b) {
			continue
		}
		switch b.Kind() {
		case object.KindAsteroid:
			if w, ok := b.(interface{ populationWeight() int }); ok {
				asteroids += w.populationWeight()
			}
		case object.KindEnemy:
			enemies++
		}
	}
	return asteroids, enemies
}

func (d *Director) edgePoint(bounds physics.Rect, margin float64) physics.Vec {
	y := margin + d.factory.rand().Float64()*(bounds.Height-2*margin)
	return physics.V(bounds.Width+margin, y)
}

func (d *Director) spawnAsteroid(bounds physics.Rect, size AsteroidSize) {
	// Aim roughly left with up to ±30° of variation.
	heading := math.Pi + (d.factory.rand().Float64()-0.5)*math.Pi/3
	a, err := d.factory.NewAsteroid(d.edgePoint(bounds, asteroidRadii[size]), size, heading)
	if err != nil {
		d.factory.logger().Warn("spawn asteroid", "size", size, "err", err)
		return
	}
	d.factory.Host.Spawn(a)
}

func (d *Director) spawnEnemy(bounds physics.Rect) {
	en, err := d.factory.NewEnemy(d.edgePoint(bounds, 2))
	if err != nil {
		d.factory.logger().Warn("spawn enemy", "err", err)
		return
	}
	d.factory.Host.Spawn(en)
}
