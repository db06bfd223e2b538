// Package object defines the contracts between simulation objects and the host world.
package object

import (
	"time"

	"github.com/tomz197/shooter/internal/input"
	"github.com/tomz197/shooter/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Kind tags a body for target selection and display.
type Kind string

const (
	KindPlayer     Kind = "player"
	KindAsteroid   Kind = "asteroid"
	KindEnemy      Kind = "enemy"
	KindProjectile Kind = "projectile"
	KindEffect     Kind = "effect"
)

// Spawner is the host's spawn/destroy facility.
type Spawner interface {
	// Spawn queues obj to join the world after the current update cycle.
	Spawn(obj Object)
	// Destroy queues obj for removal. Destroying twice is a no-op.
	Destroy(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Now     float64 // Simulation time in seconds
	Input   Input
	Bounds  physics.Rect
	Spawner Spawner
}

// Object is an updatable simulation entity.
type Object interface {
	// Update advances the object by ctx.Delta. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)
}

// Body is an object with a position and a collision radius.
type Body interface {
	Object
	Kind() Kind
	GetPosition() physics.Vec
	GetRadius() float64
}

// Collider is a body that reacts to contacts reported by the host.
type Collider interface {
	Body
	OnCollision(other Body)
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal on next update cycle.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Intangible is implemented by bodies that can temporarily leave collision
// detection, e.g. a hidden player waiting to respawn.
type Intangible interface {
	IsIntangible() bool
}

// Drawable is implemented by anything the host renderer can show.
type Drawable interface {
	GetPosition() physics.Vec
	// Glyph returns the character to draw and whether to draw it this frame.
	Glyph() (r rune, visible bool)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// IsLive reports whether a body is still part of the simulation.
func IsLive(b Body) bool {
	if d, ok := b.(Destructible); ok && d.IsDestroyed() {
		return false
	}
	if i, ok := b.(Intangible); ok && i.IsIntangible() {
		return false
	}
	return true
}

// ShouldRenderBlink returns true if an object with remaining protection/invincibility
// time should be rendered this frame (for blinking effect).
// Returns true always if remainingTime <= 0 (no protection).
func ShouldRenderBlink(remainingTime float64, frequency float64) bool {
	if remainingTime <= 0 {
		return true
	}
	phase := int(remainingTime * frequency)
	return phase%2 != 0
}
