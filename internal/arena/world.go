// Package arena is the host world: it owns the objects, runs the tick, queues
// spawns and removals and reports collisions between bodies.
package arena

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/event"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/timer"
)

// gridCellSize must cover the largest sum of two body radii.
const gridCellSize = 6.0

// pair is an unordered contact between two bodies, stored in world order.
type pair struct {
	a, b object.Body
}

// World holds every live object of one arena. It is not safe for concurrent
// use; each session owns its own World.
type World struct {
	bounds    physics.Rect
	objects   []object.Object
	toSpawn   []object.Object
	removed   map[object.Object]struct{}
	scheduler *timer.Scheduler
	events    *event.Dispatcher
	grid      *physics.SpatialGrid
	contacts  map[pair]struct{}
	next      map[pair]struct{}
	bodies    []object.Body // Scratch slice for collision detection
	logger    *log.Logger
}

// NewWorld creates an empty world of the given logical size.
func NewWorld(bounds physics.Rect, logger *log.Logger) (*World, error) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return nil, fmt.Errorf("arena size %.0fx%.0f: %w", bounds.Width, bounds.Height, combat.ErrInvalidArgument)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &World{
		bounds:    bounds,
		removed:   make(map[object.Object]struct{}),
		scheduler: timer.NewScheduler(),
		events:    event.NewDispatcher(),
		grid:      physics.NewSpatialGrid(bounds, gridCellSize),
		contacts:  make(map[pair]struct{}),
		next:      make(map[pair]struct{}),
		logger:    logger,
	}, nil
}

// Bounds returns the logical arena size.
func (w *World) Bounds() physics.Rect { return w.bounds }

// Events returns the world's dispatcher.
func (w *World) Events() *event.Dispatcher { return w.events }

// Now returns the simulation time in seconds.
func (w *World) Now() float64 { return w.scheduler.Now() }

// Objects returns the objects currently in the world, in world order.
func (w *World) Objects() []object.Object { return w.objects }

// Add places obj in the world immediately. Use it for setup, outside a tick.
func (w *World) Add(obj object.Object) {
	w.objects = append(w.objects, obj)
}

// Spawn implements object.Spawner. The object joins at the end of the tick.
func (w *World) Spawn(obj object.Object) {
	if obj == nil {
		return
	}
	w.toSpawn = append(w.toSpawn, obj)
}

// Destroy implements object.Spawner. The object stops updating and colliding
// at once and leaves the world at the end of the tick.
func (w *World) Destroy(obj object.Object) {
	if obj == nil {
		return
	}
	if _, ok := w.removed[obj]; ok {
		return
	}
	w.removed[obj] = struct{}{}
	if d, ok := obj.(object.Destructible); ok {
		d.MarkDestroyed()
	}
}

// After implements weapon.Host by deferring fn to the world scheduler.
func (w *World) After(delay float64, fn func()) {
	w.scheduler.After(delay, fn)
}

// Bodies implements weapon.Host: every live body, in world order.
func (w *World) Bodies() []object.Body {
	var out []object.Body
	for _, obj := range w.objects {
		if w.gone(obj) {
			continue
		}
		if b, ok := obj.(object.Body); ok && object.IsLive(b) {
			out = append(out, b)
		}
	}
	return out
}

// Tick advances the world by dt: scheduled callbacks, object updates,
// collisions, then removals and spawns.
func (w *World) Tick(dt time.Duration, in object.Input) error {
	if dt < 0 {
		return fmt.Errorf("tick delta %v: %w", dt, combat.ErrInvalidArgument)
	}
	w.scheduler.Tick(dt.Seconds())

	ctx := object.UpdateContext{
		Delta:   dt,
		Now:     w.scheduler.Now(),
		Input:   in,
		Bounds:  w.bounds,
		Spawner: w,
	}
	for _, obj := range w.objects {
		if w.gone(obj) {
			continue
		}
		remove, err := obj.Update(ctx)
		if err != nil {
			w.logger.Warn("object update failed", "object", fmt.Sprintf("%T", obj), "err", err)
		}
		if remove {
			w.Destroy(obj)
		}
	}

	w.collide()
	w.compact()
	return nil
}

// gone reports whether obj has been removed or marked destroyed.
func (w *World) gone(obj object.Object) bool {
	if _, ok := w.removed[obj]; ok {
		return true
	}
	if d, ok := obj.(object.Destructible); ok && d.IsDestroyed() {
		return true
	}
	return false
}

// collide notifies both bodies of every pair that started overlapping this
// tick. Pairs that stay in contact are not notified again.
func (w *World) collide() {
	w.bodies = w.bodies[:0]
	w.grid.Clear()
	for _, obj := range w.objects {
		if w.gone(obj) {
			continue
		}
		b, ok := obj.(object.Body)
		if !ok || !object.IsLive(b) {
			continue
		}
		w.grid.Insert(b.GetPosition(), len(w.bodies))
		w.bodies = append(w.bodies, b)
	}

	for i, a := range w.bodies {
		w.grid.QueryAround(a.GetPosition(), func(j int) bool {
			if j <= i {
				return false
			}
			b := w.bodies[j]
			if !physics.CirclesOverlap(a.GetPosition(), a.GetRadius(), b.GetPosition(), b.GetRadius()) {
				return false
			}
			w.next[pair{a, b}] = struct{}{}
			return false
		})
	}

	// Deliver in world order so results do not depend on map iteration.
	for i, a := range w.bodies {
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			p := pair{a, b}
			if _, touching := w.next[p]; !touching {
				continue
			}
			if _, seen := w.contacts[p]; seen {
				continue
			}
			if !object.IsLive(a) || !object.IsLive(b) {
				continue
			}
			if c, ok := a.(object.Collider); ok {
				c.OnCollision(b)
			}
			if c, ok := b.(object.Collider); ok {
				c.OnCollision(a)
			}
		}
	}

	w.contacts, w.next = w.next, w.contacts
	clear(w.next)
}

// compact drops removed objects, releases pooled ones and admits spawns.
func (w *World) compact() {
	kept := w.objects[:0]
	for _, obj := range w.objects {
		if w.gone(obj) {
			object.ReleaseObject(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(w.objects[len(kept):])
	w.objects = kept

	for _, obj := range w.toSpawn {
		if w.gone(obj) {
			object.ReleaseObject(obj)
			continue
		}
		w.objects = append(w.objects, obj)
	}
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
	clear(w.removed)
}
