// Package entity contains the combat entities: asteroids, enemy ships and the player.
package entity

import (
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/event"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// DeathPolicy decides what happens when an entity's health runs out.
type DeathPolicy interface {
	OnDeath(e *Entity)
}

// Destroyed is the payload of event.EntityDestroyed.
type Destroyed struct {
	Kind  object.Kind
	Pos   physics.Vec
	Score int
}

// Entity is the shared combat core: one Health, a contact damage value and a
// death policy. Concrete entities embed it and add movement.
type Entity struct {
	Pos    physics.Vec
	Vel    physics.Vec
	Radius float64
	Symbol rune

	kind          object.Kind
	health        *combat.Health
	contactDamage int
	death         DeathPolicy
	spawner       object.Spawner
	events        *event.Dispatcher
	destroyed     bool
}

// Spec carries the values every entity is built from.
type Spec struct {
	Kind          object.Kind
	MaxHealth     int
	ContactDamage int
	Radius        float64
	Symbol        rune
}

func newEntity(spec Spec, pos physics.Vec, death DeathPolicy, spawner object.Spawner, events *event.Dispatcher) (Entity, error) {
	if spec.ContactDamage < 0 {
		return Entity{}, fmt.Errorf("%s contact damage %d: %w", spec.Kind, spec.ContactDamage, combat.ErrInvalidArgument)
	}
	health, err := combat.NewHealth(spec.MaxHealth)
	if err != nil {
		return Entity{}, fmt.Errorf("%s: %w", spec.Kind, err)
	}
	return Entity{
		Pos:           pos,
		Radius:        spec.Radius,
		Symbol:        spec.Symbol,
		kind:          spec.Kind,
		health:        health,
		contactDamage: spec.ContactDamage,
		death:         death,
		spawner:       spawner,
		events:        events,
	}, nil
}

// ApplyDamage implements combat.Damageable. The death policy runs once, on
// the hit that takes health to zero.
func (e *Entity) ApplyDamage(amount int) (combat.DamageResult, error) {
	if e.destroyed {
		return combat.DamageResult{}, nil
	}
	wasDead := e.health.IsDead()
	res, err := e.health.ApplyDamage(amount)
	if err != nil {
		return res, err
	}
	if res.Died && !wasDead && e.death != nil {
		e.death.OnDeath(e)
	}
	return res, nil
}

// OnCollision takes contact damage from anything that deals it. Bodies of the
// same kind pass through each other.
func (e *Entity) OnCollision(other object.Body) {
	if e.destroyed || other.Kind() == e.kind {
		return
	}
	if src, ok := other.(combat.ContactDamager); ok {
		_, _ = e.ApplyDamage(src.DamageAmount())
	}
}

// DamageAmount implements combat.ContactDamager.
func (e *Entity) DamageAmount() int { return e.contactDamage }

// Health exposes the entity's hit points.
func (e *Entity) Health() *combat.Health { return e.health }

// MarkDestroyed marks the entity for removal.
func (e *Entity) MarkDestroyed() { e.destroyed = true }

// IsDestroyed returns true if the entity is marked for removal.
func (e *Entity) IsDestroyed() bool { return e.destroyed }

func (e *Entity) Kind() object.Kind        { return e.kind }
func (e *Entity) GetPosition() physics.Vec { return e.Pos }
func (e *Entity) GetRadius() float64       { return e.Radius }

// Glyph implements object.Drawable.
func (e *Entity) Glyph() (rune, bool) { return e.Symbol, !e.destroyed }

func (e *Entity) publish(t event.Type, data any) {
	if e.events != nil {
		e.events.Dispatch(event.Event{Type: t, Data: data})
	}
}

// DestroyPolicy removes the entity with an effect, optional fragments and a
// score-carrying EntityDestroyed event.
type DestroyPolicy struct {
	Effect    object.Effect
	Score     int
	Fragments func(at physics.Vec) []object.Object
}

// OnDeath implements DeathPolicy.
func (p DestroyPolicy) OnDeath(e *Entity) {
	if e.destroyed {
		return
	}
	e.destroyed = true
	object.SpawnEffect(e.spawner, p.Effect, e.Pos)
	if p.Fragments != nil && e.spawner != nil {
		for _, f := range p.Fragments(e.Pos) {
			e.spawner.Spawn(f)
		}
	}
	e.publish(event.EntityDestroyed, Destroyed{Kind: e.kind, Pos: e.Pos, Score: p.Score})
}
