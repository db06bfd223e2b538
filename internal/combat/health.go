// Package combat holds health state and the capabilities combat code dispatches on.
package combat

import "fmt"

// DamageResult reports what a damage application did.
type DamageResult struct {
	Applied bool // Damage was subtracted (false while invulnerable)
	Died    bool // Health is at or below zero after the hit
}

// Damageable is implemented by anything that can take damage.
type Damageable interface {
	ApplyDamage(amount int) (DamageResult, error)
}

// ContactDamager is implemented by bodies that hurt whatever they touch.
type ContactDamager interface {
	DamageAmount() int
}

// Health tracks hit points for a single owner. It knows nothing about that owner;
// callers inspect DamageResult.Died and react themselves.
type Health struct {
	current      int
	max          int
	invulnerable bool
}

// NewHealth creates a Health at full hit points.
func NewHealth(max int) (*Health, error) {
	if max <= 0 {
		return nil, fmt.Errorf("max health %d: %w", max, ErrInvalidArgument)
	}
	return &Health{current: max, max: max}, nil
}

// ApplyDamage subtracts amount from the current health. It is a no-op while
// invulnerable. Health may go below zero; any value <= 0 counts as dead.
func (h *Health) ApplyDamage(amount int) (DamageResult, error) {
	if amount < 0 {
		return DamageResult{}, fmt.Errorf("damage %d: %w", amount, ErrInvalidArgument)
	}
	if h.invulnerable {
		return DamageResult{}, nil
	}
	h.current -= amount
	return DamageResult{Applied: true, Died: h.current <= 0}, nil
}

// Current returns the current hit points.
func (h *Health) Current() int { return h.current }

// Max returns the maximum hit points.
func (h *Health) Max() int { return h.max }

// IsDead returns true once health has dropped to zero or below.
func (h *Health) IsDead() bool { return h.current <= 0 }

// Invulnerable reports whether damage is currently suppressed.
func (h *Health) Invulnerable() bool { return h.invulnerable }

// SetInvulnerable toggles damage suppression.
func (h *Health) SetInvulnerable(v bool) { h.invulnerable = v }

// Reset restores full health. Only the respawn sequence should call this.
func (h *Health) Reset() { h.current = h.max }
