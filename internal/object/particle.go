package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/shooter/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Effect names a particle burst preset. Effects are the "prefab handles" the
// combat code passes to the spawn facility.
type Effect string

const (
	EffectNone       Effect = ""
	EffectHit        Effect = "hit"       // Projectile impact
	EffectMuzzle     Effect = "muzzle"    // Projectile launch
	EffectExplosion  Effect = "explosion" // Ship destroyed
	EffectBreakApart Effect = "break"     // Asteroid destroyed
	EffectRespawn    Effect = "respawn"   // Player reappears
)

type effectPreset struct {
	count    int
	speed    float64
	lifetime float64
	symbols  []rune
}

var effectPresets = map[Effect]effectPreset{
	EffectHit:        {count: 4, speed: 12, lifetime: 0.3, symbols: []rune{'*', '+', '.'}},
	EffectMuzzle:     {count: 2, speed: 6, lifetime: 0.15, symbols: []rune{'\'', '`'}},
	EffectExplosion:  {count: 20, speed: 25, lifetime: 1.0, symbols: []rune{'#', '@', '*', '%', 'X', 'O', '+'}},
	EffectBreakApart: {count: 8, speed: 18, lifetime: 0.5, symbols: []rune{'#', '%', '.', ':'}},
	EffectRespawn:    {count: 12, speed: 10, lifetime: 0.6, symbols: []rune{'o', '.', '+'}},
}

// Particle is a short-lived visual effect.
type Particle struct {
	Pos         physics.Vec
	Vel         physics.Vec
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Symbol      rune
}

// NewParticle creates a single particle from the pool.
func NewParticle(pos, vel physics.Vec, lifetime float64, symbol rune) *Particle {
	p := particlePool.Get().(*Particle)
	p.Pos = pos
	p.Vel = vel
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Symbol = symbol
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the world.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnEffect creates the particle burst registered for effect at pos.
// Unknown effects and a nil spawner are ignored.
func SpawnEffect(spawner Spawner, effect Effect, pos physics.Vec) {
	preset, ok := effectPresets[effect]
	if !ok || spawner == nil {
		return
	}

	for i := 0; i < preset.count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := preset.speed * (0.5 + rand.Float64())
		life := preset.lifetime * (0.5 + rand.Float64()*0.5)
		symbol := preset.symbols[rand.Intn(len(preset.symbols))]

		spawner.Spawn(NewParticle(pos, physics.FromAngle(angle, spd), life, symbol))
	}
}

// Update moves the particle and checks lifetime.
func (p *Particle) Update(ctx UpdateContext) (bool, error) {
	dt := ctx.Delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true, nil
	}

	dragFactor := math.Pow(p.Drag, dt*60) // Normalize drag to ~60fps
	p.Vel = p.Vel.Scale(dragFactor)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	return false, nil
}

// GetPosition returns the particle position.
func (p *Particle) GetPosition() physics.Vec {
	return p.Pos
}

// Glyph hides particles in the last quarter of their life.
func (p *Particle) Glyph() (rune, bool) {
	if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return p.Symbol, false
	}
	return p.Symbol, true
}
