package projectile

import (
	"math"
	"testing"
	"time"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

type fakeSpawner struct {
	spawned   []object.Object
	destroyed []object.Object
}

func (f *fakeSpawner) Spawn(obj object.Object)   { f.spawned = append(f.spawned, obj) }
func (f *fakeSpawner) Destroy(obj object.Object) { f.destroyed = append(f.destroyed, obj) }

func (f *fakeSpawner) particles() int {
	n := 0
	for _, o := range f.spawned {
		if _, ok := o.(*object.Particle); ok {
			n++
		}
	}
	return n
}

// target is a damageable body.
type target struct {
	kind    object.Kind
	pos     physics.Vec
	hits    []int
	removed bool
}

func (t *target) Update(object.UpdateContext) (bool, error) { return false, nil }
func (t *target) Kind() object.Kind                         { return t.kind }
func (t *target) GetPosition() physics.Vec                  { return t.pos }
func (t *target) GetRadius() float64                        { return 1 }
func (t *target) IsDestroyed() bool                         { return t.removed }
func (t *target) MarkDestroyed()                            { t.removed = true }
func (t *target) ApplyDamage(amount int) (combat.DamageResult, error) {
	t.hits = append(t.hits, amount)
	return combat.DamageResult{Applied: true}, nil
}

// scenery is a body without health.
type scenery struct{}

func (scenery) Update(object.UpdateContext) (bool, error) { return false, nil }
func (scenery) Kind() object.Kind                         { return "rock" }
func (scenery) GetPosition() physics.Vec                  { return physics.Vec{} }
func (scenery) GetRadius() float64                        { return 1 }

var bullet = Config{
	Damage:      7,
	Speed:       10,
	Radius:      0.5,
	Symbol:      '-',
	DeathEffect: object.EffectHit,
}

func TestHitAppliesDamageExactlyOnce(t *testing.T) {
	sp := &fakeSpawner{}
	p := New(bullet, physics.V(0, 0), 0, object.KindPlayer, sp)
	enemy := &target{kind: object.KindEnemy}

	// Several overlapping contacts delivered in the same tick.
	p.OnCollision(enemy)
	p.OnCollision(enemy)
	p.OnCollision(&target{kind: object.KindAsteroid})

	if len(enemy.hits) != 1 || enemy.hits[0] != 7 {
		t.Fatalf("expected exactly one hit of 7, got %v", enemy.hits)
	}
	if p.State() != Destroyed {
		t.Errorf("expected Destroyed, got %v", p.State())
	}
	if len(sp.destroyed) != 1 {
		t.Errorf("expected one removal request, got %d", len(sp.destroyed))
	}
	if sp.particles() == 0 {
		t.Error("expected death effect particles")
	}
}

func TestCollisionIgnoresSceneryAndOwnerSide(t *testing.T) {
	sp := &fakeSpawner{}
	p := New(bullet, physics.V(0, 0), 0, object.KindPlayer, sp)

	p.OnCollision(scenery{})
	p.OnCollision(&target{kind: object.KindPlayer})

	if p.State() != InFlight {
		t.Errorf("expected projectile to keep flying, got %v", p.State())
	}
	if len(sp.spawned) != 0 || len(sp.destroyed) != 0 {
		t.Error("ignored collisions must have no side effects")
	}
}

func TestSelfDestructDoesNotDamage(t *testing.T) {
	sp := &fakeSpawner{}
	p := New(bullet, physics.V(0, 0), 0, object.KindPlayer, sp)
	enemy := &target{kind: object.KindEnemy}

	p.SelfDestruct()
	p.OnCollision(enemy)
	p.SelfDestruct()

	if len(enemy.hits) != 0 {
		t.Errorf("self-destructed projectile dealt damage: %v", enemy.hits)
	}
	if len(sp.destroyed) != 1 {
		t.Errorf("expected one removal request, got %d", len(sp.destroyed))
	}
	if sp.particles() == 0 {
		t.Error("expected death effect particles on self-destruct")
	}
}

func TestUpdateMovesAndLeavesArena(t *testing.T) {
	sp := &fakeSpawner{}
	p := New(bullet, physics.V(95, 50), 0, object.KindPlayer, sp)
	ctx := object.UpdateContext{Delta: 100 * time.Millisecond, Bounds: physics.Rect{Width: 100, Height: 100}}

	remove, err := p.Update(ctx)
	if err != nil || remove {
		t.Fatalf("unexpected removal (err=%v)", err)
	}
	if math.Abs(p.Pos.X-96) > 1e-9 {
		t.Errorf("expected X 96, got %f", p.Pos.X)
	}

	ctx.Delta = time.Second
	remove, _ = p.Update(ctx)
	if !remove || !p.IsDestroyed() {
		t.Error("projectile should be removed after leaving the arena")
	}
}

func TestUpdateLifetimeExpiry(t *testing.T) {
	cfg := bullet
	cfg.Lifetime = 0.5
	p := New(cfg, physics.V(50, 50), 0, object.KindPlayer, &fakeSpawner{})
	ctx := object.UpdateContext{Delta: 600 * time.Millisecond, Bounds: physics.Rect{Width: 100, Height: 100}}
	if remove, _ := p.Update(ctx); !remove {
		t.Error("expected expiry after lifetime")
	}
}

func TestTrackSteersTowardTarget(t *testing.T) {
	p := New(bullet, physics.V(0, 0), 0, object.KindPlayer, &fakeSpawner{})
	goal := &target{kind: object.KindEnemy, pos: physics.V(0, 10)}
	p.Track(goal)
	if math.Abs(p.Vel.X) > 1e-9 || math.Abs(p.Vel.Y-bullet.Speed) > 1e-9 {
		t.Errorf("expected velocity (0,%f), got %+v", bullet.Speed, p.Vel)
	}

	// A destroyed target stops steering; the projectile keeps its heading.
	goal.removed = true
	goal.pos = physics.V(10, 0)
	ctx := object.UpdateContext{Delta: 10 * time.Millisecond, Bounds: physics.Rect{Width: 100, Height: 100}}
	_, _ = p.Update(ctx)
	if math.Abs(p.Vel.X) > 1e-9 {
		t.Errorf("projectile should not steer toward a destroyed target, got %+v", p.Vel)
	}
}

func TestFireSpawnsProjectileAndLaunchEffect(t *testing.T) {
	cfg := bullet
	cfg.LaunchEffect = object.EffectMuzzle
	sp := &fakeSpawner{}
	p := New(cfg, physics.V(0, 0), 0, object.KindPlayer, sp)
	p.Fire()
	if len(sp.spawned) == 0 || sp.spawned[0] != p {
		t.Fatal("expected projectile to be spawned first")
	}
	if sp.particles() == 0 {
		t.Error("expected launch effect particles")
	}
}

func TestConfigValidate(t *testing.T) {
	bad := bullet
	bad.Damage = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative damage")
	}
	if err := bullet.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
