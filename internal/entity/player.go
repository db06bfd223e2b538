package entity

import (
	"errors"
	"fmt"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/event"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/respawn"
	"github.com/tomz197/shooter/internal/weapon"
)

// PlayerBlinkFrequency is the blink rate (Hz) during post-respawn protection.
const PlayerBlinkFrequency = 10.0

// PlayerConfig describes the player ship.
type PlayerConfig struct {
	MaxHealth     int
	ContactDamage int
	Speed         float64 // Vertical speed at full axis deflection
	Lives         int     // 0 means unlimited
	FireInterval  float64
	Respawn       respawn.Config
	Launchers     []weapon.Launcher // First entry is equipped at spawn
}

// Player is the ship the input controls. It moves vertically, fires to the
// right and respawns at its starting point until it runs out of lives.
type Player struct {
	Entity
	Speed float64

	weapon     *weapon.Weapon
	loadout    *weapon.Loadout
	sequencer  *respawn.Sequencer // Created on first death
	respawnCfg respawn.Config
	initial    physics.Vec
	lives      int
	visible    bool
	inputOn    bool
	cue        bool
}

// NewPlayer creates the player at pos.
func (f *Factory) NewPlayer(pos physics.Vec) (*Player, error) {
	cfg := f.Player
	if cfg.Lives < 0 {
		return nil, fmt.Errorf("player lives %d: %w", cfg.Lives, combat.ErrInvalidArgument)
	}
	loadout := weapon.NewLoadout(cfg.Launchers...)
	if loadout.Current() == nil {
		return nil, fmt.Errorf("player needs at least one launcher: %w", combat.ErrInvalidArgument)
	}

	p := &Player{
		Speed:      cfg.Speed,
		loadout:    loadout,
		respawnCfg: cfg.Respawn,
		initial:    pos,
		lives:      cfg.Lives,
		visible:    true,
		inputOn:    true,
	}
	spec := Spec{
		Kind:          object.KindPlayer,
		MaxHealth:     cfg.MaxHealth,
		ContactDamage: cfg.ContactDamage,
		Radius:        1.0,
		Symbol:        '>',
	}
	e, err := newEntity(spec, pos, p, f.Host, f.Events)
	if err != nil {
		return nil, err
	}
	p.Entity = e

	p.weapon, err = weapon.New(cfg.FireInterval, loadout.Current(), p, object.KindPlayer, f.Host, weapon.WithLogger(f.logger()))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// OnDeath implements DeathPolicy: lose a life and respawn, or end the game.
func (p *Player) OnDeath(e *Entity) {
	object.SpawnEffect(p.spawner, object.EffectExplosion, p.Pos)

	if p.lives > 0 {
		p.lives--
		if p.lives == 0 {
			p.destroyed = true
			p.publish(event.GameOver, p.Pos)
			return
		}
	}

	if p.sequencer == nil {
		seq, err := respawn.New(p.respawnCfg, p.initial, p)
		if err != nil {
			// Config was validated upstream; fall back to the defaults.
			seq, _ = respawn.New(respawn.DefaultConfig(), p.initial, p)
		}
		seq.OnChange(p.onRespawnChange)
		p.sequencer = seq
	}
	p.sequencer.Kill()
}

func (p *Player) onRespawnChange(_, to respawn.State) {
	switch to {
	case respawn.Dead:
		p.publish(event.PlayerDied, p.lives)
	case respawn.Invulnerable:
		p.publish(event.PlayerRespawned, p.Pos)
	case respawn.Alive:
		p.publish(event.PlayerVulnerable, nil)
	}
}

// SetVisible implements respawn.Target.
func (p *Player) SetVisible(v bool) { p.visible = v }

// SetInputEnabled implements respawn.Target.
func (p *Player) SetInputEnabled(v bool) { p.inputOn = v }

// SetInvulnerable implements respawn.Target.
func (p *Player) SetInvulnerable(v bool) { p.health.SetInvulnerable(v) }

// SetCue implements respawn.Target.
func (p *Player) SetCue(on bool) { p.cue = on }

// Respawn implements respawn.Target.
func (p *Player) Respawn(pos physics.Vec) {
	p.Pos = pos
	p.Vel = physics.Vec{}
	p.health.Reset()
	object.SpawnEffect(p.spawner, object.EffectRespawn, pos)
}

// IsIntangible keeps the hidden ship out of collision detection.
func (p *Player) IsIntangible() bool { return !p.visible }

// MountPoint implements weapon.Mount: the nose of the ship, facing right.
func (p *Player) MountPoint() (physics.Vec, float64) {
	return p.Pos.Add(physics.V(p.Radius+0.5, 0)), 0
}

// Weapon returns the player's weapon.
func (p *Player) Weapon() *weapon.Weapon { return p.weapon }

// Lives returns the remaining lives, 0 when unlimited.
func (p *Player) Lives() int { return p.lives }

// RespawnState returns the respawn stage; Alive before the first death.
func (p *Player) RespawnState() respawn.State {
	if p.sequencer == nil {
		return respawn.Alive
	}
	return p.sequencer.State()
}

// Update runs the respawn timer, then applies movement, weapon switching and
// fire requests while input is enabled.
func (p *Player) Update(ctx object.UpdateContext) (bool, error) {
	if p.destroyed {
		return true, nil
	}
	dt := ctx.Delta.Seconds()

	if p.sequencer != nil {
		p.sequencer.Tick(dt)
	}
	if !p.inputOn {
		return false, nil
	}

	axis := ctx.Input.VerticalAxis
	if axis > 1 {
		axis = 1
	} else if axis < -1 {
		axis = -1
	}
	p.Pos.Y = ctx.Bounds.ClampY(p.Pos.Y+axis*p.Speed*dt, p.Radius)

	if ctx.Input.SwitchWeapon {
		p.weapon.SetLauncher(p.loadout.Next())
	}
	if ctx.Input.FireRequested {
		res := p.weapon.RequestFire(ctx.Now)
		if errors.Is(res.Err, combat.ErrNoTargetAvailable) {
			p.publish(event.LaunchSkipped, p.weapon.Launcher())
		}
	}
	return false, nil
}

// Glyph hides the ship while dead and blinks it while protected.
func (p *Player) Glyph() (rune, bool) {
	if !p.visible || p.destroyed {
		return p.Symbol, false
	}
	if p.cue && p.sequencer != nil {
		return p.Symbol, object.ShouldRenderBlink(p.sequencer.Remaining(), PlayerBlinkFrequency)
	}
	return p.Symbol, true
}
