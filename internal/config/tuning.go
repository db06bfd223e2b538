package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every gameplay number. Values missing from a tuning file keep
// their defaults.
type Tuning struct {
	Arena     ArenaTuning    `yaml:"arena"`
	Player    PlayerTuning   `yaml:"player"`
	Weapons   WeaponTuning   `yaml:"weapons"`
	Respawn   RespawnTuning  `yaml:"respawn"`
	Asteroids AsteroidTuning `yaml:"asteroids"`
	Enemies   EnemyTuning    `yaml:"enemies"`
}

// ArenaTuning sets the logical play area.
type ArenaTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerTuning describes the player ship.
type PlayerTuning struct {
	MaxHealth     int     `yaml:"maxHealth"`
	ContactDamage int     `yaml:"contactDamage"`
	Speed         float64 `yaml:"speed"`
	Lives         int     `yaml:"lives"` // 0 = unlimited
}

// ProjectileTuning describes one projectile variant.
type ProjectileTuning struct {
	Damage   int     `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
}

// WeaponTuning configures the player's launchers.
type WeaponTuning struct {
	FireInterval      float64          `yaml:"fireInterval"`
	Bullet            ProjectileTuning `yaml:"bullet"`
	Missile           ProjectileTuning `yaml:"missile"`
	SelfDestructDelay float64          `yaml:"selfDestructDelay"`
	SpreadCount       int              `yaml:"spreadCount"`
	SpreadArc         float64          `yaml:"spreadArc"`
}

// RespawnTuning sets the respawn stage lengths in seconds.
type RespawnTuning struct {
	DeadDelay            float64 `yaml:"deadDelay"`
	InvulnerableDuration float64 `yaml:"invulnerableDuration"`
}

// AsteroidTuning scales asteroid stats per size step.
type AsteroidTuning struct {
	Target        int `yaml:"target"`
	HealthPerSize int `yaml:"healthPerSize"`
	DamagePerSize int `yaml:"damagePerSize"`
}

// EnemyTuning describes enemy ships and how often they appear.
type EnemyTuning struct {
	Target        int              `yaml:"target"`
	SpawnInterval float64          `yaml:"spawnInterval"`
	MaxHealth     int              `yaml:"maxHealth"`
	ContactDamage int              `yaml:"contactDamage"`
	Speed         float64          `yaml:"speed"`
	Wobble        float64          `yaml:"wobble"`
	FireInterval  float64          `yaml:"fireInterval"`
	Score         int              `yaml:"score"`
	Bullet        ProjectileTuning `yaml:"bullet"`
}

// DefaultTuning returns the built-in gameplay values.
func DefaultTuning() Tuning {
	return Tuning{
		Arena: ArenaTuning{Width: 120, Height: 40},
		Player: PlayerTuning{
			MaxHealth:     100,
			ContactDamage: 50,
			Speed:         25,
			Lives:         3,
		},
		Weapons: WeaponTuning{
			FireInterval:      0.2,
			Bullet:            ProjectileTuning{Damage: 10, Speed: 60, Radius: 0.5},
			Missile:           ProjectileTuning{Damage: 40, Speed: 30, Radius: 0.75},
			SelfDestructDelay: 5,
			SpreadCount:       3,
			SpreadArc:         0.5,
		},
		Respawn: RespawnTuning{DeadDelay: 0.25, InvulnerableDuration: 2.75},
		Asteroids: AsteroidTuning{
			Target:        12,
			HealthPerSize: 10,
			DamagePerSize: 5,
		},
		Enemies: EnemyTuning{
			Target:        2,
			SpawnInterval: 4,
			MaxHealth:     30,
			ContactDamage: 25,
			Speed:         6,
			Wobble:        4,
			FireInterval:  1.5,
			Score:         150,
			Bullet:        ProjectileTuning{Damage: 10, Speed: 30, Radius: 0.5},
		},
	}
}

// LoadTuning reads a YAML file over the defaults and validates the result.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning config: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning config: %w", err)
	}
	return t, nil
}

// Validate checks that every value is in range.
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Arena.Width > 0 && t.Arena.Height > 0, "arena size %.0fx%.0f must be positive", t.Arena.Width, t.Arena.Height)
	check(t.Player.MaxHealth > 0, "player maxHealth %d must be positive", t.Player.MaxHealth)
	check(t.Player.ContactDamage >= 0, "player contactDamage %d must not be negative", t.Player.ContactDamage)
	check(t.Player.Lives >= 0, "player lives %d must not be negative", t.Player.Lives)
	check(t.Weapons.FireInterval > 0, "weapons fireInterval %.2f must be positive", t.Weapons.FireInterval)
	check(t.Weapons.SelfDestructDelay > 0, "weapons selfDestructDelay %.2f must be positive", t.Weapons.SelfDestructDelay)
	check(t.Weapons.SpreadCount >= 1, "weapons spreadCount %d must be at least 1", t.Weapons.SpreadCount)
	check(t.Respawn.DeadDelay >= 0 && t.Respawn.InvulnerableDuration >= 0, "respawn delays must not be negative")
	check(t.Asteroids.Target >= 0, "asteroids target %d must not be negative", t.Asteroids.Target)
	check(t.Asteroids.HealthPerSize > 0, "asteroids healthPerSize %d must be positive", t.Asteroids.HealthPerSize)
	check(t.Asteroids.DamagePerSize >= 0, "asteroids damagePerSize %d must not be negative", t.Asteroids.DamagePerSize)
	check(t.Enemies.Target >= 0, "enemies target %d must not be negative", t.Enemies.Target)
	check(t.Enemies.MaxHealth > 0, "enemies maxHealth %d must be positive", t.Enemies.MaxHealth)
	check(t.Enemies.ContactDamage >= 0, "enemies contactDamage %d must not be negative", t.Enemies.ContactDamage)
	check(t.Enemies.FireInterval > 0, "enemies fireInterval %.2f must be positive", t.Enemies.FireInterval)

	for name, p := range map[string]ProjectileTuning{
		"weapons.bullet":  t.Weapons.Bullet,
		"weapons.missile": t.Weapons.Missile,
		"enemies.bullet":  t.Enemies.Bullet,
	} {
		check(p.Damage >= 0 && p.Speed >= 0 && p.Radius >= 0 && p.Lifetime >= 0, "%s values must not be negative", name)
	}

	return errors.Join(errs...)
}
