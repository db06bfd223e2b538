package arena

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/event"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/projectile"
	"github.com/tomz197/shooter/internal/respawn"
	"github.com/tomz197/shooter/internal/weapon"
)

// playerStartX is the player's fixed column, measured from the left edge.
const playerStartX = 8.0

// Game is one playable session: a world, the player and the population
// director, plus the score and game-over state gathered from world events.
type Game struct {
	World    *World
	Player   *entity.Player
	Director *entity.Director

	score    int
	over     bool
	notice   string
	noticeAt float64
	subs     []event.Subscription
}

// GameOption customises NewGame.
type GameOption func(*gameOptions)

type gameOptions struct {
	logger *log.Logger
	seed   int64
}

// WithLogger sets the logger used by the world and its entities.
func WithLogger(l *log.Logger) GameOption {
	return func(o *gameOptions) { o.logger = l }
}

// WithSeed fixes the random source used for spawn positions.
func WithSeed(seed int64) GameOption {
	return func(o *gameOptions) { o.seed = seed }
}

// NewGame builds a world from t and places the player and director in it.
func NewGame(t config.Tuning, opts ...GameOption) (*Game, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	o := gameOptions{logger: log.Default(), seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}

	w, err := NewWorld(physics.Rect{Width: t.Arena.Width, Height: t.Arena.Height}, o.logger)
	if err != nil {
		return nil, err
	}

	launchers, err := playerLaunchers(t.Weapons)
	if err != nil {
		return nil, err
	}
	f := &entity.Factory{
		Host:   w,
		Events: w.Events(),
		Logger: o.logger,
		Rand:   rand.New(rand.NewSource(o.seed)),
		Asteroid: entity.AsteroidConfig{
			HealthPerSize: t.Asteroids.HealthPerSize,
			DamagePerSize: t.Asteroids.DamagePerSize,
		},
		Enemy: entity.EnemyConfig{
			MaxHealth:     t.Enemies.MaxHealth,
			ContactDamage: t.Enemies.ContactDamage,
			Speed:         t.Enemies.Speed,
			Wobble:        t.Enemies.Wobble,
			FireInterval:  t.Enemies.FireInterval,
			Bullet:        bulletConfig(t.Enemies.Bullet, '-'),
			Score:         t.Enemies.Score,
		},
		Player: entity.PlayerConfig{
			MaxHealth:     t.Player.MaxHealth,
			ContactDamage: t.Player.ContactDamage,
			Speed:         t.Player.Speed,
			Lives:         t.Player.Lives,
			FireInterval:  t.Weapons.FireInterval,
			Respawn: respawn.Config{
				DeadDelay:            t.Respawn.DeadDelay,
				InvulnerableDuration: t.Respawn.InvulnerableDuration,
			},
			Launchers: launchers,
		},
	}

	player, err := f.NewPlayer(physics.V(playerStartX, t.Arena.Height/2))
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	director := entity.NewDirector(f, t.Asteroids.Target, t.Enemies.Target, t.Enemies.SpawnInterval)

	g := &Game{World: w, Player: player, Director: director}
	w.Add(director)
	w.Add(player)
	g.subscribe()
	return g, nil
}

func playerLaunchers(t config.WeaponTuning) ([]weapon.Launcher, error) {
	bullet := bulletConfig(t.Bullet, '-')
	direct, err := weapon.NewDirect(bullet)
	if err != nil {
		return nil, fmt.Errorf("bullet launcher: %w", err)
	}
	spread, err := weapon.NewSpread(bullet, t.SpreadCount, t.SpreadArc)
	if err != nil {
		return nil, fmt.Errorf("spread launcher: %w", err)
	}
	missile := projectile.Config{
		Damage:       t.Missile.Damage,
		Speed:        t.Missile.Speed,
		Radius:       t.Missile.Radius,
		Lifetime:     t.Missile.Lifetime,
		Symbol:       '=',
		LaunchEffect: object.EffectMuzzle,
		DeathEffect:  object.EffectExplosion,
	}
	homing, err := weapon.NewHoming(missile, weapon.Nearest(object.KindAsteroid, object.KindEnemy), t.SelfDestructDelay)
	if err != nil {
		return nil, fmt.Errorf("missile launcher: %w", err)
	}
	return []weapon.Launcher{direct, spread, homing}, nil
}

func bulletConfig(t config.ProjectileTuning, symbol rune) projectile.Config {
	return projectile.Config{
		Damage:       t.Damage,
		Speed:        t.Speed,
		Radius:       t.Radius,
		Lifetime:     t.Lifetime,
		Symbol:       symbol,
		LaunchEffect: object.EffectMuzzle,
		DeathEffect:  object.EffectHit,
	}
}

func (g *Game) subscribe() {
	ev := g.World.Events()
	g.subs = append(g.subs,
		ev.Subscribe(event.EntityDestroyed, event.ListenerFunc(func(e event.Event) {
			if d, ok := e.Data.(entity.Destroyed); ok {
				g.score += d.Score
			}
		})),
		ev.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) {
			g.over = true
		})),
		ev.Subscribe(event.LaunchSkipped, event.ListenerFunc(func(event.Event) {
			g.setNotice("no target")
		})),
		ev.Subscribe(event.PlayerDied, event.ListenerFunc(func(event.Event) {
			g.setNotice("ship lost")
		})),
	)
}

// noticeDuration is how long a HUD notice stays up, in seconds.
const noticeDuration = 1.5

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeAt = g.World.Now()
}

// Tick advances the session by dt with the sampled input.
func (g *Game) Tick(dt time.Duration, in object.Input) error {
	return g.World.Tick(dt, in)
}

// Score returns the points earned so far.
func (g *Game) Score() int { return g.score }

// Over reports whether the player has run out of lives.
func (g *Game) Over() bool { return g.over }

// Notice returns the current short HUD message, or "" once it has expired.
func (g *Game) Notice() string {
	if g.notice == "" || g.World.Now()-g.noticeAt > noticeDuration {
		return ""
	}
	return g.notice
}

// Close detaches the game's event listeners.
func (g *Game) Close() {
	for _, s := range g.subs {
		g.World.Events().Unsubscribe(s)
	}
	g.subs = nil
}
