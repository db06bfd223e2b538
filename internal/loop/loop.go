// Package loop runs one game session in a terminal: input, tick, draw.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/arena"
	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/draw"
	"github.com/tomz197/shooter/internal/input"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/respawn"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// maxFrameDelta caps one tick so a stalled terminal does not teleport objects.
const maxFrameDelta = 100 * time.Millisecond

// restartDelay is how long the game-over screen ignores the fire key.
const restartDelay = time.Second

// Options configures a session.
type Options struct {
	Tuning       config.Tuning
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
	Seed         int64 // 0 picks a time-based seed
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Tuning == (config.Tuning{}) {
		o.Tuning = config.DefaultTuning()
	}
}

func (o Options) newGame() (*arena.Game, error) {
	opts := []arena.GameOption{arena.WithLogger(o.Logger)}
	if o.Seed != 0 {
		opts = append(opts, arena.WithSeed(o.Seed))
	}
	return arena.NewGame(o.Tuning, opts...)
}

// Run plays until the player quits, the input closes or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts.defaults()
	game, err := opts.newGame()
	if err != nil {
		return err
	}
	defer func() { game.Close() }()

	stream := input.StartStream(r)
	bounds := physics.Rect{Width: opts.Tuning.Arena.Width, Height: opts.Tuning.Arena.Height}
	grid := draw.NewGrid(bounds)
	cw := draw.NewChunkWriter(w, 0, 0)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	ticker := time.NewTicker(targetFrameTime)
	defer ticker.Stop()

	var overSince time.Time
	lastTime := time.Now()
	lastCol, lastRow := -1, -1

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frameStart := time.Now()
		dt := min(frameStart.Sub(lastTime), maxFrameDelta)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			return nil
		}

		// ===== UPDATE PHASE =====
		if game.Over() {
			if overSince.IsZero() {
				overSince = frameStart
				opts.Logger.Info("game over", "score", game.Score())
			}
			if in.FireRequested && frameStart.Sub(overSince) >= restartDelay {
				game.Close()
				if game, err = opts.newGame(); err != nil {
					return err
				}
				overSince = time.Time{}
				continue
			}
		}
		if err := game.Tick(dt, in); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if width, height, err := opts.TermSizeFunc(); err == nil {
			grid.Resize(width, height)
		}
		if col, row := grid.Offset(); col != lastCol || row != lastRow {
			// The arena moved on screen; wipe what was drawn around it.
			draw.ClearScreen(cw)
			lastCol, lastRow = col, row
		}
		grid.Clear()
		grid.DrawObjects(game.World.Objects())
		grid.Render(cw, statusLine(game))
		if err := cw.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

// statusLine is the HUD text shown under the arena.
func statusLine(g *arena.Game) string {
	if g.Over() {
		return fmt.Sprintf("GAME OVER  score %d  fire to restart, q to quit", g.Score())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SCORE %d", g.Score())
	if lives := g.Player.Lives(); lives > 0 {
		fmt.Fprintf(&b, "  LIVES %d", lives)
	}
	h := g.Player.Health()
	fmt.Fprintf(&b, "  HP %d/%d", max(h.Current(), 0), h.Max())
	fmt.Fprintf(&b, "  WEAPON %v", g.Player.Weapon().Launcher())

	switch g.Player.RespawnState() {
	case respawn.Dead:
		b.WriteString("  RESPAWNING")
	case respawn.Invulnerable:
		b.WriteString("  SHIELDED")
	}
	if n := g.Notice(); n != "" {
		b.WriteString("  ")
		b.WriteString(strings.ToUpper(n))
	}
	return b.String()
}
