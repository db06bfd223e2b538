package loop

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/arena"
	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/object"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func quietGame(t *testing.T, tune func(*config.Tuning)) *arena.Game {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.Asteroids.Target = 0
	tuning.Enemies.Target = 0
	if tune != nil {
		tune(&tuning)
	}
	g, err := arena.NewGame(tuning, arena.WithLogger(log.New(io.Discard)), arena.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(g.Close)
	return g
}

func TestStatusLine(t *testing.T) {
	g := quietGame(t, nil)
	got := statusLine(g)
	for _, want := range []string{"SCORE 0", "LIVES 3", "HP 100/100", "WEAPON bullet"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q should contain %q", got, want)
		}
	}

	if _, err := g.Player.ApplyDamage(1000); err != nil {
		t.Fatal(err)
	}
	got = statusLine(g)
	for _, want := range []string{"LIVES 2", "HP 0/100", "RESPAWNING", "SHIP LOST"} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q should contain %q", got, want)
		}
	}
}

func TestStatusLineUnlimitedLivesAndGameOver(t *testing.T) {
	g := quietGame(t, func(tu *config.Tuning) { tu.Player.Lives = 0 })
	if got := statusLine(g); strings.Contains(got, "LIVES") {
		t.Errorf("unlimited lives should not be shown: %q", got)
	}

	over := quietGame(t, func(tu *config.Tuning) { tu.Player.Lives = 1 })
	if _, err := over.Player.ApplyDamage(1000); err != nil {
		t.Fatal(err)
	}
	if err := over.Tick(time.Millisecond, object.Input{}); err != nil {
		t.Fatal(err)
	}
	if got := statusLine(over); !strings.HasPrefix(got, "GAME OVER") {
		t.Errorf("expected game over status, got %q", got)
	}
}

func TestRunQuitsWhenInputCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	opts := Options{
		Logger:       log.New(io.Discard),
		TermSizeFunc: fixedSize(80, 24),
		Seed:         3,
	}
	if err := Run(ctx, bufio.NewReader(strings.NewReader("")), &out, opts); err != nil {
		t.Fatal(err)
	}
	if ctx.Err() != nil {
		t.Fatal("run should return on closed input, not on timeout")
	}
	if !strings.HasPrefix(out.String(), "\033[?25l") || !strings.Contains(out.String(), "\033[?25h") {
		t.Error("cursor should be hidden and restored")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, bufio.NewReader(pr), io.Discard, Options{
			Logger:       log.New(io.Discard),
			TermSizeFunc: fixedSize(80, 24),
			Seed:         3,
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRunDrawsFrames(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), bufio.NewReader(pr), &out, Options{
			Logger:       log.New(io.Discard),
			TermSizeFunc: fixedSize(80, 24),
			Seed:         3,
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if _, err := pw.Write([]byte("q")); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not stop on q")
	}
	if !strings.Contains(out.String(), "SCORE 0") {
		t.Error("expected at least one HUD line")
	}
}
