package respawn

import (
	"errors"
	"testing"

	"github.com/tomz197/shooter/internal/combat"
	"github.com/tomz197/shooter/internal/physics"
)

type fakeTarget struct {
	visible      bool
	inputEnabled bool
	invulnerable bool
	cue          bool
	pos          physics.Vec
	calls        []string
}

func (f *fakeTarget) SetVisible(v bool)      { f.visible = v; f.calls = append(f.calls, "visible") }
func (f *fakeTarget) SetInputEnabled(v bool) { f.inputEnabled = v; f.calls = append(f.calls, "input") }
func (f *fakeTarget) SetInvulnerable(v bool) { f.invulnerable = v; f.calls = append(f.calls, "invulnerable") }
func (f *fakeTarget) SetCue(v bool)          { f.cue = v; f.calls = append(f.calls, "cue") }
func (f *fakeTarget) Respawn(p physics.Vec)  { f.pos = p; f.calls = append(f.calls, "respawn") }

func newSequencer(t *testing.T) (*Sequencer, *fakeTarget) {
	t.Helper()
	target := &fakeTarget{visible: true, inputEnabled: true, pos: physics.V(50, 50)}
	s, err := New(DefaultConfig(), physics.V(10, 40), target)
	if err != nil {
		t.Fatal(err)
	}
	return s, target
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Config{DeadDelay: -1}, physics.Vec{}, &fakeTarget{}); !errors.Is(err, combat.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := New(DefaultConfig(), physics.Vec{}, nil); !errors.Is(err, combat.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil target, got %v", err)
	}
}

func TestRespawnTimeline(t *testing.T) {
	s, target := newSequencer(t)
	const dt = 0.125

	if !s.Kill() {
		t.Fatal("Kill should succeed from Alive")
	}
	if s.State() != Dead {
		t.Fatalf("expected Dead immediately, got %v", s.State())
	}
	if target.visible || target.inputEnabled || !target.invulnerable {
		t.Errorf("dead target should be hidden, disabled and invulnerable: %+v", target)
	}

	s.Tick(dt)
	if s.State() != Dead {
		t.Fatalf("expected Dead at 0.125s, got %v", s.State())
	}
	if target.pos != physics.V(50, 50) {
		t.Error("position must not reset before the Dead stage ends")
	}

	s.Tick(dt) // 0.25s
	if s.State() != Invulnerable {
		t.Fatalf("expected Invulnerable at 0.25s, got %v", s.State())
	}
	if target.pos != physics.V(10, 40) {
		t.Errorf("expected position reset to initial, got %+v", target.pos)
	}
	if !target.visible || !target.inputEnabled || !target.cue || !target.invulnerable {
		t.Errorf("respawned target should be visible, enabled, cued and still protected: %+v", target)
	}

	for i := 0; i < 21; i++ { // 2.875s
		s.Tick(dt)
	}
	if s.State() != Invulnerable {
		t.Fatalf("expected Invulnerable at 2.875s, got %v", s.State())
	}

	s.Tick(dt) // 3.0s
	if s.State() != Alive {
		t.Fatalf("expected Alive at 3.0s, got %v", s.State())
	}
	if target.cue || target.invulnerable {
		t.Errorf("alive target should have no cue and take damage: %+v", target)
	}
}

func TestKillWhileNotAliveIsIgnored(t *testing.T) {
	s, target := newSequencer(t)
	s.Kill()
	calls := len(target.calls)
	if s.Kill() {
		t.Error("second Kill should be rejected while Dead")
	}
	s.Tick(0.25)
	if s.Kill() {
		t.Error("Kill should be rejected while Invulnerable")
	}
	if s.State() != Invulnerable {
		t.Errorf("expected Invulnerable, got %v", s.State())
	}
	if len(target.calls) <= calls {
		t.Error("expected respawn calls after the dead delay")
	}
}

func TestLargeTickCarriesOver(t *testing.T) {
	s, _ := newSequencer(t)
	var seen []State
	s.OnChange(func(_, to State) { seen = append(seen, to) })

	s.Kill()
	s.Tick(5)
	if s.State() != Alive {
		t.Fatalf("expected Alive after a long tick, got %v", s.State())
	}
	want := []State{Dead, Invulnerable, Alive}
	if len(seen) != len(want) {
		t.Fatalf("expected transitions %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected transitions %v, got %v", want, seen)
		}
	}
}

func TestRemaining(t *testing.T) {
	s, _ := newSequencer(t)
	if s.Remaining() != 0 {
		t.Error("alive sequencer has nothing remaining")
	}
	s.Kill()
	s.Tick(0.125)
	if s.Remaining() != 0.125 {
		t.Errorf("expected 0.125 remaining, got %f", s.Remaining())
	}
}
