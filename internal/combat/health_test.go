package combat

import (
	"errors"
	"testing"
)

func TestNewHealthRejectsNonPositive(t *testing.T) {
	for _, max := range []int{0, -10} {
		if _, err := NewHealth(max); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewHealth(%d): expected ErrInvalidArgument, got %v", max, err)
		}
	}
}

func TestApplyDamageDecreasesHealth(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		amount   int
		wantHP   int
		wantDied bool
	}{
		{"zero damage", 100, 0, 100, false},
		{"partial", 100, 40, 60, false},
		{"exact kill", 100, 100, 0, true},
		{"overkill", 100, 150, -50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHealth(tt.max)
			if err != nil {
				t.Fatal(err)
			}
			res, err := h.ApplyDamage(tt.amount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.Applied {
				t.Error("expected damage to be applied")
			}
			if h.Current() != tt.wantHP {
				t.Errorf("expected HP %d, got %d", tt.wantHP, h.Current())
			}
			if res.Died != tt.wantDied || h.IsDead() != tt.wantDied {
				t.Errorf("expected died=%v, got result=%v IsDead=%v", tt.wantDied, res.Died, h.IsDead())
			}
		})
	}
}

func TestApplyDamageNegativeRejected(t *testing.T) {
	h, _ := NewHealth(10)
	res, err := h.ApplyDamage(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if res.Applied || h.Current() != 10 {
		t.Errorf("negative damage must not change health, got %d", h.Current())
	}
}

func TestApplyDamageWhileInvulnerable(t *testing.T) {
	h, _ := NewHealth(10)
	h.SetInvulnerable(true)
	for _, amount := range []int{0, 1, 10, 1000} {
		res, err := h.ApplyDamage(amount)
		if err != nil {
			t.Fatal(err)
		}
		if res.Applied || res.Died {
			t.Errorf("amount %d: expected no-op result, got %+v", amount, res)
		}
	}
	if h.Current() != 10 {
		t.Errorf("expected HP 10, got %d", h.Current())
	}
}

func TestRepeatedContactDamageKillsOnTwentiethHit(t *testing.T) {
	h, _ := NewHealth(100)
	for i := 1; i <= 20; i++ {
		res, err := h.ApplyDamage(5)
		if err != nil {
			t.Fatal(err)
		}
		if i < 20 && res.Died {
			t.Fatalf("died early on hit %d", i)
		}
		if i == 20 && !res.Died {
			t.Fatal("expected death on hit 20")
		}
	}
	if h.Current() != 0 {
		t.Errorf("expected HP 0, got %d", h.Current())
	}
}

func TestReset(t *testing.T) {
	h, _ := NewHealth(30)
	_, _ = h.ApplyDamage(50)
	h.Reset()
	if h.Current() != 30 || h.IsDead() {
		t.Errorf("expected full health after reset, got %d", h.Current())
	}
}
