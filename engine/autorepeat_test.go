package engine

import (
	"testing"

	"github.com/lixenwraith/finality-race/parameter"
)

func TestAutoRepeatCycle(t *testing.T) {
	a := NewAutoRepeat(parameter.RepeatCooldown, parameter.RepeatSettle)

	if a.Enable(true) {
		t.Error("enabling while running must not request a start")
	}
	if !a.RaceEnded(at(700), true) {
		t.Fatal("cooldown not armed after complete race")
	}
	if a.Phase() != RepeatCooldown {
		t.Fatalf("phase = %v, want cooldown", a.Phase())
	}

	if act := a.Poll(at(2699)); act != RepeatNone {
		t.Errorf("poll before cooldown = %v", act)
	}
	if act := a.Poll(at(2700)); act != RepeatReset {
		t.Fatalf("poll at cooldown = %v, want reset", act)
	}
	if a.Phase() != RepeatSettle {
		t.Fatalf("phase = %v, want settle", a.Phase())
	}
	if act := a.Poll(at(2799)); act != RepeatNone {
		t.Errorf("poll before settle = %v", act)
	}
	if act := a.Poll(at(2800)); act != RepeatStart {
		t.Fatalf("poll at settle = %v, want start", act)
	}
	if a.Phase() != RepeatIdle {
		t.Errorf("phase = %v, want idle", a.Phase())
	}
}

func TestAutoRepeatEnableWhenIdleStarts(t *testing.T) {
	a := NewAutoRepeat(parameter.RepeatCooldown, parameter.RepeatSettle)
	if !a.Enable(false) {
		t.Error("enabling while idle should request a start")
	}
	if a.Enable(false) {
		t.Error("enabling twice should not request another start")
	}
}

func TestAutoRepeatIgnoresIncompleteOrDisabled(t *testing.T) {
	a := NewAutoRepeat(parameter.RepeatCooldown, parameter.RepeatSettle)
	if a.RaceEnded(at(700), true) {
		t.Error("disabled controller armed cooldown")
	}

	a.Enable(true)
	if a.RaceEnded(at(700), false) {
		t.Error("cooldown armed for a race with unfinished lanes")
	}
}

func TestAutoRepeatDisableCancels(t *testing.T) {
	for _, cancelAt := range []int{1500, 2750} {
		a := NewAutoRepeat(parameter.RepeatCooldown, parameter.RepeatSettle)
		a.Enable(true)
		a.RaceEnded(at(700), true)
		if cancelAt > 2700 {
			a.Poll(at(2700)) // into settle
		}

		a.Disable()

		for ms := cancelAt; ms <= 6000; ms += 100 {
			if act := a.Poll(at(ms)); act != RepeatNone {
				t.Fatalf("disabled at %dms, poll at %dms returned %v", cancelAt, ms, act)
			}
		}
		if _, armed := a.Deadline(); armed {
			t.Errorf("deadline still armed after disable at %dms", cancelAt)
		}
	}
}

func TestRepeatPhaseString(t *testing.T) {
	tests := []struct {
		phase RepeatPhase
		want  string
	}{
		{RepeatIdle, "idle"},
		{RepeatCooldown, "cooldown"},
		{RepeatSettle, "settle"},
		{RepeatPhase(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("RepeatPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
