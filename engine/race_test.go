package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/finality-race/parameter"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float64
	}{
		{"zero elapsed", 0, 250 * time.Millisecond, 0},
		{"negative elapsed", -10 * time.Millisecond, 250 * time.Millisecond, 0},
		{"half", 100 * time.Millisecond, 200 * time.Millisecond, 50},
		{"exact", 250 * time.Millisecond, 250 * time.Millisecond, 100},
		{"overshoot clamps", 3 * time.Second, 250 * time.Millisecond, 100},
		{"zero duration", 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.duration); got != tt.want {
				t.Errorf("Progress(%v, %v) = %v, want %v", tt.elapsed, tt.duration, got, tt.want)
			}
		})
	}
}

func TestProgressMonotonic(t *testing.T) {
	d := 1500 * time.Millisecond
	prev := -1.0
	for ms := 0; ms <= 2000; ms += 7 {
		p := Progress(time.Duration(ms)*time.Millisecond, d)
		if p < prev {
			t.Fatalf("progress decreased at %dms: %v < %v", ms, p, prev)
		}
		if p < parameter.ProgressMin || p > parameter.ProgressMax {
			t.Fatalf("progress out of range at %dms: %v", ms, p)
		}
		prev = p
	}
}

func TestRaceStart(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)

	if r.Running() || r.Started() {
		t.Fatal("new race should be idle and empty")
	}

	conts, ok := r.Start(at(0))
	if !ok {
		t.Fatal("Start on idle race returned false")
	}
	if len(conts) != 2 {
		t.Fatalf("got %d continuations, want 2", len(conts))
	}
	for _, c := range conts {
		if c.Generation != r.Generation() {
			t.Errorf("continuation %s generation %d, want %d", c.Lane, c.Generation, r.Generation())
		}
	}
	if !r.Running() || !r.Started() {
		t.Error("race should be running with progress populated")
	}
	if r.RunID() == "" {
		t.Error("missing run id")
	}

	endsAt, armed := r.EndsAt()
	if !armed || !endsAt.Equal(at(700)) {
		t.Errorf("end deadline = %v (armed %v), want %v", endsAt, armed, at(700))
	}
}

func TestRaceDoubleStartIsNoop(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)

	first, _ := r.Start(at(0))
	gen, id := r.Generation(), r.RunID()

	conts, ok := r.Start(at(50))
	if ok || conts != nil {
		t.Fatal("Start while running must be a no-op")
	}
	if r.Generation() != gen || r.RunID() != id {
		t.Error("double start changed generation or run id")
	}

	// Original continuations still drive the lane at single speed
	r.Advance(first[0], at(50))
	if got := r.Progress("A"); got != 50 {
		t.Errorf("A progress = %v, want 50", got)
	}
}

func TestRaceAdvanceFinishesOnce(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)
	conts, _ := r.Start(at(0))
	a := conts[0]

	if res := r.Advance(a, at(0)); res != TickPending {
		t.Fatalf("tick at 0 = %v, want Pending", res)
	}
	if got := r.Progress("A"); got != 0 {
		t.Errorf("progress at 0 = %v", got)
	}

	if res := r.Advance(a, at(100)); res != TickFinished {
		t.Fatalf("tick at 100 = %v, want Finished", res)
	}
	if res := r.Advance(a, at(120)); res != TickStale {
		t.Errorf("tick after finish = %v, want Stale", res)
	}

	order := r.FinishedOrder()
	if len(order) != 1 || order[0] != "A" {
		t.Errorf("finished order = %v, want [A]", order)
	}
}

func TestRaceProgressNeverDecreases(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)
	conts, _ := r.Start(at(0))
	b := conts[1]

	r.Advance(b, at(150))
	r.Advance(b, at(40)) // clock stepped backwards

	if got := r.Progress("B"); got != 75 {
		t.Errorf("B progress = %v, want 75", got)
	}
}

func TestRaceExpire(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)
	r.Start(at(0))

	if r.Expire(at(699)) {
		t.Fatal("expired before grace deadline")
	}
	if !r.Expire(at(700)) {
		t.Fatal("did not expire at deadline")
	}
	if r.Running() {
		t.Error("running after expiry")
	}
	if r.Expire(at(800)) {
		t.Error("end signal fired twice")
	}
}

func TestRaceReset(t *testing.T) {
	r := NewRace(twoLaneRoster(t), parameter.RaceGracePeriod)
	conts, _ := r.Start(at(0))
	r.Advance(conts[0], at(100))

	r.Reset()
	assertCleared(t, r)

	// In-flight continuations cannot resurrect progress
	for _, c := range conts {
		if res := r.Advance(c, at(150)); res != TickStale {
			t.Errorf("stale continuation %s returned %v", c.Lane, res)
		}
	}
	assertCleared(t, r)

	if _, armed := r.EndsAt(); armed {
		t.Error("end deadline still armed after reset")
	}

	// Idempotent
	r.Reset()
	assertCleared(t, r)
}

func assertCleared(t *testing.T, r *Race) {
	t.Helper()
	if r.Running() {
		t.Error("running after reset")
	}
	if len(r.ProgressByName()) != 0 {
		t.Errorf("progress = %v, want empty", r.ProgressByName())
	}
	if len(r.FinishedOrder()) != 0 {
		t.Errorf("finished = %v, want empty", r.FinishedOrder())
	}
}

func TestTickResultString(t *testing.T) {
	tests := []struct {
		res  TickResult
		want string
	}{
		{TickPending, "Pending"},
		{TickFinished, "Finished"},
		{TickStale, "Stale"},
		{TickResult(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.res.String(); got != tt.want {
			t.Errorf("TickResult(%d).String() = %q, want %q", tt.res, got, tt.want)
		}
	}
}
