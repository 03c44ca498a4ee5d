package engine

import (
	"time"

	"github.com/segmentio/ksuid"

	"github.com/lixenwraith/finality-race/chain"
	"github.com/lixenwraith/finality-race/parameter"
)

// Continuation is one lane's pending animation step, bound to the race generation that created it
type Continuation struct {
	Generation uint64
	Lane       string
}

// TickResult is the outcome of advancing one continuation
type TickResult uint8

const (
	// TickPending means the lane is still moving and the continuation reschedules itself
	TickPending TickResult = iota
	// TickFinished means the lane reached 100 on this tick
	TickFinished
	// TickStale means the continuation belongs to a superseded generation and was discarded
	TickStale
)

// String returns a debug name
func (t TickResult) String() string {
	switch t {
	case TickPending:
		return "Pending"
	case TickFinished:
		return "Finished"
	case TickStale:
		return "Stale"
	default:
		return "Unknown"
	}
}

// Race is the mutable state of one run; it is not safe for concurrent use and is owned by the Animator loop
type Race struct {
	roster *chain.Roster
	grace  time.Duration

	generation uint64
	runID      string
	startedAt  time.Time
	running    bool

	progress    map[string]float64
	finished    []string
	finishedSet map[string]struct{}

	// End-of-race signal at maxFinality + grace
	end Deadline
}

// NewRace creates an empty race over roster
func NewRace(roster *chain.Roster, grace time.Duration) *Race {
	return &Race{
		roster:      roster,
		grace:       grace,
		progress:    make(map[string]float64, roster.Len()),
		finished:    make([]string, 0, roster.Len()),
		finishedSet: make(map[string]struct{}, roster.Len()),
	}
}

// Start begins a new run with every lane starting at now
// Returns the lane continuations to schedule, or false when a run is already in progress
func (r *Race) Start(now time.Time) ([]Continuation, bool) {
	if r.running {
		return nil, false
	}

	r.generation++
	r.runID = ksuid.New().String()
	r.startedAt = now
	r.running = true
	r.clear()

	conts := make([]Continuation, 0, r.roster.Len())
	for _, name := range r.roster.Names() {
		r.progress[name] = parameter.ProgressMin
		conts = append(conts, Continuation{Generation: r.generation, Lane: name})
	}

	r.end.Arm(now.Add(r.roster.MaxFinality() + r.grace))
	return conts, true
}

// Advance runs one animation tick for c
func (r *Race) Advance(c Continuation, now time.Time) TickResult {
	if c.Generation != r.generation {
		return TickStale
	}
	if _, done := r.finishedSet[c.Lane]; done {
		return TickStale
	}
	ch, ok := r.roster.Lookup(c.Lane)
	if !ok {
		return TickStale
	}

	// Progress never decreases within a run even if the clock steps backwards
	p := Progress(now.Sub(r.startedAt), ch.Duration())
	if p > r.progress[c.Lane] {
		r.progress[c.Lane] = p
	}

	if r.progress[c.Lane] < parameter.ProgressMax {
		return TickPending
	}

	r.finished = append(r.finished, c.Lane)
	r.finishedSet[c.Lane] = struct{}{}
	return TickFinished
}

// Expire fires the end-of-race signal once its deadline is due, clearing running
func (r *Race) Expire(now time.Time) bool {
	if !r.end.Fire(now) {
		return false
	}
	r.running = false
	return true
}

// Reset stops the run and clears all progress; in-flight continuations become stale
func (r *Race) Reset() {
	r.running = false
	r.end.Cancel()
	r.generation++
	r.clear()
}

func (r *Race) clear() {
	clear(r.progress)
	clear(r.finishedSet)
	r.finished = r.finished[:0]
}

// Roster returns the lanes this race runs over
func (r *Race) Roster() *chain.Roster {
	return r.roster
}

// Generation returns the current generation counter
func (r *Race) Generation() uint64 {
	return r.generation
}

// RunID returns the identifier of the latest started run
func (r *Race) RunID() string {
	return r.runID
}

// StartedAt returns the shared start instant of the latest run
func (r *Race) StartedAt() time.Time {
	return r.startedAt
}

// Running reports whether the run is between Start and its end signal
func (r *Race) Running() bool {
	return r.running
}

// Started reports whether progress holds any lane, i.e. a run was started and not reset
func (r *Race) Started() bool {
	return len(r.progress) > 0
}

// Progress returns a lane's progress in percent, 0 when absent
func (r *Race) Progress(name string) float64 {
	return r.progress[name]
}

// ProgressByName returns a copy of the progress map
func (r *Race) ProgressByName() map[string]float64 {
	out := make(map[string]float64, len(r.progress))
	for k, v := range r.progress {
		out[k] = v
	}
	return out
}

// IsFinished reports whether the lane reached 100 this run
func (r *Race) IsFinished(name string) bool {
	_, ok := r.finishedSet[name]
	return ok
}

// FinishedOrder returns lane names in completion order
func (r *Race) FinishedOrder() []string {
	out := make([]string, len(r.finished))
	copy(out, r.finished)
	return out
}

// AllFinished reports whether every lane reached 100
func (r *Race) AllFinished() bool {
	return len(r.finished) == r.roster.Len()
}

// EndsAt returns the pending end-of-race instant
func (r *Race) EndsAt() (time.Time, bool) {
	return r.end.At()
}
