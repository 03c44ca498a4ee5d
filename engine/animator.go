package engine

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/finality-race/chain"
	"github.com/lixenwraith/finality-race/core"
	"github.com/lixenwraith/finality-race/parameter"
	"github.com/lixenwraith/finality-race/status"
)

// AnimatorConfig wires an Animator; zero durations take parameter defaults
type AnimatorConfig struct {
	Roster        *chain.Roster
	TimeProvider  TimeProvider
	FrameInterval time.Duration
	Grace         time.Duration
	Cooldown      time.Duration
	Settle        time.Duration
	Registry      *status.Registry
	Logger        *zap.Logger
	Listeners     []Listener
}

func (c *AnimatorConfig) applyDefaults() {
	if c.TimeProvider == nil {
		c.TimeProvider = NewMonotonicTimeProvider()
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = parameter.FrameUpdateInterval
	}
	if c.Grace <= 0 {
		c.Grace = parameter.RaceGracePeriod
	}
	if c.Cooldown <= 0 {
		c.Cooldown = parameter.RepeatCooldown
	}
	if c.Settle <= 0 {
		c.Settle = parameter.RepeatSettle
	}
	if c.Registry == nil {
		c.Registry = status.NewRegistry()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}

// Animator is the race driver: a single goroutine owns the Race and the auto-repeat controller,
// runs lane continuations once per frame, fires deadlines, and publishes snapshots
// Step and Handle may be called directly when the loop is not running, which is how tests drive it
type Animator struct {
	cfg    AnimatorConfig
	log    *zap.Logger
	race   *Race
	repeat *AutoRepeat

	// Lane continuations awaiting the next frame
	pending   []Continuation
	frames    uint64
	nextFrame time.Time

	snapshot atomic.Pointer[Snapshot]
	commands chan Command
	updated  chan struct{}

	// Control
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Cached metric pointers
	statFrames   *atomic.Int64
	statRuns     *atomic.Int64
	statFinished *atomic.Int64
	statStale    *atomic.Int64
	statGen      *atomic.Int64
	statRunning  *atomic.Bool
	statRepeat   *atomic.Bool
	statLeader   *status.AtomicFloat
	statRunID    *status.AtomicString
}

// NewAnimator creates an idle animator; call Start to run its loop
func NewAnimator(cfg AnimatorConfig) *Animator {
	cfg.applyDefaults()
	reg := cfg.Registry

	a := &Animator{
		cfg:          cfg,
		log:          cfg.Logger.Named("animator"),
		race:         NewRace(cfg.Roster, cfg.Grace),
		repeat:       NewAutoRepeat(cfg.Cooldown, cfg.Settle),
		commands:     make(chan Command, parameter.CommandQueueSize),
		updated:      make(chan struct{}, 1),
		stopChan:     make(chan struct{}),
		statFrames:   reg.Counters.Get("engine.frames"),
		statRuns:     reg.Counters.Get("race.runs"),
		statFinished: reg.Counters.Get("race.lanes_finished"),
		statStale:    reg.Counters.Get("race.stale_discarded"),
		statGen:      reg.Ints.Get("race.generation"),
		statRunning:  reg.Bools.Get("race.running"),
		statRepeat:   reg.Bools.Get("race.auto_repeat"),
		statLeader:   reg.Floats.Get("race.leader_progress"),
		statRunID:    reg.Strings.Get("race.run_id"),
	}
	a.publish(cfg.TimeProvider.Now())
	return a
}

// Start launches the animator loop
func (a *Animator) Start() {
	if a.running.CompareAndSwap(false, true) {
		a.wg.Add(1)
		core.Go(a.loop)
	}
}

// Stop halts the loop and cancels every pending deadline and continuation
func (a *Animator) Stop() {
	a.stopOnce.Do(func() {
		if a.running.CompareAndSwap(true, false) {
			close(a.stopChan)
			a.wg.Wait()
		}
		a.teardown()
	})
}

// Submit queues a command for the loop; returns false if the queue is full
func (a *Animator) Submit(cmd Command) bool {
	select {
	case a.commands <- cmd:
		return true
	default:
		a.log.Warn("command dropped, queue full", zap.Stringer("command", cmd))
		return false
	}
}

// Snapshot returns the latest published state
func (a *Animator) Snapshot() *Snapshot {
	return a.snapshot.Load()
}

// Updated signals (coalesced) that a new snapshot was published
func (a *Animator) Updated() <-chan struct{} {
	return a.updated
}

// Roster returns the lanes being raced
func (a *Animator) Roster() *chain.Roster {
	return a.cfg.Roster
}

func (a *Animator) loop() {
	defer a.wg.Done()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		now := a.cfg.TimeProvider.Now()
		a.Step(now)

		var wake <-chan time.Time
		if wait, ok := a.nextWake(now); ok {
			timer.Reset(wait)
			wake = timer.C
		} else {
			timer.Stop()
		}

		select {
		case <-a.stopChan:
			return
		case cmd := <-a.commands:
			a.Handle(cmd, a.cfg.TimeProvider.Now())
		case <-wake:
		}
	}
}

// Step runs everything due at now: one animation frame, the end-of-race signal, auto-repeat
func (a *Animator) Step(now time.Time) {
	if len(a.pending) > 0 && !now.Before(a.nextFrame) {
		a.frame(now)
	}

	if a.race.Expire(now) {
		a.onRaceEnded(now)
	}

	switch a.repeat.Poll(now) {
	case RepeatReset:
		a.log.Debug("auto-repeat reset", zap.Uint64("generation", a.race.Generation()))
		a.reset()
	case RepeatStart:
		a.start(now)
	}

	a.publish(now)
}

// Handle applies a user command; returns false when the control is disabled
func (a *Animator) Handle(cmd Command, now time.Time) bool {
	accepted := true
	switch cmd {
	case CmdStart:
		if a.race.Running() || a.repeat.Enabled() {
			accepted = false
			break
		}
		a.start(now)

	case CmdReset:
		if a.race.Running() || a.repeat.Enabled() {
			accepted = false
			break
		}
		a.reset()

	case CmdToggleAutoRepeat:
		if a.repeat.Enabled() {
			a.repeat.Disable()
			a.log.Info("auto-repeat disabled")
		} else if a.repeat.Enable(a.race.Running()) {
			a.log.Info("auto-repeat enabled, starting")
			a.start(now)
		} else {
			a.log.Info("auto-repeat enabled")
		}
		a.statRepeat.Store(a.repeat.Enabled())

	default:
		accepted = false
	}

	if !accepted {
		a.log.Debug("command ignored", zap.Stringer("command", cmd),
			zap.Bool("running", a.race.Running()), zap.Bool("auto_repeat", a.repeat.Enabled()))
	}
	a.publish(now)
	return accepted
}

func (a *Animator) start(now time.Time) {
	conts, ok := a.race.Start(now)
	if !ok {
		a.log.Debug("start ignored, race already running")
		return
	}

	// Superseded continuations stay queued and are discarded by generation on the next frame
	a.pending = append(a.pending, conts...)
	a.nextFrame = now

	a.statRuns.Add(1)
	a.statGen.Store(int64(a.race.Generation()))
	a.statRunning.Store(true)
	a.statLeader.Set(0)
	a.statRunID.Store(a.race.RunID())

	endsAt, _ := a.race.EndsAt()
	a.log.Info("race started",
		zap.String("run_id", a.race.RunID()),
		zap.Uint64("generation", a.race.Generation()),
		zap.Int("lanes", len(conts)),
		zap.Duration("ends_in", endsAt.Sub(now)),
	)
}

func (a *Animator) reset() {
	a.race.Reset()
	a.statGen.Store(int64(a.race.Generation()))
	a.statRunning.Store(false)
	a.statLeader.Set(0)
	a.log.Debug("race reset", zap.Uint64("generation", a.race.Generation()))
}

// frame runs each pending continuation once; unfinished ones reschedule themselves
func (a *Animator) frame(now time.Time) {
	a.frames++
	a.statFrames.Store(int64(a.frames))
	a.nextFrame = now.Add(a.cfg.FrameInterval)

	batch := a.pending
	a.pending = make([]Continuation, 0, len(batch))

	// Lanes carry no ordering guarantee between each other
	rand.Shuffle(len(batch), func(i, j int) { batch[i], batch[j] = batch[j], batch[i] })

	var finished []Continuation
	for _, c := range batch {
		switch a.race.Advance(c, now) {
		case TickPending:
			a.pending = append(a.pending, c)
			a.statLeader.Max(a.race.Progress(c.Lane))
		case TickFinished:
			a.statLeader.Set(parameter.ProgressMax)
			finished = append(finished, c)
		case TickStale:
			a.statStale.Add(1)
		}
	}

	// Lanes finishing in the same frame are ranked against each other before anyone is told
	for _, c := range finished {
		a.onLaneFinished(c, now)
	}
}

func (a *Animator) onLaneFinished(c Continuation, now time.Time) {
	ch, _ := a.race.Roster().Lookup(c.Lane)
	ev := LaneFinish{
		RunID:      a.race.RunID(),
		Generation: c.Generation,
		Chain:      ch,
		Rank:       Rank(a.race.Roster(), a.race.FinishedOrder(), c.Lane),
		Lanes:      a.race.Roster().Len(),
		Elapsed:    now.Sub(a.race.StartedAt()),
	}
	a.statFinished.Add(1)

	a.log.Debug("lane finished",
		zap.String("run_id", ev.RunID),
		zap.String("lane", c.Lane),
		zap.Int("rank", ev.Rank),
		zap.Duration("elapsed", ev.Elapsed),
	)
	for _, l := range a.cfg.Listeners {
		l.LaneFinished(ev)
	}
}

func (a *Animator) onRaceEnded(now time.Time) {
	a.statRunning.Store(false)

	complete := a.race.AllFinished()
	res := RaceResult{
		RunID:      a.race.RunID(),
		Generation: a.race.Generation(),
		Complete:   complete,
		Standings:  Standings(a.race.Roster(), a.race.FinishedOrder()),
	}

	fields := []zap.Field{
		zap.String("run_id", res.RunID),
		zap.Bool("complete", complete),
		zap.Strings("finish_order", a.race.FinishedOrder()),
	}
	if len(res.Standings) > 0 {
		fields = append(fields, zap.String("winner", res.Standings[0].Chain.Name))
	}
	a.log.Info("race ended", fields...)

	for _, l := range a.cfg.Listeners {
		l.RaceEnded(res)
	}

	if a.repeat.RaceEnded(now, complete) {
		at, _ := a.repeat.Deadline()
		a.log.Debug("auto-repeat cooldown armed", zap.Time("restart_at", at))
	}
}

// nextWake returns how long the loop may sleep before something is due
func (a *Animator) nextWake(now time.Time) (time.Duration, bool) {
	var next time.Time
	found := false

	consider := func(t time.Time, ok bool) {
		if ok && (!found || t.Before(next)) {
			next = t
			found = true
		}
	}

	consider(a.nextFrame, len(a.pending) > 0)
	consider(a.race.EndsAt())
	consider(a.repeat.Deadline())

	if !found {
		return 0, false
	}
	if wait := next.Sub(now); wait > 0 {
		return wait, true
	}
	return 0, true
}

func (a *Animator) teardown() {
	a.repeat.Disable()
	a.race.Reset()
	a.pending = nil
	a.statRunning.Store(false)
	a.statRepeat.Store(false)
	a.publish(a.cfg.TimeProvider.Now())
}

func (a *Animator) publish(now time.Time) {
	a.snapshot.Store(buildSnapshot(a.race, a.repeat, a.frames, now))
	select {
	case a.updated <- struct{}{}:
	default:
	}
}
