package countdown

import (
	"fmt"
	"time"
)

// Step is the delay between two displayed ticks.
const Step = time.Second

// Engine counts a single interval down to zero, one step at a time.
// It is not safe for concurrent use: Start, Cancel and every scheduled
// step must run on the same event loop.
type Engine struct {
	scheduler  Scheduler
	state      *countdownState
	timer      Timer
	generation uint64
}

type countdownState struct {
	remaining int
	onTick    func(remaining int)
	onDone    func()
}

// New creates an idle engine.
func New(scheduler Scheduler) *Engine {
	return &Engine{scheduler: scheduler}
}

// Start begins counting down from seconds. onTick receives every value
// from seconds to zero; onDone runs one step after zero was shown.
// A countdown already in flight is cancelled first.
func (engine *Engine) Start(seconds int, onTick func(remaining int), onDone func()) {
	engine.Cancel()
	if seconds < 0 {
		seconds = 0
	}

	engine.state = &countdownState{
		remaining: seconds,
		onTick:    onTick,
		onDone:    onDone,
	}
	generation := engine.generation
	engine.emitTick()
	if generation != engine.generation {
		return
	}
	engine.scheduleNext()
}

// Cancel drops the pending step so that no further ticks fire.
func (engine *Engine) Cancel() {
	engine.generation++
	if engine.timer != nil {
		engine.timer.Stop()
		engine.timer = nil
	}
	engine.state = nil
}

// Running reports whether a countdown is in flight.
func (engine *Engine) Running() bool {
	return engine.state != nil
}

// Remaining returns the last displayed value, or -1 when idle.
func (engine *Engine) Remaining() int {
	if engine.state == nil {
		return -1
	}
	return engine.state.remaining
}

func (engine *Engine) scheduleNext() {
	generation := engine.generation
	engine.timer = engine.scheduler.AfterFunc(Step, func() {
		engine.advance(generation)
	})
}

func (engine *Engine) advance(generation uint64) {
	if generation != engine.generation || engine.state == nil {
		return
	}
	engine.timer = nil
	engine.state.remaining--

	if engine.state.remaining < 0 {
		onDone := engine.state.onDone
		engine.state = nil
		if onDone != nil {
			onDone()
		}
		return
	}

	engine.emitTick()
	if generation != engine.generation {
		return
	}
	engine.scheduleNext()
}

func (engine *Engine) emitTick() {
	if engine.state.onTick != nil {
		engine.state.onTick(engine.state.remaining)
	}
}

// FormatClock renders seconds as M:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
