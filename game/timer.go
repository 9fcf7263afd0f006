package game

import (
	"sync"
	"time"
)

// maxElapsed is where the clock saturates; the three-digit display
// cannot show more.
const maxElapsed = 999

// Timer tracks whole seconds from the first reveal to game end. It
// starts at most once, stops permanently, and clamps to 0..999.
type Timer struct {
	mu sync.Mutex

	now func() time.Time

	running bool
	stopped bool

	startTime time.Time
	elapsed   int

	done   chan struct{}
	onTick func(seconds int)
}

func newTimer(now func() time.Time) *Timer {
	return &Timer{
		now:  now,
		done: make(chan struct{}),
	}
}

// OnTick registers a callback invoked once per second while the timer
// runs, for display refresh. Must be set before Start.
func (timer *Timer) OnTick(fn func(seconds int)) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.onTick = fn
}

// Start anchors the clock and begins ticking. Subsequent calls, and
// calls after Stop, are no-ops.
func (timer *Timer) Start() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.running || timer.stopped {
		return
	}
	timer.running = true
	timer.startTime = timer.now()

	go func() {
		tick := time.Tick(time.Second)

		for {
			select {
			case <-timer.done:
				return
			case <-tick:
				timer.mu.Lock()
				onTick := timer.onTick
				timer.mu.Unlock()

				if onTick != nil {
					onTick(timer.Elapsed())
				}
			}
		}
	}()
}

// Elapsed returns whole seconds since Start, clamped to 0..999. After
// Stop it returns the frozen value.
func (timer *Timer) Elapsed() int {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.elapsedLocked()
}

func (timer *Timer) elapsedLocked() int {
	if !timer.running {
		return timer.elapsed
	}

	elapsed := int(timer.now().Sub(timer.startTime) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxElapsed {
		elapsed = maxElapsed
	}
	return elapsed
}

// Stop freezes the clock permanently and cancels the tick. Stopping an
// already-stopped timer is a no-op.
func (timer *Timer) Stop() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.stopped {
		return
	}
	timer.stopped = true

	if timer.running {
		timer.elapsed = timer.elapsedLocked()
		timer.running = false
		close(timer.done)
	}
}

// Reset zeroes the clock. A running timer is re-anchored to now and
// keeps running; a stopped timer stays stopped at zero.
func (timer *Timer) Reset() {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	timer.elapsed = 0
	if timer.running {
		timer.startTime = timer.now()
	}
}
