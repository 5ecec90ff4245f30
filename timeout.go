// Package timeout provides refreshable, cancelable one-shot timer handles
// with pluggable scheduling primitives, plus repeating variants built on the
// same machinery.
package timeout

import (
	"sync"
	"time"
)

// Timeout is a handle for one logical timer across possibly many arm/disarm
// cycles. The callback, delay, forwarded arguments and scheduling primitives
// are fixed at creation; everything else is lifecycle state.
type Timeout struct {
	mu sync.Mutex

	fn    TimerFunc
	delay time.Duration
	args  []any

	schedule ScheduleFunc
	cancel   CancelFunc

	// handle is the opaque value returned by the schedule primitive for the
	// currently pending cycle, nil when nothing is pending. gen increments on
	// every arm and on every effective cancel, so a fire from a superseded
	// cycle cannot touch the current cycle's state.
	handle any
	gen    uint64
	fired  bool
	hasRef bool
	repeat bool
}

func newTimeout(ov TimerOverrides, repeat bool, fn TimerFunc, delay time.Duration, args []any) *Timeout {
	schedule, cancel := ov.resolve(realClock{})

	return &Timeout{
		fn:       fn,
		delay:    delay,
		args:     args,
		schedule: schedule,
		cancel:   cancel,
		hasRef:   true,
		repeat:   repeat,
	}
}

// ScheduleTimeout creates a timer that invokes fn with args once delay has
// elapsed, armed immediately using the platform default primitives.
func ScheduleTimeout(fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return CreateTimeout(fn, delay, args...).Refresh()
}

// CreateTimeout is like ScheduleTimeout but the returned timer is not armed
// until Refresh is called. All other operations work before the first arm.
func CreateTimeout(fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return newTimeout(TimerOverrides{}, false, fn, delay, args)
}

// ScheduleTimeoutWith is ScheduleTimeout with replacement scheduling
// primitives. Nil halves of ov fall back to the platform default, so the
// zero TimerOverrides behaves exactly like ScheduleTimeout.
func ScheduleTimeoutWith(ov TimerOverrides, fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return CreateTimeoutWith(ov, fn, delay, args...).Refresh()
}

// CreateTimeoutWith is CreateTimeout with replacement scheduling primitives.
func CreateTimeoutWith(ov TimerOverrides, fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return newTimeout(ov, false, fn, delay, args)
}

// Refresh re-arms the timer: any pending cycle is canceled first, then a new
// one is scheduled with the original callback, delay and args. It restarts
// the full delay from the moment of the call and works in every state,
// including after a fire or a cancel. Returns t.
func (t *Timeout) Refresh() *Timeout {
	t.arm()
	return t
}

// Cancel stops the pending cycle, if there is one, invoking the configured
// cancel primitive exactly once. Canceling a timer with nothing pending is a
// no-op. The has-ref flag is left untouched. Returns t.
func (t *Timeout) Cancel() *Timeout {
	t.mu.Lock()
	pending := t.handle
	t.handle = nil
	if pending != nil {
		t.gen++
	}
	t.mu.Unlock()

	if pending != nil {
		t.cancel(pending)
	}

	return t
}

// Ref marks the timer as a reason to keep the host process alive while
// pending. Timers start referenced. Idempotent. Returns t.
func (t *Timeout) Ref() *Timeout {
	t.mu.Lock()
	t.hasRef = true
	t.mu.Unlock()

	return t
}

// Unref clears the keep-alive mark. Idempotent. Returns t.
func (t *Timeout) Unref() *Timeout {
	t.mu.Lock()
	t.hasRef = false
	t.mu.Unlock()

	return t
}

// HasRef reports the current keep-alive mark. It reflects only the most
// recent Ref/Unref call; firing, canceling and refreshing never change it.
func (t *Timeout) HasRef() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.hasRef
}

// arm starts a fresh cycle. The schedule and cancel primitives are invoked
// outside the lock so an override that dispatches synchronously, or that
// calls back into the handle, cannot deadlock.
func (t *Timeout) arm() {
	t.mu.Lock()
	pending := t.handle
	t.handle = nil
	t.gen++
	gen := t.gen
	t.fired = false
	t.mu.Unlock()

	if pending != nil {
		t.cancel(pending)
	}

	h := t.schedule(func(args ...any) {
		t.fire(gen, args)
	}, t.delay, t.args...)

	t.mu.Lock()
	discard := false
	switch {
	case t.gen != gen:
		// Re-armed or canceled while scheduling; h belongs to a dead cycle.
		discard = true
	case t.fired:
		// Dispatched synchronously before the handle came back; h is
		// already consumed.
	default:
		t.handle = h
	}
	t.mu.Unlock()

	if discard {
		t.cancel(h)
	}
}

// fire runs on the scheduling primitive's dispatch turn. A fire from a
// superseded cycle still invokes the callback (a platform that cannot stop
// an in-flight dispatch is allowed to deliver it) but leaves the current
// cycle's state alone.
func (t *Timeout) fire(gen uint64, args []any) {
	t.mu.Lock()
	current := t.gen == gen
	if current {
		t.fired = true
		t.handle = nil
	}
	repeat := current && t.repeat
	t.mu.Unlock()

	// Re-arm before dispatching so the callback can Cancel the next period.
	if repeat {
		t.arm()
	}

	t.fn(args...)
}
