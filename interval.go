package timeout

import "time"

// ScheduleInterval creates a timer that invokes fn with args every delay,
// armed immediately. Each fire re-arms the next period before the callback
// runs, so calling Cancel from inside fn stops the repetition. Refresh,
// Cancel, Ref, Unref and HasRef behave as on a one-shot timer; Refresh
// restarts the repetition after a Cancel.
func ScheduleInterval(fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return CreateInterval(fn, delay, args...).Refresh()
}

// CreateInterval is like ScheduleInterval but the returned timer is not
// armed until Refresh is called.
func CreateInterval(fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return newTimeout(TimerOverrides{}, true, fn, delay, args)
}

// ScheduleIntervalWith is ScheduleInterval with replacement scheduling
// primitives. Nil halves of ov fall back to the platform default.
func ScheduleIntervalWith(ov TimerOverrides, fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return CreateIntervalWith(ov, fn, delay, args...).Refresh()
}

// CreateIntervalWith is CreateInterval with replacement scheduling
// primitives.
func CreateIntervalWith(ov TimerOverrides, fn TimerFunc, delay time.Duration, args ...any) *Timeout {
	return newTimeout(ov, true, fn, delay, args)
}
