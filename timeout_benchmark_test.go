package timeout

import (
	"testing"
	"time"

	"github.com/valyala/fastrand"
)

// noopOverrides arms against a do-nothing pair so the benchmarks measure the
// handle itself, not the runtime timer heap.
func noopOverrides() TimerOverrides {
	return TimerOverrides{
		Schedule: func(fn TimerFunc, delay time.Duration, args ...any) any {
			return struct{}{}
		},
		Cancel: func(handle any) {},
	}
}

func BenchmarkRefresh(b *testing.B) {
	timer := CreateTimeoutWith(noopOverrides(), func(args ...any) {}, time.Second)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		timer.Refresh()
	}
}

func BenchmarkRefreshCancel(b *testing.B) {
	timer := CreateTimeoutWith(noopOverrides(), func(args ...any) {}, time.Second)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		timer.Refresh()
		timer.Cancel()
	}
}

func BenchmarkMixedLifecycle(b *testing.B) {
	timer := CreateTimeoutWith(noopOverrides(), func(args ...any) {}, time.Second)

	var rng fastrand.RNG
	rng.Seed(42)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		switch rng.Uint32n(4) {
		case 0:
			timer.Refresh()
		case 1:
			timer.Cancel()
		case 2:
			timer.Unref()
		default:
			timer.Ref()
		}
	}
}

func BenchmarkScheduleTimeoutReal(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ScheduleTimeout(func(args ...any) {}, time.Hour).Cancel()
	}
}
