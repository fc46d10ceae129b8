package core

import "time"

// ClockDriver provides the monotonic time base and the short busy delays
// the sampling paths rely on. Millis and Micros wrap at the uint32 range;
// core only ever compares differences, which survive the wrap.
type ClockDriver interface {
	Millis() uint32
	Micros() uint32

	// DelayMicros blocks the calling context for us microseconds.
	DelayMicros(us uint32)
}

// Global singleton used by core code.
var clockDriver ClockDriver

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}

// monotonicClock implements ClockDriver on the runtime clock. It works
// both on the host and under TinyGo, where time.Since reads the cycle
// counter based system timer.
type monotonicClock struct {
	start time.Time
}

// NewMonotonicClock returns a ClockDriver based at the moment of the call.
func NewMonotonicClock() ClockDriver {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

func (c *monotonicClock) Micros() uint32 {
	return uint32(time.Since(c.start) / time.Microsecond)
}

func (c *monotonicClock) DelayMicros(us uint32) {
	// The scheduler timer is too coarse for waits in the tens of
	// microseconds, so short waits spin instead.
	if us < 50 {
		end := time.Since(c.start) + time.Duration(us)*time.Microsecond
		for time.Since(c.start) < end {
		}
		return
	}
	time.Sleep(time.Duration(us) * time.Microsecond)
}
