package core

// LampDriver drives the single status indicator: solid on when the
// recorder is ready, blinking while a recording is in progress.
type LampDriver interface {
	Init() error
	Set(on bool)
}

// Global singleton used by core code.
var lampDriver LampDriver

// SetLampDriver is called by target-specific code to register its driver.
func SetLampDriver(d LampDriver) {
	lampDriver = d
}

// MustLamp returns the configured driver or panics if missing.
func MustLamp() LampDriver {
	if lampDriver == nil {
		panic("lamp driver not configured")
	}
	return lampDriver
}

// NopLamp is a LampDriver for hosts without a status indicator.
type NopLamp struct{}

func (NopLamp) Init() error { return nil }
func (NopLamp) Set(on bool) {}
