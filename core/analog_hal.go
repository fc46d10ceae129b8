package core

// ADCValue is a raw analog input code as seen by the rest of the firmware.
// The width is whatever the converter produces natively (12-bit on the
// reference board); RawToMillivolts defines its meaning.
type ADCValue uint16

// AnalogInDriver is the abstract analog input interface that core code uses.
// Platform-specific implementations handle the actual converter.
type AnalogInDriver interface {
	// Init powers up and configures the converter.
	Init() error

	// ReadRaw performs a one-shot sample of the input channel.
	ReadRaw() (ADCValue, error)

	// RawToMillivolts converts a raw code to millivolts using the
	// device's calibration curve.
	RawToMillivolts(raw ADCValue) uint32
}

// AnalogOutDriver is the abstract analog output interface.
type AnalogOutDriver interface {
	// Init enables the output channel and drives it to code zero.
	Init() error

	// MaxCode returns the full-scale output code (255 for an 8-bit DAC).
	MaxCode() uint16

	// Write drives the output to the given code.
	Write(code uint16) error
}

// Global singletons used by core code.
var (
	analogInDriver  AnalogInDriver
	analogOutDriver AnalogOutDriver
)

// SetAnalogInDriver is called by target-specific code to register its driver.
func SetAnalogInDriver(d AnalogInDriver) {
	analogInDriver = d
}

// SetAnalogOutDriver is called by target-specific code to register its driver.
func SetAnalogOutDriver(d AnalogOutDriver) {
	analogOutDriver = d
}

// MustAnalogIn returns the configured driver or panics if missing.
func MustAnalogIn() AnalogInDriver {
	if analogInDriver == nil {
		panic("analog input driver not configured")
	}
	return analogInDriver
}

// MustAnalogOut returns the configured driver or panics if missing.
func MustAnalogOut() AnalogOutDriver {
	if analogOutDriver == nil {
		panic("analog output driver not configured")
	}
	return analogOutDriver
}
