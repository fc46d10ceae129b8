package core

// Hard limits on user-settable parameters.
const (
	MinSampleRateHz = 1
	MaxSampleRateHz = 10000
	MinOversample   = 1
	MaxOversample   = 1024
)

// Defaults used for zero Config fields.
const (
	DefaultCapacity       = 5000 // ~20 KB of sample memory
	DefaultSampleRateHz   = 100
	DefaultOversample     = 64
	DefaultSettleDelayUs  = 10
	DefaultSafeRateHz     = 200
	DefaultOutputMaxVolts = 3.3
	DefaultGraceMs        = 1000
)

// pageRows is how many data rows 'show' emits before pausing for input.
const pageRows = 20

// loopDelayUs bounds the control loop spin rate.
const loopDelayUs = 1000

// Config carries the fixed recorder configuration. Boards tune it in
// their target main; zero fields fall back to the defaults above.
type Config struct {
	Capacity       int     // sample buffer capacity
	SampleRateHz   int     // initial sample rate
	Oversample     int     // initial raw readings per voltage sample
	SettleDelayUs  uint32  // delay between raw readings
	OutputMaxVolts float32 // replay clamp / output full-scale voltage
	SafeRateHz     int     // rates above this get a timing warning
	GraceMs        uint32  // delay before the automatic startup calibration

	// Wiring notes shown by 'help'.
	InputPinName  string
	OutputPinName string
}

func (c Config) withDefaults() Config {
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.SampleRateHz <= 0 {
		c.SampleRateHz = DefaultSampleRateHz
	}
	if c.Oversample <= 0 {
		c.Oversample = DefaultOversample
	}
	if c.SettleDelayUs == 0 {
		c.SettleDelayUs = DefaultSettleDelayUs
	}
	if c.OutputMaxVolts <= 0 {
		c.OutputMaxVolts = DefaultOutputMaxVolts
	}
	if c.SafeRateHz <= 0 {
		c.SafeRateHz = DefaultSafeRateHz
	}
	if c.GraceMs == 0 {
		c.GraceMs = DefaultGraceMs
	}
	if c.InputPinName == "" {
		c.InputPinName = "ADC"
	}
	if c.OutputPinName == "" {
		c.OutputPinName = "DAC"
	}
	return c
}
