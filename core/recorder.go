package core

// Controller owns all mutable recorder state: the sample buffer, the
// calibration values and the recording session. It is driven from the
// single control loop and is not safe for concurrent use.
type Controller struct {
	cfg Config

	buf *SampleBuffer

	// Recording session
	recording    bool
	sampleRateHz int
	lastSampleMs uint32
	startMs      uint32
	endMs        uint32
	hasSession   bool // endMs is meaningful only after a completed session

	// Calibration
	oversample  int
	offsetVolts float32

	// Serial line assembly
	lineBuf [64]byte
	lineLen int
}

// NewController builds a controller around the registered drivers.
func NewController(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		cfg:          cfg,
		buf:          NewSampleBuffer(cfg.Capacity),
		sampleRateHz: cfg.SampleRateHz,
		oversample:   cfg.Oversample,
	}
}

// Recording reports whether a session is active.
func (c *Controller) Recording() bool {
	return c.recording
}

// SampleRate returns the configured sample rate in Hz.
func (c *Controller) SampleRate() int {
	return c.sampleRateHz
}

// Buffer exposes the sample buffer for host-side tooling.
func (c *Controller) Buffer() *SampleBuffer {
	return c.buf
}

// StartRecording resets the buffer and begins a session.
func (c *Controller) StartRecording() {
	if c.recording {
		c.println("Already recording!")
		return
	}

	c.buf.Reset()
	c.recording = true

	now := MustClock().Millis()
	c.lastSampleMs = now
	c.startMs = now

	c.println("Started recording at " + itoa(c.sampleRateHz) + " Hz...")
	c.println("Type 'stop' to end recording.")
}

// StopRecording ends the active session and reports its span.
func (c *Controller) StopRecording() {
	if !c.recording {
		c.println("Not currently recording.")
		return
	}

	c.recording = false
	MustLamp().Set(true)
	c.endMs = MustClock().Millis()
	c.hasSession = true

	c.println("Recording stopped. Captured " + itoa(c.buf.Count()) + " samples.")
	c.println("Actual recording duration: " + ftoa(float32(c.endMs-c.startMs)/1000.0, 2) + " seconds")
	c.println("Type 'show' to view data or 'replay' to replicate voltages.")
}

// Clear drops the buffered samples. The recording flag is untouched, so
// an active session keeps appending from index zero.
func (c *Controller) Clear() {
	c.buf.Reset()
	c.println("Buffer cleared.")
}

// SetSampleRate changes the recording and replay rate.
func (c *Controller) SetSampleRate(arg string) {
	n := atoi(arg)
	if n < MinSampleRateHz || n > MaxSampleRateHz {
		c.println("Invalid sample rate (1-10000 Hz)")
		return
	}

	c.sampleRateHz = n
	c.println("Sample rate set to " + itoa(n) + " Hz")
	if n > c.cfg.SafeRateHz {
		c.println(c.rateWarning())
	}
}

// Tick takes one sample when the configured interval has elapsed. It is
// called on every pass of the control loop; most calls do nothing.
func (c *Controller) Tick() {
	if !c.recording || c.buf.Full() {
		return
	}

	now := MustClock().Millis()
	if now-c.lastSampleMs < uint32(1000/c.sampleRateHz) {
		return
	}

	v, err := c.readVoltage()
	if err != nil {
		c.println("Analog read failed, stopping recording.")
		c.StopRecording()
		return
	}

	c.buf.Append(v)
	c.lastSampleMs = now

	// Blink with a 100-sample period for visual feedback.
	MustLamp().Set(c.buf.Count()%100 < 50)

	if c.buf.Count()%100 == 0 {
		c.println("Recorded " + itoa(c.buf.Count()) + " samples...")
	}

	if c.buf.Full() {
		c.println("Buffer full! Stopping recording.")
		c.StopRecording()
	}
}

func (c *Controller) rateWarning() string {
	return "WARNING: Sample rate is above safe value (" + itoa(c.cfg.SafeRateHz) +
		" Hz). Recording and replay timing may be inaccurate!"
}

// recordedSeconds returns the wall-clock span of the last completed
// session, or zero when none exists.
func (c *Controller) recordedSeconds() float32 {
	if c.hasSession && c.endMs > c.startMs {
		return float32(c.endMs-c.startMs) / 1000.0
	}
	return 0
}

func (c *Controller) print(s string) {
	MustSerial().Write([]byte(s))
}

func (c *Controller) println(s string) {
	c.print(s)
	c.print("\n")
}
