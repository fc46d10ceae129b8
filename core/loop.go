package core

// Run initializes the hardware and services the control loop forever:
// poll for a pending command line, then let the recorder take its next
// sample. All waiting is a short bounded delay; the loop never blocks
// on input.
func Run(cfg Config) {
	c := NewController(cfg)
	c.Init()

	clock := MustClock()
	for {
		c.Poll()
		c.Tick()
		clock.DelayMicros(loopDelayUs)
	}
}

// Init brings up the registered drivers, runs the grace-period offset
// calibration and prints the greeting.
func (c *Controller) Init() {
	if err := MustAnalogIn().Init(); err != nil {
		c.println("ADC init failed: " + err.Error())
	}
	if err := MustAnalogOut().Init(); err != nil {
		c.println("DAC init failed: " + err.Error())
	}
	if err := MustLamp().Init(); err != nil {
		c.println("Status lamp init failed: " + err.Error())
	}
	MustLamp().Set(false)

	c.println("=== Voltage Recorder ===")
	c.println("Initializing...")
	c.println("Auto-calibrating ADC offset.")

	// Give the operator a moment to tie the input to ground.
	MustClock().DelayMicros(c.cfg.GraceMs * 1000)
	c.CalibrateOffset()

	c.println("Setup complete!")
	c.PrintHelp()

	// Lamp on means ready.
	MustLamp().Set(true)
}

// Poll assembles serial input into a line and dispatches it when the
// terminator arrives. At most one command is handled per call; bytes
// past the line buffer are dropped until the terminator.
func (c *Controller) Poll() {
	ser := MustSerial()
	for ser.Buffered() > 0 {
		b, err := ser.ReadByte()
		if err != nil {
			return
		}

		if b == '\n' || b == '\r' {
			if c.lineLen == 0 {
				continue
			}
			line := string(c.lineBuf[:c.lineLen])
			c.lineLen = 0
			c.Dispatch(line)
			return
		}

		if c.lineLen < len(c.lineBuf) {
			c.lineBuf[c.lineLen] = b
			c.lineLen++
		}
	}
}
