package core

// readVoltage produces one calibrated reading: oversample raw codes
// separated by the settling delay, integer-averaged, run through the
// vendor calibration curve, offset-corrected and clamped at zero.
func (c *Controller) readVoltage() (float32, error) {
	v, err := c.readAveraged()
	if err != nil {
		return 0, err
	}

	v -= c.offsetVolts
	if v < 0 {
		// Excursions below the calibrated zero are discarded; range and
		// average reporting rely on samples staying non-negative.
		v = 0
	}
	return v, nil
}

// readAveraged is the shared oversampled read without offset correction.
func (c *Controller) readAveraged() (float32, error) {
	in := MustAnalogIn()
	clock := MustClock()

	var total uint32
	for i := 0; i < c.oversample; i++ {
		raw, err := in.ReadRaw()
		if err != nil {
			return 0, err
		}
		total += uint32(raw)
		clock.DelayMicros(c.cfg.SettleDelayUs)
	}

	average := ADCValue(total / uint32(c.oversample))
	mv := in.RawToMillivolts(average)
	return float32(mv) / 1000.0, nil
}

// CalibrateOffset measures the zero reference and stores it as the new
// offset, overwriting any previous calibration. The input must be tied
// to ground while it runs.
func (c *Controller) CalibrateOffset() {
	c.println("Make sure the input pin is connected to GND during calibration.")

	v, err := c.readAveraged()
	if err != nil {
		c.println("Calibration failed: analog read error.")
		return
	}

	c.offsetVolts = v
	c.println("ADC offset calibrated: " + ftoa(v, 4) + " V")
}

// SetOversample changes the number of raw readings per voltage sample.
func (c *Controller) SetOversample(arg string) {
	n := atoi(arg)
	if n < MinOversample || n > MaxOversample {
		c.println("Invalid ADC samples (1-1024)")
		return
	}
	c.oversample = n
	c.println("ADC samples per reading set to " + itoa(n))
}

// ReadNow emits one immediate voltage reading.
func (c *Controller) ReadNow() {
	v, err := c.readVoltage()
	if err != nil {
		c.println("Analog read failed!")
		return
	}
	c.println("Current voltage: " + ftoa(v, 4) + " V")
}
