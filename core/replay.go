package core

import "github.com/chewxy/math32"

// Replay walks the valid samples and reproduces them on the analog output
// at the configured rate. It runs to completion or until a serial byte
// arrives; either way the output is returned to its zero level.
//
// Timing uses an absolute schedule: each write is due at
// start + i*interval, and the loop waits out only the remainder, so
// per-iteration overhead does not accumulate as drift.
func (c *Controller) Replay() {
	if c.buf.Count() == 0 {
		c.println("No data to replay!")
		return
	}

	out := MustAnalogOut()
	clock := MustClock()
	ser := MustSerial()

	c.println("Replaying " + itoa(c.buf.Count()) + " voltage samples...")
	c.println("Note: output resolution is " + utoa(uint32(out.MaxCode())) +
		" steps over 0-" + ftoa(c.cfg.OutputMaxVolts, 1) + " V")
	c.println("Type any key to stop replay.")
	c.println("")

	startMs := clock.Millis()
	interval := uint32(1000000 / c.sampleRateHz)
	next := clock.Micros()
	lastPrinted := float32(-1)
	aborted := false

	for i := 0; i < c.buf.Count(); i++ {
		if ser.Buffered() > 0 {
			aborted = true
			break
		}

		v := c.buf.At(i)
		if v > c.cfg.OutputMaxVolts {
			v = c.cfg.OutputMaxVolts
		}
		if v < 0 {
			v = 0
		}
		code := uint16(v * float32(out.MaxCode()) / c.cfg.OutputMaxVolts)
		out.Write(code)

		// Report every 50th sample, or any significant level change.
		if i%50 == 0 || math32.Abs(v-lastPrinted) > 0.1 {
			c.println("Sample " + itoa(i) + ": " + ftoa(v, 4) + "V -> DAC " + utoa(uint32(code)))
			lastPrinted = v
		}

		next += interval
		if wait := int32(next - clock.Micros()); wait > 0 {
			clock.DelayMicros(uint32(wait))
		}
	}
	endMs := clock.Millis()

	// Drain whatever arrived, including the byte that stopped the replay.
	for ser.Buffered() > 0 {
		ser.ReadByte()
	}
	out.Write(0)

	if aborted {
		c.println("Replay stopped.")
	} else {
		c.println("Replay completed.")
	}

	actual := float32(endMs-startMs) / 1000.0
	expected := float32(c.buf.Count()) / float32(c.sampleRateHz)
	if s := c.recordedSeconds(); s > 0 {
		expected = s
	}

	c.println("Expected duration: " + ftoa(expected, 3) + " s, Replay duration: " + ftoa(actual, 3) + " s")
	if c.sampleRateHz > c.cfg.SafeRateHz {
		c.println("WARNING: Replay rate is above safe value (" + itoa(c.cfg.SafeRateHz) +
			" Hz). Timing may be inaccurate!")
	}
	if math32.Abs(actual-expected) > 0.2*expected {
		c.println("ERROR: Exceeded stable sample rate! Replay duration does not match expected duration. Lower your sample rate for reliable timing.")
	}
}
