// voltrec-sim runs the recorder control loop on the host against a
// synthetic analog source, with stdin/stdout standing in for the serial
// link. Useful for exercising the command set without hardware.
package main

import (
	"errors"
	"flag"
	"math"
	"math/rand"
	"os"

	"voltrec/core"
)

var (
	freq  = flag.Float64("freq", 1.0, "Synthetic input frequency in Hz")
	amp   = flag.Float64("amp", 1.5, "Synthetic input amplitude in volts")
	bias  = flag.Float64("bias", 1.65, "Synthetic input bias in volts")
	noise = flag.Float64("noise", 0.002, "Synthetic input noise in volts")
)

const (
	referenceVolts = 3.3
	adcMaxCode     = 4095
)

// sineSource implements core.AnalogInDriver with a noisy sine wave.
type sineSource struct {
	clock core.ClockDriver
}

func (s *sineSource) Init() error { return nil }

func (s *sineSource) ReadRaw() (core.ADCValue, error) {
	t := float64(s.clock.Micros()) / 1e6
	v := *bias + *amp*math.Sin(2*math.Pi**freq*t) + *noise*rand.NormFloat64()
	if v < 0 {
		v = 0
	}
	if v > referenceVolts {
		v = referenceVolts
	}
	return core.ADCValue(v / referenceVolts * adcMaxCode), nil
}

func (s *sineSource) RawToMillivolts(raw core.ADCValue) uint32 {
	return uint32(raw) * uint32(referenceVolts*1000) / adcMaxCode
}

// nullSink implements core.AnalogOutDriver by discarding writes; replay
// progress is visible through the serial output alone.
type nullSink struct{}

func (nullSink) Init() error             { return nil }
func (nullSink) MaxCode() uint16         { return 255 }
func (nullSink) Write(code uint16) error { return nil }

// stdioSerial adapts stdin/stdout to core.SerialDriver. A reader
// goroutine feeds a channel so Buffered can be polled without blocking,
// matching the non-blocking UART the control loop expects.
type stdioSerial struct {
	in chan byte
}

func newStdioSerial() *stdioSerial {
	s := &stdioSerial{in: make(chan byte, 256)}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				s.in <- buf[0]
			}
			if err != nil {
				return
			}
		}
	}()
	return s
}

func (s *stdioSerial) Buffered() int {
	return len(s.in)
}

func (s *stdioSerial) ReadByte() (byte, error) {
	select {
	case b := <-s.in:
		return b, nil
	default:
		return 0, errors.New("no data")
	}
}

func (s *stdioSerial) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func main() {
	flag.Parse()

	clock := core.NewMonotonicClock()
	core.SetClockDriver(clock)
	core.SetSerialDriver(newStdioSerial())
	core.SetAnalogInDriver(&sineSource{clock: clock})
	core.SetAnalogOutDriver(nullSink{})
	core.SetLampDriver(core.NopLamp{})

	core.Run(core.Config{
		InputPinName:  "sim",
		OutputPinName: "sim",
	})
}
