package core

import "errors"

// Mock drivers for testing the controller without hardware.

// mockAnalogIn replays a fixed sequence of raw codes, cycling when it
// runs out.
type mockAnalogIn struct {
	raw   []ADCValue
	next  int
	refMV uint32
	fail  bool
}

func (m *mockAnalogIn) Init() error { return nil }

func (m *mockAnalogIn) ReadRaw() (ADCValue, error) {
	if m.fail {
		return 0, errors.New("adc read failed")
	}
	if len(m.raw) == 0 {
		return 0, nil
	}
	v := m.raw[m.next%len(m.raw)]
	m.next++
	return v, nil
}

func (m *mockAnalogIn) RawToMillivolts(raw ADCValue) uint32 {
	// Linear 12-bit curve, like the reference board.
	return uint32(raw) * m.refMV / 4095
}

// mockAnalogOut captures every code written.
type mockAnalogOut struct {
	max    uint16
	writes []uint16
}

func (m *mockAnalogOut) Init() error { return nil }

func (m *mockAnalogOut) MaxCode() uint16 { return m.max }

func (m *mockAnalogOut) Write(code uint16) error {
	m.writes = append(m.writes, code)
	return nil
}

// fakeClock is manually advanced; DelayMicros moves it forward so timed
// loops finish instantly.
type fakeClock struct {
	us uint64
}

func (c *fakeClock) Millis() uint32 { return uint32(c.us / 1000) }
func (c *fakeClock) Micros() uint32 { return uint32(c.us) }

func (c *fakeClock) DelayMicros(us uint32) {
	c.us += uint64(us)
}

func (c *fakeClock) advanceMs(ms uint32) {
	c.us += uint64(ms) * 1000
}

// mockSerial queues input bytes and records all output.
type mockSerial struct {
	in  []byte
	out []byte
}

func (m *mockSerial) Buffered() int { return len(m.in) }

func (m *mockSerial) ReadByte() (byte, error) {
	if len(m.in) == 0 {
		return 0, errors.New("no data")
	}
	b := m.in[0]
	m.in = m.in[1:]
	return b, nil
}

func (m *mockSerial) Write(p []byte) (int, error) {
	m.out = append(m.out, p...)
	return len(p), nil
}

func (m *mockSerial) output() string { return string(m.out) }
func (m *mockSerial) clear()         { m.out = nil }

func (m *mockSerial) feed(s string) { m.in = append(m.in, []byte(s)...) }

// mockLamp remembers the last state set.
type mockLamp struct {
	on   bool
	sets int
}

func (m *mockLamp) Init() error { return nil }

func (m *mockLamp) Set(on bool) {
	m.on = on
	m.sets++
}

// testRig registers fresh mock drivers and builds a controller on them.
type testRig struct {
	c     *Controller
	in    *mockAnalogIn
	out   *mockAnalogOut
	clock *fakeClock
	ser   *mockSerial
	lamp  *mockLamp
}

func newTestRig(cfg Config) *testRig {
	rig := &testRig{
		in:    &mockAnalogIn{refMV: 3300},
		out:   &mockAnalogOut{max: 255},
		clock: &fakeClock{},
		ser:   &mockSerial{},
		lamp:  &mockLamp{},
	}
	SetAnalogInDriver(rig.in)
	SetAnalogOutDriver(rig.out)
	SetClockDriver(rig.clock)
	SetSerialDriver(rig.ser)
	SetLampDriver(rig.lamp)
	rig.c = NewController(cfg)
	return rig
}
