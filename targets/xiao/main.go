//go:build xiao

//go:generate tinygo flash -target=xiao

// Voltage recorder firmware for the Seeed XIAO SAMD21: 12-bit ADC input
// on A1, true 10-bit DAC output on A0, command console on USB CDC serial.
package main

import (
	"machine"
	"time"

	"voltrec/core"
)

// samdADC implements core.AnalogInDriver on the on-chip converter.
type samdADC struct {
	adc machine.ADC
}

func (d *samdADC) Init() error {
	machine.InitADC()
	d.adc = machine.ADC{Pin: PIN_ADC}
	d.adc.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: 12,
	})
	return nil
}

func (d *samdADC) ReadRaw() (core.ADCValue, error) {
	// machine.ADC.Get returns a left-adjusted 16-bit value; shift back
	// to the native 12-bit code.
	return core.ADCValue(d.adc.Get() >> 4), nil
}

func (d *samdADC) RawToMillivolts(raw core.ADCValue) uint32 {
	return uint32(raw) * ADC_REFERENCE_MV / ADC_MAX_CODE
}

// samdDAC implements core.AnalogOutDriver on the SAMD21 DAC.
type samdDAC struct{}

func (samdDAC) Init() error {
	machine.DAC0.Configure(machine.DACConfig{})
	machine.DAC0.Set(0)
	return nil
}

func (samdDAC) MaxCode() uint16 {
	return DAC_MAX_CODE
}

func (samdDAC) Write(code uint16) error {
	// DAC0.Set takes a 16-bit value scaled down to the DAC width.
	machine.DAC0.Set(code << 6)
	return nil
}

// boardLamp implements core.LampDriver on the user LED.
type boardLamp struct{}

func (boardLamp) Init() error {
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (boardLamp) Set(on bool) {
	PIN_LED.Set(on)
}

func main() {
	// Give the USB CDC console time to enumerate before the greeting.
	time.Sleep(1 * time.Second)

	core.SetClockDriver(core.NewMonotonicClock())
	core.SetSerialDriver(machine.Serial)
	core.SetAnalogInDriver(&samdADC{})
	core.SetAnalogOutDriver(samdDAC{})
	core.SetLampDriver(boardLamp{})

	core.Run(core.Config{
		Capacity:       BUFFER_CAPACITY,
		SampleRateHz:   DEFAULT_SAMPLE_RATE,
		Oversample:     DEFAULT_OVERSAMPLE,
		SettleDelayUs:  SETTLE_DELAY_US,
		OutputMaxVolts: OUTPUT_MAX_VOLTS,
		SafeRateHz:     SAFE_RATE_HZ,
		InputPinName:   "A1",
		OutputPinName:  "A0",
	})
}
