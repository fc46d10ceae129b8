//go:build xiao

package main

import "machine"

const (
	// Recorder configuration
	BUFFER_CAPACITY     = 5000 // ~20 KB of sample memory
	DEFAULT_SAMPLE_RATE = 100  // Hz
	DEFAULT_OVERSAMPLE  = 64   // raw readings per voltage sample
	SETTLE_DELAY_US     = 10   // between raw readings
	SAFE_RATE_HZ        = 200  // above this, timing is best-effort

	// Analog configuration
	ADC_REFERENCE_MV = 3300 // reference voltage in millivolts
	ADC_MAX_CODE     = 4095 // 12-bit converter
	DAC_MAX_CODE     = 1023 // true 10-bit DAC on A0
	OUTPUT_MAX_VOLTS = 3.3  // DAC full-scale voltage

	// Pins
	PIN_ADC = machine.A1 // voltage input (0-3.3V max!)
	PIN_DAC = machine.A0 // DAC output for replay
	PIN_LED = machine.LED
)
