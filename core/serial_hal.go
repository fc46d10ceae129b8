package core

// SerialDriver is the byte stream used for both command input and all
// human-readable output. The shape matches TinyGo's machine.Serial so a
// target can register the machine object directly.
type SerialDriver interface {
	// Buffered returns the number of input bytes ready to read.
	Buffered() int

	// ReadByte pops one input byte. Only call when Buffered() > 0.
	ReadByte() (byte, error)

	Write(p []byte) (int, error)
}

// Global singleton used by core code.
var serialDriver SerialDriver

// SetSerialDriver is called by target-specific code to register its driver.
func SetSerialDriver(d SerialDriver) {
	serialDriver = d
}

// MustSerial returns the configured driver or panics if missing.
func MustSerial() SerialDriver {
	if serialDriver == nil {
		panic("serial driver not configured")
	}
	return serialDriver
}
