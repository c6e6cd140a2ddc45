// Package serial opens serial ports for host-side time sources, typically a
// GPS receiver streaming NMEA sentences.
package serial

import "io"

// Port is a stream of bytes from a serial device.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g. "/dev/ttyUSB0", "COM3").
	Device string

	// Baud rate. Consumer GPS modules default to 9600.
	Baud int

	// Read timeout in milliseconds (0 = blocking). A finite timeout keeps
	// a provider read from hanging the caller when the receiver goes
	// quiet.
	ReadTimeout int
}

// DefaultConfig returns a configuration for an NMEA GPS receiver.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 2000,
	}
}
