// Package serial is the host side of the serial link to a target board.
// The Port interface keeps callers off the concrete implementation so tests
// can substitute an in-memory port.
package serial

import "io"

// Port is a host serial connection.
type Port interface {
	io.ReadWriteCloser

	// Flush pushes out any buffered writes.
	Flush() error
}

// Config describes how to open a port.
type Config struct {
	// Device is the OS device path, e.g. "/dev/ttyACM0" or "COM5".
	Device string

	// Baud is the line rate. USB CDC targets ignore it.
	Baud int

	// ReadTimeout in milliseconds; 0 means block.
	ReadTimeout int
}

// DefaultConfig returns the settings for tailing a demo target over its
// USB serial console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
