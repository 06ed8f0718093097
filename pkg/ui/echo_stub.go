//go:build !linux

package ui

// disableInputEcho is a no-op on platforms without termios support.
func disableInputEcho(fd int) (func(), error) {
	return func() {}, nil
}
