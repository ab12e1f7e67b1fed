//go:build !windows

package cmd

// HandleTerminalCompatibility relaunches the current process inside a terminal
// compatibility emulator if necessary. On POSIX systems, terminals support
// line-based input and raw mode natively, so this is a no-op.
func HandleTerminalCompatibility() {}
