package cdpdriver

import (
	"errors"
	"fmt"
)

// Error kinds from spec.md §7. Each is a distinct sentinel so callers can
// branch with errors.Is without parsing message text.
var (
	// ErrNoSession is returned by any Command Facade verb invoked before a
	// session has been attached (open_browser / attach).
	ErrNoSession = errors.New("no active browser session. Call open_browser first")

	// ErrLaunchFailed wraps any failure in the Process Launcher: binary not
	// found, spawn failed, or the DevToolsActivePort file never appeared or
	// could not be parsed.
	ErrLaunchFailed = errors.New("failed to launch Chrome")

	// ErrNotConnected is returned when a command is attempted with no live
	// transport.
	ErrNotConnected = errors.New("not connected to CDP")

	// ErrSendFailed is returned when the transport could not write a command.
	ErrSendFailed = errors.New("failed to send command")

	// ErrTimeout is returned when send_and_wait's reply slot was not filled
	// before its deadline. Distinct from ErrNotConnected: the peer may still
	// answer later, and that answer is simply dropped.
	ErrTimeout = errors.New("timed out waiting for reply")

	// ErrProtocol wraps a reply that carried a top-level CDP error or an
	// evaluate exceptionDetails.
	ErrProtocol = errors.New("protocol error from Chrome")

	// ErrSemantic covers target/frame/element-not-found, no-history,
	// out-of-range, and similar domain-level failures.
	ErrSemantic = errors.New("semantic error")
)

// NewLaunchError wraps cause with ErrLaunchFailed, preserving errors.Is.
func NewLaunchError(reason string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s", ErrLaunchFailed, reason)
	}
	return fmt.Errorf("%w: %s: %w", ErrLaunchFailed, reason, cause)
}

// NewProtocolError stitches a CDP error object and/or exceptionDetails text
// into a single message per spec.md §7 kind 5.
func NewProtocolError(code int, message string, exceptionText string) error {
	switch {
	case message != "" && exceptionText != "":
		return fmt.Errorf("%w: %s (%s) [code %d]", ErrProtocol, message, exceptionText, code)
	case message != "":
		return fmt.Errorf("%w: %s [code %d]", ErrProtocol, message, code)
	case exceptionText != "":
		return fmt.Errorf("%w: %s", ErrProtocol, exceptionText)
	default:
		return fmt.Errorf("%w: [code %d]", ErrProtocol, code)
	}
}

// NewSemanticError wraps a single user-facing detail string with ErrSemantic
// per spec.md §7 kind 6.
func NewSemanticError(detail string) error {
	return fmt.Errorf("%w: %s", ErrSemantic, detail)
}
