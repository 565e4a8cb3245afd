package mcp

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
)

// IsTransportFault reports whether err means the channel to the tool
// provider is no longer usable: end of stream, broken pipe, a closed
// transport, or an externally cancelled operation. These are recoverable at
// the session level via reconnect, not within the turn that hit them.
func IsTransportFault(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, io.EOF),
		errors.Is(err, io.ErrClosedPipe),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, os.ErrClosed),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.ECONNRESET):
		return true
	}

	// The stdio transport wraps some process-death conditions in plain
	// errors; match on the message as a fallback.
	msg := err.Error()
	for _, probe := range []string{
		"broken pipe",
		"file already closed",
		"connection reset",
		"transport is closed",
		"client not initialized",
		"process exited",
		"signal: killed",
	} {
		if strings.Contains(msg, probe) {
			return true
		}
	}

	return false
}
