package chat

import (
	"context"
	"errors"
	"fmt"

	"toolchat/config"
	"toolchat/mcp"
)

// State is the supervisor's view of the transport.
type State int

const (
	StateConnected State = iota
	StateInvalidated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateInvalidated:
		return "invalidated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrReconnected signals that the transport was torn down and re-established
// after a fault. The failed query's outcome is unknown, so it is not retried
// automatically; the caller resubmits it.
var ErrReconnected = errors.New("connection to the tool provider was re-established; please resubmit your query")

// ErrSessionFailed is terminal: reconnecting to the tool provider failed and
// the session loop should exit.
var ErrSessionFailed = errors.New("failed to reconnect to the tool provider")

// ConnectFunc establishes a transport against an endpoint descriptor (a
// provider script path).
type ConnectFunc func(ctx context.Context, endpoint string) (Transport, error)

// Supervisor keeps a session usable across transport faults without losing
// conversation history. It wraps the whole conversation loop, not individual
// turns: a fault abandons the in-flight turn, replaces the transport, and
// asks the caller to resubmit.
//
// States: Connected -> (fault) -> Invalidated -> (reconnect) -> Connected,
// or Failed, which is terminal.
type Supervisor struct {
	session  *Session
	endpoint string
	connect  ConnectFunc
	state    State
}

// NewSupervisor wraps session. If the session has no transport yet the
// supervisor starts Invalidated and connects on the first query.
func NewSupervisor(session *Session, endpoint string, connect ConnectFunc) *Supervisor {
	state := StateConnected
	if session.Transport() == nil {
		state = StateInvalidated
	}
	return &Supervisor{
		session:  session,
		endpoint: endpoint,
		connect:  connect,
		state:    state,
	}
}

// State returns the supervisor's current state.
func (sv *Supervisor) State() State {
	return sv.state
}

// Session returns the supervised session.
func (sv *Supervisor) Session() *Session {
	return sv.session
}

// Submit runs one query through the orchestrator. Non-transport errors
// (endpoint failures, unknown finish reasons, malformed arguments) are
// returned as-is and leave the session Connected. A transport fault
// invalidates the handle, reconnects against the same endpoint, and returns
// ErrReconnected on success or an ErrSessionFailed-wrapped error on failure.
func (sv *Supervisor) Submit(ctx context.Context, query string) (string, error) {
	switch sv.state {
	case StateFailed:
		return "", ErrSessionFailed
	case StateInvalidated:
		// No usable transport; attempt one connect before delegating.
		if err := sv.reconnect(ctx); err != nil {
			return "", err
		}
	}

	answer, err := sv.session.ProcessQuery(ctx, query)
	if err == nil {
		return answer, nil
	}
	if !mcp.IsTransportFault(err) {
		return "", err
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Supervisor] session=%s transport fault: %v", sv.session.ID(), err)
	}

	sv.invalidate()
	if rerr := sv.reconnect(ctx); rerr != nil {
		return "", rerr
	}
	return "", ErrReconnected
}

// Close releases the current transport, if any.
func (sv *Supervisor) Close() error {
	if t := sv.session.Transport(); t != nil {
		return t.Close()
	}
	return nil
}

func (sv *Supervisor) invalidate() {
	sv.state = StateInvalidated
	if t := sv.session.Transport(); t != nil {
		_ = t.Close()
	}
	sv.session.SetTransport(nil)
}

func (sv *Supervisor) reconnect(ctx context.Context) error {
	t, err := sv.connect(ctx, sv.endpoint)
	if err != nil {
		sv.state = StateFailed
		return fmt.Errorf("%w: %v", ErrSessionFailed, err)
	}

	sv.session.SetTransport(t)
	sv.state = StateConnected

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Supervisor] session=%s reconnected to %s", sv.session.ID(), sv.endpoint)
	}
	return nil
}
