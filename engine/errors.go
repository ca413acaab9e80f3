package engine

import "errors"

// ErrAlreadyRunning is returned by Run when called more than once on the
// same Engine (spec §4.3: Initial → Running → Terminated, run() callable
// exactly once).
var ErrAlreadyRunning = errors.New("engine: already running")

// ErrTerminated is reported to Submit callers, and to any request still
// sitting in the pending FIFO, once the Engine has shut down and no more
// progress will be made on the connection. It wraps the specific cause of
// the shutdown, so errors.Is matches both.
var ErrTerminated = errors.New("engine: terminated")

// ErrUnsolicitedResponse indicates the wire produced a complete response
// frame with no matching entry in the pending FIFO. This is a protocol
// framing violation that the Engine cannot recover from.
var ErrUnsolicitedResponse = errors.New("engine: unsolicited response")
