package memcache

import (
	"errors"
	"fmt"

	"github.com/pior/gometa/meta"
)

// ErrKeyNotFound is returned when an operation targets a key memcached
// has no record of (spec §4.5: NF, or NS where the table maps it the
// same way).
var ErrKeyNotFound = errors.New("memcache: key not found")

// ErrKeyExists is returned by Add when the key is already present.
var ErrKeyExists = errors.New("memcache: key exists")

// ErrMiss is returned by Get when the key is absent (EN) or the server
// otherwise reports nothing to return (HD with no value, per the
// return-code table's get row).
var ErrMiss = errors.New("memcache: cache miss")

// ErrClosed is returned by any operation issued after Close has been
// called on the Client. If the underlying Engine terminates on its own
// (a transport error, or ctx cancellation passed to Run) without Close
// having been called, operations instead surface the Engine's own
// termination cause.
var ErrClosed = errors.New("memcache: client closed")

// UnexpectedReturnCodeError means the server answered with a return
// code the operation's table has no mapping for. It is a protocol-level
// surprise, not a domain outcome.
type UnexpectedReturnCodeError struct {
	Op     string
	Status meta.Status
}

func (e *UnexpectedReturnCodeError) Error() string {
	return fmt.Sprintf("memcache: %s: unexpected return code %q", e.Op, e.Status)
}
