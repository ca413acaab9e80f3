package meta

import "fmt"

// InvalidKeyError is returned by the Encoder when a key fails
// ValidateKey. Nothing is written to the wire when this occurs.
type InvalidKeyError struct {
	Reason string
}

func (e *InvalidKeyError) Error() string { return "meta: invalid key: " + e.Reason }

// ValueTooLargeError is returned by the Encoder when a set's value
// exceeds the configured maximum (spec §4.1, default 1 MiB).
type ValueTooLargeError struct {
	Size, Max int
}

func (e *ValueTooLargeError) Error() string {
	return fmt.Sprintf("meta: value too large: %d bytes exceeds limit of %d", e.Size, e.Max)
}

// MalformedFrameError is returned by the Decoder when the bytes it was
// handed cannot be a valid response frame: a line longer than the hard
// cap, or a VA length that isn't a non-negative integer (spec §4.2). It
// is terminal. The engine that owns the Decoder must shut down on it.
type MalformedFrameError struct {
	Reason string
}

func (e *MalformedFrameError) Error() string { return "meta: malformed frame: " + e.Reason }
