// Package codec implements the Value Codec capability from spec §4.4: a
// typed translation between caller values and the raw bytes memcached
// stores, plus the numeric-vs-binary discriminator increment/decrement
// dispatch on.
package codec

import (
	"fmt"
	"strconv"
)

// Codec is the capability set a value type T must provide (spec §4.4).
type Codec[T any] interface {
	Encode(v T) []byte
	Decode(b []byte) (T, error)
	// IsNumeric selects ma (arithmetic) wire-path eligibility: only a
	// numeric codec may back Client.Increment/Decrement.
	IsNumeric() bool
}

// DecodeError wraps a codec's failure to parse bytes read back from the
// wire into T.
type DecodeError struct {
	Bytes []byte
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: decode error on %q: %v", e.Bytes, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Bytes is the identity codec: opaque byte sequences, non-numeric.
type Bytes struct{}

func (Bytes) Encode(v []byte) []byte { return v }
func (Bytes) Decode(b []byte) ([]byte, error) {
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
func (Bytes) IsNumeric() bool { return false }

// String codec: UTF-8 text, non-numeric.
type String struct{}

func (String) Encode(v string) []byte          { return []byte(v) }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
func (String) IsNumeric() bool                 { return false }

// Uint64 codec: ASCII decimal on the wire, numeric (eligible for
// increment/decrement).
type Uint64 struct{}

func (Uint64) Encode(v uint64) []byte {
	return strconv.AppendUint(nil, v, 10)
}

func (Uint64) Decode(b []byte) (uint64, error) {
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0, &DecodeError{Bytes: b, Err: err}
	}
	return v, nil
}

func (Uint64) IsNumeric() bool { return true }

// Int64 codec: ASCII decimal (signed) on the wire, numeric.
//
// memcached's own counters are unsigned (they clamp at zero rather than
// go negative), so Int64 is for values the caller stores and reads back
// as signed numbers via plain set/get. It is not for Increment/Decrement,
// which always operate through Uint64's wire representation.
type Int64 struct{}

func (Int64) Encode(v int64) []byte {
	return strconv.AppendInt(nil, v, 10)
}

func (Int64) Decode(b []byte) (int64, error) {
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, &DecodeError{Bytes: b, Err: err}
	}
	return v, nil
}

func (Int64) IsNumeric() bool { return true }
