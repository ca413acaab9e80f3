package meta

import (
	"strconv"
	"time"
)

// Clock returns the current time used to render relative TTLs. Swappable
// in tests; the Client uses coarsetime.Now. The TTL token is computed when
// Encode runs, and the Client calls Encode before it queues the request,
// so the token reflects the time of enqueue, not the time the request is
// written to the wire.
type Clock func() time.Time

// TTL is the three-case sum from spec §3: indefinite, a relative expiry
// computed at send time, or absent (server default, no T flag at all).
type TTL struct {
	kind ttlKind
	at   time.Time
}

type ttlKind byte

const (
	ttlAbsent ttlKind = iota
	ttlIndefinite
	ttlExpiresAt
)

// NoTTL leaves expiry to the server default: no T flag is emitted.
func NoTTL() TTL { return TTL{kind: ttlAbsent} }

// Indefinite never expires: rendered as the wire token T0.
func Indefinite() TTL { return TTL{kind: ttlIndefinite} }

// ExpiresAt expires at the given instant. Rendered by Encode as seconds
// from the Clock's now, clamped to at least 1 (spec §3 "TTL").
func ExpiresAt(at time.Time) TTL { return TTL{kind: ttlExpiresAt, at: at} }

// ExpiresIn is a convenience for ExpiresAt(clock() + d).
func ExpiresIn(d time.Duration, clock Clock) TTL {
	return ExpiresAt(clock().Add(d))
}

func (t TTL) isAbsent() bool { return t.kind == ttlAbsent }

// token renders the T flag's suffix, or ok=false if no T flag should be
// emitted at all.
func (t TTL) token(clock Clock) (tok string, ok bool) {
	switch t.kind {
	case ttlAbsent:
		return "", false
	case ttlIndefinite:
		return "0", true
	case ttlExpiresAt:
		remaining := t.at.Sub(clock())
		seconds := int64(remaining / time.Second)
		if seconds < 1 {
			seconds = 1
		}
		// Beyond 30 days memcached reinterprets a T token as an absolute
		// Unix timestamp, so render as such rather than let the server
		// misread a long relative TTL (spec §3).
		if seconds > longTTLThreshold {
			return strconv.FormatInt(t.at.Unix(), 10), true
		}
		return strconv.FormatInt(seconds, 10), true
	default:
		return "", false
	}
}
