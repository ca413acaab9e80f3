package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestEncodeSet(t *testing.T) {
	req := NewSetRequest("bar", []byte("foo"), ModeNone, NoTTL())
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "ms bar 3\r\nfoo\r\n", string(buf))
}

func TestEncodeGet(t *testing.T) {
	req := NewGetRequest("bar")
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "mg bar v\r\n", string(buf))
}

func TestEncodeDelete(t *testing.T) {
	req := NewDeleteRequest("bar")
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "md bar\r\n", string(buf))
}

func TestEncodeAdd(t *testing.T) {
	req := NewSetRequest("adds", []byte("foo"), ModeAdd, NoTTL())
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "ms adds 3 ME\r\nfoo\r\n", string(buf))
}

func TestEncodeArithmeticIncrement(t *testing.T) {
	initial := uint64(5)
	req := NewArithmeticRequest("inc", ModeIncrement, 100, &initial, NoTTL())
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "ma inc v MI J5 D100\r\n", string(buf))
}

func TestEncodeIndefiniteTTL(t *testing.T) {
	req := NewSetRequest("bar", []byte("foo"), ModeNone, Indefinite())
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "ms bar 3 T0\r\nfoo\r\n", string(buf))
}

func TestEncodeLongTTLRendersAsAbsoluteTime(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	ttl := ExpiresIn(30*24*time.Hour+time.Second, fixedClock(now))
	req := NewSetRequest("bar", []byte("foo"), ModeNone, ttl)
	buf, err := Encode(nil, req, DefaultMaxValueSize, fixedClock(now))
	require.NoError(t, err)
	require.Equal(t, "ms bar 3 T3592001\r\nfoo\r\n", string(buf))
}

func TestEncodeShortTTLRendersAsRelativeSeconds(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	ttl := ExpiresIn(90*time.Second, fixedClock(now))
	req := NewSetRequest("bar", []byte("foo"), ModeNone, ttl)
	buf, err := Encode(nil, req, DefaultMaxValueSize, fixedClock(now))
	require.NoError(t, err)
	require.Equal(t, "ms bar 3 T90\r\nfoo\r\n", string(buf))
}

func TestEncodeInvalidKey(t *testing.T) {
	_, err := Encode(nil, NewGetRequest(""), DefaultMaxValueSize, time.Now)
	require.Error(t, err)
	var ike *InvalidKeyError
	require.ErrorAs(t, err, &ike)
}

func TestEncodeKeyWithWhitespaceRejected(t *testing.T) {
	_, err := Encode(nil, NewGetRequest("has space"), DefaultMaxValueSize, time.Now)
	require.Error(t, err)
}

func TestEncodeValueTooLarge(t *testing.T) {
	req := NewSetRequest("bar", make([]byte, 10), ModeNone, NoTTL())
	_, err := Encode(nil, req, 5, time.Now)
	require.Error(t, err)
	var vtl *ValueTooLargeError
	require.ErrorAs(t, err, &vtl)
}

func TestEncodeTouch(t *testing.T) {
	req := NewTouchRequest("bar", Indefinite())
	buf, err := Encode(nil, req, DefaultMaxValueSize, time.Now)
	require.NoError(t, err)
	require.Equal(t, "mg bar T0\r\n", string(buf))
}
