package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64RoundTrip(t *testing.T) {
	var c Uint64
	require.True(t, c.IsNumeric())
	b := c.Encode(101)
	require.Equal(t, "101", string(b))
	v, err := c.Decode(b)
	require.NoError(t, err)
	require.Equal(t, uint64(101), v)
}

func TestUint64DecodeError(t *testing.T) {
	var c Uint64
	_, err := c.Decode([]byte("not-a-number"))
	require.Error(t, err)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestBytesRoundTrip(t *testing.T) {
	var c Bytes
	require.False(t, c.IsNumeric())
	in := []byte("hello")
	out, err := c.Decode(c.Encode(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestStringRoundTrip(t *testing.T) {
	var c String
	require.False(t, c.IsNumeric())
	out, err := c.Decode(c.Encode("hello"))
	require.NoError(t, err)
	require.Equal(t, "hello", out)
}

func TestInt64RoundTrip(t *testing.T) {
	var c Int64
	require.True(t, c.IsNumeric())
	out, err := c.Decode(c.Encode(-42))
	require.NoError(t, err)
	require.Equal(t, int64(-42), out)
}
