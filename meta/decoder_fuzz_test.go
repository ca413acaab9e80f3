package meta

import (
	"testing"
)

// FuzzDecodeSplitInvariant checks spec §8's "any valid prefix... split
// into arbitrary chunks yields the same Responses" property: decoding a
// wire buffer in one shot must match decoding it fed in two chunks,
// split at the fuzzed byte offset.
func FuzzDecodeSplitInvariant(f *testing.F) {
	f.Add([]byte("HD\r\n"), 1)
	f.Add([]byte("VA 3\r\nfoo\r\n"), 5)
	f.Add([]byte("VA 3\r\nfoo\r\nHD\r\nNF\r\n"), 7)
	f.Add([]byte("EN\r\n"), 0)

	f.Fuzz(func(t *testing.T, wire []byte, split int) {
		whole := decodeAll(t, wire)

		if len(wire) == 0 {
			return
		}
		if split < 0 {
			split = -split
		}
		split %= len(wire) + 1

		var buf []byte
		var cursor int
		var chunked []*Response
		feed := func(chunk []byte) {
			buf = append(buf, chunk...)
			for {
				resp, newCursor, ok, err := Decode(buf, cursor)
				if err != nil {
					return
				}
				if !ok {
					return
				}
				chunked = append(chunked, resp)
				cursor = newCursor
			}
		}
		feed(wire[:split])
		feed(wire[split:])

		if len(chunked) != len(whole) {
			t.Fatalf("split at %d produced %d responses, whole produced %d", split, len(chunked), len(whole))
		}
		for i := range whole {
			if chunked[i].Status != whole[i].Status {
				t.Fatalf("response %d status mismatch: %q vs %q", i, chunked[i].Status, whole[i].Status)
			}
			if string(chunked[i].Data) != string(whole[i].Data) {
				t.Fatalf("response %d data mismatch", i)
			}
		}
	})
}

func decodeAll(t *testing.T, buf []byte) []*Response {
	t.Helper()
	var cursor int
	var out []*Response
	for {
		resp, newCursor, ok, err := Decode(buf, cursor)
		if err != nil || !ok {
			return out
		}
		out = append(out, resp)
		cursor = newCursor
	}
}
