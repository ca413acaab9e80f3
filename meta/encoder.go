package meta

import (
	"bytes"
	"strconv"
)

// Encode renders req to wire bytes per spec §4.1, appending to dst and
// returning the extended slice. Flag order is the fixed table order from
// spec §3 (v, T, M<mode>, J, D), stable and deterministic, which is what
// makes the byte-exact tests in spec §8 possible.
//
// maxValueSize is the configured limit (spec §4.1, default
// DefaultMaxValueSize); clock renders any relative TTL.
//
// Returns InvalidKeyError or ValueTooLargeError synchronously; on error
// dst is returned unmodified and nothing should be written to a
// transport.
func Encode(dst []byte, req *Request, maxValueSize int, clock Clock) ([]byte, error) {
	if err := ValidateKey(req.Key); err != nil {
		return dst, err
	}
	if req.Command == CmdSet && len(req.Data) > maxValueSize {
		return dst, &ValueTooLargeError{Size: len(req.Data), Max: maxValueSize}
	}

	buf := bytes.NewBuffer(dst)
	buf.WriteString(req.Command.verb())
	buf.WriteByte(' ')
	buf.WriteString(req.Key)

	if req.Command == CmdSet {
		buf.WriteByte(' ')
		buf.WriteString(strconv.Itoa(len(req.Data)))
	}

	writeFlags(buf, req, clock)
	buf.WriteString(crlf)

	if req.Command == CmdSet {
		buf.Write(req.Data)
		buf.WriteString(crlf)
	}

	return buf.Bytes(), nil
}

// writeFlags appends the space-separated flag list in the fixed table
// order: v, T<ttl>, ME<mode>/M<mode>, J<initial>, D<delta>.
func writeFlags(buf *bytes.Buffer, req *Request, clock Clock) {
	if req.ReturnValue {
		buf.WriteString(" v")
	}

	if tok, ok := req.TTL.token(clock); ok {
		buf.WriteString(" T")
		buf.WriteString(tok)
	}

	if req.Command == CmdSet || req.Command == CmdArithmetic {
		if m := req.Mode.token(); m != "" {
			buf.WriteString(" M")
			buf.WriteString(m)
		}
	}

	if req.Command == CmdArithmetic {
		if req.HasInitial {
			buf.WriteString(" J")
			buf.WriteString(strconv.FormatUint(req.InitialValue, 10))
		}
		if req.HasDelta {
			buf.WriteString(" D")
			buf.WriteString(strconv.FormatUint(req.Delta, 10))
		}
	}
}
