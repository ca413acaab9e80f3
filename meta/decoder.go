package meta

import (
	"bytes"
	"strconv"
)

// maxLineLength is the hard cap on a non-value response line (spec §4.2).
const maxLineLength = 2048

// Decode is a pure function over (buffer, cursor): it looks for the next
// complete response frame starting at buf[cursor:] and returns it along
// with the cursor advanced past the consumed bytes.
//
// If the buffer holds no complete frame yet, it returns a nil Response, ok
// == false, and the cursor unchanged. This includes a VA header whose value
// block hasn't fully arrived: the header bytes stay buffered, they are
// not consumed until the whole frame is available (spec §4.2 step 3).
//
// Decode holds no state of its own; the Engine is responsible for calling
// it repeatedly, draining everything decodable out of its inbound buffer
// each time new bytes arrive, and for discarding the consumed prefix.
func Decode(buf []byte, cursor int) (resp *Response, newCursor int, ok bool, err error) {
	rest := buf[cursor:]

	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 {
		if len(rest) > maxLineLength {
			return nil, cursor, false, &MalformedFrameError{Reason: "line exceeds maximum length without terminator"}
		}
		return nil, cursor, false, nil
	}
	if nl > maxLineLength {
		return nil, cursor, false, &MalformedFrameError{Reason: "line exceeds maximum length"}
	}

	line := rest[:nl]
	line = bytes.TrimSuffix(line, []byte("\r"))

	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return nil, cursor, false, &MalformedFrameError{Reason: "empty response line"}
	}

	status := Status(fields[0])
	flagFields := fields[1:]

	if status != StatusVA {
		echoes, perr := parseFlagEchoes(flagFields)
		if perr != nil {
			return nil, cursor, false, perr
		}
		resp = &Response{Status: status, Flags: echoes}
		return resp, cursor + nl + 1, true, nil
	}

	// VA <size> <flags>*
	if len(flagFields) == 0 {
		return nil, cursor, false, &MalformedFrameError{Reason: "VA response missing size"}
	}
	size, serr := strconv.Atoi(string(flagFields[0]))
	if serr != nil || size < 0 {
		return nil, cursor, false, &MalformedFrameError{Reason: "VA response has invalid size"}
	}
	echoes, perr := parseFlagEchoes(flagFields[1:])
	if perr != nil {
		return nil, cursor, false, perr
	}

	headerEnd := cursor + nl + 1
	valueEnd := headerEnd + size + 2 // + trailing \r\n
	if valueEnd > len(buf) {
		// Value block hasn't fully arrived yet: leave the header
		// unconsumed so the next call re-parses it once more data is
		// buffered.
		return nil, cursor, false, nil
	}

	data := make([]byte, size)
	copy(data, buf[headerEnd:headerEnd+size])

	resp = &Response{Status: status, Flags: echoes, Data: data}
	return resp, valueEnd, true, nil
}

func parseFlagEchoes(fields [][]byte) (FlagEchoes, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	echoes := make(FlagEchoes, 0, len(fields))
	for _, f := range fields {
		if len(f) == 0 {
			return nil, &MalformedFrameError{Reason: "empty flag token"}
		}
		echoes = append(echoes, FlagEcho{Type: f[0], Token: string(f[1:])})
	}
	return echoes, nil
}
