package meta

// FlagEcho is a single flag token echoed back by the server: a type
// character plus its optional token, e.g. c123 parses to {'c', "123"}.
type FlagEcho struct {
	Type  byte
	Token string
}

// FlagEchoes is an ordered collection of response flag echoes.
type FlagEchoes []FlagEcho

// Get returns the token of the first echo of the given type.
func (f FlagEchoes) Get(t byte) (string, bool) {
	for _, e := range f {
		if e.Type == t {
			return e.Token, true
		}
	}
	return "", false
}

// Has reports whether an echo of the given type is present.
func (f FlagEchoes) Has(t byte) bool {
	_, ok := f.Get(t)
	return ok
}

// Response is a parsed meta-protocol response line (spec §3 "Response").
// It is a pure data container: the Decoder produces these, the facade
// interprets Status per the command it paired the response with.
type Response struct {
	// Status is the two-letter return code: HD, NS, EX, NF, VA, EN.
	Status Status

	// Flags holds every flag token echoed after the status.
	Flags FlagEchoes

	// Data is the value block for a VA response, and nil for every other
	// status. A zero-length VA value has Data == []byte{}, never nil;
	// HasValue tells a VA response apart from the others.
	Data []byte
}

// HasValue reports whether this response carries a value block.
func (r *Response) HasValue() bool {
	return r.Status == StatusVA
}
