package meta

// Request is the tagged union of the four command shapes the meta
// protocol's client side sends (spec §3 "Request" / §9 design note 1). A
// flat struct with a Command discriminator plays the role a closed sum
// type would in a language with one; the Encoder's job is the match over
// Command that renders it to wire bytes.
type Request struct {
	Command Command

	// Key is validated by the Encoder before anything is written. See
	// ValidateKey.
	Key string

	// Data is the value payload, CmdSet only.
	Data []byte

	// Mode selects the CmdSet/CmdArithmetic variant; ModeNone for plain
	// set, plain get, delete, and plain increment.
	Mode Mode

	// ReturnValue requests a value block in the response (the v flag).
	// Meaningful for CmdGet (a get without it is the touch path) and
	// CmdArithmetic (to get the post-operation value back).
	ReturnValue bool

	// TTL is present for CmdSet and CmdArithmetic (vivify TTL), and, on
	// the touch path, for CmdGet without ReturnValue.
	TTL TTL

	// Delta and InitialValue are CmdArithmetic-only.
	Delta        uint64
	HasDelta     bool
	InitialValue uint64
	HasInitial   bool
}

// NewSetRequest builds a set-family request. mode distinguishes plain set
// from add/replace/append/prepend.
func NewSetRequest(key string, data []byte, mode Mode, ttl TTL) *Request {
	return &Request{Command: CmdSet, Key: key, Data: data, Mode: mode, TTL: ttl}
}

// NewGetRequest builds a get request with the value flag set.
func NewGetRequest(key string) *Request {
	return &Request{Command: CmdGet, Key: key, ReturnValue: true}
}

// NewTouchRequest builds the touch path: mg with a TTL flag and no value
// flag (spec §9 open question (c)).
func NewTouchRequest(key string, ttl TTL) *Request {
	return &Request{Command: CmdGet, Key: key, TTL: ttl}
}

// NewDeleteRequest builds a delete request.
func NewDeleteRequest(key string) *Request {
	return &Request{Command: CmdDelete, Key: key}
}

// NewArithmeticRequest builds an increment/decrement request. mode must
// be ModeIncrement or ModeDecrement.
func NewArithmeticRequest(key string, mode Mode, delta uint64, initial *uint64, ttl TTL) *Request {
	req := &Request{
		Command:     CmdArithmetic,
		Key:         key,
		Mode:        mode,
		ReturnValue: true,
		Delta:       delta,
		HasDelta:    true,
		TTL:         ttl,
	}
	if initial != nil {
		req.InitialValue = *initial
		req.HasInitial = true
	}
	return req
}
