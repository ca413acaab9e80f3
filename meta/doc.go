// Package meta implements the wire format of memcached's text meta
// protocol (the mg/ms/md/ma command family): the Request/Response data
// model, key validation, TTL rendering, and a byte-exact Encoder paired
// with an incremental, allocation-light Decoder.
//
// The package has no notion of a connection. Encode renders a Request to
// bytes; Decode is a pure function over an accumulating byte buffer that
// yields zero or more Responses as frames complete, tolerating partial
// reads and coalesced reads alike. Pairing a Decoder's output with the
// Request that produced it, and everything else about owning a socket,
// is the engine package's job.
//
// # Requests
//
//	req := meta.NewSetRequest("mykey", []byte("hello"), meta.ModeNone, meta.ExpiresIn(60*time.Second, time.Now))
//	buf, err := meta.Encode(nil, req, meta.DefaultMaxValueSize, time.Now)
//
// # Responses
//
//	resp, cursor, ok, err := meta.Decode(buf, 0)
//	if err != nil {
//	    // MalformedFrameError: terminal, the connection must be closed.
//	}
//	if !ok {
//	    // not enough bytes yet; buffer more and retry from the same cursor
//	}
package meta
