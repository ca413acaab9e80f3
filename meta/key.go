package meta

// ValidateKey checks a key against spec §3: 1-250 bytes, no whitespace or
// control characters. Called by the Encoder before anything is written,
// so an invalid key never reaches the wire.
func ValidateKey(key string) error {
	if len(key) < MinKeyLength {
		return &InvalidKeyError{Reason: "key is empty"}
	}
	if len(key) > MaxKeyLength {
		return &InvalidKeyError{Reason: "key exceeds 250 bytes"}
	}
	for i := 0; i < len(key); i++ {
		b := key[i]
		if b <= ' ' || b == 127 {
			return &InvalidKeyError{Reason: "key contains whitespace or control characters"}
		}
	}
	return nil
}
