package meta

import (
	"testing"
	"time"
)

func TestTTLTokens(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	clock := fixedClock(now)

	if _, ok := NoTTL().token(clock); ok {
		t.Fatal("NoTTL should emit no flag")
	}

	tok, ok := Indefinite().token(clock)
	if !ok || tok != "0" {
		t.Fatalf("Indefinite token = %q, %v", tok, ok)
	}

	tok, ok = ExpiresIn(10*time.Second, clock).token(clock)
	if !ok || tok != "10" {
		t.Fatalf("ExpiresIn(10s) token = %q, %v", tok, ok)
	}

	// Sub-second remaining clamps to 1, never 0 or negative.
	tok, ok = ExpiresAt(now.Add(200 * time.Millisecond)).token(clock)
	if !ok || tok != "1" {
		t.Fatalf("near-expiry token = %q, %v, want 1", tok, ok)
	}
}
