package ledger

import (
	"strings"
	"testing"
)

func TestRandomStringUsesAlphabet(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := randomString(alphabet, referralCodeLength)
		if err != nil {
			t.Fatalf("randomString: %v", err)
		}
		if len(code) != referralCodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), referralCodeLength)
		}
		for _, c := range code {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("code %q contains %q outside alphabet", code, c)
			}
		}
		seen[code] = true
	}
	// 50 draws from 36^8 colliding down to a handful would mean a broken RNG.
	if len(seen) < 45 {
		t.Fatalf("expected distinct codes, got %d unique out of 50", len(seen))
	}
}
