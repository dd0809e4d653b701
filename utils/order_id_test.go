package utils

import (
	"strings"
	"testing"
)

func TestGenerateOrderIDPrefix(t *testing.T) {
	id := GenerateOrderID(42)
	if !strings.HasPrefix(id, "EMD-") {
		t.Fatalf("order id %q missing prefix", id)
	}
	if !strings.HasSuffix(id, "42") {
		t.Fatalf("order id %q should end with the user id", id)
	}
}

func TestGenerateOrderIDConcurrent(t *testing.T) {
	const n = 200
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() { ids <- GenerateOrderID(7) }()
	}
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		seen[<-ids] = true
	}
	// Nano timestamp plus random suffix should essentially never collide
	// across a small burst.
	if len(seen) < n-2 {
		t.Fatalf("too many collisions: %d unique out of %d", len(seen), n)
	}
}
