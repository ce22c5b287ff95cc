package random

import "testing"

func TestNewSeed(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	second, err := NewSeed()
	if err != nil {
		t.Fatalf("new seed: %v", err)
	}
	// Equal 64-bit draws are possible but a collision is overwhelmingly more
	// likely to mean a broken source.
	if first == second {
		t.Errorf("consecutive seeds identical: %d", first)
	}
}
