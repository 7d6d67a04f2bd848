package crypto

import "testing"

func TestZero(t *testing.T) {
	b := []byte("sensitive")
	Zero(b)

	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}

	// Must not panic.
	Zero(nil)
}
