package textdist

import "testing"

func TestDistance_Basic(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal", "kitten", "kitten", 0},
		{"both empty", "", "", 0},
		{"empty a", "", "abc", 3},
		{"empty b", "abc", "", 3},
		{"classic", "kitten", "sitting", 3},
		{"single substitution", "cat", "bat", 1},
		{"single insertion", "cat", "cart", 1},
		{"single deletion", "cart", "cat", 1},
		{"unicode runes", "café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "hello"},
		{"abc", "xyz"},
		{"first principles", "second law"},
		{"café", "coffee"},
	}

	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) != Distance(%q, %q)", p[0], p[1], p[1], p[0])
		}
	}
}

func TestDistance_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "ÅÄÖ"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestDistance_DissimilarLengthShortCircuit(t *testing.T) {
	// (8-2)/8 = 0.75 > 0.5, so the longer length is returned directly.
	if got := Distance("ab", "abcdefgh"); got != 8 {
		t.Errorf("Distance(short, long) = %d, want 8", got)
	}

	// (10-5)/10 = 0.5 is not > 0.5, so the true distance is computed.
	if got := Distance("abcde", "abcdefghij"); got != 5 {
		t.Errorf("Distance(%q, %q) = %d, want 5", "abcde", "abcdefghij", got)
	}
}

func BenchmarkDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Distance("first principles thinking", "first principles reasoning")
	}
}
