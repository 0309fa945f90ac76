package text

import "testing"

func TestCountGraphemes_CombiningSequenceIsOneCluster(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT is one grapheme cluster even though it
	// is two code points.
	s := "é"
	if n := CountGraphemes(s); n != 1 {
		t.Fatalf("CountGraphemes(%q) = %d, want 1", s, n)
	}
}

func TestCountGraphemes_FamilyEmojiIsOneCluster(t *testing.T) {
	// MAN + ZWJ + WOMAN + ZWJ + GIRL + ZWJ + BOY, a single extended
	// grapheme cluster under UAX #29.
	s := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	if n := CountGraphemes(s); n != 1 {
		t.Fatalf("CountGraphemes(family emoji) = %d, want 1", n)
	}
}

func TestIsGraphemeBoundary(t *testing.T) {
	s := "a" + "é" + "b"
	if !IsGraphemeBoundary(s, 0) || !IsGraphemeBoundary(s, len(s)) {
		t.Fatal("start and end must always be boundaries")
	}
	if !IsGraphemeBoundary(s, 1) {
		t.Fatal("offset between 'a' and the combining sequence should be a boundary")
	}
	// Offset 2 is between 'e' and the combining acute accent: inside the
	// cluster, not a boundary.
	if IsGraphemeBoundary(s, 2) {
		t.Fatal("offset inside a combining sequence must not be a boundary")
	}
}

func TestGraphemeOffsets(t *testing.T) {
	s := "ab"
	offsets := GraphemeOffsets(s)
	want := []int{0, 1, 2}
	if len(offsets) != len(want) {
		t.Fatalf("got %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("got %v, want %v", offsets, want)
		}
	}
}
