package domain

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	cases := map[string]Square{
		"a1":   {0, 0},
		"h8":   {7, 7},
		"e3":   {2, 4},
		"D3":   {2, 3},
		" c5 ": {4, 2},
	}
	for in, want := range cases {
		got, err := ParseSquare(in)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseSquare(%q) = %v, want %v", in, got, want)
		}
		if _, err := ParseSquare(got.String()); err != nil {
			t.Fatalf("String() of %v does not parse: %v", got, err)
		}
	}
}

func TestParseSquareRejects(t *testing.T) {
	for _, in := range []string{"", "a", "i1", "a0", "a9", "11", "aa", "a10"} {
		if _, err := ParseSquare(in); !errors.Is(err, ErrBadNotation) {
			t.Fatalf("ParseSquare(%q): expected ErrBadNotation, got %v", in, err)
		}
	}
}

func TestParseTranscript(t *testing.T) {
	want := []Square{{2, 4}, {2, 3}, {4, 2}}
	for _, in := range []string{"e3 d3 c5", "e3,d3,c5", "e3d3c5", "e3d3\n c5"} {
		got, err := ParseTranscript(in)
		if err != nil {
			t.Fatalf("ParseTranscript(%q): %v", in, err)
		}
		if len(got) != len(want) {
			t.Fatalf("ParseTranscript(%q) = %v", in, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("ParseTranscript(%q)[%d] = %v, want %v", in, i, got[i], want[i])
			}
		}
	}
	if _, err := ParseTranscript("e3 d"); !errors.Is(err, ErrBadNotation) {
		t.Fatalf("expected ErrBadNotation for odd token, got %v", err)
	}
	if _, err := ParseTranscript("e3z9"); !errors.Is(err, ErrBadNotation) {
		t.Fatalf("expected ErrBadNotation for bad square, got %v", err)
	}
}
