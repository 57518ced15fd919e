package bits

import (
	"errors"
	"strconv"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		bits    Sequence
		invalid bool
	}{
		{Sequence{0}, false},
		{Sequence{1, 0, 1, 1}, false},
		{Sequence{}, true},
		{nil, true},
		{Sequence{0, 2}, true},
		{Sequence{1, -1}, true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			err := Validate(test.bits)
			if test.invalid {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput but found %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	actual, err := Parse("10 01,1")
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	expected := Sequence{1, 0, 0, 1, 1}
	if !actual.Equal(expected) {
		t.Fatalf("expected %v but found %v", expected, actual)
	}

	for _, s := range []string{"", "102", "  "} {
		if _, err := Parse(s); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q but found %v", s, err)
		}
	}
}

func TestHammingDistance(t *testing.T) {
	tests := []struct {
		a, b     Sequence
		expected int
	}{
		{Sequence{0, 1, 1}, Sequence{0, 1, 1}, 0},
		{Sequence{0, 1, 1}, Sequence{1, 1, 0}, 2},
		{Sequence{0, 1}, Sequence{0, 1, 1, 1}, 2},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := HammingDistance(test.a, test.b)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestSparseRoundTrip(t *testing.T) {
	s := Sequence{1, 0, 0, 1, 1, 0, 1}
	v := ToSparse(s)
	if v.Len() != len(s) {
		t.Fatalf("expected length %v but found %v", len(s), v.Len())
	}
	if v.HammingWeight() != s.Weight() {
		t.Fatalf("expected weight %v but found %v", s.Weight(), v.HammingWeight())
	}
	actual := FromSparse(v)
	if !actual.Equal(s) {
		t.Fatalf("expected %v but found %v", s, actual)
	}
}

func TestParity(t *testing.T) {
	if p := (Sequence{1, 1, 1, 0}).Parity(); p != 1 {
		t.Fatalf("expected parity 1 but found %v", p)
	}
	if s := (Sequence{1, 0, 1}).String(); s != "101" {
		t.Fatalf("expected 101 but found %v", s)
	}
}
