package channel

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/nathanhack/fecsim/bits"
)

// scripted replays fixed values instead of random ones
type scripted struct {
	values []float64
	next   int
}

func (s *scripted) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func TestTransmitTrace(t *testing.T) {
	tests := []struct {
		codeword bits.Sequence
		p        float64
		draws    []float64
		expected bits.Sequence
		flipped  []int
	}{
		{bits.Sequence{0, 1, 1, 0}, 0.5, []float64{0.9, 0.1, 0.7, 0.2}, bits.Sequence{0, 0, 1, 1}, []int{1, 3}},
		{bits.Sequence{0, 1, 1, 0}, 0, []float64{0}, bits.Sequence{0, 1, 1, 0}, nil},
		{bits.Sequence{0, 1, 1, 0}, 1, []float64{0.999}, bits.Sequence{1, 0, 0, 1}, []int{0, 1, 2, 3}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			original := test.codeword.Clone()
			actual, flipped, err := TransmitTrace(test.codeword, test.p, &scripted{values: test.draws})
			if err != nil {
				t.Fatalf("expected no error but found %v", err)
			}
			if !actual.Equal(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			if !reflect.DeepEqual(flipped, test.flipped) {
				t.Fatalf("expected flipped %v but found %v", test.flipped, flipped)
			}
			if !test.codeword.Equal(original) {
				t.Fatalf("codeword was modified: %v", test.codeword)
			}
		})
	}
}

func TestTransmitInvalid(t *testing.T) {
	src := NewSource(1)
	tests := []struct {
		codeword bits.Sequence
		p        float64
		src      Source
	}{
		{bits.Sequence{0, 1}, -0.1, src},
		{bits.Sequence{0, 1}, 1.1, src},
		{bits.Sequence{0, 1}, math.NaN(), src},
		{bits.Sequence{}, 0.1, src},
		{bits.Sequence{0, 2}, 0.1, src},
		{bits.Sequence{0, 1}, 0.1, nil},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := Transmit(test.codeword, test.p, test.src)
			if !errors.Is(err, bits.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput but found %v", err)
			}
		})
	}
}

func TestTransmitReproducible(t *testing.T) {
	codeword := make(bits.Sequence, 256)
	a, err := Transmit(codeword, 0.3, NewSource(42))
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	b, err := Transmit(codeword, 0.3, NewSource(42))
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected identical output for identical seeds")
	}
	if a.Weight() == 0 {
		t.Fatalf("expected some flipped bits at p=0.3")
	}
}

func TestFlip(t *testing.T) {
	codeword := bits.Sequence{0, 1, 0}
	actual := Flip(codeword, 0, 1)
	expected := bits.Sequence{1, 0, 0}
	if !actual.Equal(expected) {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
	if !codeword.Equal(bits.Sequence{0, 1, 0}) {
		t.Fatalf("codeword was modified: %v", codeword)
	}
}
