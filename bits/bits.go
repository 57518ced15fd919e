package bits

import (
	"errors"
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

// ErrInvalidInput is returned (wrapped) whenever a caller hands in malformed
// bits or parameters. Channel induced errors are never reported with it.
var ErrInvalidInput = errors.New("invalid input")

//Sequence is an ordered list of bits, each 0 or 1.
type Sequence []int

//Validate checks that bits is non-empty and only holds 0s and 1s.
func Validate(bits Sequence) error {
	if len(bits) == 0 {
		return fmt.Errorf("bit sequence must not be empty: %w", ErrInvalidInput)
	}
	for i, b := range bits {
		if b != 0 && b != 1 {
			return fmt.Errorf("bit %v has value %v, only 0 and 1 allowed: %w", i, b, ErrInvalidInput)
		}
	}
	return nil
}

//Parse reads a string of '0' and '1' runes, ignoring spaces and commas.
func Parse(s string) (Sequence, error) {
	result := make(Sequence, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			result = append(result, 0)
		case '1':
			result = append(result, 1)
		case ' ', ',':
		default:
			return nil, fmt.Errorf("character %q at %v is not a bit: %w", r, i, ErrInvalidInput)
		}
	}
	if err := Validate(result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s Sequence) Clone() Sequence {
	return slices.Clone(s)
}

func (s Sequence) Equal(o Sequence) bool {
	return slices.Equal(s, o)
}

//Weight is the number of ones.
func (s Sequence) Weight() int {
	w := 0
	for _, b := range s {
		w += b
	}
	return w
}

//Parity returns the weight mod 2.
func (s Sequence) Parity() int {
	return s.Weight() % 2
}

//HammingDistance calculates number of bits different.
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistance(a, b Sequence) int {
	min := len(a)
	max := len(b)
	if min > max {
		min, max = max, min
	}

	count := 0
	for i := 0; i < min; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return max - min + count
}

func (s Sequence) String() string {
	sb := strings.Builder{}
	for _, b := range s {
		sb.WriteString(fmt.Sprint(b))
	}
	return sb.String()
}

//ToSparse copies the sequence into a sparse GF(2) vector.
func ToSparse(s Sequence) mat.SparseVector {
	return mat.CSRVec(len(s), s...)
}

//FromSparse copies a sparse GF(2) vector into a new sequence.
func FromSparse(v mat.SparseVector) Sequence {
	result := make(Sequence, v.Len())
	for _, i := range v.NonzeroArray() {
		result[i] = 1
	}
	return result
}
