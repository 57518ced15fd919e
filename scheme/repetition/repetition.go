// Package repetition sends every payload bit r times and decodes by majority
// vote. With minimum distance r it corrects (r-1)/2 flips per payload bit.
package repetition

import (
	"fmt"
	"math"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/scheme"
	"gonum.org/v1/gonum/stat/combin"
)

//Layout decides where the copies of a payload bit are placed in the codeword.
type Layout int

const (
	//Contiguous places the r copies of bit i at [i*r, (i+1)*r).
	Contiguous Layout = iota
	//Block repeats the whole payload r times, copy k of bit i is at k*len(payload)+i.
	Block
)

func (l Layout) String() string {
	switch l {
	case Contiguous:
		return "contiguous"
	case Block:
		return "block"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

//ParseLayout is the inverse of Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "contiguous", "":
		return Contiguous, nil
	case "block":
		return Block, nil
	}
	return 0, fmt.Errorf("unknown layout %q: %w", s, bits.ErrInvalidInput)
}

type Code struct {
	Repetitions int
	Layout      Layout
}

//Result adds which received bits were outvoted.
type Result struct {
	scheme.Result
	CorrectedPositions []int // indices into the received codeword
	Ties               []int // payload positions whose vote was a tie (even repetitions only)
}

func (c Code) Name() string {
	return fmt.Sprintf("repetition(r=%v,%v)", c.Repetitions, c.Layout)
}

func (c Code) validate() error {
	if c.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be > 0 but found %v: %w", c.Repetitions, bits.ErrInvalidInput)
	}
	if c.Layout != Contiguous && c.Layout != Block {
		return fmt.Errorf("unknown layout %v: %w", c.Layout, bits.ErrInvalidInput)
	}
	return nil
}

// index of copy k of payload bit i
func (c Code) index(i, k, payloadLength int) int {
	if c.Layout == Block {
		return k*payloadLength + i
	}
	return i*c.Repetitions + k
}

func (c Code) Encode(payload bits.Sequence) (bits.Sequence, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if err := bits.Validate(payload); err != nil {
		return nil, err
	}

	codeword := make(bits.Sequence, len(payload)*c.Repetitions)
	for i, b := range payload {
		for k := 0; k < c.Repetitions; k++ {
			codeword[c.index(i, k, len(payload))] = b
		}
	}
	return codeword, nil
}

func (c Code) Decode(received bits.Sequence) (scheme.Result, error) {
	result, err := c.DecodeVotes(received)
	return result.Result, err
}

//DecodeVotes is Decode with the voting details kept.
func (c Code) DecodeVotes(received bits.Sequence) (Result, error) {
	if err := c.validate(); err != nil {
		return Result{}, err
	}
	if err := bits.Validate(received); err != nil {
		return Result{}, err
	}
	if len(received)%c.Repetitions != 0 {
		return Result{}, fmt.Errorf("received length %v is not a multiple of %v repetitions: %w", len(received), c.Repetitions, bits.ErrInvalidInput)
	}

	m := len(received) / c.Repetitions
	result := Result{}
	result.Payload = make(bits.Sequence, m)
	for i := 0; i < m; i++ {
		ones := 0
		for k := 0; k < c.Repetitions; k++ {
			ones += received[c.index(i, k, m)]
		}
		if 2*ones == c.Repetitions {
			result.Ties = append(result.Ties, i)
		}
		if ones > c.Repetitions/2 {
			result.Payload[i] = 1
		}

		for k := 0; k < c.Repetitions; k++ {
			j := c.index(i, k, m)
			if received[j] != result.Payload[i] {
				result.CorrectedPositions = append(result.CorrectedPositions, j)
			}
		}
	}

	result.Detected = len(result.CorrectedPositions) > 0
	result.Corrected = result.Detected && len(result.Ties) == 0
	return result, nil
}

func (c Code) EncodedLength(payloadLength int) (int, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	if payloadLength <= 0 {
		return 0, fmt.Errorf("payload length must be > 0 but found %v: %w", payloadLength, bits.ErrInvalidInput)
	}
	return payloadLength * c.Repetitions, nil
}

func (c Code) MinimumDistance(int) int {
	return c.Repetitions
}

func validateProbability(repetitions int, p float64) error {
	if repetitions <= 0 {
		return fmt.Errorf("repetitions must be > 0 but found %v: %w", repetitions, bits.ErrInvalidInput)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("crossover probability must be in [0,1] but found %v: %w", p, bits.ErrInvalidInput)
	}
	return nil
}

//BlockErrorProbability is the probability that a majority of the repetitions of
// one bit are flipped: sum over k from ceil((r+1)/2) to r of C(r,k) p^k (1-p)^(r-k).
func BlockErrorProbability(repetitions int, p float64) (float64, error) {
	if err := validateProbability(repetitions, p); err != nil {
		return 0, err
	}

	pErr := 0.0
	for k := repetitions/2 + 1; k <= repetitions; k++ {
		pErr += float64(combin.Binomial(repetitions, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(repetitions-k))
	}
	return pErr, nil
}

//SuccessProbability is the probability that a messageLength bit payload decodes
// without a single wrong bit.
func SuccessProbability(repetitions int, p float64, messageLength int) (float64, error) {
	if messageLength < 0 {
		return 0, fmt.Errorf("message length must be >= 0 but found %v: %w", messageLength, bits.ErrInvalidInput)
	}
	pErr, err := BlockErrorProbability(repetitions, p)
	if err != nil {
		return 0, err
	}
	return math.Pow(1-pErr, float64(messageLength)), nil
}
