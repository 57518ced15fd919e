// Package channel simulates a binary symmetric channel: every bit is flipped
// independently with a fixed crossover probability.
package channel

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/nathanhack/fecsim/bits"
)

//Source is where the channel draws its uniform [0,1) values from.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

//NewSource returns a seeded Source so runs can be replayed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

//Transmit sends codeword through the channel and returns what was received.
// The codeword is not modified.
func Transmit(codeword bits.Sequence, crossoverProbability float64, src Source) (bits.Sequence, error) {
	received, _, err := TransmitTrace(codeword, crossoverProbability, src)
	return received, err
}

//TransmitTrace is Transmit but also returns the indices of the flipped bits.
func TransmitTrace(codeword bits.Sequence, crossoverProbability float64, src Source) (received bits.Sequence, flipped []int, err error) {
	if math.IsNaN(crossoverProbability) || crossoverProbability < 0 || crossoverProbability > 1 {
		return nil, nil, fmt.Errorf("crossover probability must be in [0,1] but found %v: %w", crossoverProbability, bits.ErrInvalidInput)
	}
	if src == nil {
		return nil, nil, fmt.Errorf("a random source is required: %w", bits.ErrInvalidInput)
	}
	if err := bits.Validate(codeword); err != nil {
		return nil, nil, err
	}

	received = make(bits.Sequence, len(codeword))
	for i, b := range codeword {
		if src.Float64() < crossoverProbability {
			received[i] = 1 - b
			flipped = append(flipped, i)
			continue
		}
		received[i] = b
	}
	return received, flipped, nil
}

//Flip returns a copy of codeword with the bits at indices inverted.
func Flip(codeword bits.Sequence, indices ...int) bits.Sequence {
	result := codeword.Clone()
	for _, i := range indices {
		result[i] = 1 - result[i]
	}
	return result
}
