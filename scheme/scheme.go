// Package scheme holds what every encode → transmit → decode scheme shares.
package scheme

import (
	"fmt"

	"github.com/nathanhack/fecsim/bits"
)

//Result is what a decoder reports back. Detected and Corrected describe the
// channel, malformed input is returned as an error instead.
type Result struct {
	Payload   bits.Sequence
	Detected  bool // a parity violation was seen
	Corrected bool // the violation was repaired and the repaired codeword checks clean
}

//Code is a forward error correcting scheme.
type Code interface {
	Name() string
	Encode(payload bits.Sequence) (codeword bits.Sequence, err error)
	Decode(received bits.Sequence) (Result, error)
	EncodedLength(payloadLength int) (int, error)
	MinimumDistance(payloadLength int) int
}

//Detectable is the number of bit errors a code with minimum distance d always detects.
func Detectable(d int) int {
	if d < 1 {
		return 0
	}
	return d - 1
}

//Correctable is the number of bit errors a code with minimum distance d always corrects.
func Correctable(d int) int {
	if d < 1 {
		return 0
	}
	return (d - 1) / 2
}

//CodeRate is payloadLength divided by the encoded length.
func CodeRate(code Code, payloadLength int) (float64, error) {
	n, err := code.EncodedLength(payloadLength)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%v produced an empty codeword for %v bits: %w", code.Name(), payloadLength, bits.ErrInvalidInput)
	}
	return float64(payloadLength) / float64(n), nil
}
