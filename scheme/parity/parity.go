// Package parity is the single parity bit scheme. With a minimum distance of 2
// it detects any odd number of flips and corrects nothing.
package parity

import (
	"fmt"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/scheme"
)

const minimumDistance = 2

type Code struct{}

func (Code) Name() string {
	return "parity"
}

//Encode appends the parity of payload.
func (Code) Encode(payload bits.Sequence) (bits.Sequence, error) {
	if err := bits.Validate(payload); err != nil {
		return nil, err
	}
	codeword := make(bits.Sequence, len(payload), len(payload)+1)
	copy(codeword, payload)
	return append(codeword, payload.Parity()), nil
}

//Decode strips the parity bit. Detected is set when the overall parity is odd.
func (Code) Decode(received bits.Sequence) (scheme.Result, error) {
	if err := bits.Validate(received); err != nil {
		return scheme.Result{}, err
	}
	if len(received) < 2 {
		return scheme.Result{}, fmt.Errorf("a parity codeword needs at least 2 bits but found %v: %w", len(received), bits.ErrInvalidInput)
	}

	return scheme.Result{
		Payload:  received[:len(received)-1].Clone(),
		Detected: received.Parity() != 0,
	}, nil
}

func (Code) EncodedLength(payloadLength int) (int, error) {
	if payloadLength <= 0 {
		return 0, fmt.Errorf("payload length must be > 0 but found %v: %w", payloadLength, bits.ErrInvalidInput)
	}
	return payloadLength + 1, nil
}

func (Code) MinimumDistance(int) int {
	return minimumDistance
}
