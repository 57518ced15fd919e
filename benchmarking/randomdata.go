package benchmarking

import (
	"math/rand"

	"github.com/nathanhack/fecsim/bits"
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int, rng *rand.Rand) bits.Sequence {
	message := make(bits.Sequence, len)
	for i := 0; i < len; i++ {
		message[i] = rng.Intn(2)
	}
	return message
}

// RandomMessageOnesCount creates a random message of length len with a hamming weight equal to onesCount
func RandomMessageOnesCount(len int, onesCount int, rng *rand.Rand) bits.Sequence {
	message := make(bits.Sequence, len)
	for message.Weight() < onesCount && message.Weight() < len {
		message[rng.Intn(len)] = 1
	}
	return message
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,len(input)) number of bits.
func RandomFlipBitCount(input bits.Sequence, numberOfBitsToFlip int, rng *rand.Rand) bits.Sequence {
	output := input.Clone()

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < len(input) {
		flip[rng.Intn(len(input))] = true
	}

	for i := range flip {
		output[i] = 1 - output[i]
	}
	return output
}
