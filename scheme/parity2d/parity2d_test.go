package parity2d

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/channel"
	"github.com/nathanhack/fecsim/scheme"
	"github.com/nathanhack/fecsim/scheme/shape"
	"github.com/stretchr/testify/require"
)

var _ scheme.Code = Code{}

var message16 = bits.Sequence{1, 0, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1}

func TestEncode(t *testing.T) {
	tests := []struct {
		payload  bits.Sequence
		expected bits.Sequence
	}{
		{message16, bits.Sequence{
			1, 0, 0, 1, 0,
			1, 0, 1, 1, 1,
			0, 0, 1, 1, 0,
			0, 0, 1, 1, 0,
			0, 0, 1, 0, 1,
		}},
		{bits.Sequence{1, 1}, bits.Sequence{
			1, 1,
			1, 1,
			0, 0,
		}},
		{bits.Sequence{1, 0, 1, 1}, bits.Sequence{
			1, 0, 1,
			1, 1, 0,
			0, 1, 1,
		}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Code{}.Encode(test.payload)
			require.NoError(t, err)
			require.Equal(t, test.expected, actual)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	src := channel.NewSource(7)
	for n := 2; n <= 64; n += 2 {
		payload := make(bits.Sequence, n)
		for i := range payload {
			if src.Float64() < 0.5 {
				payload[i] = 1
			}
		}

		codeword, err := Code{}.Encode(payload)
		if errors.Is(err, bits.ErrInvalidInput) {
			// lengths whose encoded matrix cannot be recovered from the length alone
			continue
		}
		require.NoError(t, err, "n=%v", n)

		result, err := Code{}.DecodeSyndrome(codeword)
		require.NoError(t, err, "n=%v", n)
		require.Equal(t, payload, result.Payload, "n=%v", n)
		require.False(t, result.Detected)
		require.False(t, result.Corrected)
		require.Equal(t, StatusClean, result.Status)
		require.Nil(t, result.Correction)
	}
}

func TestEveryEncodableLengthRoundTrips(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 24} {
		length, err := Code{}.EncodedLength(n)
		require.NoError(t, err, "n=%v", n)
		es, err := shape.Encoded(length)
		require.NoError(t, err, "n=%v", n)
		require.Equal(t, n, es.Shrink().Len(), "n=%v", n)
	}
}

func TestSingleFlipsAreCorrected(t *testing.T) {
	for _, payload := range []bits.Sequence{message16, {1, 0}, {0, 1, 1, 0, 1, 0}} {
		codeword, err := Code{}.Encode(payload)
		require.NoError(t, err)

		for i := range codeword {
			result, err := Code{}.DecodeSyndrome(channel.Flip(codeword, i))
			require.NoError(t, err)
			require.True(t, result.Detected, "flip %v", i)
			require.True(t, result.Corrected, "flip %v", i)
			require.Equal(t, StatusCorrected, result.Status)
			require.Equal(t, payload, result.Payload, "flip %v", i)
			require.Equal(t, Coordinate{Row: i / result.Shape.Cols, Col: i % result.Shape.Cols}, *result.Correction)
			require.True(t, result.Residual.IsZero())
		}
	}
}

func TestSameRowDoubleFlipsAreDetectedNotCorrected(t *testing.T) {
	codeword, err := Code{}.Encode(message16)
	require.NoError(t, err)
	es := shape.Shape{Rows: 5, Cols: 5}

	for r := 0; r < es.Rows; r++ {
		for c1 := 0; c1 < es.Cols; c1++ {
			for c2 := c1 + 1; c2 < es.Cols; c2++ {
				received := channel.Flip(codeword, r*es.Cols+c1, r*es.Cols+c2)
				result, err := Code{}.DecodeSyndrome(received)
				require.NoError(t, err)
				require.True(t, result.Detected)
				require.False(t, result.Corrected)
				require.Equal(t, StatusUncorrectable, result.Status)
				require.Empty(t, result.Syndrome.BadRows)
				require.Equal(t, []int{c1, c2}, result.Syndrome.BadCols)
				require.Empty(t, result.Candidates)
				require.Nil(t, result.Correction)
			}
		}
	}
}

func TestNoDoubleFlipIsReportedCorrected(t *testing.T) {
	codeword, err := Code{}.Encode(message16)
	require.NoError(t, err)

	for i := range codeword {
		for j := i + 1; j < len(codeword); j++ {
			result, err := Code{}.DecodeSyndrome(channel.Flip(codeword, i, j))
			require.NoError(t, err)
			require.True(t, result.Detected, "flips %v %v", i, j)
			require.False(t, result.Corrected, "flips %v %v", i, j)
			require.Nil(t, result.Correction, "flips %v %v", i, j)

			sameRow := i/5 == j/5
			sameCol := i%5 == j%5
			if !sameRow && !sameCol {
				require.Len(t, result.Candidates, 4)
				require.Contains(t, result.Candidates, Coordinate{Row: i / 5, Col: i % 5})
				require.Contains(t, result.Candidates, Coordinate{Row: j / 5, Col: j % 5})
			}
		}
	}
}

func TestTripleFlipsAreDetected(t *testing.T) {
	codeword, err := Code{}.Encode(bits.Sequence{1, 0, 1, 1})
	require.NoError(t, err)

	for i := range codeword {
		for j := i + 1; j < len(codeword); j++ {
			for k := j + 1; k < len(codeword); k++ {
				result, err := Code{}.DecodeSyndrome(channel.Flip(codeword, i, j, k))
				require.NoError(t, err)
				require.True(t, result.Detected, "flips %v %v %v", i, j, k)
				if result.Corrected {
					// three flips on a rectangle's corners look like a single flip on the fourth
					require.Equal(t, StatusCorrected, result.Status)
					require.True(t, result.Residual.IsZero())
				}
			}
		}
	}
}

func TestExplicitShape(t *testing.T) {
	payload := make(bits.Sequence, 22)
	payload[3], payload[17] = 1, 1

	_, err := Code{}.Encode(payload)
	require.ErrorIs(t, err, bits.ErrInvalidInput)

	code := Code{Shape: shape.Shape{Rows: 11, Cols: 2}}
	codeword, err := code.Encode(payload)
	require.NoError(t, err)
	require.Len(t, codeword, 36)

	result, err := code.DecodeSyndrome(channel.Flip(codeword, 10))
	require.NoError(t, err)
	require.Equal(t, shape.Shape{Rows: 12, Cols: 3}, result.Shape)
	require.True(t, result.Corrected)
	require.Equal(t, payload, result.Payload)

	_, err = code.Decode(codeword[:35])
	require.ErrorIs(t, err, bits.ErrInvalidInput)
	_, err = code.Encode(payload[:20])
	require.ErrorIs(t, err, bits.ErrInvalidInput)
}

func TestInvalid(t *testing.T) {
	for _, payload := range []bits.Sequence{{}, {0, 2}, {1, 0, 1}} {
		_, err := Code{}.Encode(payload)
		require.ErrorIs(t, err, bits.ErrInvalidInput, "%v", payload)
	}
	for _, received := range []bits.Sequence{{}, {0, 2}, {1, 0, 1}, {1, 0, 1, 1}, {1, 0, 1, 1, 0, 1, 0}} {
		_, err := Code{}.Decode(received)
		require.ErrorIs(t, err, bits.ErrInvalidInput, "%v", received)
	}
}

func TestMinimumDistance(t *testing.T) {
	require.Equal(t, 4, Code{}.MinimumDistance(16))
	require.Equal(t, 2, Code{}.MinimumDistance(2))
	require.Equal(t, 0, Code{}.MinimumDistance(0))
	require.Equal(t, 4, Code{Shape: shape.Shape{Rows: 11, Cols: 2}}.MinimumDistance(22))

	d := Code{}.MinimumDistance(16)
	require.Equal(t, 3, scheme.Detectable(d))
	require.Equal(t, 1, scheme.Correctable(d))

	rate, err := scheme.CodeRate(Code{}, 16)
	require.NoError(t, err)
	require.InDelta(t, 16.0/25.0, rate, 1e-12)
}

func ExampleCode_DecodeSyndrome() {
	code := Code{}
	codeword, _ := code.Encode(bits.Sequence{1, 0, 1, 1})

	result, _ := code.DecodeSyndrome(channel.Flip(codeword, 4))
	fmt.Println(result.Status, *result.Correction, result.Payload)

	result, _ = code.DecodeSyndrome(channel.Flip(codeword, 0, 4))
	fmt.Println(result.Status, result.Candidates, result.Payload)
	//Output:
	// corrected (1, 1) 1011
	// uncorrectable [(0, 0) (0, 1) (1, 0) (1, 1)] 0010
}
