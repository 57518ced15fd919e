// Package parity2d lays the payload out as a matrix and protects it with a
// parity bit per row, a parity bit per column and a corner bit. The minimum
// distance is 4: any single flip is corrected, two and three flips are
// detected.
//
// A received codeword is only a bit count, so the decoder infers the matrix
// from the length (see package shape). Decoding never guesses: when the
// syndrome does not point at exactly one cell the error is reported as
// detected but left alone.
package parity2d

import (
	"fmt"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/scheme"
	"github.com/nathanhack/fecsim/scheme/shape"
	mat "github.com/nathanhack/sparsemat"
)

type Status int

const (
	StatusClean         Status = iota // no parity violated
	StatusCorrected                   // a single cell was flipped and the codeword now checks clean
	StatusInconsistent                // a single cell was flipped but parity is still violated
	StatusUncorrectable               // violations do not point at a single cell
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusCorrected:
		return "corrected"
	case StatusInconsistent:
		return "inconsistent"
	case StatusUncorrectable:
		return "uncorrectable"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

//Code is the 2D parity scheme. Shape is the payload shape; when left zero it
// is inferred from the payload length on encode and from the codeword length
// on decode.
type Code struct {
	Shape shape.Shape
}

//Result extends scheme.Result with what the syndrome showed.
type Result struct {
	scheme.Result
	Status     Status
	Shape      shape.Shape  // encoded shape the codeword was read as
	Syndrome   Syndrome     // as received
	Residual   Syndrome     // after the correction attempt, zero if none was made
	Correction *Coordinate  // the flipped cell, nil if none
	Candidates []Coordinate // possible error cells when uncorrectable
}

func (c Code) Name() string {
	if c.Shape.IsZero() {
		return "parity2d"
	}
	return fmt.Sprintf("parity2d(%v)", c.Shape)
}

func (c Code) payloadShape(n int) (shape.Shape, error) {
	if n <= 0 || n%2 != 0 {
		return shape.Shape{}, fmt.Errorf("payload bit length must be even and > 0 but found %v: %w", n, bits.ErrInvalidInput)
	}

	if !c.Shape.IsZero() {
		if c.Shape.Rows < 1 || c.Shape.Cols < 1 || c.Shape.Len() != n {
			return shape.Shape{}, fmt.Errorf("payload shape %v does not hold %v bits: %w", c.Shape, n, bits.ErrInvalidInput)
		}
		return c.Shape, nil
	}

	ps, err := shape.Payload(n)
	if err != nil {
		return shape.Shape{}, err
	}

	// the decoder only sees the encoded length, it has to find the same matrix
	es, err := shape.Encoded(ps.Grow().Len())
	if err != nil {
		return shape.Shape{}, err
	}
	if es != ps.Grow() {
		return shape.Shape{}, fmt.Errorf("%v payload bits encode as %v but would decode as %v, set an explicit shape: %w", n, ps.Grow(), es, bits.ErrInvalidInput)
	}
	return ps, nil
}

func (c Code) encodedShape(n int) (shape.Shape, error) {
	var es shape.Shape
	if c.Shape.IsZero() {
		var err error
		es, err = shape.Encoded(n)
		if err != nil {
			return shape.Shape{}, err
		}
	} else {
		es = c.Shape.Grow()
		if es.Len() != n {
			return shape.Shape{}, fmt.Errorf("encoded shape %v does not hold %v bits: %w", es, n, bits.ErrInvalidInput)
		}
	}

	if es.Rows < 2 || es.Cols < 2 {
		return shape.Shape{}, fmt.Errorf("encoded matrix must be at least 2x2 but found %v: %w", es, bits.ErrInvalidInput)
	}
	return es, nil
}

//Encode appends a row parity column, a column parity row and the corner.
func (c Code) Encode(payload bits.Sequence) (bits.Sequence, error) {
	if err := bits.Validate(payload); err != nil {
		return nil, err
	}
	ps, err := c.payloadShape(len(payload))
	if err != nil {
		return nil, err
	}

	message := mat.CSRMat(ps.Rows, ps.Cols, payload...)
	es := ps.Grow()
	encoded := mat.DOKMat(es.Rows, es.Cols)
	encoded.SetMatrix(message, 0, 0)

	for r := 0; r < ps.Rows; r++ {
		encoded.Set(r, ps.Cols, message.Row(r).HammingWeight()%2)
	}
	for col := 0; col < ps.Cols; col++ {
		encoded.Set(ps.Rows, col, message.Column(col).HammingWeight()%2)
	}
	// the corner is still zero so this is the parity of the column parity row
	encoded.Set(ps.Rows, ps.Cols, encoded.Row(ps.Rows).HammingWeight()%2)

	return flatten(encoded, es), nil
}

func (c Code) Decode(received bits.Sequence) (scheme.Result, error) {
	result, err := c.DecodeSyndrome(received)
	return result.Result, err
}

//DecodeSyndrome is Decode with the syndrome details kept.
func (c Code) DecodeSyndrome(received bits.Sequence) (Result, error) {
	if err := bits.Validate(received); err != nil {
		return Result{}, err
	}
	es, err := c.encodedShape(len(received))
	if err != nil {
		return Result{}, err
	}

	H := ParityCheckMatrix(es)
	codeword := bits.ToSparse(received)

	result := Result{Shape: es}
	result.Syndrome = syndrome(H, es, codeword)
	result.Detected = !result.Syndrome.IsZero()

	cell, single := result.Syndrome.Single()
	switch {
	case !result.Detected:
		result.Status = StatusClean
	case single:
		i := cell.Row*es.Cols + cell.Col
		codeword.Set(i, 1-codeword.At(i))
		result.Correction = &cell

		result.Residual = syndrome(H, es, codeword)
		if result.Residual.IsZero() {
			result.Status = StatusCorrected
			result.Corrected = true
		} else {
			result.Status = StatusInconsistent
		}
	default:
		result.Status = StatusUncorrectable
		result.Candidates = result.Syndrome.Candidates()
	}

	result.Payload = extractPayload(codeword, es)
	return result, nil
}

func (c Code) EncodedLength(payloadLength int) (int, error) {
	ps, err := c.payloadShape(payloadLength)
	if err != nil {
		return 0, err
	}
	return ps.Grow().Len(), nil
}

//MinimumDistance is 4 for a real matrix and 2 when the payload is a single row or column.
func (c Code) MinimumDistance(payloadLength int) int {
	ps := c.Shape
	if ps.IsZero() {
		var err error
		ps, err = shape.Payload(payloadLength)
		if err != nil {
			return 0
		}
	}
	if ps.Rows > 1 && ps.Cols > 1 {
		return 4
	}
	return 2
}

func flatten(m mat.SparseMat, s shape.Shape) bits.Sequence {
	result := make(bits.Sequence, 0, s.Len())
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			result = append(result, m.At(r, c))
		}
	}
	return result
}

// drops the parity row and column of an encoded codeword with shape es
func extractPayload(codeword mat.SparseVector, es shape.Shape) bits.Sequence {
	ps := es.Shrink()
	result := make(bits.Sequence, 0, ps.Len())
	for r := 0; r < ps.Rows; r++ {
		for c := 0; c < ps.Cols; c++ {
			result = append(result, codeword.At(r*es.Cols+c))
		}
	}
	return result
}
