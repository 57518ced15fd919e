package parity2d

import (
	"fmt"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/scheme/shape"
	mat "github.com/nathanhack/sparsemat"
	"golang.org/x/exp/slices"
)

//Coordinate is a cell of the encoded matrix.
type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%v, %v)", c.Row, c.Col)
}

//Syndrome holds the rows and columns of the encoded matrix with an odd bit sum.
type Syndrome struct {
	BadRows []int
	BadCols []int
}

func (s Syndrome) IsZero() bool {
	return len(s.BadRows) == 0 && len(s.BadCols) == 0
}

//Single reports whether exactly one row and one column are bad, and where they cross.
func (s Syndrome) Single() (Coordinate, bool) {
	if len(s.BadRows) != 1 || len(s.BadCols) != 1 {
		return Coordinate{}, false
	}
	return Coordinate{Row: s.BadRows[0], Col: s.BadCols[0]}, true
}

//Candidates is every (bad row, bad column) pair. Empty when either side is.
func (s Syndrome) Candidates() []Coordinate {
	if len(s.BadRows) == 0 || len(s.BadCols) == 0 {
		return nil
	}
	result := make([]Coordinate, 0, len(s.BadRows)*len(s.BadCols))
	for _, r := range s.BadRows {
		for _, c := range s.BadCols {
			result = append(result, Coordinate{Row: r, Col: c})
		}
	}
	return result
}

//ParityCheckMatrix returns H for an encoded matrix of shape s. The first s.Rows
// checks cover one row each, the remaining s.Cols checks one column each, so
// H*c over GF(2) is the syndrome of the row-major codeword c.
func ParityCheckMatrix(s shape.Shape) mat.SparseMat {
	H := mat.CSRMat(s.Rows+s.Cols, s.Len())
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			H.Set(r, r*s.Cols+c, 1)
			H.Set(s.Rows+c, r*s.Cols+c, 1)
		}
	}
	return H
}

//ComputeSyndrome checks received as an encoded matrix of shape s.
func ComputeSyndrome(s shape.Shape, received bits.Sequence) (Syndrome, error) {
	if err := bits.Validate(received); err != nil {
		return Syndrome{}, err
	}
	if s.Rows < 1 || s.Cols < 1 || s.Len() != len(received) {
		return Syndrome{}, fmt.Errorf("shape %v does not hold %v bits: %w", s, len(received), bits.ErrInvalidInput)
	}
	return syndrome(ParityCheckMatrix(s), s, bits.ToSparse(received)), nil
}

func syndrome(H mat.SparseMat, s shape.Shape, codeword mat.SparseVector) Syndrome {
	checks := mat.CSRVec(s.Rows + s.Cols)
	checks.MatMul(H, codeword)

	violated := checks.NonzeroArray()
	slices.Sort(violated)

	result := Syndrome{}
	for _, i := range violated {
		if i < s.Rows {
			result.BadRows = append(result.BadRows, i)
		} else {
			result.BadCols = append(result.BadCols, i-s.Rows)
		}
	}
	return result
}
