// Package shape infers the matrix layout of a 2D parity codeword from nothing
// but its bit count.
package shape

import (
	"fmt"
	"math"

	"github.com/nathanhack/fecsim/bits"
	"golang.org/x/exp/slices"
)

type Shape struct {
	Rows int
	Cols int
}

func (s Shape) Len() int {
	return s.Rows * s.Cols
}

//Grow is the shape with the parity row and column added.
func (s Shape) Grow() Shape {
	return Shape{Rows: s.Rows + 1, Cols: s.Cols + 1}
}

//Shrink is the shape with the parity row and column removed.
func (s Shape) Shrink() Shape {
	return Shape{Rows: s.Rows - 1, Cols: s.Cols - 1}
}

func (s Shape) IsZero() bool {
	return s.Rows == 0 && s.Cols == 0
}

func (s Shape) String() string {
	return fmt.Sprintf("%vx%v", s.Rows, s.Cols)
}

func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

//Payload returns the shape for n payload bits: the largest cols <= floor(sqrt(n))
// dividing n. Since 1 divides everything, n x 1 is the fallback.
func Payload(n int) (Shape, error) {
	if n <= 0 {
		return Shape{}, fmt.Errorf("bit length must be > 0 but found %v: %w", n, bits.ErrInvalidInput)
	}

	cols := isqrt(n)
	for n%cols != 0 {
		cols--
	}
	return Shape{Rows: n / cols, Cols: cols}, nil
}

//Candidates lists every encoded shape n bits could have, best first.
// A candidate has rows>=2, cols>=2 and a positive even (rows-1)*(cols-1).
// Ordering is by |rows-cols| and then by the larger rows.
func Candidates(n int) []Shape {
	if n <= 0 {
		return nil
	}

	candidates := make([]Shape, 0)
	for cols := isqrt(n); cols > 0; cols-- {
		if n%cols != 0 {
			continue
		}
		rows := n / cols
		if rows < 2 || cols < 2 {
			continue
		}
		payloadBits := (rows - 1) * (cols - 1)
		if payloadBits <= 0 || payloadBits%2 != 0 {
			continue
		}
		candidates = append(candidates, Shape{Rows: rows, Cols: cols})
	}

	slices.SortStableFunc(candidates, compare)
	return candidates
}

// squarest first, then the one with more rows
func compare(a, b Shape) int {
	da, db := abs(a.Rows-a.Cols), abs(b.Rows-b.Cols)
	if da != db {
		return da - db
	}
	return b.Rows - a.Rows
}

//Encoded returns the best of Candidates(n).
func Encoded(n int) (Shape, error) {
	if n <= 0 {
		return Shape{}, fmt.Errorf("bit length must be > 0 but found %v: %w", n, bits.ErrInvalidInput)
	}
	candidates := Candidates(n)
	if len(candidates) == 0 {
		return Shape{}, fmt.Errorf("cannot infer encoded matrix shape for %v bits: %w", n, bits.ErrInvalidInput)
	}
	return candidates[0], nil
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
