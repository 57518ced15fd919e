package probability

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nathanhack/fecsim/bits"
)

func TestTable(t *testing.T) {
	actual, err := table([]uint{1, 3}, []float64{0, 0.1}, 1)
	if err != nil {
		t.Fatalf("expected no error but found %v", err)
	}
	expected := [][]string{
		{"1", "1.000000", "0.900000"},
		{"3", "1.000000", "0.972000"},
	}
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected %v but found %v", expected, actual)
	}

	_, err = table([]uint{0}, []float64{0.1}, 1)
	if !errors.Is(err, bits.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput but found %v", err)
	}
}
