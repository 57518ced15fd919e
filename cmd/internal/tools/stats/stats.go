// Package stats picks which of the benchmark statistics the results exporters show.
package stats

import (
	"fmt"

	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/fecsim/benchmarking"
)

var Names = []string{"message", "frame", "detected", "corrected", "undetected"}

//Selector returns the statistic called name.
func Selector(name string) (func(benchmarking.Stats) avgstd.AvgStd, error) {
	switch name {
	case "message", "":
		return func(s benchmarking.Stats) avgstd.AvgStd { return s.MessageError }, nil
	case "frame":
		return func(s benchmarking.Stats) avgstd.AvgStd { return s.FrameError }, nil
	case "detected":
		return func(s benchmarking.Stats) avgstd.AvgStd { return s.Detected }, nil
	case "corrected":
		return func(s benchmarking.Stats) avgstd.AvgStd { return s.Corrected }, nil
	case "undetected":
		return func(s benchmarking.Stats) avgstd.AvgStd { return s.Undetected }, nil
	}
	return nil, fmt.Errorf("unknown statistic %q, expected one of %v", name, Names)
}
