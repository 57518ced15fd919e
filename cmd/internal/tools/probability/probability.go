package probability

import (
	"fmt"
	"os"

	"github.com/nathanhack/fecsim/scheme/repetition"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	Repetitions      []uint
	ErrorProbability []float64
	MessageLength    uint
)

var ProbabilityRun = func(cmd *cobra.Command, args []string) {
	rows, err := table(Repetitions, ErrorProbability, int(MessageLength))
	if err != nil {
		fmt.Println(err)
		return
	}

	header := []string{"Repetitions"}
	for _, p := range ErrorProbability {
		header = append(header, fmt.Sprintf("p=%v", p))
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(header)
	w.AppendBulk(rows)
	w.Render()
}

// one row per repetition count holding the success probability for every crossover probability
func table(repetitions []uint, probabilities []float64, messageLength int) ([][]string, error) {
	rows := make([][]string, 0, len(repetitions))
	for _, r := range repetitions {
		row := []string{fmt.Sprint(r)}
		for _, p := range probabilities {
			success, err := repetition.SuccessProbability(int(r), p, messageLength)
			if err != nil {
				return nil, err
			}
			row = append(row, fmt.Sprintf("%.6f", success))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
