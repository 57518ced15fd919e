package cmd

import (
	"github.com/nathanhack/fecsim/cmd/internal/tools/bsc"
	"github.com/nathanhack/fecsim/cmd/internal/tools/chart"
	"github.com/nathanhack/fecsim/cmd/internal/tools/csv"
	"github.com/nathanhack/fecsim/cmd/internal/tools/probability"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for FEC schemes",
	Long:    `Tools for FEC schemes`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc",
	Short: "A binary symmetric channel simulator",
	Long:  `A binary symmetric channel simulator running many trials per crossover probability`,
}

// toolsBscParityCmd represents the parity command
var toolsBscParityCmd = &cobra.Command{
	Use:     "parity RESULT_JSON",
	Aliases: []string{"p", "1d"},
	Short:   "A BSC simulator for the single parity bit scheme",
	Long:    `A BSC simulator for the single parity bit scheme`,
	Args:    cobra.ExactArgs(1),
	Run:     bsc.ParityRun,
}

// toolsBscRepetitionCmd represents the repetition command
var toolsBscRepetitionCmd = &cobra.Command{
	Use:     "repetition RESULT_JSON",
	Aliases: []string{"r", "rep"},
	Short:   "A BSC simulator for the repetition scheme",
	Long:    `A BSC simulator for the repetition scheme`,
	Args:    cobra.ExactArgs(1),
	Run:     bsc.RepetitionRun,
}

// toolsBscParity2DCmd represents the parity2d command
var toolsBscParity2DCmd = &cobra.Command{
	Use:     "parity2d RESULT_JSON",
	Aliases: []string{"2d"},
	Short:   "A BSC simulator for the 2D parity scheme",
	Long:    `A BSC simulator for the 2D parity scheme. The message length must be even.`,
	Args:    cobra.ExactArgs(1),
	Run:     bsc.Parity2DRun,
}

// toolsProbabilityCmd represents the probability command
var toolsProbabilityCmd = &cobra.Command{
	Use:     "probability",
	Aliases: []string{"prob"},
	Short:   "Analytical success probability of the repetition scheme",
	Long:    `Prints the probability that a message decodes without error under the repetition scheme for each repetition count and crossover probability.`,
	Args:    cobra.NoArgs,
	Run:     probability.ProbabilityRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an HTML bar chart",
	Long:  `Export to an HTML bar chart`,
	Args:  cobra.MinimumNArgs(1),
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsBscCmd)
	toolsCmd.AddCommand(toolsProbabilityCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsBscCmd.PersistentFlags().UintVarP(&bsc.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBscCmd.PersistentFlags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.40, 0.50}, "probability of crossover errors to test [0, 1]")
	toolsBscCmd.PersistentFlags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscCmd.PersistentFlags().UintVarP(&bsc.MessageLength, "length", "l", 16, "the number of bits in each message")
	toolsBscCmd.PersistentFlags().Int64VarP(&bsc.Seed, "seed", "s", 1, "seed for the messages and the channel")

	toolsBscCmd.AddCommand(toolsBscParityCmd)

	toolsBscCmd.AddCommand(toolsBscRepetitionCmd)
	toolsBscRepetitionCmd.Flags().UintVarP(&bsc.Repetitions, "repetitions", "r", 3, "the number of copies of each bit")
	toolsBscRepetitionCmd.Flags().StringVar(&bsc.Layout, "layout", "contiguous", "where the copies go: contiguous or block")

	toolsBscCmd.AddCommand(toolsBscParity2DCmd)
	toolsBscParity2DCmd.Flags().UintVar(&bsc.Rows, "rows", 0, "payload rows; 0 infers the shape from the message length")
	toolsBscParity2DCmd.Flags().UintVar(&bsc.Cols, "cols", 0, "payload columns; 0 infers the shape from the message length")

	toolsProbabilityCmd.Flags().UintSliceVarP(&probability.Repetitions, "repetitions", "r", []uint{1, 3, 5, 7, 9}, "the repetition counts")
	toolsProbabilityCmd.Flags().Float64SliceVarP(&probability.ErrorProbability, "probability", "p", []float64{0.01, 0.05, 0.1, 0.2, 0.3}, "the crossover probabilities [0, 1]")
	toolsProbabilityCmd.Flags().UintVarP(&probability.MessageLength, "length", "l", 1, "the number of bits in each message")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().StringVarP(&csv.Statistic, "statistic", "s", "message", "one of message, frame, detected, corrected, undetected")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().StringVarP(&chart.Statistic, "statistic", "s", "message", "one of message, frame, detected, corrected, undetected")
}
