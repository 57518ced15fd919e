package cmd

import (
	"github.com/nathanhack/fecsim/cmd/internal/send"

	"github.com/spf13/cobra"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:     "send",
	Aliases: []string{"s"},
	Short:   "Sends one message through the channel",
	Long:    `send encodes one message, transmits it through a binary symmetric channel and decodes it, logging every stage.`,
}

// sendParityCmd represents the parity command
var sendParityCmd = &cobra.Command{
	Use:     "parity",
	Aliases: []string{"p", "1d"},
	Short:   "Uses a single parity bit",
	Long:    `Uses a single parity bit. Detects one error, corrects none.`,
	Args:    cobra.NoArgs,
	Run:     send.ParityRun,
}

// sendRepetitionCmd represents the repetition command
var sendRepetitionCmd = &cobra.Command{
	Use:     "repetition",
	Aliases: []string{"r", "rep"},
	Short:   "Repeats every bit and decodes by majority vote",
	Long:    `Repeats every bit and decodes by majority vote. Also reports the analytical probability of success.`,
	Args:    cobra.NoArgs,
	Run:     send.RepetitionRun,
}

// sendParity2DCmd represents the parity2d command
var sendParity2DCmd = &cobra.Command{
	Use:     "parity2d",
	Aliases: []string{"2d"},
	Short:   "Uses row, column and corner parity",
	Long:    `Uses row, column and corner parity. Corrects one error and detects up to three. The message length must be even.`,
	Args:    cobra.NoArgs,
	Run:     send.Parity2DRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.PersistentFlags().StringVarP(&send.Message, "message", "m", "", "the message bits, e.g. 1011 (default depends on the scheme)")
	sendCmd.PersistentFlags().Float64VarP(&send.Probability, "probability", "p", 0, "the crossover probability [0, 1] (default depends on the scheme)")
	sendCmd.PersistentFlags().Int64VarP(&send.Seed, "seed", "s", 0, "seed for the channel; 0 picks one from the clock")

	sendCmd.AddCommand(sendParityCmd)

	sendCmd.AddCommand(sendRepetitionCmd)
	sendRepetitionCmd.Flags().UintVarP(&send.Repetitions, "repetitions", "r", 3, "the number of copies of each bit")
	sendRepetitionCmd.Flags().StringVarP(&send.Layout, "layout", "l", "contiguous", "where the copies go: contiguous or block")

	sendCmd.AddCommand(sendParity2DCmd)
	sendParity2DCmd.Flags().UintVar(&send.Rows, "rows", 0, "payload rows; 0 infers the shape from the message length")
	sendParity2DCmd.Flags().UintVar(&send.Cols, "cols", 0, "payload columns; 0 infers the shape from the message length")
}
