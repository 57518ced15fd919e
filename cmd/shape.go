package cmd

import (
	"github.com/nathanhack/fecsim/cmd/internal/shape"

	"github.com/spf13/cobra"
)

// shapeCmd represents the shape command
var shapeCmd = &cobra.Command{
	Use:   "shape BITS [BITS] ...",
	Short: "Shows the 2D parity matrix shapes for bit counts",
	Long:  `Shows the payload shape and the inferred encoded shape (with all candidates) for each bit count.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   shape.ShapeRun,
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}
