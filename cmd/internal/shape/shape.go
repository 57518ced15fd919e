package shape

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nathanhack/fecsim/scheme/shape"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var ShapeRun = func(cmd *cobra.Command, args []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Bits", "Payload Shape", "Encoded Shape", "Candidates"})

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("%v is not a bit count: %v\n", arg, err)
			return
		}
		table.Append(row(n))
	}
	table.Render()
}

func row(n int) []string {
	payload := "-"
	if s, err := shape.Payload(n); err == nil {
		payload = s.String()
	}

	encoded := "-"
	if s, err := shape.Encoded(n); err == nil {
		encoded = s.String()
	}

	candidates := make([]string, 0)
	for _, c := range shape.Candidates(n) {
		candidates = append(candidates, c.String())
	}
	return []string{strconv.Itoa(n), payload, encoded, strings.Join(candidates, " ")}
}
