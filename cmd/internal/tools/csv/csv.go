package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathanhack/fecsim/cmd/internal/tools"
	"github.com/nathanhack/fecsim/cmd/internal/tools/stats"
	"github.com/spf13/cobra"
)

var OutputFile string
var Statistic string

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	selector, err := stats.Selector(Statistic)
	if err != nil {
		fmt.Println(err)
		return
	}

	results := make([]*tools.SimulationStats, len(args))
	percentagesFloats := make(map[float64]bool)
	for i, resultFile := range args {
		results[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if results[i] == nil {
			fmt.Printf("%v does not exist\n", resultFile)
			return
		}
		for p := range results[i].Stats {
			percentagesFloats[p] = true
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	percentagesList := make([]float64, 0, len(percentagesFloats))
	for p := range percentagesFloats {
		percentagesList = append(percentagesList, p)
	}
	sort.Float64s(percentagesList)

	header := []string{"Results File"}

	for _, p := range percentagesList {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err = w.Write(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, s := range results {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(args[i], filepath.Ext(args[i]))

		for i, p := range percentagesList {
			v, has := s.Stats[p]
			if has {
				record[i+1] = fmt.Sprintf("%v", selector(v).Mean)
			}
		}

		err = w.Write(record)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}
