package bsc

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/fecsim/benchmarking"
	"github.com/nathanhack/fecsim/cmd/internal/tools"
	"github.com/nathanhack/fecsim/scheme"
	"github.com/nathanhack/fecsim/scheme/parity"
	"github.com/nathanhack/fecsim/scheme/parity2d"
	"github.com/nathanhack/fecsim/scheme/repetition"
	"github.com/nathanhack/fecsim/scheme/shape"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	MessageLength    uint
	Seed             int64
	Repetitions      uint
	Layout           string
	Rows             uint
	Cols             uint
)

var ParityRun = func(cmd *cobra.Command, args []string) {
	simulate(args, parity.Code{})
}

var RepetitionRun = func(cmd *cobra.Command, args []string) {
	layout, err := repetition.ParseLayout(Layout)
	if err != nil {
		fmt.Println(err)
		return
	}
	simulate(args, repetition.Code{Repetitions: int(Repetitions), Layout: layout})
}

var Parity2DRun = func(cmd *cobra.Command, args []string) {
	simulate(args, parity2d.Code{Shape: shape.Shape{Rows: int(Rows), Cols: int(Cols)}})
}

func typeInfo(code scheme.Code) string {
	return fmt.Sprintf("BSC:%v", code.Name())
}

func simulate(args []string, code scheme.Code) {
	if len(args) != 1 {
		fmt.Println("requires RESULT_JSON")
		return
	}

	if _, err := code.EncodedLength(int(MessageLength)); err != nil {
		fmt.Println(err)
		return
	}

	//next we see if the RESULT_JSON exists if so we load it and validate we're running it against the right thing
	data, err := tools.LoadResults(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	runInfo := tools.Md5Sum(MessageLength, Seed)

	//if data is nil then we create it
	if data == nil {
		data = &tools.SimulationStats{
			TypeInfo: typeInfo(code),
			RunInfo:  runInfo,
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	//in either case lets validate it
	if data.TypeInfo != typeInfo(code) {
		fmt.Printf("results loaded do not match the same type expected %v but found %v\n", typeInfo(code), data.TypeInfo)
		return
	}
	if data.RunInfo != runInfo {
		fmt.Println("results loaded do not match the message length and seed")
		return
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case sig := <-sigs:
			fmt.Println()
			fmt.Println(sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err = runSimulation(ctx, data, code, args[0])
	if err != nil {
		fmt.Println(err)
	}

	err = tools.SaveResults(args[0], data)
	if err != nil {
		fmt.Println(err)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runSimulation(ctx context.Context, data *tools.SimulationStats, code scheme.Code, outputFilename string) error {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	numberOfThread := int(Threads)
	if numberOfThread == 0 {
		numberOfThread = runtime.NumCPU()
	}

	trialsPerIter := numberOfThread * 10
	bar := pb.StartNew(int(Trials) * len(ErrorProbability))
	defer bar.Finish()
trialLoops:
	for t := trialsPerIter; t < int(Trials)+trialsPerIter; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		for _, p := range ErrorProbability {
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[p] = stats
				if checkpointCount%trialsPerIter == 0 {
					err := tools.SaveResults(outputFilename, data)
					if err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}

			stats, err := RunBSC(ctx, code, int(MessageLength), p, min(t, int(Trials)), numberOfThread, Seed, data.Stats[p], checkpoint)
			checkpointMux.Lock()
			data.Stats[p] = stats
			checkpointMux.Unlock()
			if err != nil {
				return err
			}
			bar.SetCurrent(int64(totalTrials(data)))
		}
	}

	for _, p := range ErrorProbability {
		logrus.WithField("probability", p).Infof("%v", data.Stats[p])
	}
	return nil
}

func totalTrials(data *tools.SimulationStats) (total int) {
	for _, p := range ErrorProbability {
		total += data.Stats[p].Trials()
	}
	return
}

//RunBSC continues the benchmark of code on a binary symmetric channel with
// crossoverProbability until it has seen trials trials.
func RunBSC(ctx context.Context,
	code scheme.Code,
	messageLength int,
	crossoverProbability float64,
	trials, threads int,
	seed int64,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints) (benchmarking.Stats, error) {
	logrus.Debugf("BSC p=%v: %v/%v trials", crossoverProbability, previousStats.Trials(), trials)

	// every probability gets its own stream of randomness
	seed ^= int64(crossoverProbability * (1 << 40))
	return benchmarking.BenchmarkContinueStats(ctx, trials, threads, code, messageLength, benchmarking.BinarySymmetricChannel(crossoverProbability), seed, checkpoints, previousStats, false)
}
