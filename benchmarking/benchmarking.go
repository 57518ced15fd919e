package benchmarking

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/channel"
	"github.com/nathanhack/fecsim/scheme"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

type Stats struct {
	Detected     avgstd.AvgStd // probability the decoder reports an error
	Corrected    avgstd.AvgStd // probability the decoder reports a successful correction
	MessageError avgstd.AvgStd // probability of a payload bit error after decoding
	FrameError   avgstd.AvgStd // probability of at least one payload bit error after decoding
	Undetected   avgstd.AvgStd // probability of a wrong payload with nothing detected
}

func (s Stats) String() string {
	return fmt.Sprintf("{Detected:%0.02f(+/-%0.02f), Corrected:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f), Frame:%0.02f(+/-%0.02f), Undetected:%0.02f(+/-%0.02f)}",
		s.Detected.Mean, math.Sqrt(s.Detected.SampledVariance()),
		s.Corrected.Mean, math.Sqrt(s.Corrected.SampledVariance()),
		s.MessageError.Mean, math.Sqrt(s.MessageError.SampledVariance()),
		s.FrameError.Mean, math.Sqrt(s.FrameError.SampledVariance()),
		s.Undetected.Mean, math.Sqrt(s.Undetected.SampledVariance()),
	)
}

//Trials is the number of trials the stats were collected over.
func (s Stats) Trials() int {
	return s.Detected.Count
}

type Checkpoints func(updatedStats Stats)

//Channel induces errors into a codeword.
type Channel func(codeword bits.Sequence, rng *rand.Rand) (channelInducedCodeword bits.Sequence, err error)

//BinarySymmetricChannel flips every bit independently with crossoverProbability.
func BinarySymmetricChannel(crossoverProbability float64) Channel {
	return func(codeword bits.Sequence, rng *rand.Rand) (bits.Sequence, error) {
		return channel.Transmit(codeword, crossoverProbability, rng)
	}
}

//FixedFlipChannel flips exactly numberOfBitsToFlip distinct bits (or all of them if fewer).
func FixedFlipChannel(numberOfBitsToFlip int) Channel {
	return func(codeword bits.Sequence, rng *rand.Rand) (bits.Sequence, error) {
		if err := bits.Validate(codeword); err != nil {
			return nil, err
		}
		return RandomFlipBitCount(codeword, numberOfBitsToFlip, rng), nil
	}
}

func Benchmark(ctx context.Context,
	trials, threads int,
	code scheme.Code,
	messageLength int,
	ch Channel,
	seed int64,
	checkpoints Checkpoints,
	showProgress bool) (Stats, error) {
	return BenchmarkContinueStats(ctx, trials, threads, code, messageLength, ch, seed, checkpoints, Stats{}, showProgress)
}

//BenchmarkContinueStats runs the trials previousStats has not seen yet. Trial i
// draws all of its randomness from seed+i so a run is reproducible no matter
// how the trials are scheduled or resumed.
func BenchmarkContinueStats(ctx context.Context,
	trials, threads int,
	code scheme.Code,
	messageLength int,
	ch Channel,
	seed int64,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {
	if _, err := code.EncodedLength(messageLength); err != nil {
		return previousStats, err
	}

	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats, nil
	}
	logrus.Debugf("running %v trials of %v with %v bit messages", trialsToRun, code.Name(), messageLength)

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}
	var firstErr error

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		rng := rand.New(rand.NewSource(seed + int64(i)))

		//we create a random message
		message := RandomMessage(messageLength, rng)

		m, err := runTrial(code, message, ch, rng)

		statsMux.Lock()
		defer statsMux.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("trial %v: %w", i, err)
			}
			return
		}
		previousStats.Detected.Update(boolToFloat(m.detected))
		previousStats.Corrected.Update(boolToFloat(m.corrected))
		previousStats.MessageError.Update(m.messageError)
		previousStats.FrameError.Update(boolToFloat(m.messageError > 0))
		previousStats.Undetected.Update(boolToFloat(m.messageError > 0 && !m.detected))
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
	}

	for i := previousStats.Trials(); i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats, firstErr
}

type metrics struct {
	detected     bool
	corrected    bool
	messageError float64
}

func runTrial(code scheme.Code, message bits.Sequence, ch Channel, rng *rand.Rand) (metrics, error) {
	// encode to get our codeword
	codeword, err := code.Encode(message)
	if err != nil {
		return metrics{}, err
	}

	// send through the channel to get channel induced errors
	received, err := ch(codeword, rng)
	if err != nil {
		return metrics{}, err
	}

	// repair the codeword (if possible)
	result, err := code.Decode(received)
	if err != nil {
		return metrics{}, err
	}

	return metrics{
		detected:     result.Detected,
		corrected:    result.Corrected,
		messageError: float64(bits.HammingDistance(message, result.Payload)) / float64(len(message)),
	}, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
