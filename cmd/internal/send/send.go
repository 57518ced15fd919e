package send

import (
	"fmt"
	"strings"
	"time"

	"github.com/nathanhack/fecsim/bits"
	"github.com/nathanhack/fecsim/channel"
	"github.com/nathanhack/fecsim/scheme"
	"github.com/nathanhack/fecsim/scheme/parity"
	"github.com/nathanhack/fecsim/scheme/parity2d"
	"github.com/nathanhack/fecsim/scheme/repetition"
	"github.com/nathanhack/fecsim/scheme/shape"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Message     string
	Probability float64
	Seed        int64
	Repetitions uint
	Layout      string
	Rows        uint
	Cols        uint
)

type defaults struct {
	message     string
	probability float64
}

var (
	parityDefaults     = defaults{"1110010", 0.1}
	repetitionDefaults = defaults{"0", 0.1}
	parity2DDefaults   = defaults{"1001101100110011", 0.01}
)

var ParityRun = func(cmd *cobra.Command, args []string) {
	run(cmd, parity.Code{}, parityDefaults, nil)
}

var RepetitionRun = func(cmd *cobra.Command, args []string) {
	layout, err := repetition.ParseLayout(Layout)
	if err != nil {
		fmt.Println(err)
		return
	}
	code := repetition.Code{Repetitions: int(Repetitions), Layout: layout}

	run(cmd, code, repetitionDefaults, func(message, received bits.Sequence, p float64) {
		votes, err := code.DecodeVotes(received)
		if err != nil {
			return
		}
		for _, i := range votes.CorrectedPositions {
			logrus.Infof("Corrected Bit At Position %v", i)
		}
		for _, i := range votes.Ties {
			logrus.Warnf("Tied Vote For Payload Bit %v", i)
		}

		success, err := repetition.SuccessProbability(code.Repetitions, p, len(message))
		if err != nil {
			fmt.Println(err)
			return
		}
		logrus.WithField("probability", success).Info("Decoded Success Probability")
	})
}

var Parity2DRun = func(cmd *cobra.Command, args []string) {
	code := parity2d.Code{Shape: shape.Shape{Rows: int(Rows), Cols: int(Cols)}}

	run(cmd, code, parity2DDefaults, func(message, received bits.Sequence, p float64) {
		result, err := code.DecodeSyndrome(received)
		if err != nil {
			return
		}
		logMatrix(fmt.Sprintf("Received Matrix (%v)", result.Shape), received, result.Shape)

		switch result.Status {
		case parity2d.StatusClean:
			logrus.Info("2D Parity Check Passed")
		case parity2d.StatusCorrected:
			logrus.Infof("Detected Error At Coordinates %v", *result.Correction)
			logrus.Info("Error Corrected Successfully")
		case parity2d.StatusInconsistent:
			logrus.Infof("Detected Error At Coordinates %v", *result.Correction)
			logrus.Warn("Correction Attempted But Message Still Inconsistent")
		case parity2d.StatusUncorrectable:
			logrus.WithFields(logrus.Fields{
				"badRows":    result.Syndrome.BadRows,
				"badCols":    result.Syndrome.BadCols,
				"candidates": result.Candidates,
			}).Warn("Detected Error But Cannot Correct")
		}
		logMatrix(fmt.Sprintf("Decoded Message (%v)", result.Shape.Shrink()), result.Payload, result.Shape.Shrink())
	})
}

// run does encode -> transmit -> decode for code, details is called with the
// received codeword for scheme specific logging
func run(cmd *cobra.Command, code scheme.Code, d defaults, details func(message, received bits.Sequence, p float64)) {
	text := Message
	if text == "" {
		text = d.message
	}
	p := Probability
	if !cmd.Flags().Changed("probability") {
		p = d.probability
	}
	seed := Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	message, err := bits.Parse(text)
	if err != nil {
		fmt.Println(err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"scheme":      code.Name(),
		"probability": p,
		"seed":        seed,
	}).Info("Sending")
	logrus.Infof("Encoding Message %v", message)

	codeword, err := code.Encode(message)
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Sending Message %v", codeword)

	received, flipped, err := channel.TransmitTrace(codeword, p, channel.NewSource(seed))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, i := range flipped {
		logrus.Infof("Flipped Bit In Position %v", i)
	}
	logrus.Infof("Output Of The Noisy Channel %v", received)

	result, err := code.Decode(received)
	if err != nil {
		fmt.Println(err)
		return
	}
	if details != nil {
		details(message, received, p)
	}

	dMin := code.MinimumDistance(len(message))
	rate, _ := scheme.CodeRate(code, len(message))
	logrus.WithFields(logrus.Fields{
		"detected":  result.Detected,
		"corrected": result.Corrected,
	}).Infof("Decoded Message: %v", result.Payload)
	logrus.WithFields(logrus.Fields{
		"d_min": dMin,
		"s":     scheme.Detectable(dMin),
		"t":     scheme.Correctable(dMin),
		"rate":  rate,
	}).Info("Code Properties")
	logrus.Infof("Is Message Equal: %v", message.Equal(result.Payload))
}

func logMatrix(title string, seq bits.Sequence, s shape.Shape) {
	if logrus.GetLevel() < logrus.DebugLevel || s.Len() != len(seq) {
		return
	}
	logrus.Debug(title)
	for r := 0; r < s.Rows; r++ {
		row := make([]string, s.Cols)
		for c := 0; c < s.Cols; c++ {
			row[c] = fmt.Sprint(seq[r*s.Cols+c])
		}
		logrus.Debugf("[%v]", strings.Join(row, ", "))
	}
}
