// Package benchmark times the core operations of one parameter set over
// n trials and writes both the raw samples and summary statistics to disk.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/montanaflynn/stats"

	crypto "mayo-go/mayo"
)

const directory = "benchmark/results"
const fileName = "results.json"

// Samples holds the raw nanosecond timings for every stage, one entry per
// trial.
type Samples struct {
	KeyGen, ExpandSK, ExpandPK, Sign, Verify []float64
}

// Summary holds the mean and population standard deviation (in nanoseconds)
// derived from a Samples set, per stage.
type Summary struct {
	MeanNs, StdDevNs map[string]float64
}

// Report bundles the raw samples with their derived summary for one
// parameter set's run.
type Report struct {
	ParameterSet string
	Samples      Samples
	Summary      Summary
}

// Run exercises CompactKeyGen, ExpandSK, ExpandPK, Sign and Verify n times
// under the given security level, writes the results to
// benchmark/results/, and returns the written path.
func Run(level crypto.SecurityLevel, n int) (string, error) {
	mayo, err := crypto.InitMayo(level)
	if err != nil {
		return "", err
	}
	message := make([]byte, 32)

	samples := Samples{
		KeyGen:   make([]float64, n),
		ExpandSK: make([]float64, n),
		ExpandPK: make([]float64, n),
		Sign:     make([]float64, n),
		Verify:   make([]float64, n),
	}

	cpks := make([]crypto.CompactPublicKey, n)
	csks := make([]crypto.CompactSecretKey, n)
	sigs := make([]crypto.Signature, n)

	for i := 0; i < n; i++ {
		before := time.Now()
		cpk, csk, err := mayo.CompactKeyGen(crypto.DefaultRandomSource)
		samples.KeyGen[i] = float64(time.Since(before).Nanoseconds())
		if err != nil {
			return "", err
		}
		cpks[i], csks[i] = cpk, csk
	}

	for i := 0; i < n; i++ {
		before := time.Now()
		if _, err := mayo.ExpandSecretKey(csks[i]); err != nil {
			return "", err
		}
		samples.ExpandSK[i] = float64(time.Since(before).Nanoseconds())
	}

	for i := 0; i < n; i++ {
		before := time.Now()
		if _, err := mayo.ExpandPublicKey(cpks[i]); err != nil {
			return "", err
		}
		samples.ExpandPK[i] = float64(time.Since(before).Nanoseconds())
	}

	for i := 0; i < n; i++ {
		before := time.Now()
		sig, err := mayo.Sign(csks[i], message, crypto.DefaultRandomSource)
		samples.Sign[i] = float64(time.Since(before).Nanoseconds())
		if err != nil {
			return "", err
		}
		sigs[i] = sig
	}

	for i := 0; i < n; i++ {
		before := time.Now()
		if err := mayo.Verify(cpks[i], message, sigs[i]); err != nil {
			return "", err
		}
		samples.Verify[i] = float64(time.Since(before).Nanoseconds())
	}

	report := Report{
		ParameterSet: mayo.Params().Name,
		Samples:      samples,
		Summary:      summarize(samples),
	}

	return writeReport(report)
}

func summarize(samples Samples) Summary {
	stages := map[string][]float64{
		"KeyGen":   samples.KeyGen,
		"ExpandSK": samples.ExpandSK,
		"ExpandPK": samples.ExpandPK,
		"Sign":     samples.Sign,
		"Verify":   samples.Verify,
	}

	summary := Summary{MeanNs: map[string]float64{}, StdDevNs: map[string]float64{}}
	for name, data := range stages {
		mean, err := stats.Mean(data)
		if err == nil {
			summary.MeanNs[name] = mean
		}
		stdDev, err := stats.StandardDeviation(data)
		if err == nil {
			summary.StdDevNs[name] = stdDev
		}
	}
	return summary
}

func writeReport(report Report) (string, error) {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return "", err
	}

	encoded, err := json.MarshalIndent(report, "", " ")
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/%s-%s-%s", directory, report.ParameterSet, time.Now().Format("2006-01-02-15-04-05"), fileName)
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return "", err
	}
	return path, nil
}
