package runner

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"ann/internal/dataset"
	"ann/internal/matrix"
	"ann/internal/metrics"
	"ann/internal/model"
	"ann/internal/neuron"
)

// NeuronSpec describes a neuron evaluated against every example row. Empty
// Weights draws one random weight per input column.
type NeuronSpec struct {
	Kind      neuron.Kind
	Threshold float64
	Weights   []float64
}

// RunConfig captures the knobs required by the evaluation loop.
type RunConfig struct {
	Files     []string
	Columns   dataset.Columns
	InputMax  []float64
	TargetMax []float64
	Hidden    int
	Seed      int64
	LogEvery  int
	Neurons   []NeuronSpec
}

// FileResult holds the outcome of feeding one example file forward.
// NeuronOutputs[i][row] is neuron i evaluated on that example row.
type FileResult struct {
	Path          string
	Batch         model.Batch
	Predictions   *mat.Dense
	Cost          float64
	NeuronOutputs [][]neuron.Output
}

// Report is everything a run produced.
type Report struct {
	RunID string
	Files []FileResult
}

// Run executes the evaluation workload: one network and neuron bank are
// seeded from cfg.Seed, then each file is loaded, scaled, fed forward and
// scored.
func Run(ctx context.Context, cfg RunConfig) (*Report, error) {
	if len(cfg.Files) == 0 {
		return nil, errors.New("runner: no example files")
	}
	if cfg.Hidden <= 0 {
		return nil, errors.New("runner: hidden must be > 0")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	net := model.NewNetwork(len(cfg.Columns.Inputs), cfg.Hidden, len(cfg.Columns.Targets), rng)
	neurons := buildNeurons(cfg.Neurons, len(cfg.Columns.Inputs), rng)

	report := &Report{RunID: uuid.NewString()}
	inputs, hidden, outputs := net.Dims()
	log.Printf("run=%s files=%d inputs=%d hidden=%d outputs=%d neurons=%d",
		report.RunID, len(cfg.Files), inputs, hidden, outputs, len(neurons))

	var window metrics.Window
	for i, path := range cfg.Files {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		batch, err := dataset.LoadFile(path, cfg.Columns)
		if err != nil {
			return report, err
		}
		scale(batch.Inputs, cfg.InputMax)
		scale(batch.Targets, cfg.TargetMax)

		res, elapsed, err := evaluate(net, neurons, path, batch)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, res)

		examples, _ := batch.Inputs.Dims()
		window.Record(examples, elapsed, res.Cost)
		log.Printf("run=%s file=%s examples=%d cost=%.6f", report.RunID, path, examples, res.Cost)
		for n, outs := range res.NeuronOutputs {
			log.Printf("run=%s file=%s neuron=%d kind=%s outputs=%s",
				report.RunID, path, n, neurons[n].Kind(), formatOutputs(outs))
		}

		if (i+1)%cfg.LogEvery == 0 || i == len(cfg.Files)-1 {
			snap := window.Snapshot()
			log.Printf("run=%s files_done=%d examples_per_sec=%.1f forward_ms=%.3f mean_cost=%.6f",
				report.RunID,
				i+1,
				snap.ExamplesPerSec,
				snap.AvgForwardMS,
				snap.MeanCost,
			)
		}
	}

	return report, nil
}

func evaluate(net model.Predictor, neurons []*neuron.Neuron, path string, batch model.Batch) (FileResult, time.Duration, error) {
	start := time.Now()
	guesses := net.Forward(batch.Inputs)
	elapsed := time.Since(start)

	res := FileResult{
		Path:          path,
		Batch:         batch,
		Predictions:   guesses,
		Cost:          metrics.MatrixCost(guesses, batch.Targets),
		NeuronOutputs: make([][]neuron.Output, len(neurons)),
	}

	rows, _ := batch.Inputs.Dims()
	for i, n := range neurons {
		outs := make([]neuron.Output, rows)
		for r := 0; r < rows; r++ {
			if err := n.SetInputs(mat.Row(nil, r, batch.Inputs)); err != nil {
				return res, elapsed, fmt.Errorf("neuron %d row %d: %w", i, r, err)
			}
			outs[r] = n.Evaluate()
		}
		res.NeuronOutputs[i] = outs
	}
	return res, elapsed, nil
}

func buildNeurons(specs []NeuronSpec, width int, src neuron.Source) []*neuron.Neuron {
	out := make([]*neuron.Neuron, 0, len(specs))
	for _, s := range specs {
		if len(s.Weights) == 0 {
			out = append(out, neuron.NewRandom(s.Kind, s.Threshold, width, src))
			continue
		}
		out = append(out, neuron.New(s.Kind, s.Threshold, s.Weights))
	}
	return out
}

// scale divides by the fixed maxima when given, otherwise by each column's
// own maximum.
func scale(m *mat.Dense, maxima []float64) {
	if len(maxima) > 0 {
		matrix.ScaleCols(m, maxima)
		return
	}
	matrix.NormaliseCols(m)
}

func formatOutputs(outs []neuron.Output) string {
	parts := make([]string, len(outs))
	for i, o := range outs {
		parts[i] = o.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
