package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"ann/internal/matrix"
	"ann/internal/model"
)

var (
	// ErrNoExamples is returned for a file with a header but no rows.
	ErrNoExamples = errors.New("dataset: no examples")
	// ErrColumnMissing is returned when a requested column is not in the header.
	ErrColumnMissing = errors.New("dataset: column missing")
)

// Columns names the header fields that make up the inputs and the targets.
type Columns struct {
	Inputs  []string
	Targets []string
}

// LoadFile reads the CSV file at path. See Read.
func LoadFile(path string, cols Columns) (model.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Batch{}, fmt.Errorf("open examples: %w", err)
	}
	defer f.Close()

	batch, err := Read(f, cols)
	if err != nil {
		return model.Batch{}, fmt.Errorf("%s: %w", path, err)
	}
	return batch, nil
}

// Read parses CSV examples with a header row into a batch: one matrix row
// per record, one column per named input or target. Lines starting with
// '#' are skipped.
func Read(r io.Reader, cols Columns) (model.Batch, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return model.Batch{}, ErrNoExamples
	}
	if err != nil {
		return model.Batch{}, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	inIdx, err := lookup(index, cols.Inputs)
	if err != nil {
		return model.Batch{}, err
	}
	outIdx, err := lookup(index, cols.Targets)
	if err != nil {
		return model.Batch{}, err
	}

	var inputs, targets [][]float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.Batch{}, fmt.Errorf("read record: %w", err)
		}
		line, _ := cr.FieldPos(0)
		in, err := parseFields(record, inIdx, line)
		if err != nil {
			return model.Batch{}, err
		}
		out, err := parseFields(record, outIdx, line)
		if err != nil {
			return model.Batch{}, err
		}
		inputs = append(inputs, in)
		targets = append(targets, out)
	}
	if len(inputs) == 0 {
		return model.Batch{}, ErrNoExamples
	}

	return model.Batch{
		Inputs:  toColMajor(inputs, len(inIdx)),
		Targets: toColMajor(targets, len(outIdx)),
	}, nil
}

func lookup(index map[string]int, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnMissing, name)
		}
		out[i] = idx
	}
	return out, nil
}

func parseFields(record []string, idx []int, line int) ([]float64, error) {
	out := make([]float64, len(idx))
	for i, j := range idx {
		if j >= len(record) {
			return nil, fmt.Errorf("line %d: %w: field %d", line, ErrColumnMissing, j)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out[i] = v
	}
	return out, nil
}

func toColMajor(rows [][]float64, cols int) *mat.Dense {
	data := make([]float64, 0, len(rows)*cols)
	for c := 0; c < cols; c++ {
		for _, row := range rows {
			data = append(data, row[c])
		}
	}
	return matrix.FromColMajor(len(rows), cols, data)
}
