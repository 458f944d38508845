package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/klauspost/cpuid/v2"

	"ann/internal/config"
	"ann/internal/dataset"
	"ann/internal/runner"
)

func main() {
	cfgPath := flag.String("config", "configs/demo.yaml", "Path to YAML config")
	dataRoot := flag.String("data-root", "", "Override example data root")
	hidden := flag.Int("hidden", 0, "Number of hidden neurons")
	seed := flag.Int64("seed", 0, "PRNG seed")
	logEvery := flag.Int("log-every", 0, "Log a summary every N files")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		DataRoot: *dataRoot,
		Hidden:   *hidden,
		Seed:     *seed,
		LogEvery: *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Printf("cpu=%q cores=%d avx2=%t", cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.Supports(cpuid.AVX2))

	files, err := dataset.DiscoverFiles(cfg.DataRoot)
	if err != nil {
		log.Fatalf("discover examples under %s: %v", cfg.DataRoot, err)
	}
	if len(files) == 0 {
		log.Fatalf("no example files discovered under %s", cfg.DataRoot)
	}
	log.Printf("root=%s files=%d", cfg.DataRoot, len(files))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	neurons := make([]runner.NeuronSpec, len(cfg.Neurons))
	for i, n := range cfg.Neurons {
		neurons[i] = runner.NeuronSpec{Kind: n.Kind, Threshold: n.Threshold, Weights: n.Weights}
	}

	runCfg := runner.RunConfig{
		Files: files,
		Columns: dataset.Columns{
			Inputs:  cfg.InputColumns,
			Targets: cfg.TargetColumns,
		},
		InputMax:  cfg.InputMax,
		TargetMax: cfg.TargetMax,
		Hidden:    cfg.Hidden,
		Seed:      cfg.Seed,
		LogEvery:  cfg.LogEvery,
		Neurons:   neurons,
	}

	if _, err := runner.Run(ctx, runCfg); err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
}
