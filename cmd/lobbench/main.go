// Command lobbench measures per-operation costs of the book
// implementations under an identical workload and prints a report per
// book.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	lob "github.com/tickerlab/lob-engine"
	"github.com/tickerlab/lob-engine/bench"
)

func main() {
	var (
		iterations int
		capacity   int
		levels     int
		seed       int64
		bookKind   string
		configPath string
		jsonOut    bool
	)
	flag.IntVar(&iterations, "iterations", 0, "timed update operations (0 = config or default)")
	flag.IntVar(&capacity, "capacity", 0, "per-side level capacity (0 = config or default)")
	flag.IntVar(&levels, "levels", 0, "warmup levels per side (0 = config or default)")
	flag.Int64Var(&seed, "seed", 0, "churn feed seed (0 = config or default)")
	flag.StringVar(&bookKind, "book", "ladder", "book under test: ladder, tree, skip or all")
	flag.StringVar(&configPath, "config", "", "YAML run config path")
	flag.BoolVar(&jsonOut, "json", false, "emit results as JSON instead of text")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	lob.SetLogger(log)

	cfg := bench.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = bench.LoadConfig(configPath)
		if err != nil {
			log.Error("load config failed", "path", configPath, "error", err)
			os.Exit(1)
		}
	}
	if iterations > 0 {
		cfg.Iterations = iterations
	}
	if capacity > 0 {
		cfg.Capacity = capacity
	}
	if levels > 0 {
		cfg.Levels = levels
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	names := []string{bookKind}
	if bookKind == "all" {
		names = []string{"ladder", "tree", "skip"}
	}

	results := make([]*bench.Result, 0, len(names))
	for _, name := range names {
		book, err := buildBook(name, cfg)
		if err != nil {
			log.Error("bad book flag", "error", err)
			os.Exit(1)
		}

		log.Info("run started",
			"book", name, "iterations", cfg.Iterations,
			"levels", cfg.Levels, "capacity", cfg.Capacity, "seed", cfg.Seed)

		res, err := bench.Run(name, book, cfg)
		if err != nil {
			log.Error("run failed", "book", name, "error", err)
			os.Exit(1)
		}

		log.Info("run finished",
			"book", name, "run_id", res.RunID,
			"bid_levels", book.Len(lob.Bid), "ask_levels", book.Len(lob.Ask))

		results = append(results, res)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Error("encode results failed", "error", err)
			os.Exit(1)
		}
		return
	}

	for _, res := range results {
		fmt.Print(res.Report())
	}
}

func buildBook(name string, cfg bench.Config) (bench.Book, error) {
	opts := lob.Options{Capacity: cfg.Capacity}
	switch name {
	case "ladder":
		return lob.NewOrderBookWithOptions(opts), nil
	case "tree":
		return lob.NewTreeBookWithOptions(opts), nil
	case "skip":
		return lob.NewSkipBookWithOptions(opts), nil
	}
	return nil, fmt.Errorf("unknown book %q (want ladder, tree, skip or all)", name)
}
