// Command draftsim builds the fused fantasy player pool and runs snake
// draft simulations over it.
//
// Usage:
//
//	draftsim pool --data-dir data --out pool.json
//	draftsim draft --pool pool.json --teams "Alpha,Bravo,Charlie" --human Alpha
//	draftsim simulate --pool pool.json --trials 10
//	draftsim score --transcript transcripts/draft_<id>.json --points points.csv
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tanayko/fantasydraftpredictor/internal/config"
	"github.com/tanayko/fantasydraftpredictor/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:   "draftsim",
		Short: "Fantasy football ranking fusion and snake draft simulator",
	}

	root.AddCommand(poolCmd())
	root.AddCommand(draftCmd())
	root.AddCommand(simulateCmd())
	root.AddCommand(scoreCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRuntime loads config and initializes the shared logger
func loadRuntime() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	return cfg, nil
}
