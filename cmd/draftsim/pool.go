package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tanayko/fantasydraftpredictor/internal/defense"
	"github.com/tanayko/fantasydraftpredictor/internal/offense"
	"github.com/tanayko/fantasydraftpredictor/internal/pool"
	"github.com/tanayko/fantasydraftpredictor/internal/rankings"
	"github.com/tanayko/fantasydraftpredictor/internal/schedule"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
	"github.com/tanayko/fantasydraftpredictor/pkg/logger"
)

// poolInputs are the conventional file names under the data directory
type poolInputs struct {
	sources  rankings.SourceFiles
	stats    map[types.Position]string
	offense  map[int]string
	defense  map[types.Position]string
	schedule string
}

func poolCmd() *cobra.Command {
	var dataDir, out string
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Build the fused player pool artifact from scraped tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}
			if dataDir == "" {
				dataDir = cfg.DataDir
			}
			if out == "" {
				out = cfg.PoolArtifact
			}

			log := logger.GetLogger()
			inputs := discoverInputs(dataDir)

			players, err := rankings.NewEngine(log).Fuse(inputs.sources, inputs.stats)
			if err != nil {
				return err
			}

			offenseScores, err := offense.NewAnalyzer(log, offense.Weights{
				PassFriendlyPass:  cfg.PassFriendlyPassWeight,
				PassFriendlyTotal: cfg.PassFriendlyTotalWeight,
				RushFriendlyRush:  cfg.RushFriendlyRushWeight,
				RushFriendlyTotal: cfg.RushFriendlyTotalWeight,
				QualityTotal:      cfg.QualityTotalWeight,
				QualityScoring:    cfg.QualityScoringWeight,
			}).Analyze(inputs.offense)
			if err != nil {
				return err
			}

			defenseAnalysis, err := defense.NewAnalyzer(log).Analyze(inputs.defense)
			if err != nil {
				return err
			}
			defense.Categorize(defenseAnalysis, cfg.DefenseTierCount)

			thresholds := schedule.Thresholds{
				VeryFavorable: cfg.ScheduleVeryFavorable,
				Favorable:     cfg.ScheduleFavorable,
				Average:       cfg.ScheduleAverage,
				Difficult:     cfg.ScheduleDifficult,
			}
			var agg *schedule.Aggregator
			sched, err := schedule.Load(inputs.schedule, log)
			if err != nil {
				log.WithError(err).Warn("No schedule loaded, difficulty fields stay null")
			} else {
				agg = schedule.NewAggregator(log, thresholds, defenseAnalysis)
			}

			pool.NewAssembler(log, pool.DefaultOpportunityWeights()).
				Assemble(players, offenseScores, sched, agg)

			p := pool.New(players)
			if err := p.Save(out); err != nil {
				return err
			}
			fmt.Printf("Wrote %d players to %s\n", p.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the scraped tables")
	cmd.Flags().StringVar(&out, "out", "", "pool artifact output path")
	return cmd
}

// discoverInputs maps the data directory's conventional file names to
// pipeline inputs. Missing files are fine; each stage logs and skips.
func discoverInputs(dataDir string) poolInputs {
	inputs := poolInputs{
		sources: rankings.SourceFiles{
			ESPN:    firstExisting(dataDir, "espn_rankings.csv", "espn.csv"),
			Sleeper: firstExisting(dataDir, "sleeper_rankings.csv", "sleeper.csv"),
			Yahoo:   firstExisting(dataDir, "yahoo_rankings.csv", "yahoo.csv"),
		},
		stats:    make(map[types.Position]string),
		offense:  make(map[int]string),
		defense:  make(map[types.Position]string),
		schedule: filepath.Join(dataDir, "schedule.csv"),
	}

	for _, pos := range types.AllPositions {
		inputs.stats[pos] = filepath.Join(dataDir, fmt.Sprintf("stats_%s.csv", pos))
		inputs.defense[pos] = filepath.Join(dataDir, fmt.Sprintf("defense_%s.csv", pos))
	}

	// Offense files are tagged by season: offense_2023.csv
	matches, _ := filepath.Glob(filepath.Join(dataDir, "offense_*.csv"))
	for _, path := range matches {
		base := strings.TrimSuffix(filepath.Base(path), ".csv")
		yearStr := strings.TrimPrefix(base, "offense_")
		if year, err := strconv.Atoi(yearStr); err == nil {
			inputs.offense[year] = path
		}
	}

	return inputs
}

func firstExisting(dir string, names ...string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, names[0])
}
