package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tanayko/fantasydraftpredictor/internal/config"
	"github.com/tanayko/fantasydraftpredictor/internal/draft"
	"github.com/tanayko/fantasydraftpredictor/internal/pool"
	"github.com/tanayko/fantasydraftpredictor/internal/selector"
	"github.com/tanayko/fantasydraftpredictor/internal/transcript"
	"github.com/tanayko/fantasydraftpredictor/pkg/logger"
)

func draftCmd() *cobra.Command {
	var poolPath, teams, human string
	var rounds int
	var seed int64
	var useLLM bool

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Run one snake draft over a pool artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}
			if poolPath == "" {
				poolPath = cfg.PoolArtifact
			}
			if rounds == 0 {
				rounds = cfg.MaxRounds
			}

			record, err := runDraft(cfg, poolPath, splitTeams(teams), human, rounds, seed, useLLM)
			if err != nil {
				return err
			}
			path, err := record.Save(cfg.TranscriptDir)
			if err != nil {
				return err
			}
			fmt.Printf("Draft %s complete, transcript at %s\n", record.ID, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&poolPath, "pool", "", "pool artifact path")
	cmd.Flags().StringVar(&teams, "teams", "Team 1,Team 2,Team 3,Team 4", "comma-separated team names")
	cmd.Flags().StringVar(&human, "human", "", "team name drafted interactively from stdin")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of draft rounds")
	cmd.Flags().Int64Var(&seed, "seed", 0, "draft-order shuffle seed (0 = random)")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "use the LLM selector for automated seats")
	return cmd
}

func runDraft(cfg *config.Config, poolPath string, teamNames []string, human string, rounds int, seed int64, useLLM bool) (transcript.Record, error) {
	log := logger.GetLogger()

	p, err := pool.LoadArtifact(poolPath)
	if err != nil {
		return transcript.Record{}, err
	}

	opts := draft.Options{
		MaxRounds:       rounds,
		SelectorRetries: cfg.SelectorRetries,
		PickTimeout:     cfg.SelectorTimeout,
	}
	if seed != 0 {
		opts.Rand = rand.New(rand.NewSource(seed))
	}
	sim := draft.NewSimulator(log, p, opts)

	var automated draft.Selector = selector.NewRules()
	if useLLM {
		llm, err := selector.NewLLM(cfg, log)
		if err != nil {
			return transcript.Record{}, err
		}
		automated = llm
	}

	for _, name := range teamNames {
		if _, err := sim.RegisterTeam(name); err != nil {
			return transcript.Record{}, err
		}
		if name != human {
			if err := sim.BindSelector(name, automated); err != nil {
				return transcript.Record{}, err
			}
		}
	}

	if err := sim.Start(); err != nil {
		return transcript.Record{}, err
	}
	if err := sim.Run(context.Background()); err != nil {
		return transcript.Record{}, err
	}

	draftID := uuid.New().String()
	logger.WithDraftContext(draftID, rounds, len(sim.Picks())).Info("Draft finished")
	return transcript.NewRecord(draftID, sim.Picks(), sim.Teams()), nil
}

func splitTeams(raw string) []string {
	var out []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
