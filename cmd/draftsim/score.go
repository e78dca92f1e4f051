package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tanayko/fantasydraftpredictor/internal/scoring"
	"github.com/tanayko/fantasydraftpredictor/internal/transcript"
	"github.com/tanayko/fantasydraftpredictor/pkg/logger"
)

func simulateCmd() *cobra.Command {
	var poolPath, teams string
	var trials, rounds int
	var useLLM bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run repeated independent draft trials",
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

			// Each trial reloads the artifact so no drafted state leaks
			// between runs
			names := splitTeams(teams)
			firstPicks := make(map[string]int)
			for trial := 1; trial <= trials; trial++ {
				record, err := runDraft(cfg, poolPath, names, "", rounds, 0, useLLM)
				if err != nil {
					return fmt.Errorf("trial %d failed: %w", trial, err)
				}
				if _, err := record.Save(cfg.TranscriptDir); err != nil {
					return fmt.Errorf("trial %d failed: %w", trial, err)
				}
				if len(record.Picks) > 0 {
					firstPicks[record.Picks[0].Player]++
				}
			}

			fmt.Printf("Completed %d trials, transcripts in %s\n", trials, cfg.TranscriptDir)
			for player, count := range firstPicks {
				fmt.Printf("  first overall %d/%d times: %s\n", count, trials, player)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&poolPath, "pool", "", "pool artifact path")
	cmd.Flags().StringVar(&teams, "teams", "Team 1,Team 2,Team 3,Team 4", "comma-separated team names")
	cmd.Flags().IntVar(&trials, "trials", 10, "number of independent drafts")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "number of draft rounds")
	cmd.Flags().BoolVar(&useLLM, "llm", false, "use the LLM selector for automated seats")
	return cmd
}

func scoreCmd() *cobra.Command {
	var transcriptPath, pointsPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a completed draft against actual fantasy points",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRuntime()
			if err != nil {
				return err
			}
			if pointsPath == "" {
				pointsPath = cfg.FantasyPointsCSV
			}
			if pointsPath == "" {
				return fmt.Errorf("a points table is required (--points or FANTASY_POINTS_CSV)")
			}

			record, err := transcript.Load(transcriptPath)
			if err != nil {
				return err
			}

			scores, err := scoring.NewEvaluator(logger.GetLogger()).Evaluate(record.Rosters, pointsPath)
			if err != nil {
				return err
			}

			fmt.Printf("Draft %s results:\n", record.ID)
			for i, score := range scores {
				fmt.Printf("%d. %s - %.1f points", i+1, score.Team, score.TotalPoints)
				if score.TopPlayer != "" {
					fmt.Printf(" (best: %s, %.1f)", score.TopPlayer, score.TopPoints)
				}
				fmt.Println()
				for _, name := range score.Unmatched {
					fmt.Printf("     unmatched: %s\n", name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&transcriptPath, "transcript", "", "draft transcript JSON path")
	cmd.Flags().StringVar(&pointsPath, "points", "", "fantasy points CSV path")
	_ = cmd.MarkFlagRequired("transcript")
	return cmd
}
