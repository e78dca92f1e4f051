// Package scoring evaluates completed drafts against an actual
// fantasy-points-by-player table.
package scoring

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/normalize"
	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/transcript"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// TeamScore is one team's evaluation result, best teams first
type TeamScore struct {
	Team        string   `json:"team"`
	TotalPoints float64  `json:"total_points"`
	TopPlayer   string   `json:"top_player,omitempty"`
	TopPoints   float64  `json:"top_points,omitempty"`
	Unmatched   []string `json:"unmatched,omitempty"`
}

// Evaluator scores final rosters against a points table
type Evaluator struct {
	log *logrus.Entry
}

// NewEvaluator creates a roster evaluator
func NewEvaluator(log *logrus.Logger) *Evaluator {
	return &Evaluator{log: log.WithField("stage", "scoring")}
}

// Evaluate loads a points table (Player, Pos, TTL columns) and totals
// each roster. Players are matched by normalized name and position
// first, then by name alone; a player absent from the table scores
// zero and is reported as unmatched, never a failure.
func (e *Evaluator) Evaluate(rosters map[string][]transcript.RosterEntry, pointsPath string) ([]TeamScore, error) {
	table, err := tabular.Load(pointsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load points table: %w", err)
	}

	byNamePos := make(map[string]float64)
	byName := make(map[string]float64)
	for _, row := range table.Rows() {
		name, ok := row.FirstOf("Player", "Name")
		if !ok {
			continue
		}
		points, ok := row.FirstFloatOf("TTL", "Fantasy_Points", "FPTS")
		if !ok {
			continue
		}
		norm := normalize.Normalize(name)
		if posRaw, ok := row.FirstOf("Pos", "Position"); ok {
			if pos, ok := types.ParsePosition(posRaw); ok {
				byNamePos[norm+"|"+string(pos)] = points
			}
		}
		if _, dup := byName[norm]; !dup {
			byName[norm] = points
		}
	}

	var scores []TeamScore
	for team, entries := range rosters {
		score := TeamScore{Team: team}
		for _, entry := range entries {
			norm := normalize.Normalize(entry.Player)
			points, ok := byNamePos[norm+"|"+string(entry.Position)]
			if !ok {
				points, ok = byName[norm]
			}
			if !ok {
				score.Unmatched = append(score.Unmatched, entry.Player)
				e.log.WithFields(logrus.Fields{"team": team, "player": entry.Player}).
					Warn("Player missing from points table, scored as zero")
				continue
			}
			score.TotalPoints += points
			if points > score.TopPoints {
				score.TopPoints = points
				score.TopPlayer = entry.Player
			}
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].TotalPoints != scores[j].TotalPoints {
			return scores[i].TotalPoints > scores[j].TotalPoints
		}
		return scores[i].Team < scores[j].Team
	})
	return scores, nil
}
