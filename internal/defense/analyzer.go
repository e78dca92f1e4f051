// Package defense ingests the per-position fantasy-points-allowed
// tables, ranks each team's defense against each offensive position,
// and buckets teams into ordered tiers.
package defense

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Allowed-stat columns per position, canonical name -> source candidates
var allowedColumns = map[types.Position]map[string][]string{
	types.QB: {
		"pass_yards_allowed":    {"Yds"},
		"pass_tds_allowed":      {"TD"},
		"interceptions":         {"Int"},
		"qb_rush_yards_allowed": {"Rush_Yds"},
	},
	types.RB: {
		"rush_yards_allowed": {"Yds"},
		"rush_tds_allowed":   {"TD"},
		"receptions_allowed": {"Rec"},
		"rec_yards_allowed":  {"Rec_Yds"},
		"rec_tds_allowed":    {"Rec_TD"},
	},
	types.WR: {
		"receptions_allowed": {"Rec"},
		"targets_allowed":    {"Target", "Tgt"},
		"rec_yards_allowed":  {"Rec_Yds"},
		"rec_tds_allowed":    {"Rec_TD"},
	},
	types.TE: {
		"receptions_allowed": {"Rec"},
		"targets_allowed":    {"Target", "Tgt"},
		"rec_yards_allowed":  {"Yds", "Rec_Yds"},
		"rec_tds_allowed":    {"TD", "Rec_TD"},
	},
	types.K: {
		"pat_allowed":       {"PAT_Made"},
		"fg_20_29_allowed":  {"FG_20_29"},
		"fg_30_39_allowed":  {"FG_30_39"},
		"fg_40_49_allowed":  {"FG_40_49"},
		"fg_50plus_allowed": {"FG_50plus", "FG_50+"},
	},
	types.DST: {
		"sacks":             {"Sack"},
		"interceptions":     {"Int"},
		"fumble_recoveries": {"Fum_Rec"},
		"points_allowed":    {"Pts_Allow"},
	},
}

// Analyzer builds defense-vs-position rankings from allowed-stat tables
type Analyzer struct {
	log *logrus.Entry
}

// NewAnalyzer creates a defense analyzer
func NewAnalyzer(log *logrus.Logger) *Analyzer {
	return &Analyzer{log: log.WithField("stage", "defense")}
}

// Analyze loads each position's table and ranks every team's defense
// against that position. Rank 1 is the stingiest defense; the DST table
// instead describes each team's own defensive output, so its score keeps
// the rank un-inverted and its ordering is reversed. A file that fails
// to load is logged and skipped.
func (a *Analyzer) Analyze(files map[types.Position]string) (map[types.Position][]*types.DefenseVsPositionRecord, error) {
	analysis := make(map[types.Position][]*types.DefenseVsPositionRecord)

	for pos, path := range files {
		table, err := tabular.Load(path)
		if err != nil {
			a.log.WithError(err).WithField("position", pos).Warn("Skipping defense file")
			continue
		}

		var records []*types.DefenseVsPositionRecord
		for _, row := range table.Rows() {
			team, ok := row.FirstOf("Team", "TEAM")
			if !ok {
				continue
			}
			rank, ok := row.Int("Rank")
			if !ok {
				continue
			}
			record := &types.DefenseVsPositionRecord{
				Team:        team,
				DefenseRank: rank,
				Allowed:     make(map[string]float64),
			}
			if pos == types.DST {
				record.DefenseScore = float64(rank)
			} else {
				record.DefenseScore = float64(33 - rank)
			}
			record.AvgPointsAllowed, _ = row.Float("Avg")
			for canonical, candidates := range allowedColumns[pos] {
				if v, ok := row.FirstFloatOf(candidates...); ok {
					record.Allowed[canonical] = v
				}
			}
			records = append(records, record)
		}

		if len(records) == 0 {
			a.log.WithField("position", pos).Warn("Defense table produced no rows")
			continue
		}

		sortByStrength(pos, records)
		analysis[pos] = records
		a.log.WithFields(logrus.Fields{"position": pos, "teams": len(records)}).
			Debug("Ranked defenses")
	}

	if len(analysis) == 0 {
		return nil, fmt.Errorf("no defense data could be loaded")
	}
	return analysis, nil
}

// sortByStrength orders records best defense first: ascending rank for
// offensive positions, descending for the DST table
func sortByStrength(pos types.Position, records []*types.DefenseVsPositionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if pos == types.DST {
			return records[i].DefenseRank > records[j].DefenseRank
		}
		return records[i].DefenseRank < records[j].DefenseRank
	})
}

// TierLabels returns the ordered tier labels, best tier first
func TierLabels(numCategories int) []string {
	switch numCategories {
	case 5:
		return []string{"Shutdown", "Strong", "Average", "Weak", "Exploitable"}
	case 3:
		return []string{"Strong", "Average", "Weak"}
	default:
		labels := make([]string, numCategories)
		for i := range labels {
			labels[i] = fmt.Sprintf("Tier %d", i+1)
		}
		return labels
	}
}

// Categorize partitions each position's ranked teams into numCategories
// contiguous tiers of near-equal size, remainder teams distributed
// one-per-tier starting from the best tier. Records are labeled in
// place and every team lands in exactly one tier.
func Categorize(analysis map[types.Position][]*types.DefenseVsPositionRecord, numCategories int) {
	labels := TierLabels(numCategories)

	for pos, records := range analysis {
		sortByStrength(pos, records)

		perTier := len(records) / numCategories
		remainder := len(records) % numCategories
		sizes := make([]int, numCategories)
		for i := range sizes {
			sizes[i] = perTier
			if i < remainder {
				sizes[i]++
			}
		}

		idx := 0
		for tier, size := range sizes {
			for j := 0; j < size && idx < len(records); j++ {
				records[idx].Category = labels[tier]
				idx++
			}
		}
	}
}
