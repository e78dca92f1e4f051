// Package schedule loads the season schedule and aggregates per-player
// schedule difficulty from the defense-vs-position rankings.
package schedule

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Load reads a season schedule from a long-form CSV with columns
// Team, Week, Opponent (opponent "BYE" for the bye week). Team names
// are resolved to abbreviations; opponents keep their source spelling
// and are resolved at lookup time, since schedules and defense tables
// rarely agree on naming.
func Load(path string, log *logrus.Logger) (types.Schedule, error) {
	slog := log.WithField("stage", "schedule")

	table, err := tabular.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	sched := make(types.Schedule)
	for _, row := range table.Rows() {
		teamRaw, ok := row.FirstOf("Team", "TEAM")
		if !ok {
			continue
		}
		week, ok := row.Int("Week")
		if !ok || week < 1 || week > types.WeeksPerSeason {
			slog.WithFields(logrus.Fields{"team": teamRaw, "week": row["Week"]}).
				Warn("Invalid week in schedule, skipping row")
			continue
		}
		opponent, ok := row.FirstOf("Opponent", "Opp")
		if !ok {
			continue
		}

		team, ok := types.ResolveTeam(teamRaw)
		if !ok {
			slog.WithField("team", teamRaw).Warn("Unknown team in schedule, skipping row")
			continue
		}
		if sched[team] == nil {
			sched[team] = make(map[int]string)
		}
		sched[team][week] = opponent
	}

	for team, weeks := range sched {
		byes := 0
		for _, opp := range weeks {
			if opp == types.ByeOpponent {
				byes++
			}
		}
		if byes > 1 {
			slog.WithFields(logrus.Fields{"team": team, "byes": byes}).
				Warn("Team has more than one bye week")
		}
	}

	return sched, nil
}

// Thresholds are the fixed score cutoffs for the categorical rating,
// in descending order
type Thresholds struct {
	VeryFavorable float64
	Favorable     float64
	Average       float64
	Difficult     float64
}

// DefaultThresholds returns the historical 80/60/40/20 cutoffs
func DefaultThresholds() Thresholds {
	return Thresholds{VeryFavorable: 80, Favorable: 60, Average: 40, Difficult: 20}
}

// Rate maps an aggregate difficulty score to its categorical bucket
func (t Thresholds) Rate(score float64) types.ScheduleRating {
	switch {
	case score >= t.VeryFavorable:
		return types.VeryFavorable
	case score >= t.Favorable:
		return types.Favorable
	case score >= t.Average:
		return types.AverageSched
	case score >= t.Difficult:
		return types.Difficult
	default:
		return types.VeryDifficult
	}
}

// Aggregator folds a team's full schedule and the categorized defense
// rankings into one difficulty score per player
type Aggregator struct {
	log        *logrus.Entry
	thresholds Thresholds
	// position -> team-name variant -> defense rank
	lookup map[types.Position]map[string]int
}

// NewAggregator indexes the defense analysis by every known team-name
// variant so schedule opponents resolve regardless of spelling
func NewAggregator(log *logrus.Logger, thresholds Thresholds, analysis map[types.Position][]*types.DefenseVsPositionRecord) *Aggregator {
	lookup := make(map[types.Position]map[string]int)
	for pos, records := range analysis {
		byName := make(map[string]int)
		for _, record := range records {
			byName[record.Team] = record.DefenseRank
			if abbr, ok := types.ResolveTeam(record.Team); ok {
				for _, variant := range types.TeamVariants[abbr] {
					byName[variant] = record.DefenseRank
				}
			}
		}
		lookup[pos] = byName
	}
	return &Aggregator{
		log:        log.WithField("stage", "schedule"),
		thresholds: thresholds,
		lookup:     lookup,
	}
}

// Difficulty averages the weekly matchup favorability for one
// (team, position) over every non-bye week with a resolvable opponent.
// Returns nil when the team has no schedule or no week resolves.
func (a *Aggregator) Difficulty(team string, pos types.Position, sched types.Schedule) (*float64, types.ScheduleRating) {
	byName, ok := a.lookup[pos]
	if !ok {
		return nil, ""
	}
	weeks, ok := sched[team]
	if !ok {
		return nil, ""
	}

	total, count := 0.0, 0
	for week := 1; week <= types.WeeksPerSeason; week++ {
		opponent, ok := weeks[week]
		if !ok || opponent == types.ByeOpponent {
			continue
		}
		rank, ok := resolveOpponent(byName, opponent)
		if !ok {
			a.log.WithFields(logrus.Fields{"team": team, "opponent": opponent, "position": pos}).
				Debug("Unresolvable opponent, week excluded from difficulty")
			continue
		}

		// Higher score = better matchup. For offensive positions a low
		// defense rank (strong defense) means a hard matchup; for the
		// DST unit the scale inverts.
		var matchup float64
		if pos == types.DST {
			matchup = float64(rank) / 32 * 100
		} else {
			matchup = float64(33-rank) / 32 * 100
		}
		total += matchup
		count++
	}

	if count == 0 {
		return nil, ""
	}
	avg := total / float64(count)
	// Round to 1 decimal for the artifact
	avg = float64(int(avg*10+0.5)) / 10
	return &avg, a.thresholds.Rate(avg)
}

func resolveOpponent(byName map[string]int, opponent string) (int, bool) {
	if rank, ok := byName[opponent]; ok {
		return rank, true
	}
	if abbr, ok := types.ResolveTeam(opponent); ok {
		if rank, ok := byName[abbr]; ok {
			return rank, true
		}
		for _, variant := range types.TeamVariants[abbr] {
			if rank, ok := byName[variant]; ok {
				return rank, true
			}
		}
	}
	return 0, false
}
