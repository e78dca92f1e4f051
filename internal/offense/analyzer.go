// Package offense ingests multi-year team offensive aggregates and
// derives per-team ranks, 3-year trend slopes, and the composite
// pass-friendly / rush-friendly / quality scores consumed by the
// composite ranking assembler.
package offense

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Weights holds the empirical blend weights for the composite offense
// scores. The splits have no stated derivation; they are configuration,
// not model output.
type Weights struct {
	PassFriendlyPass  float64
	PassFriendlyTotal float64
	RushFriendlyRush  float64
	RushFriendlyTotal float64
	QualityTotal      float64
	QualityScoring    float64
}

// DefaultWeights returns the historical blend weights
func DefaultWeights() Weights {
	return Weights{
		PassFriendlyPass:  0.7,
		PassFriendlyTotal: 0.3,
		RushFriendlyRush:  0.7,
		RushFriendlyTotal: 0.3,
		QualityTotal:      0.4,
		QualityScoring:    0.6,
	}
}

// Analyzer builds TeamOffenseScores from yearly team offense tables
type Analyzer struct {
	log     *logrus.Entry
	weights Weights
}

// NewAnalyzer creates an offense analyzer
func NewAnalyzer(log *logrus.Logger, weights Weights) *Analyzer {
	return &Analyzer{log: log.WithField("stage", "offense"), weights: weights}
}

type yearRow struct {
	yardsPerGame  float64
	pointsPerGame float64
	totalYards    float64
	totalPoints   float64
	passing       float64
	rushing       float64
	passRunRatio  float64
	yardsPerPoint float64
}

// Analyze loads each season's table, ranks the most recent season, and
// computes recency trends over the last three available seasons. A year
// that fails to load is logged and skipped; teams missing a year keep
// their most-recent-season ranks but lose the trend slope for affected
// metrics.
func (a *Analyzer) Analyze(files map[int]string) (map[string]*types.TeamOffenseScore, error) {
	byYear := make(map[int]map[string]*yearRow)

	for year, path := range files {
		table, err := tabular.Load(path)
		if err != nil {
			a.log.WithError(err).WithField("year", year).Warn("Skipping offense file")
			continue
		}
		rows := make(map[string]*yearRow)
		for _, row := range table.Rows() {
			team, ok := row.FirstOf("TEAM", "Team")
			if !ok {
				continue
			}
			abbr, ok := types.ResolveTeam(team)
			if !ok {
				a.log.WithFields(logrus.Fields{"year": year, "team": team}).
					Warn("Unknown team name in offense table")
				continue
			}
			r := &yearRow{}
			r.yardsPerGame, _ = row.Float("YDS/G")
			r.pointsPerGame, _ = row.Float("PTS/G")
			r.totalYards, _ = row.Float("YDS")
			r.totalPoints, _ = row.Float("PTS")
			r.passing, _ = row.Float("Passing")
			r.rushing, _ = row.Float("Rushing")
			if r.rushing != 0 {
				r.passRunRatio = r.passing / r.rushing
			}
			if r.totalPoints != 0 {
				r.yardsPerPoint = r.totalYards / r.totalPoints
			}
			rows[abbr] = r
		}
		byYear[year] = rows
	}

	if len(byYear) == 0 {
		return nil, fmt.Errorf("no offense data could be loaded")
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)
	recentYears := years
	if len(recentYears) > 3 {
		recentYears = recentYears[len(recentYears)-3:]
	}
	mostRecent := years[len(years)-1]
	current := byYear[mostRecent]

	scores := make(map[string]*types.TeamOffenseScore, len(current))
	for abbr, row := range current {
		scores[abbr] = &types.TeamOffenseScore{
			Team:          abbr,
			YardsPerGame:  row.yardsPerGame,
			PointsPerGame: row.pointsPerGame,
			PassingVolume: row.passing,
			RushingVolume: row.rushing,
			YardsPerPoint: row.yardsPerPoint,
		}
	}

	a.rankCurrentSeason(current, scores)
	a.computeTrends(byYear, recentYears, scores)

	a.log.WithFields(logrus.Fields{"teams": len(scores), "season": mostRecent}).
		Info("Analyzed team offenses")
	return scores, nil
}

// rankCurrentSeason ranks teams 1..N (1 = best) on the four volume
// metrics and derives the composite scores
func (a *Analyzer) rankCurrentSeason(current map[string]*yearRow, scores map[string]*types.TeamOffenseScore) {
	passingRank := rankDescending(current, func(r *yearRow) float64 { return r.passing })
	rushingRank := rankDescending(current, func(r *yearRow) float64 { return r.rushing })
	totalRank := rankDescending(current, func(r *yearRow) float64 { return r.yardsPerGame })
	scoringRank := rankDescending(current, func(r *yearRow) float64 { return r.pointsPerGame })

	for abbr, s := range scores {
		s.PassingRank = passingRank[abbr]
		s.RushingRank = rushingRank[abbr]
		s.TotalOffenseRank = totalRank[abbr]
		s.ScoringRank = scoringRank[abbr]

		s.PassFriendlyScore = a.weights.PassFriendlyPass*float64(33-s.PassingRank) +
			a.weights.PassFriendlyTotal*float64(33-s.TotalOffenseRank)
		s.RushFriendlyScore = a.weights.RushFriendlyRush*float64(33-s.RushingRank) +
			a.weights.RushFriendlyTotal*float64(33-s.TotalOffenseRank)
		s.OffenseQualityScore = a.weights.QualityTotal*float64(33-s.TotalOffenseRank) +
			a.weights.QualityScoring*float64(33-s.ScoringRank)
	}
}

// computeTrends fills the recency metrics for each team: most recent
// value, mean over the recent window, year-over-year delta, and - when
// all three seasons are present - the least-squares slope. Stability is
// 100 minus the coefficient of variation (x100) of points per game.
func (a *Analyzer) computeTrends(byYear map[int]map[string]*yearRow, recentYears []int, scores map[string]*types.TeamOffenseScore) {
	metrics := []struct {
		value func(*yearRow) float64
		dest  func(*types.TeamOffenseScore) *types.TrendMetrics
	}{
		{func(r *yearRow) float64 { return r.yardsPerGame }, func(s *types.TeamOffenseScore) *types.TrendMetrics { return &s.YardsTrend }},
		{func(r *yearRow) float64 { return r.pointsPerGame }, func(s *types.TeamOffenseScore) *types.TrendMetrics { return &s.PointsTrend }},
		{func(r *yearRow) float64 { return r.passRunRatio }, func(s *types.TeamOffenseScore) *types.TrendMetrics { return &s.PassRunRatioTrend }},
	}

	for abbr, s := range scores {
		for _, metric := range metrics {
			var xs, ys []float64
			for _, year := range recentYears {
				row, ok := byYear[year][abbr]
				if !ok {
					continue
				}
				xs = append(xs, float64(year))
				ys = append(ys, metric.value(row))
			}
			if len(ys) == 0 {
				continue
			}

			trend := metric.dest(s)
			trend.Recent = ys[len(ys)-1]
			trend.ThreeYearAvg = stat.Mean(ys, nil)
			if len(ys) >= 2 {
				delta := ys[len(ys)-1] - ys[len(ys)-2]
				trend.YoYChange = &delta
			}
			if len(ys) == 3 && len(recentYears) == 3 {
				_, slope := stat.LinearRegression(xs, ys, nil, false)
				trend.Slope = &slope
			}
		}

		var pts []float64
		for _, year := range recentYears {
			if row, ok := byYear[year][abbr]; ok {
				pts = append(pts, row.pointsPerGame)
			}
		}
		if len(pts) > 0 {
			mean := stat.Mean(pts, nil)
			if mean > 0 {
				stability := 100 - popStdDev(pts, mean)/mean*100
				s.OffenseStability = &stability
			}
		}
	}
}

// popStdDev is the population standard deviation (no Bessel correction),
// matching how the stability score has always been computed
func popStdDev(values []float64, mean float64) float64 {
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

// rankDescending ranks teams 1..N by metric value descending, ties
// broken alphabetically for determinism
func rankDescending(rows map[string]*yearRow, value func(*yearRow) float64) map[string]int {
	teams := make([]string, 0, len(rows))
	for abbr := range rows {
		teams = append(teams, abbr)
	}
	sort.Slice(teams, func(i, j int) bool {
		vi, vj := value(rows[teams[i]]), value(rows[teams[j]])
		if vi != vj {
			return vi > vj
		}
		return teams[i] < teams[j]
	})
	ranks := make(map[string]int, len(teams))
	for i, abbr := range teams {
		ranks[abbr] = i + 1
	}
	return ranks
}
