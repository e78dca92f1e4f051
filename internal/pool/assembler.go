// Package pool assembles the final draft pool: fused rankings enriched
// with team offense context, opportunity scores, and schedule
// difficulty, persisted as a single JSON artifact the draft engine and
// selectors consume.
package pool

import (
	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/schedule"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// OpportunityWeights holds the per-position blend weights over the team
// offense composite scores
type OpportunityWeights struct {
	QBPassFriendly float64
	QBQuality      float64
	RBRushFriendly float64
	RBQuality      float64
	WRPassFriendly float64
	WRQuality      float64
	TEPassFriendly float64
	TEQuality      float64
	KQuality       float64
	KYardsPerPoint float64
}

// DefaultOpportunityWeights returns the historical per-position blends
func DefaultOpportunityWeights() OpportunityWeights {
	return OpportunityWeights{
		QBPassFriendly: 0.8, QBQuality: 0.2,
		RBRushFriendly: 0.7, RBQuality: 0.3,
		WRPassFriendly: 0.7, WRQuality: 0.3,
		TEPassFriendly: 0.6, TEQuality: 0.4,
		KQuality: 0.8, KYardsPerPoint: 0.2,
	}
}

// Assembler merges the analysis layers onto the fused player table
type Assembler struct {
	log     *logrus.Entry
	weights OpportunityWeights
}

// NewAssembler creates a pool assembler
func NewAssembler(log *logrus.Logger, weights OpportunityWeights) *Assembler {
	return &Assembler{log: log.WithField("stage", "pool"), weights: weights}
}

// Assemble attaches team offense context to every player whose team
// resolves, derives opportunity scores normalized within position, and
// folds in aggregate schedule difficulty. Players on unresolvable teams
// keep nil context and are logged, never dropped.
func (a *Assembler) Assemble(
	players []*types.PlayerRecord,
	offense map[string]*types.TeamOffenseScore,
	sched types.Schedule,
	agg *schedule.Aggregator,
) {
	matched := 0
	for _, p := range players {
		abbr, ok := types.ResolveTeam(p.Team)
		if !ok {
			a.log.WithFields(logrus.Fields{"player": p.Name, "team": p.Team}).
				Debug("Unresolvable team, no offense context")
			continue
		}
		if ctx, ok := offense[abbr]; ok {
			p.TeamOffense = ctx
			matched++
		}
		if agg != nil {
			p.ScheduleDifficultyScore, p.ScheduleRating = agg.Difficulty(abbr, p.Position, sched)
		}
	}

	a.computeOpportunityScores(players)

	a.log.WithFields(logrus.Fields{
		"players":      len(players),
		"with_offense": matched,
	}).Info("Assembled draft pool")
}

// computeOpportunityScores blends each player's team offense composites
// with position-specific weights, then min-max normalizes the raw blend
// to 0-100 within each position. A position where every raw value is
// identical keeps the raw values, since the spread carries no
// information to rescale.
func (a *Assembler) computeOpportunityScores(players []*types.PlayerRecord) {
	type rawScore struct {
		player *types.PlayerRecord
		value  float64
	}
	byPosition := make(map[types.Position][]rawScore)

	for _, p := range players {
		if p.TeamOffense == nil {
			continue
		}
		raw, ok := a.rawOpportunity(p.Position, p.TeamOffense)
		if !ok {
			continue
		}
		byPosition[p.Position] = append(byPosition[p.Position], rawScore{p, raw})
	}

	for pos, scores := range byPosition {
		min, max := scores[0].value, scores[0].value
		for _, s := range scores[1:] {
			if s.value < min {
				min = s.value
			}
			if s.value > max {
				max = s.value
			}
		}
		if max == min {
			a.log.WithField("position", pos).
				Warn("Degenerate opportunity spread, keeping raw scores")
			for _, s := range scores {
				raw := s.value
				s.player.OpportunityScore = &raw
			}
			continue
		}
		for _, s := range scores {
			normalized := (s.value - min) / (max - min) * 100
			normalized = float64(int(normalized*10+0.5)) / 10
			s.player.OpportunityScore = &normalized
		}
	}
}

func (a *Assembler) rawOpportunity(pos types.Position, ctx *types.TeamOffenseScore) (float64, bool) {
	w := a.weights
	switch pos {
	case types.QB:
		return w.QBPassFriendly*ctx.PassFriendlyScore + w.QBQuality*ctx.OffenseQualityScore, true
	case types.RB:
		return w.RBRushFriendly*ctx.RushFriendlyScore + w.RBQuality*ctx.OffenseQualityScore, true
	case types.WR:
		return w.WRPassFriendly*ctx.PassFriendlyScore + w.WRQuality*ctx.OffenseQualityScore, true
	case types.TE:
		return w.TEPassFriendly*ctx.PassFriendlyScore + w.TEQuality*ctx.OffenseQualityScore, true
	case types.K:
		// Offenses that move the ball but stall settle for field goals,
		// so yards per point adds signal for kickers
		return w.KQuality*ctx.OffenseQualityScore + w.KYardsPerPoint*ctx.YardsPerPoint, true
	default:
		// The DST unit's outlook is its own defense, not its offense
		return 0, false
	}
}
