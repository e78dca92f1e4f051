package types

// Ranking source names
const (
	SourceESPN    = "ESPN"
	SourceSleeper = "Sleeper"
	SourceYahoo   = "Yahoo"
)

// RankingSources lists the fused sources in join order. The order matters:
// optional pass-through fields (BYE, ADP, FantasyPros) coalesce first-non-null
// in this order.
var RankingSources = []string{SourceESPN, SourceSleeper, SourceYahoo}

// ScheduleRating is the categorical bucket for a player's aggregate
// schedule difficulty
type ScheduleRating string

const (
	VeryFavorable ScheduleRating = "Very Favorable"
	Favorable     ScheduleRating = "Favorable"
	AverageSched  ScheduleRating = "Average"
	Difficult     ScheduleRating = "Difficult"
	VeryDifficult ScheduleRating = "Very Difficult"
)

// PlayerRecord is the canonical row for one unique human player, fused
// across every ranking and stat source. The pool-construction pipeline
// builds these once; the draft engine only ever mutates Drafted/DraftedBy.
type PlayerRecord struct {
	Name           string   `json:"name"`
	NormalizedName string   `json:"normalized_name"`
	Team           string   `json:"team"`
	Position       Position `json:"position"`
	ByeWeek        *int     `json:"bye_week,omitempty"`

	// Per-source ranks; a source absent from the map reported no rank
	SourceRanks map[string]int `json:"source_ranks"`

	AverageRank *float64 `json:"average_rank,omitempty"`
	OverallRank int      `json:"overall_rank"`

	ADP             *float64 `json:"adp,omitempty"`
	FantasyProsRank *float64 `json:"fantasy_pros_rank,omitempty"`

	// Prior-season counting stats keyed by the canonical stat vocabulary
	SeasonStats      map[string]float64 `json:"season_stats,omitempty"`
	PriorOverallRank *int               `json:"prior_overall_rank,omitempty"`
	RankChange       *int               `json:"rank_change,omitempty"`

	TeamOffense      *TeamOffenseScore `json:"team_offense_context,omitempty"`
	OpportunityScore *float64          `json:"opportunity_score,omitempty"`

	ScheduleDifficultyScore *float64       `json:"schedule_difficulty_score,omitempty"`
	ScheduleRating          ScheduleRating `json:"schedule_rating,omitempty"`

	Drafted   bool   `json:"drafted"`
	DraftedBy string `json:"drafted_by,omitempty"`
}

// Canonical season-stat vocabulary shared by every position table
const (
	StatFantasyPoints   = "fantasy_points"
	StatGamesPlayed     = "games_played"
	StatAvgPoints       = "avg_points"
	StatPositionRank    = "position_rank_prior_season"
	StatPassingYards    = "passing_yards"
	StatPassingTDs      = "passing_tds"
	StatInterceptions   = "interceptions"
	StatRushingYards    = "rushing_yards"
	StatRushingTDs      = "rushing_tds"
	StatReceptions      = "receptions"
	StatReceivingYards  = "receiving_yards"
	StatReceivingTDs    = "receiving_tds"
	StatTargets         = "targets"
	StatPATMade         = "pat_made"
	StatFG0to19         = "fg_0_19"
	StatFG20to29        = "fg_20_29"
	StatFG30to39        = "fg_30_39"
	StatFG40to49        = "fg_40_49"
	StatFG50Plus        = "fg_50_plus"
	StatSacks           = "sacks"
	StatFumbleRecovered = "fumble_recoveries"
	StatPointsAllowed   = "points_allowed"
	StatDefensiveTDs    = "defensive_tds"
	StatSafeties        = "safeties"
)

// Stat returns a season stat by canonical name, with presence flag
func (p *PlayerRecord) Stat(name string) (float64, bool) {
	if p.SeasonStats == nil {
		return 0, false
	}
	v, ok := p.SeasonStats[name]
	return v, ok
}

// RankOrLast returns the average rank, or a sentinel that sorts after
// every real rank when no source reported one
func (p *PlayerRecord) RankOrLast() float64 {
	if p.AverageRank == nil {
		return 1e9
	}
	return *p.AverageRank
}
