package types

// TrendMetrics carries the recency view of one offensive metric across
// the most recent three seasons
type TrendMetrics struct {
	Recent       float64  `json:"recent"`
	ThreeYearAvg float64  `json:"three_year_avg"`
	YoYChange    *float64 `json:"yoy_change,omitempty"`
	// Least-squares slope over the 3 yearly points; nil when fewer than
	// 3 seasons of data exist for the team
	Slope *float64 `json:"slope,omitempty"`
}

// TeamOffenseScore is the per-team offensive context for the current
// season. Built once per draft pool, immutable afterward.
type TeamOffenseScore struct {
	Team string `json:"team"`

	YardsPerGame  float64 `json:"yards_per_game"`
	PointsPerGame float64 `json:"points_per_game"`
	PassingVolume float64 `json:"passing_volume"`
	RushingVolume float64 `json:"rushing_volume"`
	YardsPerPoint float64 `json:"yards_per_point"`

	PassingRank      int `json:"passing_rank"`
	RushingRank      int `json:"rushing_rank"`
	TotalOffenseRank int `json:"total_offense_rank"`
	ScoringRank      int `json:"scoring_rank"`

	PassFriendlyScore   float64 `json:"pass_friendly_score"`
	RushFriendlyScore   float64 `json:"rush_friendly_score"`
	OffenseQualityScore float64 `json:"offense_quality_score"`

	YardsTrend        TrendMetrics `json:"yards_trend"`
	PointsTrend       TrendMetrics `json:"points_trend"`
	PassRunRatioTrend TrendMetrics `json:"pass_run_ratio_trend"`

	// 100 minus the coefficient of variation (x100) of points/game over
	// the last 3 years; nil when trend data is unavailable
	OffenseStability *float64 `json:"offense_stability,omitempty"`
}
