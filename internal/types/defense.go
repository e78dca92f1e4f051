package types

// DefenseVsPositionRecord ranks one team's defense against one offensive
// position. Rank 1 is the stingiest defense; DefenseScore inverts it
// (33 - rank) so higher is better, except the DST table where the rank
// already describes the team's own defensive output and is kept as-is.
type DefenseVsPositionRecord struct {
	Team             string  `json:"team"`
	DefenseRank      int     `json:"defense_rank"`
	DefenseScore     float64 `json:"defense_score"`
	AvgPointsAllowed float64 `json:"avg_points_allowed"`
	Category         string  `json:"category,omitempty"`

	// Raw allowed-stat columns specific to the position
	Allowed map[string]float64 `json:"allowed,omitempty"`
}
