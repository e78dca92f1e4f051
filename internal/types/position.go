package types

import "strings"

// Position represents a fantasy roster position
type Position string

const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
)

// AllPositions lists every draftable position in display order
var AllPositions = []Position{QB, RB, WR, TE, K, DST}

// ParsePosition normalizes a raw position label from a source table
func ParsePosition(raw string) (Position, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "QB":
		return QB, true
	case "RB":
		return RB, true
	case "WR":
		return WR, true
	case "TE":
		return TE, true
	case "K", "PK":
		return K, true
	case "DST", "DEF", "D/ST":
		return DST, true
	}
	return "", false
}

// IsOffensive reports whether the position is an individual offensive player
// (everything except the team defensive unit)
func (p Position) IsOffensive() bool {
	return p != DST
}
