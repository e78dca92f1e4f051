package types

// ByeOpponent is the sentinel opponent for a team's bye week
const ByeOpponent = "BYE"

// WeeksPerSeason is the number of schedule weeks in a season
const WeeksPerSeason = 18

// Schedule maps team -> week number -> opponent (or ByeOpponent)
type Schedule map[string]map[int]string

// Opponents returns the non-bye opponents for a team in week order
func (s Schedule) Opponents(team string) []string {
	weeks, ok := s[team]
	if !ok {
		return nil
	}
	opponents := make([]string, 0, len(weeks))
	for week := 1; week <= WeeksPerSeason; week++ {
		opp, ok := weeks[week]
		if !ok || opp == ByeOpponent {
			continue
		}
		opponents = append(opponents, opp)
	}
	return opponents
}
