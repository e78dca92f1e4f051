// Package transcript persists draft results: an append-style pick log,
// the final rosters, and a JSON record the scoring tool consumes.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tanayko/fantasydraftpredictor/internal/draft"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// RosterEntry is one drafted player on a team's final roster
type RosterEntry struct {
	Player   string         `json:"player"`
	Position types.Position `json:"position"`
}

// Record is the persisted form of one completed draft
type Record struct {
	ID        string                   `json:"id"`
	CreatedAt time.Time                `json:"created_at"`
	Picks     []draft.Pick             `json:"picks"`
	Rosters   map[string][]RosterEntry `json:"rosters"`
}

// NewRecord captures a completed draft's picks and rosters
func NewRecord(id string, picks []draft.Pick, teams []*draft.Team) Record {
	rosters := make(map[string][]RosterEntry, len(teams))
	for _, team := range teams {
		var entries []RosterEntry
		for _, pos := range types.AllPositions {
			for _, p := range team.Roster[pos] {
				entries = append(entries, RosterEntry{Player: p.Name, Position: pos})
			}
		}
		rosters[team.Name] = entries
	}
	return Record{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Picks:     picks,
		Rosters:   rosters,
	}
}

// Save writes the machine-readable record and a human-readable pick log
// to dir, returning the JSON path
func (r Record) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create transcript directory: %w", err)
	}

	jsonPath := filepath.Join(dir, fmt.Sprintf("draft_%s.json", r.ID))
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript: %w", err)
	}

	textPath := filepath.Join(dir, fmt.Sprintf("draft_%s.txt", r.ID))
	if err := os.WriteFile(textPath, []byte(r.text()), 0o644); err != nil {
		return "", fmt.Errorf("failed to write transcript log: %w", err)
	}

	return jsonPath, nil
}

// Load reads a previously saved draft record
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read transcript: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("failed to decode transcript %s: %w", path, err)
	}
	return record, nil
}

func (r Record) text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Draft %s (%s)\n\n", r.ID, r.CreatedAt.Format(time.RFC3339))
	b.WriteString("Picks:\n")
	for _, pick := range r.Picks {
		fmt.Fprintf(&b, "  Round %d, Pick %d: %s -> %s (%s)\n",
			pick.Round, pick.Overall, pick.Team, pick.Player, pick.Position)
	}

	teams := make([]string, 0, len(r.Rosters))
	for team := range r.Rosters {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	b.WriteString("\nFinal rosters:\n")
	for _, team := range teams {
		fmt.Fprintf(&b, "  %s:\n", team)
		for _, entry := range r.Rosters[team] {
			fmt.Fprintf(&b, "    %s %s\n", entry.Position, entry.Player)
		}
	}

	return b.String()
}
