// Package draft runs the turn-based snake draft over an assembled
// player pool: seat order, roster mutation, pluggable selectors, and
// the deterministic fallback policy.
package draft

import (
	"fmt"

	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Starting-lineup targets per position. FLEX is one extra RB or WR
// beyond the positional targets, so RB+WR together target five.
var rosterTargets = map[types.Position]int{
	types.QB: 1,
	types.RB: 2,
	types.WR: 2,
	types.TE: 1,
}

const flexTarget = 5 // combined RB+WR including the FLEX slot

// Team is one draft seat and its roster. The roster only ever grows.
type Team struct {
	Name   string
	Roster map[types.Position][]*types.PlayerRecord
}

// NewTeam creates an empty draft seat
func NewTeam(name string) *Team {
	return &Team{
		Name:   name,
		Roster: make(map[types.Position][]*types.PlayerRecord),
	}
}

// AddPlayer claims the player for this team. It is the only place the
// draft mutates a PlayerRecord.
func (t *Team) AddPlayer(p *types.PlayerRecord) error {
	if p.Drafted {
		return fmt.Errorf("%s is already drafted by %s", p.Name, p.DraftedBy)
	}
	p.Drafted = true
	p.DraftedBy = t.Name
	t.Roster[p.Position] = append(t.Roster[p.Position], p)
	return nil
}

// CountAt returns how many players the team holds at the position
func (t *Team) CountAt(pos types.Position) int {
	return len(t.Roster[pos])
}

// Size returns the total roster size
func (t *Team) Size() int {
	n := 0
	for _, players := range t.Roster {
		n += len(players)
	}
	return n
}

// RosterCopy returns a defensive copy of the roster map so selectors
// cannot mutate draft state through it
func (t *Team) RosterCopy() map[types.Position][]*types.PlayerRecord {
	out := make(map[types.Position][]*types.PlayerRecord, len(t.Roster))
	for pos, players := range t.Roster {
		out[pos] = append([]*types.PlayerRecord(nil), players...)
	}
	return out
}

// needs returns the positions still below their lineup target, in
// lineup order. The FLEX slot keeps RB and WR needy until the pair
// reaches the combined target.
func (t *Team) needs() []types.Position {
	var out []types.Position
	for _, pos := range []types.Position{types.QB, types.RB, types.WR, types.TE} {
		if t.CountAt(pos) < rosterTargets[pos] {
			out = append(out, pos)
		}
	}
	if t.CountAt(types.RB)+t.CountAt(types.WR) < flexTarget {
		for _, pos := range []types.Position{types.RB, types.WR} {
			if !containsPosition(out, pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// UnmetTargets describes every lineup target the final roster misses.
// These are warnings on the team summary, never failures.
func (t *Team) UnmetTargets() []string {
	var out []string
	for _, pos := range []types.Position{types.QB, types.RB, types.WR, types.TE} {
		if have, want := t.CountAt(pos), rosterTargets[pos]; have < want {
			out = append(out, fmt.Sprintf("%s: have %d, need %d", pos, have, want))
		}
	}
	if combined := t.CountAt(types.RB) + t.CountAt(types.WR); combined < flexTarget {
		out = append(out, fmt.Sprintf("FLEX: have %d RB/WR, need %d", combined, flexTarget))
	}
	return out
}

func containsPosition(positions []types.Position, pos types.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
