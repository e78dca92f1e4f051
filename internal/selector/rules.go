package selector

import (
	"context"

	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Lineup targets the rule-based selector drafts toward. The FLEX slot
// is one extra RB or WR, so the pair targets five combined.
var lineupTargets = map[types.Position]int{
	types.QB: 1,
	types.RB: 2,
	types.WR: 2,
	types.TE: 1,
}

const combinedFlexTarget = 5

// Rules is a deterministic best-available selector that drafts toward
// the lineup targets, preferring RB and WR depth in the early rounds
type Rules struct{}

// NewRules creates the rule-based selector
func NewRules() *Rules {
	return &Rules{}
}

// Select returns the name of the highest-ranked available player at
// any position the roster still needs, else the best available
// overall. It never fails, so a seat bound to it always picks on the
// first try.
func (r *Rules) Select(_ context.Context, available []*types.PlayerRecord, roster map[types.Position][]*types.PlayerRecord, _, roundNumber int) (string, error) {
	if len(available) == 0 {
		return "", nil
	}
	needed := neededPositions(roster, roundNumber)
	for _, p := range available {
		if needed[p.Position] {
			return p.Name, nil
		}
	}
	return available[0].Name, nil
}

// Fixed always answers with the same name. Used to script seats in
// replayed or test drafts.
type Fixed struct {
	Name string
}

// Select returns the fixed name regardless of draft state
func (f Fixed) Select(_ context.Context, _ []*types.PlayerRecord, _ map[types.Position][]*types.PlayerRecord, _, _ int) (string, error) {
	return f.Name, nil
}

// neededPositions is the set of unmet lineup targets, restricted to
// RB/WR needs in the early rounds while either is still open
func neededPositions(roster map[types.Position][]*types.PlayerRecord, round int) map[types.Position]bool {
	needed := make(map[types.Position]bool)
	for pos, target := range lineupTargets {
		if len(roster[pos]) < target {
			needed[pos] = true
		}
	}
	if len(roster[types.RB])+len(roster[types.WR]) < combinedFlexTarget {
		needed[types.RB] = true
		needed[types.WR] = true
	}
	if round <= 3 && (needed[types.RB] || needed[types.WR]) {
		needed = map[types.Position]bool{
			types.RB: needed[types.RB],
			types.WR: needed[types.WR],
		}
	}
	return needed
}
