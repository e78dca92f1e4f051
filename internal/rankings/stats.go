package rankings

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/normalize"
	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Columns every position's stat table shares, keyed by canonical name
// with provider-specific candidates in preference order
var commonStatColumns = map[string][]string{
	types.StatFantasyPoints: {"Fantasy_Points", "TTL", "FPTS"},
	types.StatGamesPlayed:   {"GP", "G", "Games"},
	types.StatAvgPoints:     {"Avg", "AVG", "FPts/G"},
	types.StatPositionRank:  {"Rank"},
}

// Position-specific stat columns
var positionStatColumns = map[types.Position]map[string][]string{
	types.QB: {
		types.StatPassingYards:  {"Pass_Yds", "Passing_Yds", "Yds"},
		types.StatPassingTDs:    {"Pass_TD", "TD"},
		types.StatInterceptions: {"Int"},
		types.StatRushingYards:  {"Rush_Yds"},
		types.StatRushingTDs:    {"Rush_TD"},
	},
	types.RB: {
		types.StatRushingYards:   {"Rush_Yds", "Yds"},
		types.StatRushingTDs:     {"Rush_TD", "TD"},
		types.StatReceptions:     {"Rec"},
		types.StatReceivingYards: {"Rec_Yds"},
		types.StatReceivingTDs:   {"Rec_TD"},
		types.StatTargets:        {"Target", "Tgt"},
	},
	types.WR: {
		types.StatReceptions:     {"Rec"},
		types.StatTargets:        {"Target", "Tgt"},
		types.StatReceivingYards: {"Rec_Yds", "Yds"},
		types.StatReceivingTDs:   {"Rec_TD", "TD"},
		types.StatRushingYards:   {"Rush_Yds"},
		types.StatRushingTDs:     {"Rush_TD"},
	},
	types.TE: {
		types.StatReceptions:     {"Rec"},
		types.StatTargets:        {"Target", "Tgt"},
		types.StatReceivingYards: {"Rec_Yds", "Yds"},
		types.StatReceivingTDs:   {"Rec_TD", "TD"},
	},
	types.K: {
		types.StatPATMade:  {"PAT_Made", "PAT"},
		types.StatFG0to19:  {"FG_0_19"},
		types.StatFG20to29: {"FG_20_29"},
		types.StatFG30to39: {"FG_30_39"},
		types.StatFG40to49: {"FG_40_49"},
		types.StatFG50Plus: {"FG_50plus", "FG_50+"},
	},
	types.DST: {
		types.StatSacks:           {"Sack"},
		types.StatInterceptions:   {"Int"},
		types.StatFumbleRecovered: {"Fum_Rec"},
		types.StatPointsAllowed:   {"Pts_Allow"},
		types.StatDefensiveTDs:    {"Def_TD", "TD"},
		types.StatSafeties:        {"Saf"},
	},
}

type statsEntry struct {
	normName  string
	team      string
	position  types.Position
	stats     map[string]float64
	priorRank *int
}

// joinSeasonStats loads each position's stat table, renames columns to
// the canonical vocabulary, computes the cross-position prior-season
// overall rank by fantasy points, and joins the result onto the fused
// player table by normalized name. Stats-table team labels are known to
// go stale between seasons, so the name match is authoritative and a
// team mismatch never blocks the join.
func (e *Engine) joinSeasonStats(players []*types.PlayerRecord, statsFiles map[types.Position]string) {
	byPosition := make(map[types.Position]map[string]*statsEntry)
	var all []*statsEntry

	for _, pos := range types.AllPositions {
		path, ok := statsFiles[pos]
		if !ok {
			continue
		}
		table, err := tabular.Load(path)
		if err != nil {
			e.log.WithError(err).WithField("position", pos).
				Warn("Skipping season stats file; stats stay null for this position")
			continue
		}

		entries := make(map[string]*statsEntry)
		for _, row := range table.Rows() {
			name, ok := row.FirstOf("Player", "Name")
			if !ok {
				continue
			}
			entry := &statsEntry{
				normName: normalize.Normalize(name),
				position: pos,
				stats:    make(map[string]float64),
			}
			entry.team, _ = row.Str("Team")

			for canonical, candidates := range commonStatColumns {
				if v, ok := row.FirstFloatOf(candidates...); ok {
					entry.stats[canonical] = v
				}
			}
			for canonical, candidates := range positionStatColumns[pos] {
				if v, ok := row.FirstFloatOf(candidates...); ok {
					entry.stats[canonical] = v
				}
			}

			if _, dup := entries[entry.normName]; dup {
				e.log.WithFields(logrus.Fields{"position": pos, "player": name}).
					Warn("Duplicate normalized name in stats table, keeping first occurrence")
				continue
			}
			entries[entry.normName] = entry
			all = append(all, entry)
		}
		byPosition[pos] = entries
		e.log.WithFields(logrus.Fields{"position": pos, "players": len(entries)}).
			Debug("Loaded season stats")
	}

	assignPriorOverallRanks(all)

	for _, p := range players {
		entries, ok := byPosition[p.Position]
		if !ok {
			continue
		}
		entry, ok := entries[p.NormalizedName]
		if !ok {
			continue
		}
		if entry.team != "" && p.Team != "" && entry.team != p.Team {
			e.log.WithFields(logrus.Fields{
				"player":     p.Name,
				"rank_team":  p.Team,
				"stats_team": entry.team,
			}).Debug("Team mismatch on stats join, name match takes priority")
		}
		p.SeasonStats = entry.stats
		if entry.priorRank != nil {
			rank := *entry.priorRank
			p.PriorOverallRank = &rank
			change := rank - p.OverallRank
			p.RankChange = &change
		}
	}
}

// assignPriorOverallRanks ranks every stat-bearing player with nonzero
// fantasy points across all positions, descending by points
func assignPriorOverallRanks(all []*statsEntry) {
	scored := make([]*statsEntry, 0, len(all))
	for _, entry := range all {
		if pts, ok := entry.stats[types.StatFantasyPoints]; ok && pts != 0 {
			scored = append(scored, entry)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].stats[types.StatFantasyPoints] > scored[j].stats[types.StatFantasyPoints]
	})
	for i, entry := range scored {
		rank := i + 1
		entry.priorRank = &rank
	}
}
