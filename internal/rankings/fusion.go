// Package rankings merges the independent ranking sources and the
// prior-season stat tables into one rank-ordered player table.
package rankings

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/normalize"
	"github.com/tanayko/fantasydraftpredictor/internal/tabular"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// SourceFiles holds the paths to the three ranking source tables
type SourceFiles struct {
	ESPN    string
	Sleeper string
	Yahoo   string
}

// Engine fuses ranking sources and season stats into PlayerRecords
type Engine struct {
	log *logrus.Entry
}

// NewEngine creates a fusion engine
func NewEngine(log *logrus.Logger) *Engine {
	return &Engine{log: log.WithField("stage", "rankings")}
}

// Per-source rank column names, with a generic fallback
var sourceRankColumns = map[string][]string{
	types.SourceESPN:    {"ESPN", "ESPN_Rank", "Rank"},
	types.SourceSleeper: {"SleeperRank", "Sleeper_Rank", "Rank"},
	types.SourceYahoo:   {"YahooXRank", "Yahoo_Rank", "Rank"},
}

// Fuse outer-joins the three ranking tables on (normalized name, team,
// position), computes average and overall ranks, then joins each
// position's season-stat table by normalized name. A source or stat
// file that fails to load is logged and skipped; only a fully empty
// result is an error.
func (e *Engine) Fuse(sources SourceFiles, statsFiles map[types.Position]string) ([]*types.PlayerRecord, error) {
	paths := map[string]string{
		types.SourceESPN:    sources.ESPN,
		types.SourceSleeper: sources.Sleeper,
		types.SourceYahoo:   sources.Yahoo,
	}

	var players []*types.PlayerRecord
	// Join key -> indexes into players, in insertion order. A duplicate
	// normalized name within one source stays a separate row rather than
	// being silently collapsed.
	index := make(map[string][]int)

	for _, source := range types.RankingSources {
		table, err := tabular.Load(paths[source])
		if err != nil {
			e.log.WithError(err).WithField("source", source).Warn("Skipping ranking source")
			continue
		}
		e.mergeSource(source, table, &players, index)
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("no ranking sources could be loaded")
	}

	computeAverageRanks(players)
	assignOverallRanks(players)

	e.joinSeasonStats(players, statsFiles)

	e.log.WithField("players", len(players)).Info("Fused ranking sources")
	return players, nil
}

func (e *Engine) mergeSource(source string, table *tabular.Table, players *[]*types.PlayerRecord, index map[string][]int) {
	merged, added := 0, 0
	for _, row := range table.Rows() {
		name, ok := row.FirstOf("Name", "Player")
		if !ok {
			continue
		}
		team, _ := row.Str("Team")
		posRaw, ok := row.FirstOf("Pos", "Position")
		if !ok {
			continue
		}
		pos, ok := types.ParsePosition(posRaw)
		if !ok {
			e.log.WithFields(logrus.Fields{"source": source, "player": name, "pos": posRaw}).
				Debug("Unknown position, skipping row")
			continue
		}

		key := normalize.Normalize(name) + "|" + team + "|" + string(pos)

		var record *types.PlayerRecord
		for _, i := range index[key] {
			// Reuse an existing row only if this source hasn't ranked it
			// yet; a second occurrence within one source stays separate
			if _, taken := (*players)[i].SourceRanks[source]; !taken {
				record = (*players)[i]
				break
			}
		}
		if record == nil {
			record = &types.PlayerRecord{
				Name:           name,
				NormalizedName: normalize.Normalize(name),
				Team:           team,
				Position:       pos,
				SourceRanks:    make(map[string]int),
			}
			*players = append(*players, record)
			index[key] = append(index[key], len(*players)-1)
			added++
		} else {
			merged++
		}

		if rank, ok := row.FirstIntOf(sourceRankColumns[source]...); ok {
			record.SourceRanks[source] = rank
		}
		// Pass-through fields coalesce first-non-null in source order
		if record.ByeWeek == nil {
			if bye, ok := row.Int("BYE"); ok {
				record.ByeWeek = &bye
			}
		}
		if record.ADP == nil {
			if adp, ok := row.Float("ADP"); ok {
				record.ADP = &adp
			}
		}
		if record.FantasyProsRank == nil {
			if fp, ok := row.Float("FantasyPros"); ok {
				record.FantasyProsRank = &fp
			}
		}
	}

	e.log.WithFields(logrus.Fields{
		"source": source,
		"added":  added,
		"merged": merged,
	}).Debug("Merged ranking source")
}

// computeAverageRanks sets average_rank to the mean of available source
// ranks, rounded to 1 decimal. Zero reporting sources leaves it nil.
func computeAverageRanks(players []*types.PlayerRecord) {
	for _, p := range players {
		if len(p.SourceRanks) == 0 {
			continue
		}
		sum := 0
		for _, r := range p.SourceRanks {
			sum += r
		}
		avg := math.Round(float64(sum)/float64(len(p.SourceRanks))*10) / 10
		p.AverageRank = &avg
	}
}

// assignOverallRanks sorts by average rank ascending (nulls last, ties
// broken by stable input order) and assigns 1-based overall ranks
func assignOverallRanks(players []*types.PlayerRecord) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].RankOrLast() < players[j].RankOrLast()
	})
	for i, p := range players {
		p.OverallRank = i + 1
	}
}
