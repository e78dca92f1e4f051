package rankings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/rankings"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func fuseFixture(t *testing.T, statsFiles map[types.Position]string) []*types.PlayerRecord {
	t.Helper()
	dir := t.TempDir()

	sources := rankings.SourceFiles{
		ESPN: writeCSV(t, dir, "espn.csv",
			"Name,Team,Pos,ESPN,BYE,ADP\n"+
				"Justin Jefferson,MIN,WR,1,13,1.5\n"+
				"Odell Beckham Jr.,BAL,WR,5,14,\n"+
				"Josh Allen,BUF,QB,2,12,3.0\n"),
		Sleeper: writeCSV(t, dir, "sleeper.csv",
			"Name,Team,Pos,SleeperRank\n"+
				"Justin Jefferson,MIN,WR,2\n"+
				"CeeDee Lamb,DAL,WR,4\n"+
				"Josh Allen,BUF,QB,3\n"),
		Yahoo: writeCSV(t, dir, "yahoo.csv",
			"Name,Team,Pos,YahooXRank\n"+
				"Justin Jefferson,MIN,WR,3\n"+
				"Odell Beckham,BAL,WR,7\n"+
				"Josh Allen,BUF,QB,4\n"),
	}

	players, err := rankings.NewEngine(testLogger()).Fuse(sources, statsFiles)
	require.NoError(t, err)
	return players
}

func findPlayer(t *testing.T, players []*types.PlayerRecord, name string) *types.PlayerRecord {
	t.Helper()
	for _, p := range players {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("player %s not found", name)
	return nil
}

func TestFuseMergesSuffixVariants(t *testing.T) {
	players := fuseFixture(t, nil)

	// "Odell Beckham Jr." and "Odell Beckham" are the same human
	beckham := findPlayer(t, players, "Odell Beckham Jr.")
	assert.Equal(t, map[string]int{
		types.SourceESPN:  5,
		types.SourceYahoo: 7,
	}, beckham.SourceRanks)

	count := 0
	for _, p := range players {
		if p.NormalizedName == "odell beckham" {
			count++
		}
	}
	assert.Equal(t, 1, count, "suffix variants must fuse to one row")
}

func TestFuseAverageAndOverallRanks(t *testing.T) {
	players := fuseFixture(t, nil)
	assert.Len(t, players, 4)

	jefferson := findPlayer(t, players, "Justin Jefferson")
	beckham := findPlayer(t, players, "Odell Beckham Jr.")
	lamb := findPlayer(t, players, "CeeDee Lamb")

	// Missing sources are excluded from the mean, not zero-filled
	require.NotNil(t, beckham.AverageRank)
	assert.Equal(t, 6.0, *beckham.AverageRank)
	require.NotNil(t, jefferson.AverageRank)
	assert.Equal(t, 2.0, *jefferson.AverageRank)
	require.NotNil(t, lamb.AverageRank)
	assert.Equal(t, 4.0, *lamb.AverageRank)

	assert.Equal(t, 1, jefferson.OverallRank)

	// overall_rank is a strict 1..N permutation, non-decreasing in
	// average_rank
	seen := make(map[int]bool)
	prev := 0.0
	for rank := 1; rank <= len(players); rank++ {
		var match *types.PlayerRecord
		for _, p := range players {
			if p.OverallRank == rank {
				match = p
			}
		}
		require.NotNil(t, match, "missing overall rank %d", rank)
		assert.False(t, seen[rank])
		seen[rank] = true
		assert.GreaterOrEqual(t, match.RankOrLast(), prev)
		prev = match.RankOrLast()
	}
}

func TestFusePassThroughFields(t *testing.T) {
	players := fuseFixture(t, nil)

	jefferson := findPlayer(t, players, "Justin Jefferson")
	require.NotNil(t, jefferson.ByeWeek)
	assert.Equal(t, 13, *jefferson.ByeWeek)
	require.NotNil(t, jefferson.ADP)
	assert.Equal(t, 1.5, *jefferson.ADP)
}

func TestFuseSkipsUnloadableSource(t *testing.T) {
	dir := t.TempDir()
	sources := rankings.SourceFiles{
		ESPN: writeCSV(t, dir, "espn.csv",
			"Name,Team,Pos,ESPN\nJustin Jefferson,MIN,WR,1\n"),
		Sleeper: filepath.Join(dir, "missing.csv"),
		Yahoo:   filepath.Join(dir, "also_missing.csv"),
	}

	players, err := rankings.NewEngine(testLogger()).Fuse(sources, nil)
	require.NoError(t, err)
	assert.Len(t, players, 1)
}

func TestFuseAllSourcesFail(t *testing.T) {
	dir := t.TempDir()
	sources := rankings.SourceFiles{
		ESPN:    filepath.Join(dir, "a.csv"),
		Sleeper: filepath.Join(dir, "b.csv"),
		Yahoo:   filepath.Join(dir, "c.csv"),
	}
	_, err := rankings.NewEngine(testLogger()).Fuse(sources, nil)
	assert.Error(t, err)
}

func TestFuseJoinsSeasonStats(t *testing.T) {
	dir := t.TempDir()
	statsFiles := map[types.Position]string{
		// Stale team label on Jefferson: the name match must still join
		types.WR: writeCSV(t, dir, "stats_wr.csv",
			"Player,Team,Rank,TTL,GP,Avg,Rec,Rec_Yds,Rec_TD,Target\n"+
				"Justin Jefferson,GB,1,320.5,17,18.9,128,1809,8,184\n"),
		types.QB: writeCSV(t, dir, "stats_qb.csv",
			"Player,Team,Rank,TTL,GP,Avg,Yds,TD,Int\n"+
				"Josh Allen,BUF,1,390.2,16,24.4,4306,29,18\n"),
	}

	players := fuseFixture(t, statsFiles)

	jefferson := findPlayer(t, players, "Justin Jefferson")
	allen := findPlayer(t, players, "Josh Allen")
	beckham := findPlayer(t, players, "Odell Beckham Jr.")

	pts, ok := jefferson.Stat(types.StatFantasyPoints)
	assert.True(t, ok)
	assert.Equal(t, 320.5, pts)
	rec, ok := jefferson.Stat(types.StatReceptions)
	assert.True(t, ok)
	assert.Equal(t, 128.0, rec)

	// Prior overall rank is cross-position by fantasy points
	require.NotNil(t, allen.PriorOverallRank)
	assert.Equal(t, 1, *allen.PriorOverallRank)
	require.NotNil(t, jefferson.PriorOverallRank)
	assert.Equal(t, 2, *jefferson.PriorOverallRank)
	require.NotNil(t, jefferson.RankChange)
	assert.Equal(t, 2-jefferson.OverallRank, *jefferson.RankChange)

	// No stats row for Beckham leaves the fields null
	assert.Nil(t, beckham.SeasonStats)
	assert.Nil(t, beckham.PriorOverallRank)
}
