package schedule_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/schedule"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestLoadSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"Team,Week,Opponent\n"+
			"Buffalo Bills,1,Kansas City Chiefs\n"+
			"Buffalo Bills,2,BYE\n"+
			"Buffalo Bills,3,New York Jets\n"+
			"Buffalo Bills,99,Miami Dolphins\n"+
			"Atlantis Krakens,1,Buffalo Bills\n"), 0o644))

	sched, err := schedule.Load(path, testLogger())
	require.NoError(t, err)

	// Teams resolve to abbreviations; bad weeks and unknown teams drop
	require.Contains(t, sched, "BUF")
	assert.NotContains(t, sched, "Atlantis Krakens")
	assert.Equal(t, "Kansas City Chiefs", sched["BUF"][1])
	assert.Equal(t, types.ByeOpponent, sched["BUF"][2])
	assert.NotContains(t, sched["BUF"], 99)

	assert.Equal(t, []string{"Kansas City Chiefs", "New York Jets"}, sched.Opponents("BUF"))
}

// twoOpponentAnalysis ranks KC first and NYJ last for the position
func twoOpponentAnalysis(pos types.Position) map[types.Position][]*types.DefenseVsPositionRecord {
	return map[types.Position][]*types.DefenseVsPositionRecord{
		pos: {
			{Team: "KC", DefenseRank: 1},
			{Team: "NYJ", DefenseRank: 32},
		},
	}
}

func testSchedule() types.Schedule {
	return types.Schedule{
		"BUF": {1: "Kansas City Chiefs", 2: types.ByeOpponent, 3: "Jets"},
	}
}

func TestDifficultyAveragesResolvableWeeks(t *testing.T) {
	agg := schedule.NewAggregator(testLogger(), schedule.DefaultThresholds(), twoOpponentAnalysis(types.WR))

	score, rating := agg.Difficulty("BUF", types.WR, testSchedule())
	require.NotNil(t, score)

	// KC rank 1: (33-1)/32*100 = 100; NYJ rank 32: (33-32)/32*100 = 3.125
	assert.InDelta(t, 51.6, *score, 1e-9)
	assert.Equal(t, types.AverageSched, rating)
}

func TestDifficultyInvertsForDST(t *testing.T) {
	agg := schedule.NewAggregator(testLogger(), schedule.DefaultThresholds(), twoOpponentAnalysis(types.DST))

	score, _ := agg.Difficulty("BUF", types.DST, testSchedule())
	require.NotNil(t, score)

	// DST: rank/32*100, so 3.125 and 100 average the same here
	assert.InDelta(t, 51.6, *score, 1e-9)
}

func TestDifficultyBounds(t *testing.T) {
	for rank := 1; rank <= 32; rank++ {
		analysis := map[types.Position][]*types.DefenseVsPositionRecord{
			types.RB: {{Team: "KC", DefenseRank: rank}},
		}
		agg := schedule.NewAggregator(testLogger(), schedule.DefaultThresholds(), analysis)
		sched := types.Schedule{"BUF": {1: "KC"}}

		score, _ := agg.Difficulty("BUF", types.RB, sched)
		require.NotNil(t, score, "rank %d", rank)
		assert.GreaterOrEqual(t, *score, 0.0)
		assert.LessOrEqual(t, *score, 100.0)
	}
}

func TestDifficultyNoResolvableWeeks(t *testing.T) {
	agg := schedule.NewAggregator(testLogger(), schedule.DefaultThresholds(), twoOpponentAnalysis(types.WR))

	score, rating := agg.Difficulty("BUF", types.WR, types.Schedule{
		"BUF": {1: "Atlantis Krakens", 2: types.ByeOpponent},
	})
	assert.Nil(t, score)
	assert.Empty(t, rating)

	score, _ = agg.Difficulty("MIA", types.WR, testSchedule())
	assert.Nil(t, score, "team without a schedule has no difficulty")
}

func TestThresholdRatings(t *testing.T) {
	thresholds := schedule.DefaultThresholds()
	tests := []struct {
		score    float64
		expected types.ScheduleRating
	}{
		{95, types.VeryFavorable},
		{80, types.VeryFavorable},
		{60, types.Favorable},
		{59.9, types.AverageSched},
		{40, types.AverageSched},
		{20, types.Difficult},
		{5, types.VeryDifficult},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.1f", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.expected, thresholds.Rate(tt.score))
		})
	}
}
