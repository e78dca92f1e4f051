package scoring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/scoring"
	"github.com/tanayko/fantasydraftpredictor/internal/transcript"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestEvaluate(t *testing.T) {
	pointsPath := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(pointsPath, []byte(
		"Player,Pos,TTL\n"+
			"Josh Allen,QB,390.2\n"+
			"Justin Jefferson,WR,320.5\n"+
			"Odell Beckham,WR,120.0\n"+
			"James Cook,RB,210.7\n"), 0o644))

	rosters := map[string][]transcript.RosterEntry{
		"Alpha": {
			{Player: "Josh Allen", Position: types.QB},
			// Suffix variant must still match by normalized name
			{Player: "Odell Beckham Jr.", Position: types.WR},
		},
		"Bravo": {
			{Player: "James Cook", Position: types.RB},
			{Player: "Total Unknown", Position: types.TE},
		},
	}

	scores, err := scoring.NewEvaluator(testLogger()).Evaluate(rosters, pointsPath)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	// Sorted best first
	assert.Equal(t, "Alpha", scores[0].Team)
	assert.InDelta(t, 510.2, scores[0].TotalPoints, 1e-9)
	assert.Equal(t, "Josh Allen", scores[0].TopPlayer)
	assert.Empty(t, scores[0].Unmatched)

	assert.Equal(t, "Bravo", scores[1].Team)
	assert.InDelta(t, 210.7, scores[1].TotalPoints, 1e-9)
	assert.Equal(t, []string{"Total Unknown"}, scores[1].Unmatched)
}

func TestEvaluateNameOnlyFallback(t *testing.T) {
	pointsPath := filepath.Join(t.TempDir(), "points.csv")
	// No position column at all: the name-only index still matches
	require.NoError(t, os.WriteFile(pointsPath, []byte(
		"Player,TTL\n"+
			"Justin Jefferson,320.5\n"), 0o644))

	rosters := map[string][]transcript.RosterEntry{
		"Solo": {{Player: "Justin Jefferson", Position: types.WR}},
	}

	scores, err := scoring.NewEvaluator(testLogger()).Evaluate(rosters, pointsPath)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.InDelta(t, 320.5, scores[0].TotalPoints, 1e-9)
}

func TestEvaluateMissingTable(t *testing.T) {
	_, err := scoring.NewEvaluator(testLogger()).
		Evaluate(nil, filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
