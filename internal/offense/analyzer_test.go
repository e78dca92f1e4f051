package offense_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/offense"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func writeYear(t *testing.T, dir string, year int, content string) (int, string) {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("offense_%d.csv", year))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return year, path
}

const header = "TEAM,YDS/G,PTS/G,YDS,PTS,Passing,Rushing\n"

func TestAnalyzeRanksAndComposites(t *testing.T) {
	dir := t.TempDir()
	files := make(map[int]string)

	y, p := writeYear(t, dir, 2022, header+
		"Buffalo Bills,380,28,6460,476,4300,1900\n"+
		"Kansas City Chiefs,390,26,6630,442,4400,1800\n")
	files[y] = p
	y, p = writeYear(t, dir, 2023, header+
		"Buffalo Bills,390,29,6630,493,4400,2000\n"+
		"Kansas City Chiefs,385,27,6545,459,4300,1900\n")
	files[y] = p
	y, p = writeYear(t, dir, 2024, header+
		"Buffalo Bills,400,30,6800,510,4500,2100\n"+
		"Kansas City Chiefs,380,28,6460,476,4200,2000\n")
	files[y] = p

	scores, err := offense.NewAnalyzer(testLogger(), offense.DefaultWeights()).Analyze(files)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	buf := scores["BUF"]
	kc := scores["KC"]
	require.NotNil(t, buf)
	require.NotNil(t, kc)

	// 2024 is the ranked season: BUF leads every metric
	assert.Equal(t, 1, buf.PassingRank)
	assert.Equal(t, 1, buf.RushingRank)
	assert.Equal(t, 1, buf.TotalOffenseRank)
	assert.Equal(t, 1, buf.ScoringRank)
	assert.Equal(t, 2, kc.PassingRank)

	assert.InDelta(t, 0.7*32+0.3*32, buf.PassFriendlyScore, 1e-9)
	assert.InDelta(t, 0.7*31+0.3*31, kc.PassFriendlyScore, 1e-9)
	assert.InDelta(t, 0.4*32+0.6*32, buf.OffenseQualityScore, 1e-9)

	assert.Equal(t, 400.0, buf.YardsPerGame)
	assert.InDelta(t, 6800.0/510.0, buf.YardsPerPoint, 1e-9)
}

func TestAnalyzeTrends(t *testing.T) {
	dir := t.TempDir()
	files := make(map[int]string)
	y, p := writeYear(t, dir, 2022, header+"Buffalo Bills,380,28,6460,476,4300,1900\n")
	files[y] = p
	y, p = writeYear(t, dir, 2023, header+"Buffalo Bills,390,29,6630,493,4400,2000\n")
	files[y] = p
	y, p = writeYear(t, dir, 2024, header+"Buffalo Bills,400,30,6800,510,4500,2100\n")
	files[y] = p

	scores, err := offense.NewAnalyzer(testLogger(), offense.DefaultWeights()).Analyze(files)
	require.NoError(t, err)
	buf := scores["BUF"]
	require.NotNil(t, buf)

	assert.Equal(t, 30.0, buf.PointsTrend.Recent)
	assert.InDelta(t, 29.0, buf.PointsTrend.ThreeYearAvg, 1e-9)
	require.NotNil(t, buf.PointsTrend.YoYChange)
	assert.InDelta(t, 1.0, *buf.PointsTrend.YoYChange, 1e-9)
	require.NotNil(t, buf.PointsTrend.Slope, "3 seasons present, slope must exist")
	assert.InDelta(t, 1.0, *buf.PointsTrend.Slope, 1e-9)
	require.NotNil(t, buf.YardsTrend.Slope)
	assert.InDelta(t, 10.0, *buf.YardsTrend.Slope, 1e-9)

	// 28,29,30 points per game: mean 29, population stddev sqrt(2/3)
	require.NotNil(t, buf.OffenseStability)
	assert.InDelta(t, 100-0.8164965809/29*100, *buf.OffenseStability, 1e-6)
}

func TestAnalyzeMissingYearKeepsRanks(t *testing.T) {
	dir := t.TempDir()
	files := make(map[int]string)
	y, p := writeYear(t, dir, 2023, header+
		"Buffalo Bills,390,29,6630,493,4400,2000\n"+
		"Kansas City Chiefs,385,27,6545,459,4300,1900\n")
	files[y] = p
	y, p = writeYear(t, dir, 2024, header+
		"Buffalo Bills,400,30,6800,510,4500,2100\n")
	files[y] = p
	// 2022 never existed, and KC is absent from 2024

	scores, err := offense.NewAnalyzer(testLogger(), offense.DefaultWeights()).Analyze(files)
	require.NoError(t, err)

	buf := scores["BUF"]
	require.NotNil(t, buf)
	assert.Equal(t, 1, buf.PassingRank)
	assert.Nil(t, buf.PointsTrend.Slope, "fewer than 3 seasons, no slope")
	require.NotNil(t, buf.PointsTrend.YoYChange)

	// KC has no most-recent-season row at all
	assert.Nil(t, scores["KC"])
}

func TestAnalyzeNoData(t *testing.T) {
	_, err := offense.NewAnalyzer(testLogger(), offense.DefaultWeights()).
		Analyze(map[int]string{2024: filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}
