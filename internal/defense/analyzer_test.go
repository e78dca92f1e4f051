package defense_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/defense"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// defenseTable fabricates a 32-team table with ranks 1..32
func defenseTable(t *testing.T, dir string, pos types.Position) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("Rank,Team,Yds,TD,Avg\n")
	for i := 1; i <= 32; i++ {
		fmt.Fprintf(&b, "%d,Team %02d,%d,%d,%.1f\n", i, i, 3000+i*10, i, 10.0+float64(i))
	}
	path := filepath.Join(dir, fmt.Sprintf("defense_%s.csv", pos))
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
	return path
}

func TestAnalyzeScoresAndOrdering(t *testing.T) {
	dir := t.TempDir()
	files := map[types.Position]string{
		types.QB:  defenseTable(t, dir, types.QB),
		types.DST: defenseTable(t, dir, types.DST),
	}

	analysis, err := defense.NewAnalyzer(testLogger()).Analyze(files)
	require.NoError(t, err)

	qb := analysis[types.QB]
	require.Len(t, qb, 32)
	assert.Equal(t, 1, qb[0].DefenseRank, "offensive positions order ascending by rank")
	assert.Equal(t, 32.0, qb[0].DefenseScore)
	assert.Equal(t, 1.0, qb[31].DefenseScore)

	// The DST table is the team's own defensive output: score keeps the
	// rank and ordering reverses
	dst := analysis[types.DST]
	require.Len(t, dst, 32)
	assert.Equal(t, 32, dst[0].DefenseRank)
	assert.Equal(t, 32.0, dst[0].DefenseScore)
}

func TestAnalyzeSkipsMissingFile(t *testing.T) {
	dir := t.TempDir()
	files := map[types.Position]string{
		types.QB: defenseTable(t, dir, types.QB),
		types.RB: filepath.Join(dir, "missing.csv"),
	}
	analysis, err := defense.NewAnalyzer(testLogger()).Analyze(files)
	require.NoError(t, err)
	assert.Contains(t, analysis, types.QB)
	assert.NotContains(t, analysis, types.RB)
}

func TestCategorizePartition(t *testing.T) {
	dir := t.TempDir()
	analysis, err := defense.NewAnalyzer(testLogger()).
		Analyze(map[types.Position]string{types.WR: defenseTable(t, dir, types.WR)})
	require.NoError(t, err)

	for _, numCategories := range []int{3, 5, 7} {
		defense.Categorize(analysis, numCategories)

		sizes := make(map[string]int)
		for _, record := range analysis[types.WR] {
			require.NotEmpty(t, record.Category)
			sizes[record.Category]++
		}
		assert.Len(t, sizes, numCategories, "every tier must be populated")

		min, max := 33, 0
		total := 0
		for _, n := range sizes {
			total += n
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		assert.Equal(t, 32, total, "partition must be exhaustive")
		assert.LessOrEqual(t, max-min, 1, "tier sizes differ by at most 1")
	}
}

func TestCategorizeLabels(t *testing.T) {
	assert.Equal(t,
		[]string{"Shutdown", "Strong", "Average", "Weak", "Exploitable"},
		defense.TierLabels(5))
	assert.Equal(t, []string{"Strong", "Average", "Weak"}, defense.TierLabels(3))
	assert.Equal(t, []string{"Tier 1", "Tier 2"}, defense.TierLabels(2))
}

func TestCategorizeBestTiersGetRemainder(t *testing.T) {
	dir := t.TempDir()
	analysis, err := defense.NewAnalyzer(testLogger()).
		Analyze(map[types.Position]string{types.RB: defenseTable(t, dir, types.RB)})
	require.NoError(t, err)

	// 32 teams over 5 tiers: 7,7,6,6,6 with the extras going to the
	// strongest tiers
	defense.Categorize(analysis, 5)
	counts := make(map[string]int)
	for _, record := range analysis[types.RB] {
		counts[record.Category]++
	}
	assert.Equal(t, 7, counts["Shutdown"])
	assert.Equal(t, 7, counts["Strong"])
	assert.Equal(t, 6, counts["Average"])
	assert.Equal(t, 6, counts["Weak"])
	assert.Equal(t, 6, counts["Exploitable"])
}
