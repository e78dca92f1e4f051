package transcript_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanayko/fantasydraftpredictor/internal/draft"
	"github.com/tanayko/fantasydraftpredictor/internal/transcript"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

func TestRecordRoundTrip(t *testing.T) {
	teamA := draft.NewTeam("Alpha")
	teamB := draft.NewTeam("Bravo")
	allen := &types.PlayerRecord{Name: "Josh Allen", Position: types.QB}
	cook := &types.PlayerRecord{Name: "James Cook", Position: types.RB}
	require.NoError(t, teamA.AddPlayer(allen))
	require.NoError(t, teamB.AddPlayer(cook))

	picks := []draft.Pick{
		{Round: 1, Overall: 1, Team: "Alpha", Player: "Josh Allen", Position: types.QB},
		{Round: 1, Overall: 2, Team: "Bravo", Player: "James Cook", Position: types.RB},
	}
	record := transcript.NewRecord("abc123", picks, []*draft.Team{teamA, teamB})

	dir := t.TempDir()
	jsonPath, err := record.Save(dir)
	require.NoError(t, err)

	loaded, err := transcript.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.ID)
	assert.Equal(t, picks, loaded.Picks)
	require.Len(t, loaded.Rosters["Alpha"], 1)
	assert.Equal(t, transcript.RosterEntry{Player: "Josh Allen", Position: types.QB}, loaded.Rosters["Alpha"][0])

	// The human-readable log sits alongside the JSON record
	text, err := os.ReadFile(filepath.Join(dir, "draft_abc123.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "Round 1, Pick 1: Alpha -> Josh Allen (QB)")
	assert.Contains(t, string(text), "Final rosters:")
}

func TestLoadMissingTranscript(t *testing.T) {
	_, err := transcript.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
