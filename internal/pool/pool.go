package pool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tanayko/fantasydraftpredictor/internal/normalize"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// Artifact is the persisted form of an assembled draft pool
type Artifact struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Players     []*types.PlayerRecord `json:"players"`
}

// Pool is the in-memory draft pool, ordered by overall rank
type Pool struct {
	players []*types.PlayerRecord
}

// New wraps an assembled player slice, sorted by overall rank
func New(players []*types.PlayerRecord) *Pool {
	sorted := make([]*types.PlayerRecord, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OverallRank < sorted[j].OverallRank
	})
	return &Pool{players: sorted}
}

// Save writes the pool to a JSON artifact, creating parent directories
func (p *Pool) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create artifact directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(Artifact{
		GeneratedAt: time.Now().UTC(),
		Players:     p.players,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode pool artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write pool artifact: %w", err)
	}
	return nil
}

// LoadArtifact reads a previously saved pool artifact
func LoadArtifact(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode pool artifact %s: %w", path, err)
	}
	if len(artifact.Players) == 0 {
		return nil, fmt.Errorf("pool artifact %s has no players", path)
	}
	return New(artifact.Players), nil
}

// Len returns the number of players in the pool
func (p *Pool) Len() int {
	return len(p.players)
}

// Players returns every player in overall-rank order
func (p *Pool) Players() []*types.PlayerRecord {
	return p.players
}

// Available returns undrafted players in overall-rank order
func (p *Pool) Available() []*types.PlayerRecord {
	out := make([]*types.PlayerRecord, 0, len(p.players))
	for _, player := range p.players {
		if !player.Drafted {
			out = append(out, player)
		}
	}
	return out
}

// ByPosition returns undrafted players at the position, best rank first
func (p *Pool) ByPosition(pos types.Position) []*types.PlayerRecord {
	var out []*types.PlayerRecord
	for _, player := range p.players {
		if !player.Drafted && player.Position == pos {
			out = append(out, player)
		}
	}
	return out
}

// ByTeam returns every player on the team regardless of draft status
func (p *Pool) ByTeam(team string) []*types.PlayerRecord {
	abbr, ok := types.ResolveTeam(team)
	if !ok {
		abbr = team
	}
	var out []*types.PlayerRecord
	for _, player := range p.players {
		if playerAbbr, ok := types.ResolveTeam(player.Team); ok && playerAbbr == abbr {
			out = append(out, player)
		}
	}
	return out
}

// RankRange returns players with overall rank in [lo, hi] inclusive
func (p *Pool) RankRange(lo, hi int) []*types.PlayerRecord {
	var out []*types.PlayerRecord
	for _, player := range p.players {
		if player.OverallRank >= lo && player.OverallRank <= hi {
			out = append(out, player)
		}
	}
	return out
}

// Tiers splits the position's undrafted players into consecutive groups
// of tierSize, best ranks first; the last tier may be short
func (p *Pool) Tiers(pos types.Position, tierSize int) [][]*types.PlayerRecord {
	if tierSize < 1 {
		return nil
	}
	ranked := p.ByPosition(pos)
	var tiers [][]*types.PlayerRecord
	for len(ranked) > 0 {
		n := tierSize
		if n > len(ranked) {
			n = len(ranked)
		}
		tiers = append(tiers, ranked[:n])
		ranked = ranked[n:]
	}
	return tiers
}

// Find resolves a name against the pool: exact case-insensitive match
// on the raw or normalized name first, then first substring match in
// pool order. Returns nil when nothing matches.
func (p *Pool) Find(name string) *types.PlayerRecord {
	return resolveName(name, p.players)
}

// FindAvailable resolves a name against undrafted players only
func (p *Pool) FindAvailable(name string) *types.PlayerRecord {
	return resolveName(name, p.Available())
}

// resolveName implements the two-phase name match shared by the pool
// and the draft engine
func resolveName(name string, players []*types.PlayerRecord) *types.PlayerRecord {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	normalized := normalize.Normalize(name)

	for _, player := range players {
		if strings.ToLower(player.Name) == lower || player.NormalizedName == normalized {
			return player
		}
	}
	for _, player := range players {
		if strings.Contains(strings.ToLower(player.Name), lower) ||
			strings.Contains(player.NormalizedName, normalized) {
			return player
		}
	}
	return nil
}
