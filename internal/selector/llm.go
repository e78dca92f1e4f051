package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/config"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

const llmSystemPrompt = `You are the head drafter for a fantasy football team in a snake draft.
You will be given the current round, your roster so far, and the top available players per position with their rankings and context scores.
Draft toward a starting lineup of 1 QB, 2 RB, 2 WR, 1 TE plus a FLEX (a third RB or WR). Prioritize RB and WR depth in the first three rounds.
Reply with your reasoning, then end your message with exactly one line of the form:
I select **Player Name** TERMINATE`

// Players listed per position in the prompt. Enough for a real choice
// while keeping the request small.
const promptPlayersPerPosition = 8

// LLM is a Selector backed by the Anthropic messages API. All
// credentials and model parameters come from the injected config.
type LLM struct {
	client *anthropicClient
	log    *logrus.Entry
}

// NewLLM creates the LLM-backed selector
func NewLLM(cfg *config.Config, log *logrus.Logger) (*LLM, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the LLM selector")
	}
	return &LLM{
		client: newAnthropicClient(cfg, log),
		log:    log.WithField("stage", "selector"),
	}, nil
}

// Select asks the model for one pick and extracts the player name from
// the completion. The draft engine validates the name against the
// available pool and handles retries and fallback.
func (l *LLM) Select(ctx context.Context, available []*types.PlayerRecord, roster map[types.Position][]*types.PlayerRecord, pickNumber, roundNumber int) (string, error) {
	prompt := buildPrompt(available, roster, pickNumber, roundNumber)

	completion, err := l.client.complete(ctx, llmSystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	name, ok := extractPlayerName(completion)
	if !ok {
		return "", fmt.Errorf("no player name found in completion")
	}
	l.log.WithFields(logrus.Fields{"round": roundNumber, "pick": pickNumber, "player": name}).
		Debug("Model selected player")
	return name, nil
}

func buildPrompt(available []*types.PlayerRecord, roster map[types.Position][]*types.PlayerRecord, pickNumber, roundNumber int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Round %d, overall pick %d.\n\n", roundNumber, pickNumber)

	b.WriteString("Your roster so far:\n")
	empty := true
	for _, pos := range types.AllPositions {
		for _, p := range roster[pos] {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", pos, p.Name, p.Team)
			empty = false
		}
	}
	if empty {
		b.WriteString("- (no players yet)\n")
	}

	b.WriteString("\nTop available players by position:\n")
	for _, pos := range types.AllPositions {
		listed := 0
		for _, p := range available {
			if p.Position != pos {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s (%s), overall rank %d", pos, p.Name, p.Team, p.OverallRank)
			if p.OpportunityScore != nil {
				fmt.Fprintf(&b, ", opportunity %.1f", *p.OpportunityScore)
			}
			if p.ScheduleRating != "" {
				fmt.Fprintf(&b, ", schedule %s", p.ScheduleRating)
			}
			if p.ByeWeek != nil {
				fmt.Fprintf(&b, ", bye %d", *p.ByeWeek)
			}
			b.WriteString("\n")
			listed++
			if listed >= promptPlayersPerPosition {
				break
			}
		}
	}

	b.WriteString("\nChoose exactly one player from the lists above.")
	return b.String()
}
