package draft

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tanayko/fantasydraftpredictor/internal/pool"
	"github.com/tanayko/fantasydraftpredictor/internal/types"
)

// State is the draft lifecycle phase
type State string

const (
	NotStarted State = "NOT_STARTED"
	InProgress State = "IN_PROGRESS"
	Complete   State = "COMPLETE"
)

// Selector decides one pick for an automated seat. Implementations may
// block on external I/O; the engine bounds each call with a timeout.
// The returned string is a player name resolved against the available
// pool; an error or unresolvable name counts as a failed attempt.
type Selector interface {
	Select(ctx context.Context, available []*types.PlayerRecord, roster map[types.Position][]*types.PlayerRecord, pickNumber, roundNumber int) (string, error)
}

// Pick is one entry in the append-only draft audit trail
type Pick struct {
	Round    int            `json:"round"`
	Overall  int            `json:"pick"`
	Team     string         `json:"team"`
	Player   string         `json:"player"`
	Position types.Position `json:"position"`
}

// Options tune a Simulator. Zero values take defaults; Input and
// Output are injectable so tests can script human seats.
type Options struct {
	MaxRounds       int
	SelectorRetries int
	PickTimeout     time.Duration
	Rand            *rand.Rand
	Input           io.Reader
	Output          io.Writer
}

// Simulator is the snake-draft state machine. It is strictly
// sequential; picks never run concurrently because roster mutation and
// the shared drafted flag have a single writer.
type Simulator struct {
	log  *logrus.Entry
	pool *pool.Pool
	opts Options

	state        State
	teams        []*Team
	selectors    map[string]Selector
	draftOrder   []*Team
	picks        []Pick
	draftedNames []string
	draftedSet   map[string]bool

	input *bufio.Scanner
}

// NewSimulator creates a draft over the pool in the NotStarted state
func NewSimulator(log *logrus.Logger, p *pool.Pool, opts Options) *Simulator {
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = 9
	}
	if opts.SelectorRetries <= 0 {
		opts.SelectorRetries = 3
	}
	if opts.PickTimeout <= 0 {
		opts.PickTimeout = 60 * time.Second
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Simulator{
		log:        log.WithField("stage", "draft"),
		pool:       p,
		opts:       opts,
		state:      NotStarted,
		selectors:  make(map[string]Selector),
		draftedSet: make(map[string]bool),
		input:      bufio.NewScanner(opts.Input),
	}
}

// State returns the current lifecycle phase
func (s *Simulator) State() State {
	return s.state
}

// Teams returns the registered seats in registration order
func (s *Simulator) Teams() []*Team {
	return s.teams
}

// Picks returns the audit trail so far
func (s *Simulator) Picks() []Pick {
	return s.picks
}

// DraftedNames returns the append-only list of drafted player names
func (s *Simulator) DraftedNames() []string {
	return s.draftedNames
}

// RegisterTeam adds a seat. Valid only before Start.
func (s *Simulator) RegisterTeam(name string) (*Team, error) {
	if s.state != NotStarted {
		return nil, fmt.Errorf("cannot register team in state %s", s.state)
	}
	for _, t := range s.teams {
		if t.Name == name {
			return nil, fmt.Errorf("team %q is already registered", name)
		}
	}
	team := NewTeam(name)
	s.teams = append(s.teams, team)
	return team, nil
}

// BindSelector attaches an automated selector to a registered seat.
// A seat without a selector is a human seat read from Input.
func (s *Simulator) BindSelector(teamName string, sel Selector) error {
	if s.state != NotStarted {
		return fmt.Errorf("cannot bind selector in state %s", s.state)
	}
	for _, t := range s.teams {
		if t.Name == teamName {
			s.selectors[teamName] = sel
			return nil
		}
	}
	return fmt.Errorf("no registered team named %q", teamName)
}

// Start shuffles the draft order once and opens the draft
func (s *Simulator) Start() error {
	if s.state != NotStarted {
		return fmt.Errorf("draft already started")
	}
	if len(s.teams) == 0 {
		return fmt.Errorf("no teams registered")
	}
	s.draftOrder = append([]*Team(nil), s.teams...)
	s.opts.Rand.Shuffle(len(s.draftOrder), func(i, j int) {
		s.draftOrder[i], s.draftOrder[j] = s.draftOrder[j], s.draftOrder[i]
	})
	s.state = InProgress

	names := make([]string, len(s.draftOrder))
	for i, t := range s.draftOrder {
		names[i] = t.Name
	}
	s.log.WithFields(logrus.Fields{"order": strings.Join(names, ", "), "rounds": s.opts.MaxRounds}).
		Info("Draft started")
	return nil
}

// RoundOrder returns the seat order for a 1-based round: even rounds
// reverse the draft order (snake)
func (s *Simulator) RoundOrder(round int) []*Team {
	order := append([]*Team(nil), s.draftOrder...)
	if round%2 == 0 {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	return order
}

// Run executes every pick until rounds or pool are exhausted
func (s *Simulator) Run(ctx context.Context) error {
	if s.state != InProgress {
		return fmt.Errorf("draft is in state %s, call Start first", s.state)
	}

	pickNumber := 0
	for round := 1; round <= s.opts.MaxRounds; round++ {
		for _, team := range s.RoundOrder(round) {
			if err := ctx.Err(); err != nil {
				return err
			}
			available := s.available()
			if len(available) == 0 {
				s.log.Info("Player pool exhausted")
				s.finish()
				return nil
			}
			pickNumber++
			player := s.pick(ctx, team, available, round, pickNumber)
			s.apply(team, player, round, pickNumber)
		}
	}
	s.finish()
	return nil
}

func (s *Simulator) finish() {
	s.state = Complete
	s.log.WithField("picks", len(s.picks)).Info("Draft complete")
	for _, team := range s.teams {
		for _, warning := range team.UnmetTargets() {
			s.log.WithFields(logrus.Fields{"team": team.Name, "target": warning}).
				Warn("Roster target unmet")
		}
	}
}

// available filters the pool to undrafted players, double-checked
// against the audit trail so a name can never be drafted twice
func (s *Simulator) available() []*types.PlayerRecord {
	candidates := s.pool.Available()
	out := make([]*types.PlayerRecord, 0, len(candidates))
	for _, p := range candidates {
		if !s.draftedSet[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Simulator) pick(ctx context.Context, team *Team, available []*types.PlayerRecord, round, pickNumber int) *types.PlayerRecord {
	if sel, ok := s.selectors[team.Name]; ok {
		return s.automatedPick(ctx, sel, team, available, round, pickNumber)
	}
	return s.humanPick(team, available, round, pickNumber)
}

// automatedPick asks the bound selector up to SelectorRetries times
// under a per-call timeout, then falls back deterministically. Selector
// failure never aborts the draft.
func (s *Simulator) automatedPick(ctx context.Context, sel Selector, team *Team, available []*types.PlayerRecord, round, pickNumber int) *types.PlayerRecord {
	for attempt := 1; attempt <= s.opts.SelectorRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.opts.PickTimeout)
		name, err := sel.Select(callCtx, available, team.RosterCopy(), pickNumber, round)
		cancel()

		alog := s.log.WithFields(logrus.Fields{
			"team":    team.Name,
			"round":   round,
			"pick":    pickNumber,
			"attempt": attempt,
		})
		if err != nil {
			alog.WithError(err).Warn("Selector attempt failed")
			continue
		}
		if player := resolveName(name, available); player != nil {
			return player
		}
		alog.WithField("response", name).Warn("Selector returned unresolvable name")
	}
	return s.fallbackPick(team, available, round)
}

// humanPick prompts until the input resolves. Exhausted input (EOF)
// falls back rather than looping forever.
func (s *Simulator) humanPick(team *Team, available []*types.PlayerRecord, round, pickNumber int) *types.PlayerRecord {
	for {
		fmt.Fprintf(s.opts.Output, "Round %d, Pick %d - %s is on the clock. Enter player name: ", round, pickNumber, team.Name)
		if !s.input.Scan() {
			s.log.WithField("team", team.Name).Warn("Input exhausted, using fallback pick")
			return s.fallbackPick(team, available, round)
		}
		raw := strings.TrimSpace(s.input.Text())
		if player := resolveName(raw, available); player != nil {
			return player
		}
		fmt.Fprintf(s.opts.Output, "No available player matches %q, try again.\n", raw)
	}
}

// fallbackPick is the deterministic policy: the highest-ranked
// available player at any unmet roster target, restricted to RB/WR
// needs in the early rounds, else the best available overall
func (s *Simulator) fallbackPick(team *Team, available []*types.PlayerRecord, round int) *types.PlayerRecord {
	needed := make(map[types.Position]bool)
	for _, pos := range team.needs() {
		needed[pos] = true
	}
	if round <= 3 && (needed[types.RB] || needed[types.WR]) {
		needed = map[types.Position]bool{
			types.RB: needed[types.RB],
			types.WR: needed[types.WR],
		}
	}
	// available is already in overall-rank order
	for _, p := range available {
		if needed[p.Position] {
			s.log.WithFields(logrus.Fields{"team": team.Name, "player": p.Name, "position": p.Position}).
				Info("Fallback pick fills roster need")
			return p
		}
	}
	s.log.WithFields(logrus.Fields{"team": team.Name, "player": available[0].Name}).
		Info("Fallback pick takes best available")
	return available[0]
}

// apply performs the single mutation a successful pick makes
func (s *Simulator) apply(team *Team, player *types.PlayerRecord, round, pickNumber int) {
	if err := team.AddPlayer(player); err != nil {
		// available() guarantees undrafted players, so this is a bug guard
		s.log.WithError(err).WithField("player", player.Name).Error("Pick rejected")
		return
	}
	s.draftedNames = append(s.draftedNames, player.Name)
	s.draftedSet[player.Name] = true
	s.picks = append(s.picks, Pick{
		Round:    round,
		Overall:  pickNumber,
		Team:     team.Name,
		Player:   player.Name,
		Position: player.Position,
	})
	s.log.WithFields(logrus.Fields{
		"round":    round,
		"pick":     pickNumber,
		"team":     team.Name,
		"player":   player.Name,
		"position": player.Position,
	}).Info("Player drafted")
}

// resolveName matches a selector or human response against the
// available list: exact case-insensitive first, then first substring
// match in pool order
func resolveName(name string, available []*types.PlayerRecord) *types.PlayerRecord {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	for _, p := range available {
		if strings.ToLower(p.Name) == lower {
			return p
		}
	}
	for _, p := range available {
		if strings.Contains(strings.ToLower(p.Name), lower) {
			return p
		}
	}
	return nil
}
