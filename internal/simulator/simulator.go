// Package simulator plays independent tables in parallel.
package simulator

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/holdem-sim/holdem/internal/bot"
	"github.com/holdem-sim/holdem/internal/config"
	"github.com/holdem-sim/holdem/internal/game"
	"github.com/holdem-sim/holdem/internal/randutil"
)

// Config holds configuration for running simulations
type Config struct {
	Table    *config.Config
	Tables   int
	Seed     int64
	Parallel int // 0 runs every table at once
	Logger   *log.Logger
	Clock    quartz.Clock
}

// TableReport is the outcome of one table
type TableReport struct {
	Index      int
	Seed       int64
	Rounds     int
	Showdowns  int
	Actions    map[game.ActionKind]int
	Balances   map[string]int
	Wins       map[string]int
	FinalBlind int
}

// Leader returns the player holding the most markers, ties broken by name.
func (r TableReport) Leader() string {
	names := slices.Sorted(maps.Keys(r.Balances))
	leader := ""
	for _, name := range names {
		if leader == "" || r.Balances[name] > r.Balances[leader] {
			leader = name
		}
	}
	return leader
}

// Simulator runs poker table simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(cfg Config) *Simulator {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Table == nil {
		cfg.Table = config.Default()
	}
	if cfg.Tables < 1 {
		cfg.Tables = 1
	}
	return &Simulator{config: cfg}
}

// Run plays every table and returns reports in table order. The first
// failing table cancels the rest.
func (s *Simulator) Run(ctx context.Context) ([]TableReport, error) {
	if err := s.config.Table.Validate(bot.Known); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	reports := make([]TableReport, s.config.Tables)
	g, ctx := errgroup.WithContext(ctx)
	if s.config.Parallel > 0 {
		g.SetLimit(s.config.Parallel)
	}

	for i := range s.config.Tables {
		g.Go(func() error {
			report, err := s.playTable(ctx, i)
			if err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *Simulator) playTable(ctx context.Context, index int) (TableReport, error) {
	rng := randutil.Stream(s.config.Seed, index)
	logger := s.config.Logger.With("table", index)

	players := make([]*game.Player, 0, len(s.config.Table.Players))
	for _, pc := range s.config.Table.Players {
		src, err := bot.New(pc.Strategy, rng, logger)
		if err != nil {
			return TableReport{}, err
		}
		players = append(players, game.NewPlayer(pc.Name, pc.Markers, src))
	}

	tally := newTally()
	bus := game.NewEventBus()
	bus.Subscribe(tally)

	table, err := game.NewTable(rng, players,
		game.WithBlind(s.config.Table.Table.Blind),
		game.WithBlindDoubling(s.config.Table.Table.DoubleBlindEvery),
		game.WithLogger(logger),
		game.WithClock(s.config.Clock),
		game.WithEventBus(bus),
	)
	if err != nil {
		return TableReport{}, err
	}

	for table.Rounds() < s.config.Table.Table.Rounds {
		if err := ctx.Err(); err != nil {
			return TableReport{}, err
		}
		played, err := table.PlayRounds(1)
		if err != nil {
			return TableReport{}, err
		}
		if played == 0 {
			break
		}
	}

	report := TableReport{
		Index:      index,
		Seed:       s.config.Seed,
		Rounds:     table.Rounds(),
		Showdowns:  tally.showdowns,
		Actions:    tally.actions,
		Wins:       tally.wins,
		Balances:   make(map[string]int, len(players)),
		FinalBlind: table.Blind(),
	}
	for _, p := range table.Players() {
		report.Balances[p.Name()] = p.Balance()
	}
	logger.Info("table finished", "rounds", report.Rounds, "leader", report.Leader())
	return report, nil
}

// tally counts events for one table
type tally struct {
	showdowns int
	actions   map[game.ActionKind]int
	wins      map[string]int
}

func newTally() *tally {
	return &tally{
		actions: make(map[game.ActionKind]int),
		wins:    make(map[string]int),
	}
}

func (t *tally) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.PlayerActionEvent:
		t.actions[e.Action.Kind]++
	case game.ShowdownEvent:
		t.showdowns++
	case game.RoundEndEvent:
		for _, award := range e.Result.Awards {
			if award.Layer == 0 {
				t.wins[award.Player]++
			}
		}
	}
}
