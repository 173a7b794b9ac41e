package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/holdem-sim/holdem/internal/config"
	"github.com/holdem-sim/holdem/internal/game"
	"github.com/holdem-sim/holdem/internal/randutil"
	"github.com/holdem-sim/holdem/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	leaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	bustStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

// PlayCmd plays one or more tables from an HCL configuration.
type PlayCmd struct {
	Config   string `short:"c" help:"HCL table configuration" default:"holdem.hcl" type:"path"`
	Tables   int    `short:"t" help:"Number of independent tables" default:"1"`
	Parallel int    `short:"p" help:"Tables to run at once (0 for all)" default:"0"`
	Rounds   int    `short:"r" help:"Override the number of rounds per table"`
	Seed     int64  `short:"s" help:"RNG seed (0 for the configured seed or random)"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Rounds > 0 {
		cfg.Table.Rounds = c.Rounds
	}
	if cfg.Table.LogLevel != "" && logger.GetLevel() == log.InfoLevel {
		if lvl, err := log.ParseLevel(cfg.Table.LogLevel); err == nil {
			logger.SetLevel(lvl)
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Table.Seed
	}
	if seed == 0 {
		seed = randutil.Seed()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "tables", c.Tables, "rounds", cfg.Table.Rounds, "players", len(cfg.Players), "seed", seed)
	reports, err := simulator.New(simulator.Config{
		Table:    cfg,
		Tables:   c.Tables,
		Seed:     seed,
		Parallel: c.Parallel,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	for _, r := range reports {
		fmt.Println(renderReport(r))
	}
	return nil
}

func renderReport(r simulator.TableReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", headerStyle.Render(fmt.Sprintf("Table %d", r.Index+1)))
	fmt.Fprintf(&b, "rounds %d, showdowns %d, final blind %d\n", r.Rounds, r.Showdowns, r.FinalBlind)

	names := make([]string, 0, len(r.Balances))
	for name := range r.Balances {
		names = append(names, name)
	}
	slices.SortFunc(names, func(x, y string) int {
		if d := r.Balances[y] - r.Balances[x]; d != 0 {
			return d
		}
		return strings.Compare(x, y)
	})

	leader := r.Leader()
	for _, name := range names {
		line := fmt.Sprintf("  %-12s %8d markers  %4d pots won", name, r.Balances[name], r.Wins[name])
		switch {
		case name == leader:
			line = leaderStyle.Render(line)
		case r.Balances[name] == 0:
			line = bustStyle.Render(line)
		}
		fmt.Fprintln(&b, line)
	}

	kinds := []game.ActionKind{game.Check, game.Raise, game.Fold, game.AllIn}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s %d", k, r.Actions[k]))
	}
	fmt.Fprintf(&b, "actions: %s", strings.Join(parts, ", "))
	return b.String()
}
