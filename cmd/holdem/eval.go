package main

import (
	"fmt"
	"strings"

	"github.com/holdem-sim/holdem/poker"
)

// EvalCmd ranks cards given on the command line, e.g. "Ah Kh Qh Jh Th".
type EvalCmd struct {
	Cards []string `arg:"" help:"Cards such as Ah, 10d or K♠"`
}

func (c *EvalCmd) Run() error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	rank, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s, %d points, top card %s\n",
		poker.FormatCards(cards), rank.Category, rank.Points, rank.TopCard.Symbol())
	return nil
}
