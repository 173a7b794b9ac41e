package game

import (
	"fmt"

	"github.com/holdem-sim/holdem/poker"
)

// Player is a seat at the table. Balance persists across rounds; hand, blind
// and action are reset after every round.
type Player struct {
	name    string
	balance int
	hand    []poker.Card
	blind   BlindStatus
	action  Action
	out     bool // sat out this round with no markers
	source  DecisionSource
}

// NewPlayer seats a player with markers and a decision source.
func NewPlayer(name string, markers int, source DecisionSource) *Player {
	return &Player{
		name:    name,
		balance: markers,
		source:  source,
	}
}

func (p *Player) Name() string           { return p.name }
func (p *Player) Balance() int           { return p.balance }
func (p *Player) Blind() BlindStatus     { return p.blind }
func (p *Player) LastAction() Action     { return p.action }
func (p *Player) HasMarkers() bool       { return p.balance > 0 }
func (p *Player) Folded() bool           { return p.action.Kind == Fold }
func (p *Player) AllIn() bool            { return p.action.Kind == AllIn }
func (p *Player) Source() DecisionSource { return p.source }

// Hand returns a copy of the private cards.
func (p *Player) Hand() []poker.Card {
	return append([]poker.Card(nil), p.hand...)
}

// contesting reports whether the player can still win the pot.
func (p *Player) contesting() bool {
	return !p.out && !p.Folded()
}

// canAct reports whether the player can still put markers in.
func (p *Player) canAct() bool {
	return p.contesting() && !p.AllIn() && p.balance > 0
}

func (p *Player) pay(amount int) error {
	if amount < 0 || amount > p.balance {
		return poker.Integrity("pay", fmt.Errorf("%w: %s owes %d with %d", poker.ErrOverdraw, p.name, amount, p.balance))
	}
	p.balance -= amount
	return nil
}

func (p *Player) credit(amount int) {
	p.balance += amount
}

func (p *Player) resetForRound() {
	p.hand = nil
	p.blind = NoBlind
	p.action = Action{}
	p.out = false
}
