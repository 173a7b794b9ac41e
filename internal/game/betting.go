package game

import (
	"slices"
	"strings"
)

// bettingRound drives one street. order holds arena indexes of the players
// still to be polled, starting with whoever acts first; acted is indexed by
// arena position.
type bettingRound struct {
	t           *Table
	street      Street
	order       []int
	acted       []bool
	streetStart int
	transcript  []string
}

func newBettingRound(t *Table, street Street, first int) *bettingRound {
	br := &bettingRound{
		t:      t,
		street: street,
		acted:  make([]bool, len(t.players)),
	}
	// Preflop the blinds count towards the street's raise.
	if street != Preflop {
		br.streetStart = t.maxRaise
	}
	n := len(t.players)
	for i := range n {
		idx := (first + i) % n
		if t.players[idx].canAct() {
			br.order = append(br.order, idx)
		}
	}
	return br
}

// run polls players until a full walk passes without a new raise. Players are
// reordered behind every raiser so that everyone answers the new level.
func (br *bettingRound) run() (string, error) {
	start := 0
	for {
		raised, reordered := false, false

		for pos := start; pos < len(br.order); pos++ {
			if br.t.contestingCount() < 2 {
				return br.text(), nil
			}
			idx := br.order[pos]
			p := br.t.players[idx]
			if br.satisfied(idx) {
				continue
			}

			prevMax := br.t.maxRaise
			action, err := br.act(idx)
			if err != nil {
				return br.text(), err
			}
			if action.Kind == Fold || action.Amount <= prevMax {
				continue
			}

			raised = true
			if pos > 0 && !br.othersAllIn(idx) {
				br.reorder(pos)
				br.t.logger.Debug("betting reordered", "street", br.street, "raiser", p.name, "level", action.Amount)
				reordered = true
				break
			}
		}

		switch {
		case reordered:
			start = 1
		case raised:
			start = 0
		default:
			return br.text(), nil
		}
	}
}

// act polls one player, normalises the decision and settles payment.
func (br *bettingRound) act(idx int) (Action, error) {
	t := br.t
	p := t.players[idx]
	part := t.ledger.PartOf(p.name)

	decided := p.source.Decide(Situation{
		Street:             br.street,
		Community:          slices.Clone(t.community),
		Hole:               p.Hand(),
		Blind:              t.blind,
		MaxRaise:           t.maxRaise,
		MaxRaiseThisStreet: t.maxRaise - br.streetStart,
		PartInPot:          part,
		Balance:            p.balance,
		Opponents:          t.contestingCount() - 1,
	})
	action := normalize(decided, part, p.balance, t.maxRaise)

	paid := 0
	if action.Kind != Fold && shallPayToPot(part, action.Amount) {
		paid = action.Amount - part
		if err := p.pay(paid); err != nil {
			return action, err
		}
		t.ledger.Join(p.name, paid, action.Kind == AllIn)
	}

	p.action = action
	br.acted[idx] = true
	if action.Kind != Fold && action.Amount > t.maxRaise {
		t.maxRaise = action.Amount
	}
	br.transcript = append(br.transcript, "Player "+p.name+" "+action.String()+".")

	t.logger.Debug("player acted",
		"street", br.street,
		"player", p.name,
		"action", action.Kind,
		"level", action.Amount,
		"paid", paid,
		"balance", p.balance,
		"pot", t.ledger.Total())
	t.publish(PlayerActionEvent{
		Player:    p.name,
		Street:    br.street,
		Action:    action,
		Paid:      paid,
		PotAfter:  t.ledger.Total(),
		timestamp: t.clock.Now(),
	})
	return action, nil
}

// normalize turns a decision into a legal action at the given level: raises
// that do not beat the running level become checks and any level the player
// cannot cover becomes an all-in for exactly the remaining balance.
func normalize(a Action, part, balance, maxRaise int) Action {
	switch a.Kind {
	case Fold:
		return Action{Kind: Fold, Amount: part}
	case Raise:
		if a.Amount <= maxRaise {
			a = Action{Kind: Check, Amount: maxRaise}
		}
	case AllIn:
		a.Amount = part + balance
	default:
		a = Action{Kind: Check, Amount: maxRaise}
	}
	if a.Amount >= part+balance {
		a = Action{Kind: AllIn, Amount: part + balance}
	}
	return a
}

// shallPayToPot reports whether a player at part still owes markers to reach level.
func shallPayToPot(part, level int) bool {
	return part < level
}

// satisfied players are not polled again: folded players and all-in players
// who already acted this street.
func (br *bettingRound) satisfied(idx int) bool {
	p := br.t.players[idx]
	if !p.contesting() {
		return true
	}
	return p.AllIn() && (br.acted[idx] || p.balance == 0)
}

func (br *bettingRound) othersAllIn(idx int) bool {
	for _, other := range br.order {
		if other == idx {
			continue
		}
		if p := br.t.players[other]; p.contesting() && !p.AllIn() {
			return false
		}
	}
	return true
}

// reorder rotates the order so the raiser at pos comes first, followed by the
// others in their previous relative order. Players that folded or went all-in
// and already acted drop out.
func (br *bettingRound) reorder(pos int) {
	raiser := br.order[pos]
	rotated := make([]int, 0, len(br.order))
	rotated = append(rotated, raiser)
	n := len(br.order)
	for i := 1; i < n; i++ {
		idx := br.order[(pos+i)%n]
		p := br.t.players[idx]
		if (p.Folded() || p.AllIn()) && br.acted[idx] {
			continue
		}
		rotated = append(rotated, idx)
	}
	br.order = rotated
	br.acted[raiser] = true
}

func (br *bettingRound) text() string {
	return strings.Join(br.transcript, " ")
}
