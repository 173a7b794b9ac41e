package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/holdem-sim/holdem/poker"
)

// Award is a share of one pot layer paid to a player.
type Award struct {
	Player string
	Layer  int
	Amount int
}

// RoundResult summarises a finished round.
type RoundResult struct {
	Round       int
	Blind       int
	Transcripts map[Street]string
	Community   []poker.Card
	Ranks       map[string]poker.HandRank
	Layers      []int
	Awards      []Award
}

// Transcript joins the street transcripts in street order.
func (r *RoundResult) Transcript() string {
	var parts []string
	for s := Preflop; s <= River; s++ {
		if text := r.Transcripts[s]; text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// Won returns the total awarded to name.
func (r *RoundResult) Won(name string) int {
	total := 0
	for _, a := range r.Awards {
		if a.Player == name {
			total += a.Amount
		}
	}
	return total
}

// Table is a single Hold'em table. It is not safe for concurrent use; one
// goroutine owns a table for its lifetime.
type Table struct {
	players []*Player
	deck    *poker.Deck
	ledger  *Ledger

	blind       int
	doubleEvery int
	littleBlind int // seat index, -1 until InitBlinds
	bigBlind    int
	round       int
	maxRaise    int

	community       []poker.Card
	burned          []poker.Card
	presetCommunity []poker.Card
	presetHands     map[string][]poker.Card

	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus

	fault error // set once a round aborts; the table cannot be played again
}

// NewTable seats players in the given order. The rng drives the deck; a nil
// rng uses the global source.
func NewTable(rng *rand.Rand, players []*Player, opts ...TableOption) (*Table, error) {
	cfg := defaultTableConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.blind < 2 {
		return nil, poker.Configuration("new table", fmt.Errorf("blind must be at least 2, got %d", cfg.blind))
	}

	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p == nil || p.source == nil {
			return nil, poker.Configuration("new table", poker.ErrNoDecisionSource)
		}
		if seen[p.name] {
			return nil, poker.Configuration("new table", fmt.Errorf("%w: %s", poker.ErrDuplicatePlayer, p.name))
		}
		seen[p.name] = true
	}

	return &Table{
		players:     slices.Clone(players),
		deck:        poker.NewDeck(rng),
		ledger:      NewLedger(),
		blind:       cfg.blind,
		doubleEvery: cfg.doubleEvery,
		littleBlind: -1,
		bigBlind:    -1,
		presetHands: make(map[string][]poker.Card),
		logger:      cfg.logger,
		clock:       cfg.clock,
		bus:         cfg.bus,
	}, nil
}

// Players returns the seated players in seating order.
func (t *Table) Players() []*Player { return slices.Clone(t.players) }

// Blind returns the current big blind.
func (t *Table) Blind() int { return t.blind }

// Rounds returns how many rounds have been played.
func (t *Table) Rounds() int { return t.round }

// Deck exposes the table's deck.
func (t *Table) Deck() *poker.Deck { return t.deck }

// Player looks up a seated player by name.
func (t *Table) Player(name string) (*Player, bool) {
	for _, p := range t.players {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// TotalMarkers is the sum of all balances plus whatever sits in the pot.
func (t *Table) TotalMarkers() int {
	total := t.ledger.Total()
	for _, p := range t.players {
		total += p.balance
	}
	return total
}

// InitBlinds gives the little blind to the first player with markers and the
// big blind to the next one.
func (t *Table) InitBlinds() error {
	if t.withMarkers() < 2 {
		return poker.Configuration("init blinds", poker.ErrTooFewPlayers)
	}
	t.littleBlind = t.nextWithMarkers(len(t.players) - 1)
	t.bigBlind = t.nextWithMarkers(t.littleBlind)
	return nil
}

// DealHand fixes the private cards name receives next round.
func (t *Table) DealHand(name string, cards ...poker.Card) error {
	if _, ok := t.Player(name); !ok {
		return fmt.Errorf("deal hand: %w: %s", poker.ErrUnknownPlayer, name)
	}
	if len(cards) != 2 {
		return fmt.Errorf("deal hand: want 2 cards, got %d", len(cards))
	}
	if err := t.reserve(cards); err != nil {
		return err
	}
	t.presetHands[name] = slices.Clone(cards)
	return nil
}

// PresetCommunity fixes the community cards revealed next round, in order.
func (t *Table) PresetCommunity(cards ...poker.Card) error {
	if len(t.presetCommunity)+len(cards) > 5 {
		return fmt.Errorf("preset community: at most 5 cards")
	}
	if err := t.reserve(cards); err != nil {
		return err
	}
	t.presetCommunity = append(t.presetCommunity, cards...)
	return nil
}

func (t *Table) reserve(cards []poker.Card) error {
	for i, c := range cards {
		if err := t.deck.Reserve(c); err != nil {
			// Put back what this call already took.
			if rerr := t.deck.ReturnAll(cards[:i]); rerr != nil {
				return errors.Join(err, rerr)
			}
			return err
		}
	}
	return nil
}

// PlayRound plays one full round from blinds to payout. An error after the
// blinds are posted leaves cards and markers mid-round, so it is kept as a
// *poker.Fault and returned by every later call.
func (t *Table) PlayRound() (_ *RoundResult, err error) {
	if t.fault != nil {
		return nil, t.fault
	}
	if t.littleBlind < 0 || t.withMarkers() < 2 {
		if err := t.InitBlinds(); err != nil {
			return nil, err
		}
	}
	defer func() {
		if err != nil {
			var f *poker.Fault
			if !errors.As(err, &f) {
				err = poker.Integrity("round", err)
			}
			t.fault = err
		}
	}()

	t.round++
	startTotal := t.TotalMarkers()
	result := &RoundResult{
		Round:       t.round,
		Blind:       t.blind,
		Transcripts: make(map[Street]string),
	}

	for _, p := range t.players {
		p.out = !p.HasMarkers()
	}
	if err := t.postBlinds(); err != nil {
		return nil, err
	}
	t.publish(RoundStartEvent{
		Round:       t.round,
		Blind:       t.blind,
		LittleBlind: t.players[t.littleBlind].name,
		BigBlind:    t.players[t.bigBlind].name,
		Players:     t.activeNames(),
		timestamp:   t.clock.Now(),
	})
	t.logger.Info("round started",
		"round", t.round,
		"blind", t.blind,
		"little", t.players[t.littleBlind].name,
		"big", t.players[t.bigBlind].name)

	if err := t.dealHoles(); err != nil {
		return nil, err
	}

	for street := Preflop; street <= River && t.contestingCount() > 1; street++ {
		if err := t.reveal(street); err != nil {
			return nil, err
		}
		t.publish(StreetEvent{
			Street:    street,
			Community: slices.Clone(t.community),
			Pot:       t.ledger.Total(),
			timestamp: t.clock.Now(),
		})
		if !t.needsBetting() {
			continue
		}
		br := newBettingRound(t, street, t.firstToAct(street))
		text, err := br.run()
		result.Transcripts[street] = text
		if err != nil {
			return nil, err
		}
	}

	if err := t.showdown(result); err != nil {
		return nil, err
	}
	if total := t.TotalMarkers(); total != startTotal {
		err := poker.Integrity("payout", fmt.Errorf("%w: started with %d, ended with %d", poker.ErrMarkersNotConserved, startTotal, total))
		t.logger.Error("round aborted", "round", t.round, "err", err)
		return nil, err
	}
	if err := t.endRound(); err != nil {
		return nil, err
	}

	t.publish(RoundEndEvent{Result: result, timestamp: t.clock.Now()})
	t.logger.Info("round finished", "round", result.Round, "transcript", result.Transcript())
	return result, nil
}

// Err returns the fault that aborted a round, if any.
func (t *Table) Err() error { return t.fault }

// PlayRounds plays until maxRounds have been played or fewer than two players
// hold markers. It returns the number of rounds played by this call.
func (t *Table) PlayRounds(maxRounds int) (int, error) {
	played := 0
	for played < maxRounds && t.withMarkers() >= 2 {
		if _, err := t.PlayRound(); err != nil {
			return played, err
		}
		played++
	}
	return played, nil
}

func (t *Table) postBlinds() error {
	t.maxRaise = t.blind
	blinds := []struct {
		seat   int
		status BlindStatus
		amount int
	}{
		{t.littleBlind, LittleBlind, t.blind / 2},
		{t.bigBlind, BigBlind, t.blind},
	}
	for _, b := range blinds {
		p := t.players[b.seat]
		p.blind = b.status
		paid := min(b.amount, p.balance)
		if err := p.pay(paid); err != nil {
			return err
		}
		allIn := p.balance == 0
		if allIn {
			p.action = Action{Kind: AllIn, Amount: paid}
		}
		t.ledger.Join(p.name, paid, allIn)
		t.logger.Debug("blind posted", "player", p.name, "blind", b.status, "paid", paid, "all_in", allIn)
	}
	return nil
}

func (t *Table) dealHoles() error {
	for _, p := range t.players {
		if p.out {
			continue
		}
		if preset, ok := t.presetHands[p.name]; ok {
			p.hand = preset
			delete(t.presetHands, p.name)
			continue
		}
		cards, err := t.deck.Draw(2)
		if err != nil {
			return err
		}
		p.hand = cards
	}
	// Presets for players who sat out go straight back.
	for name, cards := range t.presetHands {
		if err := t.deck.ReturnAll(cards); err != nil {
			return err
		}
		delete(t.presetHands, name)
	}
	return nil
}

// reveal burns one card and turns the street's community cards.
func (t *Table) reveal(street Street) error {
	n := street.cardsRevealed()
	if n == 0 {
		return nil
	}
	burn, err := t.deck.DrawOne()
	if err != nil {
		return err
	}
	t.burned = append(t.burned, burn)

	take := min(n, len(t.presetCommunity))
	t.community = append(t.community, t.presetCommunity[:take]...)
	t.presetCommunity = t.presetCommunity[take:]
	if rest := n - take; rest > 0 {
		cards, err := t.deck.Draw(rest)
		if err != nil {
			return err
		}
		t.community = append(t.community, cards...)
	}
	t.logger.Debug("cards revealed", "street", street, "community", poker.FormatCards(t.community))
	return nil
}

// firstToAct is the seat the street's walk starts from: left of the big blind
// before the flop, the little blind afterwards.
func (t *Table) firstToAct(street Street) int {
	if street == Preflop {
		return (t.bigBlind + 1) % len(t.players)
	}
	return t.littleBlind
}

// needsBetting reports whether at least two players can still bet, or a lone
// player has yet to match the running level.
func (t *Table) needsBetting() bool {
	canAct := 0
	behind := false
	for _, p := range t.players {
		if p.canAct() {
			canAct++
			if t.ledger.PartOf(p.name) < t.maxRaise {
				behind = true
			}
		}
	}
	return canAct >= 2 || (canAct == 1 && behind)
}

func (t *Table) showdown(result *RoundResult) error {
	contenders := t.contenders()
	if len(contenders) == 0 {
		return poker.Integrity("showdown", errors.New("no contending players"))
	}
	result.Community = slices.Clone(t.community)
	result.Ranks = make(map[string]poker.HandRank, len(contenders))

	if len(contenders) > 1 {
		for _, p := range contenders {
			rank, err := poker.Evaluate(append(p.Hand(), t.community...))
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", p.name, err)
			}
			result.Ranks[p.name] = rank
			t.logger.Debug("hand evaluated", "player", p.name, "hand", poker.FormatCards(p.hand), "rank", rank)
		}
		t.publish(ShowdownEvent{
			Community: slices.Clone(t.community),
			Ranks:     result.Ranks,
			timestamp: t.clock.Now(),
		})
	}

	for i, layer := range t.ledger.Layers() {
		size := layer.Size()
		result.Layers = append(result.Layers, size)
		if size == 0 {
			continue
		}
		winners := t.layerWinners(layer, contenders, result.Ranks)
		share, rest := size/len(winners), size%len(winners)
		for j, w := range winners {
			amount := share
			if j == 0 {
				amount += rest
			}
			w.credit(amount)
			result.Awards = append(result.Awards, Award{Player: w.name, Layer: i, Amount: amount})
			t.logger.Debug("layer awarded", "layer", i, "player", w.name, "amount", amount)
		}
	}
	t.ledger.Clear()
	return nil
}

// layerWinners picks the best contending members of the layer, in seating
// order. A layer whose members all folded goes to the best hand overall.
func (t *Table) layerWinners(layer *Layer, contenders []*Player, ranks map[string]poker.HandRank) []*Player {
	var eligible []*Player
	for _, p := range contenders {
		if layer.Contribution(p.name) > 0 {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		eligible = contenders
	}
	if len(eligible) == 1 {
		return eligible
	}

	best := []*Player{eligible[0]}
	for _, p := range eligible[1:] {
		switch cmp := ranks[p.name].Compare(ranks[best[0].name]); {
		case cmp > 0:
			best = []*Player{p}
		case cmp == 0:
			best = append(best, p)
		}
	}
	return best
}

// endRound returns every card to the deck, resets per-round state and moves
// the blinds on.
func (t *Table) endRound() error {
	cards := slices.Clone(t.community)
	cards = append(cards, t.burned...)
	cards = append(cards, t.presetCommunity...)
	t.presetCommunity = nil
	for _, p := range t.players {
		cards = append(cards, p.hand...)
		p.resetForRound()
	}
	t.community, t.burned = nil, nil
	t.maxRaise = 0
	if err := t.deck.ReturnAll(cards); err != nil {
		return err
	}
	if t.deck.Len()+t.reservedCards() != poker.DeckSize {
		return poker.Integrity("end round", fmt.Errorf("%w: deck holds %d cards", poker.ErrDuplicateCard, t.deck.Len()))
	}

	if t.doubleEvery > 0 && t.round%t.doubleEvery == 0 {
		t.blind *= 2
		t.logger.Info("blind doubled", "blind", t.blind)
	}
	if t.withMarkers() >= 2 {
		t.littleBlind = t.nextWithMarkers(t.littleBlind)
		t.bigBlind = t.nextWithMarkers(t.littleBlind)
	}
	return nil
}

func (t *Table) reservedCards() int {
	n := 0
	for _, cards := range t.presetHands {
		n += len(cards)
	}
	return n
}

func (t *Table) nextWithMarkers(seat int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		idx := (seat + i) % n
		if t.players[idx].HasMarkers() {
			return idx
		}
	}
	return seat
}

func (t *Table) withMarkers() int {
	count := 0
	for _, p := range t.players {
		if p.HasMarkers() {
			count++
		}
	}
	return count
}

func (t *Table) contestingCount() int {
	count := 0
	for _, p := range t.players {
		if p.contesting() {
			count++
		}
	}
	return count
}

func (t *Table) contenders() []*Player {
	var out []*Player
	for _, p := range t.players {
		if p.contesting() {
			out = append(out, p)
		}
	}
	return out
}

func (t *Table) activeNames() []string {
	var names []string
	for _, p := range t.players {
		if !p.out {
			names = append(names, p.name)
		}
	}
	return names
}

func (t *Table) publish(event GameEvent) {
	if t.bus != nil {
		t.bus.Publish(event)
	}
}
