package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/coder/quartz"
	"github.com/holdem-sim/holdem/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableRejectsBadSeating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		players []*Player
		opts    []TableOption
		wantErr error
	}{
		{
			name:    "duplicate names",
			players: []*Player{NewPlayer("A", 100, script()), NewPlayer("A", 100, script())},
			wantErr: poker.ErrDuplicatePlayer,
		},
		{
			name:    "missing decision source",
			players: []*Player{NewPlayer("A", 100, nil), NewPlayer("B", 100, script())},
			wantErr: poker.ErrNoDecisionSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTable(nil, tt.players, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, poker.IsFault(err, poker.ConfigurationFault))
		})
	}

	_, err := NewTable(nil, nil, WithBlind(1))
	assert.True(t, poker.IsFault(err, poker.ConfigurationFault))
}

func TestInitBlindsNeedsTwoPlayersWithMarkers(t *testing.T) {
	t.Parallel()

	table := newTestTable(t, []*Player{
		NewPlayer("A", 1000, script()),
		NewPlayer("B", 0, script()),
	})

	err := table.InitBlinds()
	require.Error(t, err)
	assert.ErrorIs(t, err, poker.ErrTooFewPlayers)
	assert.True(t, poker.IsFault(err, poker.ConfigurationFault))

	_, err = table.PlayRound()
	assert.True(t, poker.IsFault(err, poker.ConfigurationFault))
}

func TestBlindsRotateToPlayersWithMarkers(t *testing.T) {
	t.Parallel()

	a := NewPlayer("A", 1000, script())
	b := NewPlayer("B", 0, script())
	c := NewPlayer("C", 1000, script())
	d := NewPlayer("D", 1000, script())
	table := newTestTable(t, []*Player{a, b, c, d})

	var starts []RoundStartEvent
	bus := NewEventBus()
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		if s, ok := e.(RoundStartEvent); ok {
			starts = append(starts, s)
		}
	}))
	table.bus = bus

	for range 2 {
		_, err := table.PlayRound()
		require.NoError(t, err)
	}

	require.Len(t, starts, 2)
	assert.Equal(t, "A", starts[0].LittleBlind)
	assert.Equal(t, "C", starts[0].BigBlind)
	assert.NotContains(t, starts[0].Players, "B")
	assert.Equal(t, "C", starts[1].LittleBlind)
	assert.Equal(t, "D", starts[1].BigBlind)
}

func TestSplitPotRemainderGoesToFirstSeat(t *testing.T) {
	t.Parallel()

	a := NewPlayer("A", 1000, script(FoldAction()))
	b := NewPlayer("B", 1000, script())
	c := NewPlayer("C", 1000, script())
	table := newTestTable(t, []*Player{a, b, c})
	dealHands(t, table, map[string]string{
		"A": "4h 5h",
		"B": "2c 3d",
		"C": "2d 3c",
	}, "Ts Js Qs Ks As")

	result, err := table.PlayRound()
	require.NoError(t, err)

	assert.Equal(t, "Player C checks. Player A folds. Player B checks.", result.Transcripts[Preflop])
	assert.Equal(t, poker.RoyalStraightFlush, result.Ranks["B"].Category)
	assert.Zero(t, result.Ranks["B"].Compare(result.Ranks["C"]))
	assert.NotContains(t, result.Ranks, "A")
	assert.Equal(t, []int{975, 1013, 1012}, balances(a, b, c))
}

func TestSidePotGoesToBestEligibleHand(t *testing.T) {
	t.Parallel()

	// A is short and holds the best hand: A wins the main pot only.
	a := NewPlayer("A", 200, script(AllInAction()))
	b := NewPlayer("B", 1000, script(RaiseTo(500)))
	c := NewPlayer("C", 1000, script())
	table := newTestTable(t, []*Player{a, b, c})
	dealHands(t, table, map[string]string{
		"A": "Ah As",
		"B": "Kh Ks",
		"C": "7d 2c",
	}, "Ad Kd 9c 5s 3h")

	result, err := table.PlayRound()
	require.NoError(t, err)

	assert.Equal(t,
		"Player C checks. Player A goes all-in 200. Player B raises 500. Player C checks.",
		result.Transcripts[Preflop])
	assert.Equal(t, []int{600, 600}, result.Layers)
	assert.Equal(t, 600, result.Won("A"))
	assert.Equal(t, 600, result.Won("B"))
	assert.Equal(t, []int{600, 1100, 500}, balances(a, b, c))
}

func TestRoundReturnsAllCards(t *testing.T) {
	t.Parallel()

	table := newTestTable(t, []*Player{
		NewPlayer("A", 1000, script()),
		NewPlayer("B", 1000, script()),
		NewPlayer("C", 1000, script()),
	})

	for range 5 {
		result, err := table.PlayRound()
		require.NoError(t, err)
		assert.Len(t, result.Community, 5)
		assert.Equal(t, poker.DeckSize, table.Deck().Len())
		for _, p := range table.Players() {
			assert.Empty(t, p.Hand())
			assert.Equal(t, NoBlind, p.Blind())
		}
	}
	assert.Equal(t, 5, table.Rounds())
}

func TestBlindDoubling(t *testing.T) {
	t.Parallel()

	table := newTestTable(t, []*Player{
		NewPlayer("A", 10000, script()),
		NewPlayer("B", 10000, script()),
	}, WithBlind(20), WithBlindDoubling(2))

	var blinds []int
	for range 4 {
		result, err := table.PlayRound()
		require.NoError(t, err)
		blinds = append(blinds, result.Blind)
	}
	assert.Equal(t, []int{20, 20, 40, 40}, blinds)
	assert.Equal(t, 80, table.Blind())
}

func TestDealHandRejectsTakenCards(t *testing.T) {
	t.Parallel()

	table := newTestTable(t, []*Player{
		NewPlayer("A", 1000, script()),
		NewPlayer("B", 1000, script()),
	})

	require.NoError(t, table.DealHand("A", poker.MustParseCards("Ah As")...))
	err := table.DealHand("B", poker.MustParseCards("Kd Ah")...)
	require.Error(t, err)
	assert.True(t, poker.IsFault(err, poker.IntegrityFault))
	// The half-dealt hand is put back.
	assert.True(t, table.Deck().Contains(poker.NewCard(poker.King, poker.Diamonds)))

	err = table.DealHand("Z", poker.MustParseCards("2c 3c")...)
	assert.ErrorIs(t, err, poker.ErrUnknownPlayer)
}

// randomSource picks a random legal-looking action.
func randomSource(rng *rand.Rand) DecisionSource {
	return DecisionFunc(func(s Situation) Action {
		switch rng.IntN(6) {
		case 0:
			return FoldAction()
		case 1:
			return AllInAction()
		case 2, 3:
			return RaiseTo(s.MaxRaise + s.Blind*(1+rng.IntN(3)))
		}
		return CheckAction()
	})
}

func TestMarkersConservedOverManyRounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 1))
	players := []*Player{
		NewPlayer("A", 2500, randomSource(rng)),
		NewPlayer("B", 1500, randomSource(rng)),
		NewPlayer("C", 800, randomSource(rng)),
		NewPlayer("D", 3000, randomSource(rng)),
	}
	table, err := NewTable(rng, players, WithBlindDoubling(10))
	require.NoError(t, err)

	played, err := table.PlayRounds(200)
	require.NoError(t, err)
	assert.Positive(t, played)

	total := 0
	for _, p := range players {
		assert.GreaterOrEqual(t, p.Balance(), 0)
		total += p.Balance()
	}
	assert.Equal(t, 7800, total)
	assert.Equal(t, poker.DeckSize, table.Deck().Len())
}

func TestMarkersAppearingMidRoundAbortTheTable(t *testing.T) {
	t.Parallel()

	var a *Player
	a = NewPlayer("A", 1000, DecisionFunc(func(Situation) Action {
		a.credit(7)
		return CheckAction()
	}))
	b := NewPlayer("B", 1000, script())
	table := newTestTable(t, []*Player{a, b})

	_, err := table.PlayRound()
	require.Error(t, err)
	assert.True(t, errors.Is(err, poker.ErrMarkersNotConserved))
	assert.True(t, poker.IsFault(err, poker.IntegrityFault))
	assert.ErrorContains(t, err, "started with 2000")

	// the aborted round is not cleaned up, so the table refuses to continue
	_, again := table.PlayRound()
	assert.Same(t, err, again)
	assert.Same(t, err, table.Err())

	played, err := table.PlayRounds(5)
	assert.Zero(t, played)
	assert.True(t, errors.Is(err, poker.ErrMarkersNotConserved))
}

func TestTableErrIsNilAfterCleanRounds(t *testing.T) {
	t.Parallel()

	table := newTestTable(t, []*Player{
		NewPlayer("A", 1000, script()),
		NewPlayer("B", 1000, script()),
	})
	_, err := table.PlayRound()
	require.NoError(t, err)
	assert.NoError(t, table.Err())
}

func TestEventsUseInjectedClock(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	bus := NewEventBus()
	var events []GameEvent
	bus.Subscribe(EventSubscriberFunc(func(e GameEvent) {
		events = append(events, e)
	}))

	table := newTestTable(t, []*Player{
		NewPlayer("A", 1000, script(FoldAction())),
		NewPlayer("B", 1000, script()),
	}, WithClock(clock), WithEventBus(bus))

	_, err := table.PlayRound()
	require.NoError(t, err)

	require.NotEmpty(t, events)
	assert.Equal(t, EventTypeRoundStart, events[0].EventType())
	assert.Equal(t, EventTypeRoundEnd, events[len(events)-1].EventType())
	for _, e := range events {
		assert.Equal(t, clock.Now(), e.Timestamp(), "event %s", e.EventType())
	}

	var actions []PlayerActionEvent
	for _, e := range events {
		if a, ok := e.(PlayerActionEvent); ok {
			actions = append(actions, a)
		}
	}
	require.Len(t, actions, 1)
	assert.Equal(t, "A", actions[0].Player)
	assert.Equal(t, Fold, actions[0].Action.Kind)
}
