package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		hand     string
		category Category
		points   int
		top      string
	}{
		{name: "royal straight flush", hand: "Th Jh Qh Kh Ah 2c 3d", category: RoyalStraightFlush, points: 914, top: "Ah"},
		{name: "royal in spades", hand: "Ts Js Qs Ks As 2c 3d", category: RoyalStraightFlush, points: 914, top: "As"},
		{name: "straight flush", hand: "5d 6d 7d 8d 9d Kc 2s", category: StraightFlush, points: 809, top: "9d"},
		{name: "ace low straight flush", hand: "Ac 2c 3c 4c 5c Kh Qd", category: StraightFlush, points: 805, top: "5c"},
		{name: "four of a kind", hand: "9c 9d 9s 9h Kc 2d 3s", category: FourOfAKind, points: 709, top: "Kc"},
		{name: "full house", hand: "Qc Qd Qs 4h 4c 2d 7s", category: FullHouse, points: 612, top: "Qs"},
		{name: "two trips are threes", hand: "Qc Qd Qs 4h 4c 4d 7s", category: ThreeOfAKind, points: 312, top: "Qs"},
		{name: "flush", hand: "2h 7h 9h Jh Kh 3c 4d", category: Flush, points: 513, top: "Kh"},
		{name: "straight", hand: "5s 6h 7c 8d 9s Kh 2c", category: Straight, points: 409, top: "9s"},
		{name: "ace low straight", hand: "Ah 2c 3d 4s 5h 9c Jd", category: Straight, points: 405, top: "5h"},
		{name: "ace high straight", hand: "Th Jc Qd Ks Ah 2c 3d", category: Straight, points: 414, top: "Ah"},
		{name: "straight with repeated rank", hand: "5s 6h 6c 7d 8s 9h 2c", category: Straight, points: 409, top: "9h"},
		{name: "three of a kind", hand: "7c 7d 7s Kh 2c 4d 9s", category: ThreeOfAKind, points: 307, top: "Kh"},
		{name: "two pair", hand: "Jc Jd 4s 4h 2c 8d Ks", category: TwoPair, points: 211, top: "Ks"},
		{name: "three pairs", hand: "Jc Jd 4s 4h 2c 2d Ks", category: TwoPair, points: 211, top: "Ks"},
		{name: "one pair", hand: "Tc Td 4s 6h 2c 8d Ks", category: OnePair, points: 110, top: "Ks"},
		{name: "no result", hand: "Ac 3d 5s 7h 9c Jd Ks", category: NoResult, points: 14, top: "Ac"},
		{name: "pocket aces", hand: "Ah As", category: OnePair, points: 114, top: "Ah"},
		{name: "single card", hand: "Qd", category: NoResult, points: 12, top: "Qd"},
		{name: "four to a straight", hand: "5s 6h 7c 8d", category: NoResult, points: 8, top: "8d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(MustParseCards(tt.hand))
			require.NoError(t, err)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.points, got.Points)
			assert.Equal(t, tt.top, got.TopCard.String())
		})
	}
}

func TestEvaluateFlushScenario(t *testing.T) {
	t.Parallel()

	// Five hearts alongside a repeated five of spades.
	got, err := Evaluate(MustParseCards("5♠ A♥ K♥ 2♥ 5♥ 5♠ 6♥"))
	require.NoError(t, err)
	assert.Equal(t, Flush, got.Category)
	assert.Equal(t, NewCard(Ace, Hearts), got.TopCard)
}

func TestEvaluateStraightScenario(t *testing.T) {
	t.Parallel()

	got, err := Evaluate(MustParseCards("5♠ 6♥ K♥ 2♦ 7♥ 8♠ 4♣"))
	require.NoError(t, err)
	assert.Equal(t, Straight, got.Category)
	assert.Equal(t, NewCard(Eight, Spades), got.TopCard)
}

func TestEvaluateFlushNeedsExactlyFive(t *testing.T) {
	t.Parallel()

	got, err := Evaluate(MustParseCards("2h 5h 7h 9h Jh Kh 3c"))
	require.NoError(t, err)
	assert.NotEqual(t, Flush, got.Category, "six of one suit is not a flush")
	assert.Equal(t, NoResult, got.Category)
}

func TestEvaluateHandSize(t *testing.T) {
	t.Parallel()

	_, err := Evaluate(nil)
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = Evaluate(MustParseCards("2c 3c 4c 5c 6c 7c 8c 9c"))
	assert.ErrorIs(t, err, ErrHandSize)

	_, err = Evaluate([]Card{{Rank: 1, Suit: Clubs}})
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestEvaluatePermutationInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		d := NewDeck(rng)
		hand, err := d.Draw(7)
		require.NoError(t, err)

		want := MustEvaluate(hand)
		for range 5 {
			shuffled := append([]Card(nil), hand...)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			assert.Equal(t, want, MustEvaluate(shuffled), "hand %v", hand)
		}
	}
}

func TestHandRankCompare(t *testing.T) {
	t.Parallel()

	pairAces := MustEvaluate(MustParseCards("Ah As 3c 5d 9h Jc 2s"))
	pairKings := MustEvaluate(MustParseCards("Kh Ks 3c 5d 9h Jc 2s"))
	twoPair := MustEvaluate(MustParseCards("4h 4s 3c 3d 9h Jc 2s"))

	assert.True(t, pairAces.Beats(pairKings))
	assert.True(t, twoPair.Beats(pairAces))
	assert.False(t, pairKings.Beats(pairAces))

	// Same category and points fall back to the top card.
	spadesTop := MustEvaluate(MustParseCards("Ks 2c 4d 6h 8c"))
	heartsTop := MustEvaluate(MustParseCards("Kh 2d 4c 6s 8d"))
	assert.True(t, heartsTop.Beats(spadesTop))
	assert.Zero(t, spadesTop.Compare(spadesTop))
}
