package poker

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeck() *Deck {
	return NewDeck(rand.New(rand.NewPCG(1, 2)))
}

func TestDeckDrawRemovesDistinctCards(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	require.Equal(t, DeckSize, d.Len())

	cards, err := d.Draw(DeckSize)
	require.NoError(t, err)
	assert.Zero(t, d.Len())

	seen := map[Card]bool{}
	for _, c := range cards {
		require.False(t, seen[c], "card %s drawn twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, DeckSize)
}

func TestDeckExhaustion(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	_, err := d.Draw(50)
	require.NoError(t, err)

	_, err = d.Draw(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
	assert.True(t, IsFault(err, IntegrityFault))
	assert.Equal(t, 2, d.Len(), "failed draw leaves deck untouched")
}

func TestDeckDrawRejectsNegativeCount(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	cards, err := d.Draw(-1)
	require.Error(t, err)
	assert.Nil(t, cards)
	assert.True(t, errors.Is(err, ErrInvalidCount))
	assert.True(t, IsFault(err, IntegrityFault))
	assert.Equal(t, DeckSize, d.Len())
}

func TestDeckReserve(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	ace := NewCard(Ace, Hearts)

	require.NoError(t, d.Reserve(ace))
	assert.False(t, d.Contains(ace))
	assert.Equal(t, DeckSize-1, d.Len())

	err := d.Reserve(ace)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCardNotInDeck)
	assert.True(t, IsFault(err, IntegrityFault))
}

func TestDeckReturnAll(t *testing.T) {
	t.Parallel()

	d := newTestDeck()
	cards, err := d.Draw(5)
	require.NoError(t, err)

	require.NoError(t, d.ReturnAll(cards))
	assert.Equal(t, DeckSize, d.Len())
	for _, c := range cards {
		assert.True(t, d.Contains(c))
	}
}

func TestDeckReturnAllRejectsDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards func(d *Deck) []Card
	}{
		{
			name: "card already in deck",
			cards: func(d *Deck) []Card {
				return []Card{NewCard(Two, Clubs)}
			},
		},
		{
			name: "card listed twice",
			cards: func(d *Deck) []Card {
				c := NewCard(Three, Hearts)
				require.NoError(t, d.Reserve(c))
				return []Card{c, c}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := newTestDeck()
			cards := tt.cards(d)
			before := d.Len()

			err := d.ReturnAll(cards)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDuplicateCard)
			assert.True(t, IsFault(err, IntegrityFault))
			assert.Equal(t, before, d.Len())
		})
	}
}

func TestDeckDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a, err := newTestDeck().Draw(7)
	require.NoError(t, err)
	b, err := newTestDeck().Draw(7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
