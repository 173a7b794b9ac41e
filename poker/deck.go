package poker

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is the pool of undealt cards. Cards leave through Draw or Reserve and
// come back through ReturnAll; a card can never be in the deck twice.
type Deck struct {
	cards   []Card
	present [DeckSize]bool
	rng     *rand.Rand // nil falls back to the global source
}

// NewDeck creates a full 52-card deck drawing with the given rng.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for i := range DeckSize {
		d.cards = append(d.cards, cardFromIndex(i))
		d.present[i] = true
	}
	return d
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Contains reports whether card is still undealt.
func (d *Deck) Contains(card Card) bool {
	return card.Valid() && d.present[card.Index()]
}

// Cards returns a copy of the undealt cards.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Draw removes n distinct random cards from the deck.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 {
		return nil, Integrity("draw", fmt.Errorf("%w: %d", ErrInvalidCount, n))
	}
	if n > len(d.cards) {
		return nil, Integrity("draw", fmt.Errorf("%w: want %d, have %d", ErrDeckExhausted, n, len(d.cards)))
	}
	out := make([]Card, 0, n)
	for range n {
		out = append(out, d.removeAt(d.intN(len(d.cards))))
	}
	return out, nil
}

// DrawOne removes a single random card.
func (d *Deck) DrawOne() (Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return Card{}, err
	}
	return cards[0], nil
}

// Reserve removes a specific card so it can be dealt deliberately.
func (d *Deck) Reserve(card Card) error {
	if !d.Contains(card) {
		return Integrity("reserve", fmt.Errorf("%w: %s", ErrCardNotInDeck, card))
	}
	for i, c := range d.cards {
		if c == card {
			d.removeAt(i)
			break
		}
	}
	return nil
}

// ReturnAll puts cards back. Nothing is returned if any card is invalid,
// already in the deck or listed twice.
func (d *Deck) ReturnAll(cards []Card) error {
	var seen [DeckSize]bool
	for _, c := range cards {
		if !c.Valid() {
			return Integrity("return", fmt.Errorf("%w: %v", ErrInvalidCard, c))
		}
		if d.present[c.Index()] || seen[c.Index()] {
			return Integrity("return", fmt.Errorf("%w: %s", ErrDuplicateCard, c))
		}
		seen[c.Index()] = true
	}
	for _, c := range cards {
		d.present[c.Index()] = true
		d.cards = append(d.cards, c)
	}
	return nil
}

func (d *Deck) removeAt(i int) Card {
	c := d.cards[i]
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	d.present[c.Index()] = false
	return c
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}
