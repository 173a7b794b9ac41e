package poker

import (
	"fmt"
	"strings"
)

// Suit of a playing card. The numeric order is the canonical tie-break order
// used when two cards share a rank: clubs < diamonds < spades < hearts.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

// Suits lists every suit in ascending tie-break order.
var Suits = [...]Suit{Clubs, Diamonds, Spades, Hearts}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Hearts:
		return "h"
	}
	return "?"
}

// Symbol returns the unicode glyph for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	}
	return "?"
}

// Rank of a playing card, 2 through 14 (ace high).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	}
	return "?"
}

// Card is an immutable playing card. Cards compare equal by value.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card is one of the 52 standard cards.
func (c Card) Valid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Hearts
}

// Index maps the card to 0..51.
func (c Card) Index() int {
	return int(c.Suit)*13 + int(c.Rank-Two)
}

func cardFromIndex(i int) Card {
	return Card{Rank: Rank(i%13) + Two, Suit: Suit(i / 13)}
}

// String returns the short form, e.g. "Ah" or "Tc".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the display form, e.g. "A♥".
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Compare orders cards by rank, then by suit.
func (c Card) Compare(o Card) int {
	switch {
	case c.Rank != o.Rank:
		if c.Rank > o.Rank {
			return 1
		}
		return -1
	case c.Suit != o.Suit:
		if c.Suit > o.Suit {
			return 1
		}
		return -1
	}
	return 0
}

// Higher reports whether c beats o on rank, then suit.
func (c Card) Higher(o Card) bool {
	return c.Compare(o) > 0
}

// ParseCard parses "Ah", "10h", "th" or "A♥".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	runes := []rune(s)
	suitRune := runes[len(runes)-1]
	rankPart := strings.ToUpper(string(runes[:len(runes)-1]))

	var suit Suit
	switch suitRune {
	case 'c', 'C', '♣', '♧':
		suit = Clubs
	case 'd', 'D', '♦', '♢':
		suit = Diamonds
	case 's', 'S', '♠', '♤':
		suit = Spades
	case 'h', 'H', '♥', '♡':
		suit = Hearts
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	var rank Rank
	switch rankPart {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(rankPart[0] - '0')
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a whitespace or comma separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixtures; it panics on bad input.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins cards with spaces using their symbol form.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Symbol()
	}
	return strings.Join(parts, " ")
}
