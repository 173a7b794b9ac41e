package poker

import (
	"fmt"
	"slices"
)

// Category is the class of a poker hand, weakest first.
type Category uint8

const (
	NoResult Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalStraightFlush
)

// BaseValue is the points floor of the category.
func (c Category) BaseValue() int {
	return int(c) * 100
}

func (c Category) String() string {
	switch c {
	case NoResult:
		return "no result"
	case OnePair:
		return "pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case RoyalStraightFlush:
		return "royal straight flush"
	}
	return "unknown"
}

// HandRank is the result of evaluating a hand. Points is the category base
// plus a rank bonus below 100, so it orders hands within and across categories.
type HandRank struct {
	Category Category
	Points   int
	TopCard  Card
}

func (h HandRank) String() string {
	return fmt.Sprintf("%s (%d, %s)", h.Category, h.Points, h.TopCard.Symbol())
}

// Compare returns >0 if h beats o, <0 if o beats h and 0 on an exact tie.
func (h HandRank) Compare(o HandRank) int {
	switch {
	case h.Category != o.Category:
		return int(h.Category) - int(o.Category)
	case h.Points != o.Points:
		return h.Points - o.Points
	}
	return h.TopCard.Compare(o.TopCard)
}

// Beats reports whether h is strictly stronger than o.
func (h HandRank) Beats(o HandRank) bool {
	return h.Compare(o) > 0
}

const (
	maxHandSize  = 7
	straightSize = 5
	flushSize    = 5
	aceLow       = 1
)

// Evaluate ranks a hand of one to seven cards. Showdown hands hold seven;
// shorter hands are accepted so partial boards can be scored.
func Evaluate(cards []Card) (HandRank, error) {
	if len(cards) == 0 || len(cards) > maxHandSize {
		return HandRank{}, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}
	for _, c := range cards {
		if !c.Valid() {
			return HandRank{}, fmt.Errorf("%w: %v", ErrInvalidCard, c)
		}
	}

	highest := highestCard(cards)
	flushSuit, hasFlush := flushSuit(cards)
	straightTop, hasStraight := straightTop(cards)
	m := countMultiples(cards)

	switch {
	case hasStraight && hasFlush:
		top := straightCard(cards, straightTop, flushSuit, true)
		if top.Rank == Ace && top.Suit == flushSuit {
			return HandRank{Category: RoyalStraightFlush, Points: RoyalStraightFlush.BaseValue() + int(Ace), TopCard: top}, nil
		}
		return HandRank{Category: StraightFlush, Points: StraightFlush.BaseValue() + int(straightTop), TopCard: top}, nil
	case m.fours > 0:
		return HandRank{Category: FourOfAKind, Points: FourOfAKind.BaseValue() + int(m.fourRank), TopCard: highest}, nil
	case m.threes > 0 && m.pairs > 0:
		return HandRank{Category: FullHouse, Points: FullHouse.BaseValue() + int(m.threeRank), TopCard: highest}, nil
	case hasFlush:
		return HandRank{Category: Flush, Points: Flush.BaseValue() + int(highest.Rank), TopCard: highest}, nil
	case hasStraight:
		top := straightCard(cards, straightTop, 0, false)
		return HandRank{Category: Straight, Points: Straight.BaseValue() + int(straightTop), TopCard: top}, nil
	case m.threes > 0:
		return HandRank{Category: ThreeOfAKind, Points: ThreeOfAKind.BaseValue() + int(m.threeRank), TopCard: highest}, nil
	case m.pairs >= 2:
		return HandRank{Category: TwoPair, Points: TwoPair.BaseValue() + int(m.pairRank), TopCard: highest}, nil
	case m.pairs == 1:
		return HandRank{Category: OnePair, Points: OnePair.BaseValue() + int(m.pairRank), TopCard: highest}, nil
	}
	return HandRank{Category: NoResult, Points: NoResult.BaseValue() + int(highest.Rank), TopCard: highest}, nil
}

// MustEvaluate is Evaluate for fixtures; it panics on bad input.
func MustEvaluate(cards []Card) HandRank {
	r, err := Evaluate(cards)
	if err != nil {
		panic(err)
	}
	return r
}

func highestCard(cards []Card) Card {
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Higher(best) {
			best = c
		}
	}
	return best
}

// flushSuit finds a suit held exactly five times.
func flushSuit(cards []Card) (Suit, bool) {
	var counts [4]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	found, ok := Suit(0), false
	for _, s := range Suits {
		if counts[s] == flushSize {
			found, ok = s, true
		}
	}
	return found, ok
}

// straightTop returns the highest rank value completing a run of five.
// Aces count as both 1 and 14; repeated values neither break nor extend a run.
func straightTop(cards []Card) (Rank, bool) {
	if len(cards) < straightSize {
		return 0, false
	}
	values := make([]int, 0, len(cards)+4)
	for _, c := range cards {
		if c.Rank == Ace {
			values = append(values, aceLow)
		}
		values = append(values, int(c.Rank))
	}
	slices.Sort(values)

	top, run := 0, 1
	for i := 1; i < len(values); i++ {
		switch values[i] - values[i-1] {
		case 0:
		case 1:
			run++
			if run >= straightSize {
				top = values[i]
			}
		default:
			run = 1
		}
	}
	if top == 0 {
		return 0, false
	}
	return Rank(top), true
}

// straightCard picks the card carrying the straight's top rank, preferring
// the flush suit when there is one, otherwise the highest suit.
func straightCard(cards []Card, rank Rank, suit Suit, preferSuit bool) Card {
	var best Card
	found := false
	for _, c := range cards {
		if c.Rank != rank {
			continue
		}
		if preferSuit && c.Suit == suit {
			return c
		}
		if !found || c.Suit > best.Suit {
			best, found = c, true
		}
	}
	return best
}

type multiples struct {
	fours, threes, pairs, singles int
	fourRank, threeRank, pairRank Rank
}

// countMultiples tallies how many times each rank appears and classifies the
// counts. Ranks track the highest rank in each class.
func countMultiples(cards []Card) multiples {
	var counts [Ace + 1]int
	for i, c := range cards {
		counts[c.Rank] = max(counts[c.Rank], 1)
		for _, rest := range cards[i+1:] {
			if rest.Rank == c.Rank {
				counts[c.Rank]++
				break
			}
		}
	}

	var m multiples
	for r := Ace; r >= Two; r-- {
		switch counts[r] {
		case 0:
		case 1:
			m.singles++
		case 2:
			m.pairs++
			if m.pairRank == 0 {
				m.pairRank = r
			}
		case 3:
			m.threes++
			if m.threeRank == 0 {
				m.threeRank = r
			}
		default:
			m.fours++
			if m.fourRank == 0 {
				m.fourRank = r
			}
		}
	}
	return m
}
