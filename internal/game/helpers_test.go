package game

import (
	"testing"

	"github.com/holdem-sim/holdem/poker"
	"github.com/stretchr/testify/require"
)

// script answers with the queued actions and checks once they run out.
func script(actions ...Action) DecisionSource {
	queue := append([]Action(nil), actions...)
	return DecisionFunc(func(Situation) Action {
		if len(queue) == 0 {
			return CheckAction()
		}
		next := queue[0]
		queue = queue[1:]
		return next
	})
}

func newTestTable(t *testing.T, players []*Player, opts ...TableOption) *Table {
	t.Helper()
	table, err := NewTable(nil, players, opts...)
	require.NoError(t, err)
	return table
}

func dealHands(t *testing.T, table *Table, hands map[string]string, community string) {
	t.Helper()
	for name, cards := range hands {
		require.NoError(t, table.DealHand(name, poker.MustParseCards(cards)...))
	}
	if community != "" {
		require.NoError(t, table.PresetCommunity(poker.MustParseCards(community)...))
	}
}

func balances(players ...*Player) []int {
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.Balance()
	}
	return out
}
