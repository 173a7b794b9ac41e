package game

// Layer is one pot in the ledger: the main pot or a side pot. A layer with a
// cap was closed by an all-in; members owe exactly the cap to it.
type Layer struct {
	cap     int // 0 while the layer is open
	members []string
	contrib map[string]int
}

func newLayer(limit int) *Layer {
	return &Layer{cap: limit, contrib: make(map[string]int)}
}

// Size returns the markers held by the layer.
func (l *Layer) Size() int {
	total := 0
	for _, c := range l.contrib {
		total += c
	}
	return total
}

// Cap returns the per-member cap, or 0 for the open layer.
func (l *Layer) Cap() int { return l.cap }

// Closed reports whether an all-in has capped the layer.
func (l *Layer) Closed() bool { return l.cap > 0 }

// Members returns contributing player names in joining order.
func (l *Layer) Members() []string {
	return append([]string(nil), l.members...)
}

// Contribution returns what name has put into this layer.
func (l *Layer) Contribution(name string) int {
	return l.contrib[name]
}

func (l *Layer) add(name string, amount int) {
	if _, ok := l.contrib[name]; !ok {
		l.members = append(l.members, name)
	}
	l.contrib[name] += amount
}

// Ledger tracks the pot layers of one round. Contributions first settle
// closed layers in order and the remainder goes to the open last layer.
type Ledger struct {
	layers []*Layer
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Join adds amount from name. allIn marks the player's final contribution:
// layers are split so that the player is never owed more than they paid.
func (l *Ledger) Join(name string, amount int, allIn bool) {
	if amount <= 0 {
		return
	}
	remaining := amount

	for i := 0; i < len(l.layers) && l.layers[i].Closed(); i++ {
		layer := l.layers[i]
		owed := layer.cap - layer.contrib[name]
		if owed <= 0 {
			continue
		}
		if remaining >= owed {
			layer.add(name, owed)
			remaining -= owed
			if remaining == 0 {
				return
			}
			continue
		}
		if allIn {
			l.split(i, layer.contrib[name]+remaining)
		}
		layer.add(name, remaining)
		return
	}

	open := l.openLayer()
	open.add(name, remaining)
	if allIn {
		l.split(len(l.layers)-1, open.contrib[name])
	}
}

// split caps layer i at level. Contributions above level move into a new
// layer inserted right after it, keeping the old cap's remainder if any.
func (l *Ledger) split(i, level int) {
	layer := l.layers[i]
	upper := newLayer(0)
	if layer.Closed() {
		upper.cap = layer.cap - level
	}
	for _, m := range layer.members {
		if c := layer.contrib[m]; c > level {
			upper.add(m, c-level)
			layer.contrib[m] = level
		}
	}
	layer.cap = level
	if len(upper.members) == 0 {
		return
	}
	l.layers = append(l.layers, nil)
	copy(l.layers[i+2:], l.layers[i+1:])
	l.layers[i+1] = upper
}

func (l *Ledger) openLayer() *Layer {
	if n := len(l.layers); n > 0 && !l.layers[n-1].Closed() {
		return l.layers[n-1]
	}
	layer := newLayer(0)
	l.layers = append(l.layers, layer)
	return layer
}

// Layers returns the layers from main pot to the newest side pot.
func (l *Ledger) Layers() []*Layer {
	return append([]*Layer(nil), l.layers...)
}

// Total returns the markers held across all layers.
func (l *Ledger) Total() int {
	total := 0
	for _, layer := range l.layers {
		total += layer.Size()
	}
	return total
}

// PartOf returns name's contribution across all layers.
func (l *Ledger) PartOf(name string) int {
	total := 0
	for _, layer := range l.layers {
		total += layer.contrib[name]
	}
	return total
}

// Clear empties the ledger for the next round.
func (l *Ledger) Clear() {
	l.layers = nil
}
