package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultBlind is the big blind used when none is configured.
const DefaultBlind = 50

// TableOption configures a Table during creation.
type TableOption func(*tableConfig)

type tableConfig struct {
	blind       int
	doubleEvery int // 0 keeps the blind fixed
	logger      *log.Logger
	clock       quartz.Clock
	bus         EventBus
}

func defaultTableConfig() *tableConfig {
	return &tableConfig{
		blind:  DefaultBlind,
		logger: log.New(io.Discard),
		clock:  quartz.NewReal(),
	}
}

// WithBlind sets the big blind. The little blind is half of it.
func WithBlind(blind int) TableOption {
	return func(c *tableConfig) {
		c.blind = blind
	}
}

// WithBlindDoubling doubles the blind after every n rounds.
func WithBlindDoubling(n int) TableOption {
	return func(c *tableConfig) {
		c.doubleEvery = n
	}
}

// WithLogger routes table logging to logger.
func WithLogger(logger *log.Logger) TableOption {
	return func(c *tableConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) TableOption {
	return func(c *tableConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithEventBus publishes table events on bus.
func WithEventBus(bus EventBus) TableOption {
	return func(c *tableConfig) {
		c.bus = bus
	}
}
