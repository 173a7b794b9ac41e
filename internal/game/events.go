package game

import (
	"time"

	"github.com/holdem-sim/holdem/poker"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeStreet       EventType = "street"
	EventTypePlayerAction EventType = "player_action"
	EventTypeShowdown     EventType = "showdown"
	EventTypeRoundEnd     EventType = "round_end"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens at the table
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once blinds are posted
type RoundStartEvent struct {
	Round       int
	Blind       int
	LittleBlind string
	BigBlind    string
	Players     []string
	timestamp   time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// StreetEvent is published after the community cards for a street are revealed
type StreetEvent struct {
	Street    Street
	Community []poker.Card
	Pot       int
	timestamp time.Time
}

func (e StreetEvent) EventType() EventType { return EventTypeStreet }
func (e StreetEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after every decision
type PlayerActionEvent struct {
	Player    string
	Street    Street
	Action    Action
	Paid      int
	PotAfter  int
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// ShowdownEvent carries the final ranks of every contesting player
type ShowdownEvent struct {
	Community []poker.Card
	Ranks     map[string]poker.HandRank
	timestamp time.Time
}

func (e ShowdownEvent) EventType() EventType { return EventTypeShowdown }
func (e ShowdownEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published after the pot has been paid out
type RoundEndEvent struct {
	Result    *RoundResult
	timestamp time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber
type EventSubscriberFunc func(GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Function subscribers cannot be compared
// and are only removed with the bus.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sameSubscriber(sub, subscriber) {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers the event to subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}

func sameSubscriber(a, b EventSubscriber) bool {
	if _, ok := a.(EventSubscriberFunc); ok {
		return false
	}
	if _, ok := b.(EventSubscriberFunc); ok {
		return false
	}
	return a == b
}
