package poker

import (
	"errors"
	"fmt"
)

// FaultKind classifies unrecoverable conditions raised by the engine.
type FaultKind uint8

const (
	// IntegrityFault signals a broken invariant: cards or markers are
	// duplicated, missing or overdrawn.
	IntegrityFault FaultKind = iota + 1
	// ConfigurationFault signals a table that cannot be played as set up.
	ConfigurationFault
)

func (k FaultKind) String() string {
	switch k {
	case IntegrityFault:
		return "integrity"
	case ConfigurationFault:
		return "configuration"
	}
	return "unknown"
}

var (
	ErrDeckExhausted       = errors.New("deck exhausted")
	ErrCardNotInDeck       = errors.New("card not in deck")
	ErrDuplicateCard       = errors.New("duplicate card")
	ErrInvalidCard         = errors.New("invalid card")
	ErrInvalidCount        = errors.New("invalid card count")
	ErrHandSize            = errors.New("hand must hold 1 to 7 cards")
	ErrMarkersNotConserved = errors.New("markers not conserved")
	ErrOverdraw            = errors.New("payment exceeds balance")
	ErrTooFewPlayers       = errors.New("fewer than two players with markers")
	ErrDuplicatePlayer     = errors.New("duplicate player name")
	ErrNoDecisionSource    = errors.New("player has no decision source")
	ErrUnknownPlayer       = errors.New("unknown player")
)

// Fault wraps an error with its kind and the operation that raised it.
type Fault struct {
	Kind FaultKind
	Op   string
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault in %s: %v", f.Kind, f.Op, f.Err)
}

func (f *Fault) Unwrap() error { return f.Err }

// Integrity builds an integrity fault for op.
func Integrity(op string, err error) error {
	return &Fault{Kind: IntegrityFault, Op: op, Err: err}
}

// Configuration builds a configuration fault for op.
func Configuration(op string, err error) error {
	return &Fault{Kind: ConfigurationFault, Op: op, Err: err}
}

// IsFault reports whether err carries a Fault of the given kind.
func IsFault(err error, kind FaultKind) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == kind
}
