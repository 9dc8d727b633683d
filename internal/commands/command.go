// Package commands holds the catalog of atomic and multi-step player actions.
// Commands are value objects: resolved parameters define their meaning, and a
// mid-selection instance is never equal to a resolved one.
package commands

import (
	"errors"

	"citadels-core/internal/engine"
)

// Restriction gates when a command may run within a turn.
type Restriction uint8

const (
	OnStartTurn Restriction = 1 << iota
	OnEndTurn
	OnAfterAction
	Compulsory
)

var ErrNotReady = errors.New("command selection is not complete")

// Command is one player action.
type Command interface {
	Restriction() Restriction
	Apply(p *engine.Player, g *engine.Game) error
}

// Interactive is a command needing one or more selections before it is ready.
type Interactive interface {
	Command

	// Choices returns the currently valid next selections; empty once the
	// command is complete or inapplicable.
	Choices(p *engine.Player, g *engine.Game) []engine.Choice

	// Select records one choice.
	Select(choice engine.Choice) error

	// Ready reports whether all required selections are made.
	Ready() bool

	// Cancel reverses any speculative state acquired during selection. A
	// no-op for commands with no side effects before Apply.
	Cancel(p *engine.Player, g *engine.Game)
}

// selection remembers the latest offer so Select can reject values that were
// never on it.
type selection struct {
	offered []engine.Choice
}

func (s *selection) offer(choices []engine.Choice) []engine.Choice {
	s.offered = choices
	return choices
}

func (s *selection) pick(choice engine.Choice) error {
	for _, c := range s.offered {
		if c == choice {
			return nil
		}
	}
	return engine.ErrIllegalSelection
}

func (s *selection) reset() {
	s.offered = nil
}
