// Package ai holds automated player controllers for driving matches without
// human input.
package ai

import (
	"math/rand/v2"

	"citadels-core/internal/commands"
	"citadels-core/internal/engine"
	"citadels-core/internal/gameplay"
)

// RandomBot plays uniformly at random: a random role from the draft and
// random commands with random selections until nothing is left to do.
type RandomBot struct{}

func NewRandomBot() *RandomBot { return &RandomBot{} }

func (b *RandomBot) PickRole(candidates []engine.CharacterRole, self *engine.ShadowPlayer, view *engine.ShadowGame) (engine.CharacterRole, error) {
	return candidates[rand.IntN(len(candidates))], nil
}

func (b *RandomBot) TakeTurn(self *engine.ShadowPlayer, view *engine.ShadowGame, sink *gameplay.CommandsSink) error {
	possible := sink.AllPossible()
	if len(possible) == 0 {
		return sink.EndTurn()
	}
	cmd := possible[rand.IntN(len(possible))]
	if ic, ok := cmd.(commands.Interactive); ok {
		for !ic.Ready() {
			choices, err := sink.Choices(cmd)
			if err != nil {
				return err
			}
			if len(choices) == 0 {
				break
			}
			if err := ic.Select(choices[rand.IntN(len(choices))]); err != nil {
				return err
			}
		}
		if !ic.Ready() {
			sink.Cancel(cmd)
			return nil
		}
	}
	return sink.Execute(cmd)
}
