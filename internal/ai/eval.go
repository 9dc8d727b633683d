package ai

import (
	"citadels-core/internal/engine"
	"citadels-core/internal/rules"
)

// Margin is the player's final score minus the best rival score. Positive
// means the seat won by that many points.
func Margin(g *engine.Game, id engine.PlayerID) int {
	p := g.PlayerByID(id)
	if p == nil {
		return 0
	}
	own := rules.Score(p)
	best := 0
	for _, o := range g.Players() {
		if o.ID() == id {
			continue
		}
		if s := rules.Score(o); s > best {
			best = s
		}
	}
	return own - best
}

// Evaluate rates a mid-game position for one player: score plus gold in
// hand, relative to the best rival by the same measure. Unspent gold counts
// because it converts into districts on later turns.
func Evaluate(g *engine.Game, id engine.PlayerID) int {
	p := g.PlayerByID(id)
	if p == nil {
		return 0
	}
	own := rules.Score(p) + p.Gold()
	best := 0
	for _, o := range g.Players() {
		if o.ID() == id {
			continue
		}
		if s := rules.Score(o) + o.Gold(); s > best {
			best = s
		}
	}
	return own - best
}
