package commands

import "citadels-core/internal/engine"

// TakeCrown makes the acting player the crowned player. No resource cost.
type TakeCrown struct {
	restriction Restriction
}

func NewTakeCrown(restriction Restriction) *TakeCrown {
	return &TakeCrown{restriction: restriction}
}

func (c *TakeCrown) Restriction() Restriction { return c.restriction }

func (c *TakeCrown) Apply(p *engine.Player, g *engine.Game) error {
	g.SetCrownedPlayer(p)
	return nil
}
