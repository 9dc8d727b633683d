package commands

import "citadels-core/internal/engine"

// SwapHands is one of the Magician's tricks: exchange entire hands with
// another player.
type SwapHands struct {
	target engine.PlayerID
	sel    selection
}

func NewSwapHands() *SwapHands { return &SwapHands{} }

func (c *SwapHands) Restriction() Restriction { return 0 }

func (c *SwapHands) Target() engine.PlayerID { return c.target }

func (c *SwapHands) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.target != 0 {
		return c.sel.offer(nil)
	}
	var out []engine.Choice
	for _, other := range g.Players() {
		if other.ID() != p.ID() {
			out = append(out, other.ID())
		}
	}
	return c.sel.offer(out)
}

func (c *SwapHands) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	c.target = choice.(engine.PlayerID)
	return nil
}

func (c *SwapHands) Ready() bool { return c.target != 0 }

func (c *SwapHands) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	target := g.PlayerByID(c.target)
	if target == nil {
		return engine.ErrPlayerNotFound
	}
	g.SwapHands(p, target)
	return nil
}

func (c *SwapHands) Cancel(p *engine.Player, g *engine.Game) {
	c.target = 0
	c.sel.reset()
}
