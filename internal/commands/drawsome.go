package commands

import "citadels-core/internal/engine"

// DrawSomeCards is the draw-and-keep primary action: it draws cards face-up
// from the top of the district deck, lets the player keep a subset, and
// returns the rest to the bottom. The draw happens speculatively on the first
// Choices call, so Cancel must restore the deck exactly.
type DrawSomeCards struct {
	draw        int
	keep        int
	restriction Restriction

	drawn   []engine.District
	keptIdx []int
	sel     selection
}

func NewDrawSomeCards(draw, keep int, restriction Restriction) *DrawSomeCards {
	return &DrawSomeCards{draw: draw, keep: keep, restriction: restriction}
}

func (c *DrawSomeCards) Restriction() Restriction { return c.restriction }

// Drawn is the face-up speculative draw, empty before the first Choices call.
func (c *DrawSomeCards) Drawn() []engine.District {
	out := make([]engine.District, len(c.drawn))
	copy(out, c.drawn)
	return out
}

func (c *DrawSomeCards) keepTarget() int {
	if c.keep < len(c.drawn) {
		return c.keep
	}
	return len(c.drawn)
}

func (c *DrawSomeCards) isKept(i int) bool {
	for _, k := range c.keptIdx {
		if k == i {
			return true
		}
	}
	return false
}

func (c *DrawSomeCards) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.drawn == nil {
		for i := 0; i < c.draw; i++ {
			card, err := g.Districts().TakeFromTop()
			if err != nil {
				break
			}
			c.drawn = append(c.drawn, card)
		}
	}
	if len(c.keptIdx) >= c.keepTarget() {
		return c.sel.offer(nil)
	}
	var out []engine.Choice
	for i, card := range c.drawn {
		if !c.isKept(i) {
			out = append(out, card)
		}
	}
	return c.sel.offer(out)
}

func (c *DrawSomeCards) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	card := choice.(engine.District)
	for i, d := range c.drawn {
		if d == card && !c.isKept(i) {
			c.keptIdx = append(c.keptIdx, i)
			return nil
		}
	}
	return engine.ErrIllegalSelection
}

func (c *DrawSomeCards) Ready() bool {
	return c.drawn != nil && len(c.keptIdx) >= c.keepTarget()
}

// Apply gives the kept cards to the hand and returns the rest to the bottom
// of the deck in their drawn order.
func (c *DrawSomeCards) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	for _, i := range c.keptIdx {
		p.TakeCard(c.drawn[i])
	}
	for i, card := range c.drawn {
		if !c.isKept(i) {
			g.Districts().PutOnBottom(card)
		}
	}
	return nil
}

// Cancel restores every drawn card to the top of the deck in reverse draw
// order, recreating the original top ordering.
func (c *DrawSomeCards) Cancel(p *engine.Player, g *engine.Game) {
	for i := len(c.drawn) - 1; i >= 0; i-- {
		g.Districts().PutOnTop(c.drawn[i])
	}
	c.drawn = nil
	c.keptIdx = nil
	c.sel.reset()
}
