package commands

import "citadels-core/internal/engine"

// Build moves one card from hand into the city, paying its cost. Only cards
// not already built and currently affordable are offered.
type Build struct {
	card engine.District
	sel  selection
}

func NewBuild() *Build { return &Build{} }

func (c *Build) Restriction() Restriction { return 0 }

func (c *Build) Card() engine.District { return c.card }

func (c *Build) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.card != engine.DistrictNone {
		return c.sel.offer(nil)
	}
	var out []engine.Choice
	for _, card := range p.Hand() {
		if p.CityHas(card) {
			continue
		}
		if card.Cost() > p.Gold() {
			continue
		}
		out = append(out, card)
	}
	return c.sel.offer(out)
}

func (c *Build) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	c.card = choice.(engine.District)
	return nil
}

func (c *Build) Ready() bool { return c.card != engine.DistrictNone }

func (c *Build) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	if _, err := p.Withdraw(c.card.Cost()); err != nil {
		return err
	}
	if err := p.RemoveCard(c.card); err != nil {
		return err
	}
	p.BuildDistrict(c.card)
	return nil
}

func (c *Build) Cancel(p *engine.Player, g *engine.Game) {
	c.card = engine.DistrictNone
	c.sel.reset()
}
