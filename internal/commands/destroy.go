package commands

import "citadels-core/internal/engine"

// Destroy is the Warlord's ability, resolved in two selection steps: first a
// victim, then one of their districts. A district can be destroyed when its
// owner's role is not the Bishop and the acting player can pay its cost
// minus one; players with completed cities are spared entirely.
type Destroy struct {
	target      engine.PlayerID
	card        engine.District
	restriction Restriction
	sel         selection
}

func NewDestroy(restriction Restriction) *Destroy {
	return &Destroy{restriction: restriction}
}

func (c *Destroy) Restriction() Restriction { return c.restriction }

func (c *Destroy) Target() engine.PlayerID { return c.target }
func (c *Destroy) Card() engine.District   { return c.card }

// DestroyCost is the gold the Warlord pays: the district's cost minus one.
func DestroyCost(card engine.District) int {
	return card.Cost() - 1
}

func destroyable(victim *engine.Player, actor *engine.Player) []engine.District {
	if victim.Role() == engine.RoleBishop {
		return nil
	}
	var out []engine.District
	for _, card := range victim.City() {
		if DestroyCost(card) <= actor.Gold() {
			out = append(out, card)
		}
	}
	return out
}

func (c *Destroy) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.target == 0 {
		var out []engine.Choice
		for _, victim := range g.Players() {
			if victim.CityComplete() {
				continue
			}
			if len(destroyable(victim, p)) == 0 {
				continue
			}
			out = append(out, victim.ID())
		}
		return c.sel.offer(out)
	}

	if c.card == engine.DistrictNone {
		victim := g.PlayerByID(c.target)
		var out []engine.Choice
		for _, card := range destroyable(victim, p) {
			out = append(out, card)
		}
		return c.sel.offer(out)
	}

	return c.sel.offer(nil)
}

func (c *Destroy) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	switch v := choice.(type) {
	case engine.PlayerID:
		if c.target != 0 {
			return engine.ErrIllegalSelection
		}
		c.target = v
	case engine.District:
		if c.target == 0 || c.card != engine.DistrictNone {
			return engine.ErrIllegalSelection
		}
		c.card = v
	default:
		return engine.ErrIllegalSelection
	}
	return nil
}

func (c *Destroy) Ready() bool {
	return c.target != 0 && c.card != engine.DistrictNone
}

func (c *Destroy) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	victim := g.PlayerByID(c.target)
	if victim == nil {
		return engine.ErrPlayerNotFound
	}
	if err := victim.DestroyDistrict(c.card); err != nil {
		return err
	}
	if cost := DestroyCost(c.card); cost > 0 {
		if _, err := p.Withdraw(cost); err != nil {
			return err
		}
	}
	g.Districts().PutOnBottom(c.card)
	return nil
}

func (c *Destroy) Cancel(p *engine.Player, g *engine.Game) {
	c.target = 0
	c.card = engine.DistrictNone
	c.sel.reset()
}
