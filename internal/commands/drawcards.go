package commands

import "citadels-core/internal/engine"

// DrawCards draws a fixed number of cards straight into the hand, tolerating
// an exhausted deck by drawing fewer. Used for the Architect's bonus.
type DrawCards struct {
	amount      int
	restriction Restriction
}

func NewDrawCards(amount int, restriction Restriction) *DrawCards {
	return &DrawCards{amount: amount, restriction: restriction}
}

func (c *DrawCards) Amount() int              { return c.amount }
func (c *DrawCards) Restriction() Restriction { return c.restriction }

func (c *DrawCards) Apply(p *engine.Player, g *engine.Game) error {
	for i := 0; i < c.amount; i++ {
		card, err := g.Districts().TakeFromTop()
		if err != nil {
			break
		}
		p.TakeCard(card)
	}
	return nil
}
