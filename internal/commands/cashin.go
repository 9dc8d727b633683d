package commands

import "citadels-core/internal/engine"

// CashIn deposits a fixed amount of gold. Used for the take-gold primary
// action, color income, and the Merchant's bonus.
type CashIn struct {
	amount      int
	restriction Restriction
}

func NewCashIn(amount int, restriction Restriction) *CashIn {
	return &CashIn{amount: amount, restriction: restriction}
}

func (c *CashIn) Amount() int              { return c.amount }
func (c *CashIn) Restriction() Restriction { return c.restriction }

func (c *CashIn) Apply(p *engine.Player, g *engine.Game) error {
	p.CashIn(c.amount)
	return nil
}
