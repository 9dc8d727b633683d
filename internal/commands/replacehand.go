package commands

import "citadels-core/internal/engine"

// ReplaceHand is the Magician's other trick: bury any subset of the hand at
// the bottom of the district deck and draw the same number of fresh cards.
type ReplaceHand struct {
	cards []engine.District
	sel   selection
}

func NewReplaceHand() *ReplaceHand { return &ReplaceHand{} }

func (c *ReplaceHand) Restriction() Restriction { return 0 }

func (c *ReplaceHand) Selected() []engine.District {
	out := make([]engine.District, len(c.cards))
	copy(out, c.cards)
	return out
}

// Choices offers the hand cards not yet selected; every copy may be picked
// at most once.
func (c *ReplaceHand) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	remaining := map[engine.District]int{}
	for _, card := range p.Hand() {
		remaining[card]++
	}
	for _, card := range c.cards {
		remaining[card]--
	}
	var out []engine.Choice
	for _, card := range p.Hand() {
		if remaining[card] > 0 {
			remaining[card]--
			out = append(out, card)
		}
	}
	return c.sel.offer(out)
}

func (c *ReplaceHand) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	c.cards = append(c.cards, choice.(engine.District))
	return nil
}

// Ready is always true: any subset of the hand, including the empty one, is
// a valid replacement.
func (c *ReplaceHand) Ready() bool { return true }

func (c *ReplaceHand) Apply(p *engine.Player, g *engine.Game) error {
	var err error
	g.Events().Transaction(func() {
		for _, card := range c.cards {
			if err = p.RemoveCard(card); err != nil {
				return
			}
			g.Districts().PutOnBottom(card)
			fresh, takeErr := g.Districts().TakeFromTop()
			if takeErr != nil {
				err = takeErr
				return
			}
			p.TakeCard(fresh)
		}
	}, func(l engine.Listener) {
		l.PlayerReplacedHand(p, len(c.cards))
	})
	return err
}

func (c *ReplaceHand) Cancel(p *engine.Player, g *engine.Game) {
	c.cards = nil
	c.sel.reset()
}
