package commands

import "citadels-core/internal/engine"

// Kill is the Assassin's ability: mark one role for elimination this round.
// The Assassin itself and roles withheld from the draft cannot be targets.
type Kill struct {
	role engine.CharacterRole
	sel  selection
}

func NewKill() *Kill { return &Kill{} }

func (c *Kill) Restriction() Restriction { return 0 }

func (c *Kill) Target() engine.CharacterRole { return c.role }

func (c *Kill) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.role != engine.RoleNone {
		return c.sel.offer(nil)
	}
	var out []engine.Choice
	for _, r := range engine.AllRoles() {
		if r == engine.RoleAssassin {
			continue
		}
		if g.Turn() != nil && g.Turn().IsWithheld(r) {
			continue
		}
		out = append(out, r)
	}
	return c.sel.offer(out)
}

func (c *Kill) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	c.role = choice.(engine.CharacterRole)
	return nil
}

func (c *Kill) Ready() bool { return c.role != engine.RoleNone }

func (c *Kill) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	return g.Turn().SetKilled(c.role)
}

func (c *Kill) Cancel(p *engine.Player, g *engine.Game) {
	c.role = engine.RoleNone
	c.sel.reset()
}
