package commands

import "citadels-core/internal/engine"

// Rob is the Thief's ability: mark one role for robbery this round. The
// Thief, the Assassin, the murdered role and withheld roles are excluded.
type Rob struct {
	role engine.CharacterRole
	sel  selection
}

func NewRob() *Rob { return &Rob{} }

func (c *Rob) Restriction() Restriction { return 0 }

func (c *Rob) Target() engine.CharacterRole { return c.role }

func (c *Rob) Choices(p *engine.Player, g *engine.Game) []engine.Choice {
	if c.role != engine.RoleNone {
		return c.sel.offer(nil)
	}
	var out []engine.Choice
	for _, r := range engine.AllRoles() {
		if r == engine.RoleAssassin || r == engine.RoleThief {
			continue
		}
		if g.Turn() != nil {
			if r == g.Turn().Killed() || g.Turn().IsWithheld(r) {
				continue
			}
		}
		out = append(out, r)
	}
	return c.sel.offer(out)
}

func (c *Rob) Select(choice engine.Choice) error {
	if err := c.sel.pick(choice); err != nil {
		return err
	}
	c.role = choice.(engine.CharacterRole)
	return nil
}

func (c *Rob) Ready() bool { return c.role != engine.RoleNone }

func (c *Rob) Apply(p *engine.Player, g *engine.Game) error {
	if !c.Ready() {
		return ErrNotReady
	}
	return g.Turn().SetRobbed(c.role)
}

func (c *Rob) Cancel(p *engine.Player, g *engine.Game) {
	c.role = engine.RoleNone
	c.sel.reset()
}
