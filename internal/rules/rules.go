// Package rules binds character powers, turn actions, income and scoring
// into the base game rule set.
package rules

import (
	"citadels-core/internal/commands"
	"citadels-core/internal/engine"
)

// PossibleActions lists the primary actions a player may take on their turn:
// collect two gold, or draw two districts and keep one. Drawing is withheld
// when the deck cannot supply both cards.
func PossibleActions(g *engine.Game) []commands.Command {
	out := []commands.Command{commands.NewCashIn(2, 0)}
	if g.Districts().Len() >= 2 {
		out = append(out, commands.NewDrawSomeCards(2, 1, 0))
	}
	return out
}

// CharacterWorkflow lists the special abilities a role grants for the turn.
func CharacterWorkflow(role engine.CharacterRole) []commands.Command {
	switch role {
	case engine.RoleAssassin:
		return []commands.Command{commands.NewKill()}
	case engine.RoleThief:
		return []commands.Command{commands.NewRob()}
	case engine.RoleMagician:
		return []commands.Command{commands.NewSwapHands(), commands.NewReplaceHand()}
	case engine.RoleKing:
		return []commands.Command{commands.NewTakeCrown(commands.OnStartTurn | commands.Compulsory)}
	case engine.RoleMerchant:
		return []commands.Command{commands.NewCashIn(1, commands.OnAfterAction|commands.Compulsory)}
	case engine.RoleArchitect:
		return []commands.Command{commands.NewDrawCards(2, commands.OnAfterAction|commands.Compulsory)}
	case engine.RoleWarlord:
		return []commands.Command{commands.NewDestroy(commands.OnEndTurn)}
	}
	return nil
}

// BuildLimit is how many districts the role may build in one turn.
func BuildLimit(role engine.CharacterRole) int {
	if role == engine.RoleArchitect {
		return 3
	}
	return 1
}

// Income is the gold the player's role collects from matching city districts.
func Income(p *engine.Player) int {
	color := p.Role().IncomeColor()
	if color == engine.ColorNone {
		return 0
	}
	n := 0
	for _, card := range p.City() {
		if card.Color() == color {
			n++
		}
	}
	return n
}
