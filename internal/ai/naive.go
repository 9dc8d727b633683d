package ai

import (
	"math/rand/v2"

	"citadels-core/internal/commands"
	"citadels-core/internal/engine"
	"citadels-core/internal/gameplay"
)

// NaiveBot plays simple greedy heuristics: defend a near-complete city with
// the Bishop, steal when broke, disrupt a leading rival, otherwise chase the
// best income color; on its turn it collects income, builds the most
// expensive affordable district and spends abilities against the leader.
type NaiveBot struct{}

func NewNaiveBot() *NaiveBot { return &NaiveBot{} }

// killPreference and robPreference order targets by how damaging the hit
// usually is, not by any knowledge of who holds what.
var killPreference = []engine.CharacterRole{
	engine.RoleKing, engine.RoleArchitect, engine.RoleMerchant,
	engine.RoleWarlord, engine.RoleBishop, engine.RoleThief, engine.RoleMagician,
}

var robPreference = []engine.CharacterRole{
	engine.RoleMerchant, engine.RoleKing, engine.RoleArchitect,
	engine.RoleWarlord, engine.RoleBishop, engine.RoleMagician,
}

func (b *NaiveBot) PickRole(candidates []engine.CharacterRole, self *engine.ShadowPlayer, view *engine.ShadowGame) (engine.CharacterRole, error) {
	have := map[engine.CharacterRole]bool{}
	for _, r := range candidates {
		have[r] = true
	}

	if len(self.City) >= engine.CitySize-1 && have[engine.RoleBishop] {
		return engine.RoleBishop, nil
	}
	if self.Gold < 2 && have[engine.RoleThief] {
		return engine.RoleThief, nil
	}
	if leader := b.leader(self, view); leader != nil && len(leader.City) >= 6 {
		if have[engine.RoleAssassin] {
			return engine.RoleAssassin, nil
		}
		if have[engine.RoleWarlord] {
			return engine.RoleWarlord, nil
		}
	}
	if self.HandSize() >= 2 && self.Gold >= 4 && have[engine.RoleArchitect] {
		return engine.RoleArchitect, nil
	}
	if self.HandSize() == 0 && have[engine.RoleMagician] {
		return engine.RoleMagician, nil
	}
	if best := b.bestIncomeRole(self, have); best != engine.RoleNone {
		return best, nil
	}
	return candidates[rand.IntN(len(candidates))], nil
}

func (b *NaiveBot) TakeTurn(self *engine.ShadowPlayer, view *engine.ShadowGame, sink *gameplay.CommandsSink) error {
	if cmds := sink.Possible(gameplay.SpecIncome); len(cmds) > 0 {
		return sink.Execute(cmds[0])
	}
	if cmds := sink.Possible(gameplay.SpecAction); len(cmds) > 0 {
		return b.takeAction(self, sink, cmds)
	}
	if cmds := sink.Possible(gameplay.SpecBuild); len(cmds) > 0 {
		return b.buildBest(sink, cmds[0])
	}

	for _, cmd := range sink.Possible(gameplay.SpecAbility) {
		switch c := cmd.(type) {
		case *commands.Kill:
			return b.pickTarget(sink, c, killPreference)
		case *commands.Rob:
			return b.pickTarget(sink, c, robPreference)
		case *commands.Destroy:
			if done, err := b.tryDestroy(self, view, sink, c); done || err != nil {
				return err
			}
		case *commands.SwapHands:
			if done, err := b.trySwapHands(self, view, sink, c); done || err != nil {
				return err
			}
		case *commands.ReplaceHand:
			if done, err := b.tryReplaceHand(self, sink, c); done || err != nil {
				return err
			}
		}
	}
	return sink.EndTurn()
}

// takeAction picks gold when poor or when playing the Architect; otherwise
// it draws and keeps the most expensive card.
func (b *NaiveBot) takeAction(self *engine.ShadowPlayer, sink *gameplay.CommandsSink, cmds []commands.Command) error {
	var draw *commands.DrawSomeCards
	var gold commands.Command
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case *commands.DrawSomeCards:
			draw = c
		case *commands.CashIn:
			gold = c
		}
	}
	wantGold := self.Gold < 4 || self.Role == engine.RoleArchitect || self.HandSize() >= 4
	if draw == nil || (wantGold && gold != nil) {
		if gold != nil {
			return sink.Execute(gold)
		}
	}
	for !draw.Ready() {
		choices, err := sink.Choices(draw)
		if err != nil {
			return err
		}
		if len(choices) == 0 {
			break
		}
		if err := draw.Select(mostExpensive(choices)); err != nil {
			return err
		}
	}
	return sink.Execute(draw)
}

func (b *NaiveBot) buildBest(sink *gameplay.CommandsSink, cmd commands.Command) error {
	ic := cmd.(commands.Interactive)
	choices, err := sink.Choices(cmd)
	if err != nil {
		return err
	}
	if err := ic.Select(mostExpensive(choices)); err != nil {
		return err
	}
	return sink.Execute(cmd)
}

// pickTarget announces against the first preferred role still on offer.
func (b *NaiveBot) pickTarget(sink *gameplay.CommandsSink, cmd commands.Interactive, preference []engine.CharacterRole) error {
	choices, err := sink.Choices(cmd)
	if err != nil {
		return err
	}
	if len(choices) == 0 {
		return sink.EndTurn()
	}
	pick := choices[0]
	for _, want := range preference {
		if containsChoice(choices, want) {
			pick = want
			break
		}
	}
	if err := cmd.Select(pick); err != nil {
		return err
	}
	return sink.Execute(cmd)
}

// tryDestroy levels the cheapest district of a rival who is close to
// finishing. Reports whether it acted.
func (b *NaiveBot) tryDestroy(self *engine.ShadowPlayer, view *engine.ShadowGame, sink *gameplay.CommandsSink, cmd *commands.Destroy) (bool, error) {
	leader := b.leader(self, view)
	if leader == nil || len(leader.City) < 6 {
		return false, nil
	}
	choices, err := sink.Choices(cmd)
	if err != nil {
		return false, err
	}
	if !containsChoice(choices, leader.ID) {
		sink.Cancel(cmd)
		return false, nil
	}
	if err := cmd.Select(leader.ID); err != nil {
		return false, err
	}
	choices, err = sink.Choices(cmd)
	if err != nil {
		return false, err
	}
	if len(choices) == 0 {
		sink.Cancel(cmd)
		return false, nil
	}
	if err := cmd.Select(cheapest(choices)); err != nil {
		return false, err
	}
	return true, sink.Execute(cmd)
}

// trySwapHands trades an empty hand for the fullest one at the table.
func (b *NaiveBot) trySwapHands(self *engine.ShadowPlayer, view *engine.ShadowGame, sink *gameplay.CommandsSink, cmd *commands.SwapHands) (bool, error) {
	if self.HandSize() > 0 {
		return false, nil
	}
	var target *engine.ShadowPlayer
	for _, o := range view.Others(self.ID) {
		if o.HandSize() >= 2 && (target == nil || o.HandSize() > target.HandSize()) {
			target = o
		}
	}
	if target == nil {
		return false, nil
	}
	choices, err := sink.Choices(cmd)
	if err != nil {
		return false, err
	}
	if !containsChoice(choices, target.ID) {
		sink.Cancel(cmd)
		return false, nil
	}
	if err := cmd.Select(target.ID); err != nil {
		return false, err
	}
	return true, sink.Execute(cmd)
}

// tryReplaceHand dumps hand cards that duplicate already-built districts.
func (b *NaiveBot) tryReplaceHand(self *engine.ShadowPlayer, sink *gameplay.CommandsSink, cmd *commands.ReplaceHand) (bool, error) {
	built := map[engine.District]bool{}
	for _, d := range self.City {
		built[d] = true
	}
	var dups []engine.District
	for _, d := range self.KnownHand() {
		if built[d] {
			dups = append(dups, d)
		}
	}
	if len(dups) == 0 {
		return false, nil
	}
	for _, card := range dups {
		choices, err := sink.Choices(cmd)
		if err != nil {
			return false, err
		}
		if !containsChoice(choices, card) {
			break
		}
		if err := cmd.Select(card); err != nil {
			return false, err
		}
	}
	return true, sink.Execute(cmd)
}

func (b *NaiveBot) leader(self *engine.ShadowPlayer, view *engine.ShadowGame) *engine.ShadowPlayer {
	var best *engine.ShadowPlayer
	for _, o := range view.Others(self.ID) {
		if best == nil || len(o.City) > len(best.City) {
			best = o
		}
	}
	return best
}

func (b *NaiveBot) bestIncomeRole(self *engine.ShadowPlayer, have map[engine.CharacterRole]bool) engine.CharacterRole {
	counts := map[engine.DistrictColor]int{}
	for _, d := range self.City {
		counts[d.Color()]++
	}
	best, bestN := engine.RoleNone, 0
	for _, color := range engine.StandardColors() {
		role := engine.RoleByIncomeColor(color)
		if have[role] && counts[color] > bestN {
			best, bestN = role, counts[color]
		}
	}
	return best
}

func containsChoice(choices []engine.Choice, want engine.Choice) bool {
	for _, c := range choices {
		if c == want {
			return true
		}
	}
	return false
}

func mostExpensive(choices []engine.Choice) engine.Choice {
	best := choices[0]
	for _, c := range choices[1:] {
		if d, ok := c.(engine.District); ok {
			if bd, ok := best.(engine.District); !ok || d.Cost() > bd.Cost() {
				best = c
			}
		}
	}
	return best
}

func cheapest(choices []engine.Choice) engine.Choice {
	best := choices[0]
	for _, c := range choices[1:] {
		if d, ok := c.(engine.District); ok {
			if bd, ok := best.(engine.District); !ok || d.Cost() < bd.Cost() {
				best = c
			}
		}
	}
	return best
}
