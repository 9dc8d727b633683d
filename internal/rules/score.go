package rules

import "citadels-core/internal/engine"

// RawScore is the summed cost of every built district, without bonuses.
func RawScore(p *engine.Player) int {
	total := 0
	for _, card := range p.City() {
		total += card.Cost()
	}
	return total
}

// Score is the player's final score: district costs, plus 3 for covering all
// four standard colors, plus 4 for finishing the first complete city or 2
// for any other complete city.
func Score(p *engine.Player) int {
	total := RawScore(p)

	colors := map[engine.DistrictColor]bool{}
	for _, card := range p.City() {
		colors[card.Color()] = true
	}
	allColors := true
	for _, color := range engine.StandardColors() {
		if !colors[color] {
			allColors = false
			break
		}
	}
	if allColors {
		total += 3
	}

	if p.CityComplete() {
		turn := p.Game().Turn()
		if turn != nil && turn.FirstCompleter() == p.ID() {
			total += 4
		} else {
			total += 2
		}
	}
	return total
}

// Winner picks the winning player. Ties break on score without bonuses,
// then gold, then seating order.
func Winner(g *engine.Game) *engine.Player {
	var best *engine.Player
	for _, p := range g.Players() {
		if best == nil || beats(p, best) {
			best = p
		}
	}
	return best
}

func beats(a, b *engine.Player) bool {
	if sa, sb := Score(a), Score(b); sa != sb {
		return sa > sb
	}
	if ra, rb := RawScore(a), RawScore(b); ra != rb {
		return ra > rb
	}
	return a.Gold() > b.Gold()
}
