package engine

// Shadow types are the restricted, per-observer view of the match. Concealed
// cards are explicit Known/Hidden values rather than erased slices, so
// existence and count survive while identity does not. A shadow is the only
// thing ever handed to an external player controller.

// DistrictCard is a possibly-facedown district card.
type DistrictCard struct {
	Known    bool     `json:"known"`
	District District `json:"district,omitempty"`
}

// RoleCard is a possibly-facedown role card.
type RoleCard struct {
	Known bool          `json:"known"`
	Role  CharacterRole `json:"role,omitempty"`
}

// ShadowPlayer is one player as seen by the observer.
type ShadowPlayer struct {
	ID   PlayerID       `json:"id"`
	Name string         `json:"name"`
	Gold int            `json:"gold"`
	Role CharacterRole  `json:"role,omitempty"` // RoleNone when concealed
	Hand []DistrictCard `json:"hand"`
	City []District     `json:"city"`
}

// HandSize is the number of cards held, facedown ones included.
func (p *ShadowPlayer) HandSize() int { return len(p.Hand) }

// KnownHand returns the identities visible to the observer.
func (p *ShadowPlayer) KnownHand() []District {
	var out []District
	for _, c := range p.Hand {
		if c.Known {
			out = append(out, c.District)
		}
	}
	return out
}

// ShadowTurn mirrors the public parts of the round's transient state.
type ShadowTurn struct {
	Withheld       []RoleCard    `json:"withheld"`
	Killed         CharacterRole `json:"killed,omitempty"`
	Robbed         CharacterRole `json:"robbed,omitempty"`
	FirstCompleter PlayerID      `json:"first_completer,omitempty"`
}

// ShadowGame is the restricted view of the whole match.
type ShadowGame struct {
	Players       []ShadowPlayer `json:"players"`
	Crowned       PlayerID       `json:"crowned,omitempty"`
	Round         int            `json:"round"`
	Turn          ShadowTurn     `json:"turn"`
	DistrictsLeft int            `json:"districts_left"`
}

// Player finds a shadow player by id, nil if absent.
func (g *ShadowGame) Player(id PlayerID) *ShadowPlayer {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Others returns every shadow player except the given one.
func (g *ShadowGame) Others(id PlayerID) []*ShadowPlayer {
	var out []*ShadowPlayer
	for i := range g.Players {
		if g.Players[i].ID != id {
			out = append(out, &g.Players[i])
		}
	}
	return out
}

// Shadow projects the match for the given observer. Other players' hand cards
// become facedown placeholders, the district deck becomes a count, and
// another player's role is revealed only once its holder has acted this round
// (their role number is below the observer's).
func Shadow(g *Game, observer PlayerID) *ShadowGame {
	me := g.PlayerByID(observer)

	sg := &ShadowGame{
		Crowned:       g.crowned,
		Round:         g.round,
		DistrictsLeft: g.districts.Len(),
	}

	if g.turn != nil {
		st := ShadowTurn{
			Killed:         g.turn.killed,
			Robbed:         g.turn.robbed,
			FirstCompleter: g.turn.firstCompleter,
		}
		for _, w := range g.turn.withheld {
			if w.FaceUp {
				st.Withheld = append(st.Withheld, RoleCard{Known: true, Role: w.Role})
			} else {
				st.Withheld = append(st.Withheld, RoleCard{})
			}
		}
		sg.Turn = st
	}

	for _, p := range g.players {
		sp := ShadowPlayer{
			ID:   p.id,
			Name: p.name,
			Gold: p.Gold(),
			City: p.City(),
		}

		isMe := p.id == observer
		if isMe {
			for _, c := range p.hand {
				sp.Hand = append(sp.Hand, DistrictCard{Known: true, District: c})
			}
			sp.Role = p.role
		} else {
			sp.Hand = make([]DistrictCard, len(p.hand))
			if roleRevealed(p, me) {
				sp.Role = p.role
			}
		}

		sg.Players = append(sg.Players, sp)
	}

	return sg
}

// roleRevealed implements the reveal-on-play convention: a role becomes
// public once its holder's turn has passed relative to the observer's place
// in the call order.
func roleRevealed(p, observer *Player) bool {
	if p.role == RoleNone || observer == nil || observer.role == RoleNone {
		return false
	}
	return p.role < observer.role
}
