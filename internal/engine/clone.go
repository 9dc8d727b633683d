package engine

import "encoding/json"

// The whole match graph round-trips through JSON and supports deep copies.
// Back-references are rebuilt from player ids on restore; listeners are
// deliberately dropped, a restored game starts silent.

type playerState struct {
	ID   PlayerID      `json:"id"`
	Name string        `json:"name"`
	Role CharacterRole `json:"role,omitempty"`
	Hand []District    `json:"hand,omitempty"`
	City []District    `json:"city,omitempty"`
}

type turnState struct {
	Withheld       []WithheldRole `json:"withheld,omitempty"`
	Killed         CharacterRole  `json:"killed,omitempty"`
	Robbed         CharacterRole  `json:"robbed,omitempty"`
	FirstCompleter PlayerID       `json:"first_completer,omitempty"`
}

type gameState struct {
	Players       []playerState    `json:"players"`
	Balances      map[PlayerID]int `json:"balances,omitempty"`
	Crowned       PlayerID         `json:"crowned,omitempty"`
	Round         int              `json:"round"`
	Turn          *turnState       `json:"turn,omitempty"`
	Roles         []CharacterRole  `json:"roles,omitempty"`
	OrigRoles     []CharacterRole  `json:"orig_roles"`
	Districts     []District       `json:"districts"`
	OrigDistricts []District       `json:"orig_districts"`
}

func (g *Game) MarshalJSON() ([]byte, error) {
	st := gameState{
		Balances:      g.bank.Balances(),
		Crowned:       g.crowned,
		Round:         g.round,
		OrigRoles:     g.origRoles,
		Districts:     g.districts.Cards(),
		OrigDistricts: g.origDistricts,
	}
	for _, p := range g.players {
		st.Players = append(st.Players, playerState{
			ID:   p.id,
			Name: p.name,
			Role: p.role,
			Hand: p.Hand(),
			City: p.City(),
		})
	}
	if g.roles != nil {
		st.Roles = g.roles.Cards()
	}
	if g.turn != nil {
		st.Turn = &turnState{
			Withheld:       g.turn.Withheld(),
			Killed:         g.turn.killed,
			Robbed:         g.turn.robbed,
			FirstCompleter: g.turn.firstCompleter,
		}
	}
	return json.Marshal(st)
}

func (g *Game) UnmarshalJSON(data []byte) error {
	var st gameState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}

	restored := NewGame(st.OrigRoles, st.OrigDistricts)
	restored.districts = NewDeck(st.Districts)
	restored.crowned = st.Crowned
	restored.round = st.Round
	if st.Roles != nil {
		restored.roles = NewDeck(st.Roles)
	}
	for _, ps := range st.Players {
		p := &Player{
			id:   ps.ID,
			name: ps.Name,
			role: ps.Role,
			hand: ps.Hand,
			city: ps.City,
			game: restored,
		}
		restored.players = append(restored.players, p)
	}
	for id, balance := range st.Balances {
		restored.bank.Account(id).Deposit(balance)
	}
	if st.Turn != nil {
		restored.turn = &Turn{
			withheld:       st.Turn.Withheld,
			killed:         st.Turn.Killed,
			robbed:         st.Turn.Robbed,
			firstCompleter: st.Turn.FirstCompleter,
			game:           restored,
		}
	}

	*g = *restored
	for _, p := range g.players {
		p.game = g
	}
	if g.turn != nil {
		g.turn.game = g
	}
	return nil
}

// Clone returns an independent deep copy of the match. Listeners are not
// carried over, so planning bots can mutate the copy silently.
func (g *Game) Clone() *Game {
	c := NewGame(g.origRoles, g.origDistricts)
	c.districts = g.districts.Clone()
	c.crowned = g.crowned
	c.round = g.round
	if g.roles != nil {
		c.roles = g.roles.Clone()
	}
	for _, p := range g.players {
		c.players = append(c.players, &Player{
			id:   p.id,
			name: p.name,
			role: p.role,
			hand: p.Hand(),
			city: p.City(),
			game: c,
		})
	}
	for id, balance := range g.bank.Balances() {
		c.bank.Account(id).Deposit(balance)
	}
	if g.turn != nil {
		c.turn = &Turn{
			withheld:       g.turn.Withheld(),
			killed:         g.turn.killed,
			robbed:         g.turn.robbed,
			firstCompleter: g.turn.firstCompleter,
			game:           c,
		}
	}
	return c
}
