package engine

import (
	"errors"
	"sort"
)

// CitySize is the number of built districts that completes a city.
const CitySize = 8

var (
	ErrEmptyDeck         = errors.New("deck is empty")
	ErrNotInDeck         = errors.New("card not found in deck")
	ErrInsufficientFunds = errors.New("not enough gold on the account")
	ErrNotEnoughPlayers  = errors.New("not enough players to start")
	ErrIllegalSelection  = errors.New("selection is not among the offered choices")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrCardNotInHand     = errors.New("card not in hand")
	ErrDistrictNotInCity = errors.New("district not in city")
)

// Game is the whole match state: players, bank, crown, the current round's
// transient state and both decks. All mutation is single-writer; there is no
// intra-match concurrency.
type Game struct {
	players       []*Player
	bank          *Bank
	crowned       PlayerID // 0 while unset
	round         int
	turn          *Turn
	roles         *Deck[CharacterRole]
	origRoles     []CharacterRole
	districts     *Deck[District]
	origDistricts []District
	events        *EventSource
}

// NewGame creates a match over the given role set and district deck.
func NewGame(roles []CharacterRole, districts []District) *Game {
	g := &Game{
		bank:   NewBank(),
		events: &EventSource{},
	}
	g.origRoles = make([]CharacterRole, len(roles))
	copy(g.origRoles, roles)
	g.origDistricts = make([]District, len(districts))
	copy(g.origDistricts, districts)
	g.districts = NewDeck(districts)
	return g
}

// AddPlayer joins a new player pre-game. Ids are assigned as a 1-based
// sequence in join order.
func (g *Game) AddPlayer(name string) *Player {
	p := &Player{
		id:   PlayerID(len(g.players) + 1),
		name: name,
		game: g,
	}
	g.players = append(g.players, p)
	g.events.Fire(func(l Listener) { l.PlayerAdded(p) })
	return p
}

// Players returns the players in join order.
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

func (g *Game) NumPlayers() int { return len(g.players) }

// PlayerByID finds a player by id, nil if absent.
func (g *Game) PlayerByID(id PlayerID) *Player {
	for _, p := range g.players {
		if p.id == id {
			return p
		}
	}
	return nil
}

// PlayerByName finds the first player with the given name, nil if absent.
func (g *Game) PlayerByName(name string) *Player {
	for _, p := range g.players {
		if p.name == name {
			return p
		}
	}
	return nil
}

// PlayerByRole finds the player holding the given role this round, nil if
// nobody does.
func (g *Game) PlayerByRole(role CharacterRole) *Player {
	for _, p := range g.players {
		if p.role == role && role != RoleNone {
			return p
		}
	}
	return nil
}

// PlayersByRoleSelection returns players in draft order: the crowned player
// first, then clockwise.
func (g *Game) PlayersByRoleSelection() []*Player {
	idx := g.crownedIndex()
	if idx < 0 {
		return g.Players()
	}
	out := make([]*Player, 0, len(g.players))
	for i := 0; i < len(g.players); i++ {
		out = append(out, g.players[(idx+i)%len(g.players)])
	}
	return out
}

// PlayersByTakeTurn returns players in ascending role-number order; stable
// for players without a role.
func (g *Game) PlayersByTakeTurn() []*Player {
	out := g.Players()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].role < out[j].role
	})
	return out
}

// CrownedPlayer is the player who picks a role first, nil before assignment.
func (g *Game) CrownedPlayer() *Player {
	if g.crowned == 0 {
		return nil
	}
	return g.PlayerByID(g.crowned)
}

// SetCrownedPlayer moves the crown. The player must belong to this match.
func (g *Game) SetCrownedPlayer(p *Player) {
	if g.PlayerByID(p.id) != p {
		panic("game: crowned player must belong to the match")
	}
	g.crowned = p.id
	g.events.Fire(func(l Listener) { l.PlayerCrowned(p) })
}

func (g *Game) crownedIndex() int {
	for i, p := range g.players {
		if p.id == g.crowned {
			return i
		}
	}
	return -1
}

// Bank is the match's gold storage.
func (g *Game) Bank() *Bank { return g.bank }

// Roles is the live role deck for the current round.
func (g *Game) Roles() *Deck[CharacterRole] { return g.roles }

// Districts is the shared building deck.
func (g *Game) Districts() *Deck[District] { return g.districts }

// Turn is the per-round transient state, nil before the first round.
func (g *Game) Turn() *Turn { return g.turn }

// Round is the 1-based round counter, 0 before the first round.
func (g *Game) Round() int { return g.round }

// NewTurn discards the previous round's transient state and resets the role
// deck from the immutable original set.
func (g *Game) NewTurn() *Turn {
	g.round++
	g.turn = &Turn{game: g}
	g.roles = NewDeck(g.origRoles)
	return g.turn
}

// Events is the match's notification source.
func (g *Game) Events() *EventSource { return g.events }

// SwapHands exchanges the two players' entire hands as one transactional
// event per side.
func (g *Game) SwapHands(a, b *Player) {
	g.events.Transaction(func() {
		a.hand, b.hand = b.hand, a.hand
	}, func(l Listener) {
		l.PlayerSwappedHands(a, b)
		l.PlayerSwappedHands(b, a)
	})
}

// Reset restores the match to its pre-game state, keeping the joined players
// but clearing hands, cities, balances, crown and decks. Used to run repeated
// matches on one Game.
func (g *Game) Reset() {
	g.bank = NewBank()
	g.crowned = 0
	g.round = 0
	g.turn = nil
	g.roles = nil
	g.districts = NewDeck(g.origDistricts)
	for _, p := range g.players {
		p.role = RoleNone
		p.hand = nil
		p.city = nil
	}
}
