package engine

// PlayerID is a stable 1-based identifier, unique within one game.
type PlayerID int

// Player holds one player's state. Gold is not stored here; it lives in the
// game's bank under the player's id.
type Player struct {
	id   PlayerID
	name string
	role CharacterRole
	hand []District
	city []District
	game *Game
}

func (p *Player) ID() PlayerID { return p.id }
func (p *Player) Name() string { return p.name }

// Role is the character assigned for the current round, RoleNone outside
// active-role windows.
func (p *Player) Role() CharacterRole { return p.role }

func (p *Player) SetRole(role CharacterRole) { p.role = role }

// Gold is the player's current balance.
func (p *Player) Gold() int {
	return p.game.bank.Account(p.id).Balance()
}

// CashIn deposits gold into the player's account.
func (p *Player) CashIn(amount int) int {
	got := p.game.bank.Account(p.id).Deposit(amount)
	p.game.events.Fire(func(l Listener) { l.PlayerCashedIn(p, amount) })
	return got
}

// Withdraw removes gold from the player's account.
func (p *Player) Withdraw(amount int) (int, error) {
	got, err := p.game.bank.Account(p.id).Withdraw(amount)
	if err != nil {
		return 0, err
	}
	p.game.events.Fire(func(l Listener) { l.PlayerWithdrawn(p, amount) })
	return got, nil
}

// Hand returns a copy of the player's hand, in stable order.
func (p *Player) Hand() []District {
	out := make([]District, len(p.hand))
	copy(out, p.hand)
	return out
}

func (p *Player) HandSize() int { return len(p.hand) }

// TakeCard puts a district card into the player's hand.
func (p *Player) TakeCard(card District) {
	p.hand = append(p.hand, card)
	p.game.events.Fire(func(l Listener) { l.PlayerTakenCard(p, card) })
}

// RemoveCard removes the first matching card from the hand.
func (p *Player) RemoveCard(card District) error {
	for i, c := range p.hand {
		if c == card {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return nil
		}
	}
	return ErrCardNotInHand
}

// HandHas reports whether the hand holds at least one copy of the card.
func (p *Player) HandHas(card District) bool {
	for _, c := range p.hand {
		if c == card {
			return true
		}
	}
	return false
}

// City returns a copy of the player's built districts.
func (p *Player) City() []District {
	out := make([]District, len(p.city))
	copy(out, p.city)
	return out
}

func (p *Player) CitySize() int { return len(p.city) }

// CityHas reports whether the district is already built.
func (p *Player) CityHas(card District) bool {
	for _, c := range p.city {
		if c == card {
			return true
		}
	}
	return false
}

// CityComplete reports whether the city has reached its full size.
func (p *Player) CityComplete() bool {
	return len(p.city) >= CitySize
}

// BuildDistrict adds a district to the city. Duplicates are disallowed by
// rule, not enforced here.
func (p *Player) BuildDistrict(card District) {
	p.city = append(p.city, card)
	p.game.events.Fire(func(l Listener) { l.PlayerBuiltDistrict(p, card) })
}

// DestroyDistrict removes a district from the city.
func (p *Player) DestroyDistrict(card District) error {
	for i, c := range p.city {
		if c == card {
			p.city = append(p.city[:i], p.city[i+1:]...)
			p.game.events.Fire(func(l Listener) { l.PlayerLostDistrict(p, card) })
			return nil
		}
	}
	return ErrDistrictNotInCity
}

// Game is the match the player belongs to.
func (p *Player) Game() *Game { return p.game }
