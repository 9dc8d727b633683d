package engine

// Listener receives game notifications. Hooks fire synchronously, in causal
// order, while state mutates; a listener must not mutate game state from
// within a hook.
type Listener interface {
	PlayerAdded(p *Player)
	PlayerCrowned(p *Player)
	MurderAnnounced(role CharacterRole)
	TheftAnnounced(role CharacterRole)
	PlayerCashedIn(p *Player, amount int)
	PlayerWithdrawn(p *Player, amount int)
	PlayerTakenCard(p *Player, card District)
	PlayerBuiltDistrict(p *Player, district District)
	PlayerLostDistrict(p *Player, district District)
	TurnStarted(round int)
	TurnEnded(round int)
	PlayerKilled(p *Player)
	PlayerRobbed(p *Player, thief *Player, amount int)
	PlayerPlays(p *Player, role CharacterRole)
	PlayerPlayed(p *Player)
	PlayerSwappedHands(p *Player, other *Player)
	PlayerReplacedHand(p *Player, count int)
}

// NopListener implements Listener with no-ops, for embedding.
type NopListener struct{}

func (NopListener) PlayerAdded(*Player)                     {}
func (NopListener) PlayerCrowned(*Player)                   {}
func (NopListener) MurderAnnounced(CharacterRole)           {}
func (NopListener) TheftAnnounced(CharacterRole)            {}
func (NopListener) PlayerCashedIn(*Player, int)             {}
func (NopListener) PlayerWithdrawn(*Player, int)            {}
func (NopListener) PlayerTakenCard(*Player, District)       {}
func (NopListener) PlayerBuiltDistrict(*Player, District)   {}
func (NopListener) PlayerLostDistrict(*Player, District)    {}
func (NopListener) TurnStarted(int)                         {}
func (NopListener) TurnEnded(int)                           {}
func (NopListener) PlayerKilled(*Player)                    {}
func (NopListener) PlayerRobbed(*Player, *Player, int)      {}
func (NopListener) PlayerPlays(*Player, CharacterRole)      {}
func (NopListener) PlayerPlayed(*Player)                    {}
func (NopListener) PlayerSwappedHands(*Player, *Player)     {}
func (NopListener) PlayerReplacedHand(*Player, int)         {}

// EventSource dispatches notifications to registered listeners. Muting nests:
// the source stays silent until every Mute is balanced by an Unmute.
type EventSource struct {
	listeners []Listener
	muted     int
}

func (s *EventSource) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Fire invokes fn once per listener unless the source is muted.
func (s *EventSource) Fire(fn func(Listener)) {
	if s.Muted() {
		return
	}
	for _, l := range s.listeners {
		fn(l)
	}
}

func (s *EventSource) Mute()   { s.muted++ }
func (s *EventSource) Unmute() { s.muted-- }

func (s *EventSource) Muted() bool {
	return s.muted != 0
}

// Transaction runs body with the source muted, then emits the summary
// notification. Intermediate hooks fired by body are suppressed.
func (s *EventSource) Transaction(body func(), summary func(Listener)) {
	s.Mute()
	defer func() {
		s.Unmute()
		s.Fire(summary)
	}()
	body()
}
