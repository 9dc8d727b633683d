package engine

// Choice is one selectable value offered by an interactive command: a role,
// a district or a player. The set is closed.
type Choice interface {
	isChoice()
}

func (CharacterRole) isChoice() {}
func (District) isChoice()      {}
func (PlayerID) isChoice()      {}
