package engine

import "fmt"

// WithheldRole is a role removed from this round's draft pool.
type WithheldRole struct {
	Role   CharacterRole `json:"role"`
	FaceUp bool          `json:"face_up"`
}

// Turn is the per-round transient state. A fresh Turn is created at the start
// of every round and discarded at its end. Only the game controller mutates
// the withheld set.
type Turn struct {
	withheld       []WithheldRole
	killed         CharacterRole
	robbed         CharacterRole
	firstCompleter PlayerID
	game           *Game
}

// Withhold removes a role from this round's draft pool.
func (t *Turn) Withhold(role CharacterRole, faceUp bool) {
	t.withheld = append(t.withheld, WithheldRole{Role: role, FaceUp: faceUp})
}

// Withheld returns a copy of the withheld roles.
func (t *Turn) Withheld() []WithheldRole {
	out := make([]WithheldRole, len(t.withheld))
	copy(out, t.withheld)
	return out
}

// IsWithheld reports whether the role is out of play this round.
func (t *Turn) IsWithheld(role CharacterRole) bool {
	for _, w := range t.withheld {
		if w.Role == role {
			return true
		}
	}
	return false
}

// Killed is the role marked for elimination, RoleNone if none.
func (t *Turn) Killed() CharacterRole { return t.killed }

// SetKilled marks a role for elimination. At most one per round.
func (t *Turn) SetKilled(role CharacterRole) error {
	if t.killed != RoleNone {
		return fmt.Errorf("murder already announced for %v this round", t.killed)
	}
	t.killed = role
	t.game.events.Fire(func(l Listener) { l.MurderAnnounced(role) })
	return nil
}

// Robbed is the role marked for robbery, RoleNone if none.
func (t *Turn) Robbed() CharacterRole { return t.robbed }

// SetRobbed marks a role for robbery. At most one per round.
func (t *Turn) SetRobbed(role CharacterRole) error {
	if t.robbed != RoleNone {
		return fmt.Errorf("theft already announced for %v this round", t.robbed)
	}
	t.robbed = role
	t.game.events.Fire(func(l Listener) { l.TheftAnnounced(role) })
	return nil
}

// FirstCompleter is the player who first completed their city this round,
// 0 if nobody has.
func (t *Turn) FirstCompleter() PlayerID { return t.firstCompleter }

func (t *Turn) SetFirstCompleter(id PlayerID) {
	if t.firstCompleter == 0 {
		t.firstCompleter = id
	}
}
