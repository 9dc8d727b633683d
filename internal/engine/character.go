package engine

// CharacterRole identifies the 8 base-game characters, numbered in call order.
type CharacterRole int

const (
	RoleNone      CharacterRole = 0
	RoleAssassin  CharacterRole = 1
	RoleThief     CharacterRole = 2
	RoleMagician  CharacterRole = 3
	RoleKing      CharacterRole = 4
	RoleBishop    CharacterRole = 5
	RoleMerchant  CharacterRole = 6
	RoleArchitect CharacterRole = 7
	RoleWarlord   CharacterRole = 8
)

var roleNames = map[CharacterRole]string{
	RoleAssassin:  "Assassin",
	RoleThief:     "Thief",
	RoleMagician:  "Magician",
	RoleKing:      "King",
	RoleBishop:    "Bishop",
	RoleMerchant:  "Merchant",
	RoleArchitect: "Architect",
	RoleWarlord:   "Warlord",
}

func (r CharacterRole) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "Unknown"
}

// IncomeColor is the district color this character collects gold for.
func (r CharacterRole) IncomeColor() DistrictColor {
	switch r {
	case RoleKing:
		return ColorYellow
	case RoleBishop:
		return ColorBlue
	case RoleMerchant:
		return ColorGreen
	case RoleWarlord:
		return ColorRed
	default:
		return ColorNone
	}
}

// AllRoles returns the 8 base-game roles in call order.
func AllRoles() []CharacterRole {
	return []CharacterRole{
		RoleAssassin, RoleThief, RoleMagician, RoleKing,
		RoleBishop, RoleMerchant, RoleArchitect, RoleWarlord,
	}
}

// RoleByIncomeColor returns the character collecting gold for the given color,
// or RoleNone if no character does.
func RoleByIncomeColor(color DistrictColor) CharacterRole {
	for _, r := range AllRoles() {
		if r != RoleNone && r.IncomeColor() == color && color != ColorNone {
			return r
		}
	}
	return RoleNone
}
