package engine

// DistrictColor represents the five district categories.
type DistrictColor int

const (
	ColorNone   DistrictColor = 0
	ColorRed    DistrictColor = 1
	ColorYellow DistrictColor = 2
	ColorGreen  DistrictColor = 3
	ColorBlue   DistrictColor = 4
	ColorPurple DistrictColor = 5
)

var colorNames = map[DistrictColor]string{
	ColorNone:   "None",
	ColorRed:    "Red",
	ColorYellow: "Yellow",
	ColorGreen:  "Green",
	ColorBlue:   "Blue",
	ColorPurple: "Purple",
}

func (c DistrictColor) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "Unknown"
}

// StandardColors are the colors counted for the all-colors score bonus.
// Purple is deliberately excluded.
func StandardColors() []DistrictColor {
	return []DistrictColor{ColorRed, ColorYellow, ColorGreen, ColorBlue}
}

// District identifies a district card in the catalog.
type District int

const (
	DistrictNone District = iota
	Watchtower
	Prison
	Battlefield
	Fortress
	Tavern
	TradingPost
	Market
	Docks
	Harbor
	TownHall
	Temple
	Church
	Monastery
	Cathedral
	Manor
	Castle
	Palace
)

// DistrictInfo holds the static attributes of a district card.
type DistrictInfo struct {
	Name  string
	Color DistrictColor
	Cost  int
	Mul   int // copies of the card in the full deck
}

var districtInfo = map[District]DistrictInfo{
	Watchtower:  {"Watchtower", ColorRed, 1, 3},
	Prison:      {"Prison", ColorRed, 2, 3},
	Battlefield: {"Battlefield", ColorRed, 3, 3},
	Fortress:    {"Fortress", ColorRed, 4, 2},

	Tavern:      {"Tavern", ColorGreen, 1, 5},
	TradingPost: {"Trading Post", ColorGreen, 2, 3},
	Market:      {"Market", ColorGreen, 2, 4},
	Docks:       {"Docks", ColorGreen, 3, 3},
	Harbor:      {"Harbor", ColorGreen, 4, 3},
	TownHall:    {"Town Hall", ColorGreen, 5, 2},

	Temple:    {"Temple", ColorBlue, 1, 3},
	Church:    {"Church", ColorBlue, 2, 3},
	Monastery: {"Monastery", ColorBlue, 3, 3},
	Cathedral: {"Cathedral", ColorBlue, 5, 2},

	Manor:  {"Manor", ColorYellow, 3, 5},
	Castle: {"Castle", ColorYellow, 4, 4},
	Palace: {"Palace", ColorYellow, 5, 3},
}

// Info returns the static attributes of the district.
func (d District) Info() DistrictInfo {
	return districtInfo[d]
}

func (d District) String() string {
	if info, ok := districtInfo[d]; ok {
		return info.Name
	}
	return "Unknown"
}

// Color is the district's category color.
func (d District) Color() DistrictColor { return districtInfo[d].Color }

// Cost is the gold needed to build the district.
func (d District) Cost() int { return districtInfo[d].Cost }

// AllDistricts returns every distinct card in the catalog.
func AllDistricts() []District {
	out := make([]District, 0, len(districtInfo))
	for d := Watchtower; d <= Palace; d++ {
		out = append(out, d)
	}
	return out
}

// SimpleDistricts assembles the standard playing deck: every catalog card
// repeated per its multiplicity.
func SimpleDistricts() []District {
	var cards []District
	for _, d := range AllDistricts() {
		for i := 0; i < d.Info().Mul; i++ {
			cards = append(cards, d)
		}
	}
	return cards
}
