// Package gameplay drives a match: it gates commands through the per-turn
// sink and runs the draft/turn/scoring cycle against player controllers.
package gameplay

// Config tunes optional match parameters.
type Config struct {
	// FaceupWithheld is the number of roles removed face up before the
	// draft. -1 picks the standard count for the table size; the zero
	// value removes none.
	FaceupWithheld int

	// MaxRounds aborts a match that has not produced a complete city
	// after this many rounds. Zero means no limit.
	MaxRounds int
}

// DefaultConfig plays by the base game table: the standard face-up count for
// the table size and no round limit.
func DefaultConfig() Config {
	return Config{FaceupWithheld: -1}
}

// standardFaceup follows the base game table: two roles face up for small
// tables, shrinking to none at six players and beyond.
var standardFaceup = map[int]int{2: 2, 3: 2, 4: 2, 5: 1}

func (c Config) faceupFor(players int) int {
	if c.FaceupWithheld >= 0 {
		return c.FaceupWithheld
	}
	return standardFaceup[players]
}
