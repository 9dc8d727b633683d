package arena

import (
	"fmt"
	"sort"
	"strings"
)

// Stats aggregates finished matches. Not safe for concurrent use; the arena
// feeds it from a single collection loop.
type Stats struct {
	Games      int
	Wins       map[string]int
	totalScore map[string]int
	margins    int
	rounds     int
}

func NewStats() *Stats {
	return &Stats{
		Wins:       map[string]int{},
		totalScore: map[string]int{},
	}
}

func (s *Stats) Add(res Result) {
	s.Games++
	s.Wins[res.Winner]++
	s.margins += res.Margin
	s.rounds += res.Rounds
	for name, score := range res.Scores {
		s.totalScore[name] += score
	}
}

// WinRate is the fraction of matches the seat won.
func (s *Stats) WinRate(name string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[name]) / float64(s.Games)
}

// AvgScore is the seat's mean final score.
func (s *Stats) AvgScore(name string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.totalScore[name]) / float64(s.Games)
}

// AvgMargin is the mean winning margin over all matches.
func (s *Stats) AvgMargin() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.margins) / float64(s.Games)
}

// AvgRounds is the mean match length in rounds.
func (s *Stats) AvgRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.rounds) / float64(s.Games)
}

// Seats lists every seat seen, sorted by win count descending.
func (s *Stats) Seats() []string {
	var out []string
	for name := range s.totalScore {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		if s.Wins[out[i]] != s.Wins[out[j]] {
			return s.Wins[out[i]] > s.Wins[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d games, avg %.1f rounds, avg winning margin %.1f\n",
		s.Games, s.AvgRounds(), s.AvgMargin())
	for _, name := range s.Seats() {
		fmt.Fprintf(&b, "  %-12s wins %4d (%5.1f%%)  avg score %.1f\n",
			name, s.Wins[name], 100*s.WinRate(name), s.AvgScore(name))
	}
	return b.String()
}
