// Package arena runs batches of bot-vs-bot matches concurrently and
// aggregates the outcomes.
package arena

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"citadels-core/internal/ai"
	"citadels-core/internal/engine"
	"citadels-core/internal/gameplay"
	"citadels-core/internal/rules"
)

// NewBot builds a controller by kind name.
func NewBot(kind string) (gameplay.PlayerController, error) {
	switch kind {
	case "random":
		return ai.NewRandomBot(), nil
	case "naive":
		return ai.NewNaiveBot(), nil
	}
	return nil, fmt.Errorf("unknown bot kind %q", kind)
}

// Result is one finished match.
type Result struct {
	MatchID string
	Rounds  int
	Winner  string
	Margin  int
	Scores  map[string]int
}

// Arena runs independent matches across a worker pool. Every match gets its
// own game and fresh bot instances, so workers share nothing.
type Arena struct {
	bots    []string
	games   int
	workers int
	log     *zap.Logger
}

func New(bots []string, games, workers int, log *zap.Logger) *Arena {
	if workers < 1 {
		workers = 1
	}
	return &Arena{bots: bots, games: games, workers: workers, log: log}
}

// Run plays the configured number of matches and returns aggregate stats.
// Matches that abort are logged and excluded from the aggregate.
func (a *Arena) Run() *Stats {
	jobs := make(chan struct{})
	results := make(chan Result)

	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				res, err := a.playOne()
				if err != nil {
					a.log.Error("match aborted", zap.Error(err))
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		for i := 0; i < a.games; i++ {
			jobs <- struct{}{}
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	stats := NewStats()
	for res := range results {
		stats.Add(res)
	}
	return stats
}

func (a *Arena) playOne() (Result, error) {
	id := uuid.NewString()

	g := engine.NewGame(engine.AllRoles(), engine.SimpleDistricts())
	cfg := gameplay.DefaultConfig()
	cfg.MaxRounds = 500
	gc := gameplay.NewGameController(g, cfg)
	for i, kind := range a.bots {
		bot, err := NewBot(kind)
		if err != nil {
			return Result{}, err
		}
		gc.Join(fmt.Sprintf("%s-%d", kind, i+1), bot)
	}

	if err := gc.Play(); err != nil {
		return Result{}, fmt.Errorf("match %s: %w", id, err)
	}

	winner := gc.Winner()
	scores := make(map[string]int, g.NumPlayers())
	for _, p := range g.Players() {
		scores[p.Name()] = rules.Score(p)
	}

	a.log.Info("match finished",
		zap.String("match", id),
		zap.Int("rounds", g.Round()),
		zap.String("winner", winner.Name()),
		zap.Int("score", scores[winner.Name()]))

	return Result{
		MatchID: id,
		Rounds:  g.Round(),
		Winner:  winner.Name(),
		Margin:  ai.Margin(g, winner.ID()),
		Scores:  scores,
	}, nil
}
