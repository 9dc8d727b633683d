package gameplay

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"citadels-core/internal/engine"
	"citadels-core/internal/rules"
)

// ErrRoundLimit aborts a match that exceeded its configured round budget.
var ErrRoundLimit = errors.New("round limit reached with no complete city")

const (
	startingGold  = 2
	startingCards = 4
)

// PlayerController is the decision-making side of one seat. It only ever
// sees shadow views; the sink is its sole way to act on the match.
type PlayerController interface {
	// PickRole chooses one of the candidate roles during the draft.
	PickRole(candidates []engine.CharacterRole, self *engine.ShadowPlayer, view *engine.ShadowGame) (engine.CharacterRole, error)

	// TakeTurn issues commands through the sink. It is called repeatedly
	// until the sink reports the turn done, so a single invocation may do
	// as little as one command.
	TakeTurn(self *engine.ShadowPlayer, view *engine.ShadowGame, sink *CommandsSink) error
}

// GameController runs the full match cycle: setup, role draft, turns in role
// order, and the end-of-round bookkeeping.
type GameController struct {
	game        *engine.Game
	config      Config
	controllers map[engine.PlayerID]PlayerController
	started     bool
}

func NewGameController(g *engine.Game, cfg Config) *GameController {
	return &GameController{
		game:        g,
		config:      cfg,
		controllers: map[engine.PlayerID]PlayerController{},
	}
}

// Game is the underlying match state.
func (c *GameController) Game() *engine.Game { return c.game }

// Join seats a new player driven by the given controller.
func (c *GameController) Join(name string, ctrl PlayerController) *engine.Player {
	p := c.game.AddPlayer(name)
	c.controllers[p.ID()] = ctrl
	return p
}

// StartGame shuffles the district deck, crowns a random player if nobody
// holds the crown, and deals each player their starting hand and gold.
func (c *GameController) StartGame() error {
	g := c.game
	if g.NumPlayers() < 2 {
		return engine.ErrNotEnoughPlayers
	}
	g.Districts().Shuffle()
	if g.CrownedPlayer() == nil {
		players := g.Players()
		g.SetCrownedPlayer(players[rand.IntN(len(players))])
	}
	for _, p := range g.Players() {
		for i := 0; i < startingCards; i++ {
			card, err := g.Districts().TakeFromTop()
			if err != nil {
				return err
			}
			p.TakeCard(card)
		}
		p.CashIn(startingGold)
	}
	c.started = true
	return nil
}

// StartTurn opens a round: withholds roles from the draft pool, then lets
// each player pick in crown order. One role is always withheld face down;
// the face-up count follows the config. The King is never removed face up:
// when drawn for a face-up slot it goes to the bottom of the deck and the
// next card takes its place.
func (c *GameController) StartTurn() error {
	g := c.game
	turn := g.NewTurn()
	g.Events().Fire(func(l engine.Listener) { l.TurnStarted(g.Round()) })

	g.Roles().Shuffle()

	hidden, err := g.Roles().TakeRandom()
	if err != nil {
		return err
	}
	turn.Withhold(hidden, false)

	for i := 0; i < c.config.faceupFor(g.NumPlayers()); i++ {
		role, err := g.Roles().TakeFromTop()
		if err != nil {
			return err
		}
		if role == engine.RoleKing {
			g.Roles().PutOnBottom(role)
			role, err = g.Roles().TakeFromTop()
			if err != nil {
				return err
			}
		}
		turn.Withhold(role, true)
	}

	for _, p := range g.PlayersByRoleSelection() {
		ctrl := c.controllers[p.ID()]
		view := engine.Shadow(g, p.ID())
		pick, err := ctrl.PickRole(g.Roles().Cards(), view.Player(p.ID()), view)
		if err != nil {
			return fmt.Errorf("player %q role pick: %w", p.Name(), err)
		}
		if err := g.Roles().Take(pick); err != nil {
			return fmt.Errorf("player %q picked %v: %w", p.Name(), pick, engine.ErrIllegalSelection)
		}
		p.SetRole(pick)
	}

	// roles nobody drafted are out of play too
	for g.Roles().Len() > 0 {
		role, err := g.Roles().TakeFromTop()
		if err != nil {
			return err
		}
		turn.Withhold(role, false)
	}
	return nil
}

// TakeTurns calls players in ascending role order. Killed roles skip their
// turn; a robbed role hands its full purse to the Thief on call. A killed
// King still receives the crown once the round has been played out.
func (c *GameController) TakeTurns() error {
	g := c.game
	turn := g.Turn()

	for _, p := range g.PlayersByTakeTurn() {
		if p.Role() == engine.RoleNone {
			continue
		}
		if p.Role() == turn.Killed() {
			victim := p
			g.Events().Fire(func(l engine.Listener) { l.PlayerKilled(victim) })
			continue
		}
		if p.Role() == turn.Robbed() {
			c.settleRobbery(p)
		}

		actor := p
		g.Events().Fire(func(l engine.Listener) { l.PlayerPlays(actor, actor.Role()) })

		sink := NewCommandsSink(p, g)
		ctrl := c.controllers[p.ID()]
		for !sink.Done() {
			view := engine.Shadow(g, p.ID())
			if err := ctrl.TakeTurn(view.Player(p.ID()), view, sink); err != nil {
				return fmt.Errorf("player %q turn: %w", p.Name(), err)
			}
		}

		if p.CityComplete() {
			turn.SetFirstCompleter(p.ID())
		}
		g.Events().Fire(func(l engine.Listener) { l.PlayerPlayed(actor) })
	}

	if turn.Killed() == engine.RoleKing {
		if king := g.PlayerByRole(engine.RoleKing); king != nil {
			g.SetCrownedPlayer(king)
		}
	}
	return nil
}

func (c *GameController) settleRobbery(victim *engine.Player) {
	thief := c.game.PlayerByRole(engine.RoleThief)
	if thief == nil || thief == victim {
		return
	}
	amount := victim.Gold()
	if amount == 0 {
		return
	}
	c.game.Events().Transaction(func() {
		if _, err := victim.Withdraw(amount); err == nil {
			thief.CashIn(amount)
		}
	}, func(l engine.Listener) {
		l.PlayerRobbed(victim, thief, amount)
	})
}

// EndTurn closes the round: roles go back to anonymity.
func (c *GameController) EndTurn() {
	g := c.game
	for _, p := range g.Players() {
		p.SetRole(engine.RoleNone)
	}
	g.Events().Fire(func(l engine.Listener) { l.TurnEnded(g.Round()) })
}

// GameOver reports whether any city has reached full size.
func (c *GameController) GameOver() bool {
	for _, p := range c.game.Players() {
		if p.CityComplete() {
			return true
		}
	}
	return false
}

// Play runs rounds until a completed city ends the game. The match is set up
// first if StartGame has not been called.
func (c *GameController) Play() error {
	if !c.started {
		if err := c.StartGame(); err != nil {
			return err
		}
	}
	for !c.GameOver() {
		if c.config.MaxRounds > 0 && c.game.Round() >= c.config.MaxRounds {
			return ErrRoundLimit
		}
		if err := c.StartTurn(); err != nil {
			return err
		}
		if err := c.TakeTurns(); err != nil {
			return err
		}
		c.EndTurn()
	}
	return nil
}

// Winner is the final standing under the full tie-break rules.
func (c *GameController) Winner() *engine.Player {
	return rules.Winner(c.game)
}

// EndGame clears the match back to its pre-game state, keeping the seats.
func (c *GameController) EndGame() {
	c.game.Reset()
	c.started = false
}
