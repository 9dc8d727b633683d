// Command citadels plays one full bot match and narrates it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"citadels-core/internal/arena"
	"citadels-core/internal/engine"
	"citadels-core/internal/gameplay"
	"citadels-core/internal/rules"
)

func main() {
	bots := flag.String("bots", "naive,random,random,random", "comma-separated seat kinds (naive, random)")
	faceup := flag.Int("faceup", -1, "face-up withheld roles, -1 for the standard count")
	quiet := flag.Bool("quiet", false, "suppress the play-by-play log")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	if *quiet {
		log = zap.NewNop()
	}

	g := engine.NewGame(engine.AllRoles(), engine.SimpleDistricts())
	g.Events().AddListener(&narrator{log: log})

	gc := gameplay.NewGameController(g, gameplay.Config{FaceupWithheld: *faceup})
	for i, kind := range strings.Split(*bots, ",") {
		bot, err := arena.NewBot(strings.TrimSpace(kind))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		gc.Join(fmt.Sprintf("%s-%d", kind, i+1), bot)
	}

	if err := gc.Play(); err != nil {
		log.Fatal("match failed", zap.Error(err))
	}

	winner := gc.Winner()
	fmt.Printf("game over after %d rounds\n", g.Round())
	for _, p := range g.Players() {
		marker := " "
		if p == winner {
			marker = "*"
		}
		fmt.Printf("%s %-12s score %3d (city %d, gold %d)\n",
			marker, p.Name(), rules.Score(p), p.CitySize(), p.Gold())
	}
}

// narrator logs every game notification.
type narrator struct {
	log *zap.Logger
}

func (n *narrator) PlayerAdded(p *engine.Player) {
	n.log.Info("player joined", zap.String("player", p.Name()))
}

func (n *narrator) PlayerCrowned(p *engine.Player) {
	n.log.Info("crowned", zap.String("player", p.Name()))
}

func (n *narrator) MurderAnnounced(role engine.CharacterRole) {
	n.log.Info("murder announced", zap.Stringer("role", role))
}

func (n *narrator) TheftAnnounced(role engine.CharacterRole) {
	n.log.Info("theft announced", zap.Stringer("role", role))
}

func (n *narrator) PlayerCashedIn(p *engine.Player, amount int) {
	n.log.Info("cashed in", zap.String("player", p.Name()), zap.Int("amount", amount), zap.Int("gold", p.Gold()))
}

func (n *narrator) PlayerWithdrawn(p *engine.Player, amount int) {
	n.log.Info("paid", zap.String("player", p.Name()), zap.Int("amount", amount), zap.Int("gold", p.Gold()))
}

func (n *narrator) PlayerTakenCard(p *engine.Player, card engine.District) {
	n.log.Info("drew card", zap.String("player", p.Name()), zap.Stringer("district", card))
}

func (n *narrator) PlayerBuiltDistrict(p *engine.Player, district engine.District) {
	n.log.Info("built", zap.String("player", p.Name()), zap.Stringer("district", district), zap.Int("city", p.CitySize()))
}

func (n *narrator) PlayerLostDistrict(p *engine.Player, district engine.District) {
	n.log.Info("lost district", zap.String("player", p.Name()), zap.Stringer("district", district))
}

func (n *narrator) TurnStarted(round int) {
	n.log.Info("round started", zap.Int("round", round))
}

func (n *narrator) TurnEnded(round int) {
	n.log.Info("round ended", zap.Int("round", round))
}

func (n *narrator) PlayerKilled(p *engine.Player) {
	n.log.Info("killed, skips the turn", zap.String("player", p.Name()), zap.Stringer("role", p.Role()))
}

func (n *narrator) PlayerRobbed(p *engine.Player, thief *engine.Player, amount int) {
	n.log.Info("robbed", zap.String("player", p.Name()), zap.String("thief", thief.Name()), zap.Int("amount", amount))
}

func (n *narrator) PlayerPlays(p *engine.Player, role engine.CharacterRole) {
	n.log.Info("plays", zap.String("player", p.Name()), zap.Stringer("role", role))
}

func (n *narrator) PlayerPlayed(p *engine.Player) {
	n.log.Info("turn done", zap.String("player", p.Name()))
}

func (n *narrator) PlayerSwappedHands(p *engine.Player, other *engine.Player) {
	n.log.Info("swapped hands", zap.String("player", p.Name()), zap.String("with", other.Name()))
}

func (n *narrator) PlayerReplacedHand(p *engine.Player, count int) {
	n.log.Info("replaced hand cards", zap.String("player", p.Name()), zap.Int("count", count))
}
