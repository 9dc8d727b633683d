package commands

import (
	"errors"
	"testing"

	"citadels-core/internal/engine"
)

func newGame(districts []engine.District, names ...string) *engine.Game {
	g := engine.NewGame(engine.AllRoles(), districts)
	for _, name := range names {
		g.AddPlayer(name)
	}
	return g
}

func TestCashIn(t *testing.T) {
	g := newGame(nil, "a")
	p := g.PlayerByName("a")

	cmd := NewCashIn(2, 0)
	if err := cmd.Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.Gold() != 2 {
		t.Errorf("gold = %d, want 2", p.Gold())
	}
}

func TestDrawCardsToleratesShortDeck(t *testing.T) {
	g := newGame([]engine.District{engine.Tavern}, "a")
	p := g.PlayerByName("a")

	cmd := NewDrawCards(2, 0)
	if err := cmd.Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.HandSize() != 1 {
		t.Errorf("hand size = %d, want 1", p.HandSize())
	}
}

func TestDrawSomeCardsKeepOne(t *testing.T) {
	g := newGame([]engine.District{engine.Tavern, engine.Temple, engine.Market}, "a")
	p := g.PlayerByName("a")

	cmd := NewDrawSomeCards(2, 1, 0)
	choices := cmd.Choices(p, g)
	if len(choices) != 2 {
		t.Fatalf("choices = %v, want the two drawn cards", choices)
	}
	if g.Districts().Len() != 1 {
		t.Fatalf("deck len = %d during selection, want 1", g.Districts().Len())
	}
	if cmd.Ready() {
		t.Fatal("ready before any selection")
	}

	if err := cmd.Select(engine.Temple); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cmd.Ready() {
		t.Fatal("not ready after keeping one card")
	}
	if err := cmd.Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if !p.HandHas(engine.Temple) || p.HandSize() != 1 {
		t.Errorf("hand = %v", p.Hand())
	}
	// the unkept card went to the bottom
	cards := g.Districts().Cards()
	if len(cards) != 2 || cards[0] != engine.Market || cards[1] != engine.Tavern {
		t.Errorf("deck = %v, want [Market Tavern]", cards)
	}
}

func TestDrawSomeCardsCancelRestoresDeck(t *testing.T) {
	g := newGame([]engine.District{engine.Tavern, engine.Temple, engine.Market}, "a")
	p := g.PlayerByName("a")

	cmd := NewDrawSomeCards(2, 1, 0)
	cmd.Choices(p, g)
	cmd.Cancel(p, g)

	cards := g.Districts().Cards()
	want := []engine.District{engine.Tavern, engine.Temple, engine.Market}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("deck = %v, want %v", cards, want)
		}
	}
}

func TestDrawSomeCardsCancelAfterSelect(t *testing.T) {
	g := newGame([]engine.District{engine.Tavern, engine.Temple, engine.Market}, "a")
	p := g.PlayerByName("a")

	cmd := NewDrawSomeCards(2, 1, 0)
	cmd.Choices(p, g)
	if err := cmd.Select(engine.Temple); err != nil {
		t.Fatalf("Select: %v", err)
	}
	cmd.Cancel(p, g)

	if cmd.Ready() {
		t.Error("ready after cancel")
	}
	if len(cmd.Drawn()) != 0 {
		t.Errorf("drawn = %v after cancel", cmd.Drawn())
	}
	cards := g.Districts().Cards()
	want := []engine.District{engine.Tavern, engine.Temple, engine.Market}
	for i := range want {
		if cards[i] != want[i] {
			t.Fatalf("deck = %v, want %v", cards, want)
		}
	}
	if p.HandSize() != 0 {
		t.Errorf("hand = %v, want the kept card returned", p.Hand())
	}
}

func TestDrawSomeCardsRejectsUnoffered(t *testing.T) {
	g := newGame([]engine.District{engine.Tavern, engine.Temple, engine.Market}, "a")
	p := g.PlayerByName("a")

	cmd := NewDrawSomeCards(2, 1, 0)
	cmd.Choices(p, g)
	if err := cmd.Select(engine.Market); !errors.Is(err, engine.ErrIllegalSelection) {
		t.Errorf("Select undrawn card: %v, want ErrIllegalSelection", err)
	}
}

func TestKillExcludesAssassinAndWithheld(t *testing.T) {
	g := newGame(nil, "a", "b")
	turn := g.NewTurn()
	turn.Withhold(engine.RoleBishop, true)

	cmd := NewKill()
	choices := cmd.Choices(g.PlayerByName("a"), g)
	for _, c := range choices {
		if c == engine.RoleAssassin || c == engine.RoleBishop {
			t.Errorf("illegal target offered: %v", c)
		}
	}
	if len(choices) != 6 {
		t.Errorf("choices = %d, want 6", len(choices))
	}

	if err := cmd.Select(engine.RoleKing); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := cmd.Apply(g.PlayerByName("a"), g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g.Turn().Killed() != engine.RoleKing {
		t.Errorf("killed = %v, want King", g.Turn().Killed())
	}
}

func TestRobExcludesKilled(t *testing.T) {
	g := newGame(nil, "a", "b")
	turn := g.NewTurn()
	if err := turn.SetKilled(engine.RoleKing); err != nil {
		t.Fatalf("SetKilled: %v", err)
	}

	cmd := NewRob()
	choices := cmd.Choices(g.PlayerByName("a"), g)
	for _, c := range choices {
		switch c {
		case engine.RoleAssassin, engine.RoleThief, engine.RoleKing:
			t.Errorf("illegal target offered: %v", c)
		}
	}
	if len(choices) != 5 {
		t.Errorf("choices = %d, want 5", len(choices))
	}
}

func TestSwapHands(t *testing.T) {
	g := newGame(nil, "a", "b")
	a := g.PlayerByName("a")
	b := g.PlayerByName("b")
	a.TakeCard(engine.Tavern)
	b.TakeCard(engine.Palace)
	b.TakeCard(engine.Temple)

	cmd := NewSwapHands()
	choices := cmd.Choices(a, g)
	if len(choices) != 1 || choices[0] != b.ID() {
		t.Fatalf("choices = %v, want just the other player", choices)
	}
	if err := cmd.Select(b.ID()); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := cmd.Apply(a, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if a.HandSize() != 2 || b.HandSize() != 1 {
		t.Errorf("hands = %d and %d, want 2 and 1", a.HandSize(), b.HandSize())
	}
}

func TestReplaceHand(t *testing.T) {
	g := newGame([]engine.District{engine.Market}, "a")
	p := g.PlayerByName("a")
	p.TakeCard(engine.Tavern)
	p.TakeCard(engine.Temple)

	cmd := NewReplaceHand()
	choices := cmd.Choices(p, g)
	if len(choices) != 2 {
		t.Fatalf("choices = %v, want both hand cards", choices)
	}
	if err := cmd.Select(engine.Tavern); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !cmd.Ready() {
		t.Fatal("replace hand must always be ready")
	}
	if err := cmd.Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if !p.HandHas(engine.Market) || p.HandHas(engine.Tavern) || p.HandSize() != 2 {
		t.Errorf("hand = %v, want [Temple Market]", p.Hand())
	}
	if cards := g.Districts().Cards(); len(cards) != 1 || cards[0] != engine.Tavern {
		t.Errorf("deck = %v, want the buried Tavern", cards)
	}
}

func TestReplaceHandOffersEachCopyOnce(t *testing.T) {
	g := newGame([]engine.District{engine.Market, engine.Docks}, "a")
	p := g.PlayerByName("a")
	p.TakeCard(engine.Tavern)
	p.TakeCard(engine.Tavern)

	cmd := NewReplaceHand()
	if err := cmd.Select(cmd.Choices(p, g)[0]); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := cmd.Choices(p, g); len(got) != 1 {
		t.Errorf("second offer = %v, want one remaining copy", got)
	}
}

func TestBuild(t *testing.T) {
	g := newGame(nil, "a")
	p := g.PlayerByName("a")
	p.CashIn(3)
	p.TakeCard(engine.Tavern)
	p.TakeCard(engine.Palace)

	cmd := NewBuild()
	choices := cmd.Choices(p, g)
	if len(choices) != 1 || choices[0] != engine.Tavern {
		t.Fatalf("choices = %v, want only the affordable Tavern", choices)
	}
	if err := cmd.Select(engine.Tavern); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := cmd.Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !p.CityHas(engine.Tavern) || p.Gold() != 2 || p.HandHas(engine.Tavern) {
		t.Errorf("after build: city=%v gold=%d hand=%v", p.City(), p.Gold(), p.Hand())
	}
}

func TestBuildExcludesDuplicates(t *testing.T) {
	g := newGame(nil, "a")
	p := g.PlayerByName("a")
	p.CashIn(5)
	p.TakeCard(engine.Tavern)
	p.BuildDistrict(engine.Tavern)

	cmd := NewBuild()
	if choices := cmd.Choices(p, g); len(choices) != 0 {
		t.Errorf("choices = %v, want none for a duplicate", choices)
	}
}

func TestDestroyTwoSteps(t *testing.T) {
	g := newGame(nil, "warlord", "victim")
	actor := g.PlayerByName("warlord")
	victim := g.PlayerByName("victim")
	actor.SetRole(engine.RoleWarlord)
	victim.SetRole(engine.RoleMerchant)
	actor.CashIn(3)
	victim.BuildDistrict(engine.Tavern)
	victim.BuildDistrict(engine.Palace)

	cmd := NewDestroy(OnEndTurn)
	choices := cmd.Choices(actor, g)
	if len(choices) != 1 || choices[0] != victim.ID() {
		t.Fatalf("target choices = %v, want just the victim", choices)
	}
	if err := cmd.Select(victim.ID()); err != nil {
		t.Fatalf("Select target: %v", err)
	}

	// Palace costs 5, destroying it needs 4: only the Tavern is affordable
	choices = cmd.Choices(actor, g)
	if len(choices) != 1 || choices[0] != engine.Tavern {
		t.Fatalf("district choices = %v, want only the Tavern", choices)
	}
	if err := cmd.Select(engine.Tavern); err != nil {
		t.Fatalf("Select district: %v", err)
	}

	if err := cmd.Apply(actor, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if victim.CityHas(engine.Tavern) {
		t.Error("tavern still standing")
	}
	if actor.Gold() != 3 {
		t.Errorf("gold = %d, destroying a 1-cost district is free", actor.Gold())
	}
	if !g.Districts().Contains(engine.Tavern) {
		t.Error("destroyed district not returned to the deck")
	}
}

func TestDestroySparesBishopAndCompleteCities(t *testing.T) {
	g := newGame(nil, "warlord", "bishop", "done")
	actor := g.PlayerByName("warlord")
	actor.SetRole(engine.RoleWarlord)
	actor.CashIn(10)

	bishop := g.PlayerByName("bishop")
	bishop.SetRole(engine.RoleBishop)
	bishop.BuildDistrict(engine.Tavern)

	done := g.PlayerByName("done")
	for i := 0; i < engine.CitySize; i++ {
		done.BuildDistrict(engine.Temple)
	}

	cmd := NewDestroy(OnEndTurn)
	if choices := cmd.Choices(actor, g); len(choices) != 0 {
		t.Errorf("choices = %v, want no targets", choices)
	}
}

func TestDestroyCost(t *testing.T) {
	if DestroyCost(engine.Tavern) != 0 {
		t.Errorf("Tavern destroy cost = %d, want 0", DestroyCost(engine.Tavern))
	}
	if DestroyCost(engine.Palace) != 4 {
		t.Errorf("Palace destroy cost = %d, want 4", DestroyCost(engine.Palace))
	}
}

func TestTakeCrown(t *testing.T) {
	g := newGame(nil, "a", "b")
	b := g.PlayerByName("b")
	cmd := NewTakeCrown(OnStartTurn | Compulsory)
	if err := cmd.Apply(b, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g.CrownedPlayer() != b {
		t.Error("crown did not move")
	}
}

func TestInteractiveNotReady(t *testing.T) {
	g := newGame(nil, "a", "b")
	g.NewTurn()
	cmd := NewKill()
	if err := cmd.Apply(g.PlayerByName("a"), g); !errors.Is(err, ErrNotReady) {
		t.Errorf("Apply unready: %v, want ErrNotReady", err)
	}
}

func TestSelectWithoutOffer(t *testing.T) {
	cmd := NewKill()
	if err := cmd.Select(engine.RoleKing); !errors.Is(err, engine.ErrIllegalSelection) {
		t.Errorf("Select before Choices: %v, want ErrIllegalSelection", err)
	}
}
