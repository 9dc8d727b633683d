package engine

import (
	"encoding/json"
	"testing"
)

func fixtureGame() *Game {
	g := NewGame(AllRoles(), SimpleDistricts())
	a := g.AddPlayer("a")
	b := g.AddPlayer("b")
	a.CashIn(3)
	a.TakeCard(Tavern)
	a.BuildDistrict(Temple)
	a.SetRole(RoleKing)
	b.CashIn(1)
	b.SetRole(RoleThief)
	g.SetCrownedPlayer(a)
	turn := g.NewTurn()
	turn.Withhold(RoleWarlord, true)
	turn.SetKilled(RoleBishop)
	return g
}

func assertFixtureState(t *testing.T, g *Game) {
	t.Helper()
	a := g.PlayerByName("a")
	if a == nil {
		t.Fatal("player a missing")
	}
	if a.Gold() != 3 {
		t.Errorf("a gold = %d, want 3", a.Gold())
	}
	if a.Role() != RoleKing {
		t.Errorf("a role = %v, want King", a.Role())
	}
	if !a.HandHas(Tavern) || !a.CityHas(Temple) {
		t.Error("a hand/city not restored")
	}
	if g.CrownedPlayer() == nil || g.CrownedPlayer().Name() != "a" {
		t.Error("crown not restored")
	}
	if g.Round() != 1 {
		t.Errorf("round = %d, want 1", g.Round())
	}
	if g.Turn() == nil {
		t.Fatal("turn missing")
	}
	if g.Turn().Killed() != RoleBishop {
		t.Errorf("killed = %v, want Bishop", g.Turn().Killed())
	}
	if !g.Turn().IsWithheld(RoleWarlord) {
		t.Error("withheld role missing")
	}
}

func TestGameJSONRoundTrip(t *testing.T) {
	g := fixtureGame()

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var restored Game
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	assertFixtureState(t, &restored)

	// back-references must point at the restored game
	restored.PlayerByName("b").CashIn(2)
	if restored.PlayerByName("b").Gold() != 3 {
		t.Error("restored player not wired to restored bank")
	}
	if g.PlayerByName("b").Gold() != 1 {
		t.Error("restored game shares bank with original")
	}
}

func TestGameClone(t *testing.T) {
	g := fixtureGame()
	c := g.Clone()
	assertFixtureState(t, c)

	c.PlayerByName("a").CashIn(10)
	c.PlayerByName("a").BuildDistrict(Palace)
	if g.PlayerByName("a").Gold() != 3 {
		t.Error("clone shares bank with original")
	}
	if g.PlayerByName("a").CityHas(Palace) {
		t.Error("clone shares city with original")
	}

	if _, err := c.Districts().TakeFromTop(); err != nil {
		t.Fatalf("TakeFromTop: %v", err)
	}
	if g.Districts().Len() != c.Districts().Len()+1 {
		t.Error("clone shares district deck with original")
	}
}

func TestCloneDropsListeners(t *testing.T) {
	g := fixtureGame()
	rec := &recorder{}
	g.Events().AddListener(rec)

	c := g.Clone()
	before := len(rec.events)
	c.PlayerByName("a").CashIn(1)
	if len(rec.events) != before {
		t.Error("clone mutation notified the original's listener")
	}
}
