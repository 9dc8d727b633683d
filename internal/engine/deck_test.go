package engine

import (
	"errors"
	"testing"
)

func TestDeckTakeFromTop(t *testing.T) {
	d := NewDeck([]District{Tavern, Temple, Market})

	card, err := d.TakeFromTop()
	if err != nil {
		t.Fatalf("TakeFromTop: %v", err)
	}
	if card != Tavern {
		t.Errorf("got %v, want %v", card, Tavern)
	}
	if d.Len() != 2 {
		t.Errorf("len = %d, want 2", d.Len())
	}
}

func TestDeckEmpty(t *testing.T) {
	d := NewDeck([]District{})
	if _, err := d.TakeFromTop(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("TakeFromTop: got %v, want ErrEmptyDeck", err)
	}
	if _, err := d.TakeRandom(); !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("TakeRandom: got %v, want ErrEmptyDeck", err)
	}
}

func TestDeckTake(t *testing.T) {
	d := NewDeck([]District{Tavern, Temple, Market})

	if err := d.Take(Temple); err != nil {
		t.Fatalf("Take: %v", err)
	}
	if d.Contains(Temple) {
		t.Error("deck still contains taken card")
	}
	if err := d.Take(Palace); !errors.Is(err, ErrNotInDeck) {
		t.Errorf("Take absent: got %v, want ErrNotInDeck", err)
	}
}

func TestDeckPut(t *testing.T) {
	d := NewDeck([]District{Temple})
	d.PutOnTop(Tavern)
	d.PutOnBottom(Market)

	want := []District{Tavern, Temple, Market}
	got := d.Cards()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cards[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDeckTakeRandomRemoves(t *testing.T) {
	d := NewDeck([]District{Tavern, Temple, Market})
	seen := map[District]bool{}
	for d.Len() > 0 {
		card, err := d.TakeRandom()
		if err != nil {
			t.Fatalf("TakeRandom: %v", err)
		}
		if seen[card] {
			t.Fatalf("card %v drawn twice", card)
		}
		seen[card] = true
	}
	if len(seen) != 3 {
		t.Errorf("drew %d distinct cards, want 3", len(seen))
	}
}

func TestDeckCloneIndependent(t *testing.T) {
	d := NewDeck([]District{Tavern, Temple})
	c := d.Clone()
	if _, err := c.TakeFromTop(); err != nil {
		t.Fatalf("TakeFromTop: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("original len = %d after mutating clone, want 2", d.Len())
	}
}

func TestNewDeckCopiesInput(t *testing.T) {
	cards := []District{Tavern, Temple}
	d := NewDeck(cards)
	cards[0] = Palace
	if got := d.Cards()[0]; got != Tavern {
		t.Errorf("deck shares backing array with input: got %v", got)
	}
}
