package engine

import "math/rand/v2"

// Deck is an ordered pile of cards. A deck holds roles or districts, never
// both; the Match owns every deck in play.
type Deck[T comparable] struct {
	cards []T
}

// NewDeck creates a deck from the given cards, preserving their order.
func NewDeck[T comparable](cards []T) *Deck[T] {
	d := &Deck[T]{cards: make([]T, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle permutes the deck uniformly at random.
func (d *Deck[T]) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// TakeFromTop removes and returns the top card.
func (d *Deck[T]) TakeFromTop() (T, error) {
	var zero T
	if len(d.cards) == 0 {
		return zero, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// TakeRandom removes and returns a uniformly chosen card.
func (d *Deck[T]) TakeRandom() (T, error) {
	var zero T
	if len(d.cards) == 0 {
		return zero, ErrEmptyDeck
	}
	i := rand.IntN(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card, nil
}

// Take removes the first occurrence of the given card.
func (d *Deck[T]) Take(card T) error {
	for i, c := range d.cards {
		if c == card {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			return nil
		}
	}
	return ErrNotInDeck
}

// PutOnTop inserts a card at the top of the deck.
func (d *Deck[T]) PutOnTop(card T) {
	d.cards = append([]T{card}, d.cards...)
}

// PutOnBottom inserts a card at the bottom of the deck.
func (d *Deck[T]) PutOnBottom(card T) {
	d.cards = append(d.cards, card)
}

// Contains reports whether the card is somewhere in the deck.
func (d *Deck[T]) Contains(card T) bool {
	for _, c := range d.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Len returns the number of cards remaining.
func (d *Deck[T]) Len() int {
	return len(d.cards)
}

// Cards returns a read-only snapshot of the deck, top first.
func (d *Deck[T]) Cards() []T {
	out := make([]T, len(d.cards))
	copy(out, d.cards)
	return out
}

// Clone returns an independent copy of the deck.
func (d *Deck[T]) Clone() *Deck[T] {
	return NewDeck(d.cards)
}
