package game

import "fmt"

// PowerCounts is the number of copies of each power card in a deck.
type PowerCounts map[PowerKind]int

var DefaultPowerCounts = PowerCounts{Hypnos: 2, Artemis: 2, Hades: 2, Joker: 2}

// Deck is the immutable card arena shared by every GameState of a match.
type Deck struct {
	cards []Card
}

// NewDeck builds the standard 52 cards plus two of each power card.
func NewDeck() *Deck {
	return NewDeckWith(DefaultPowerCounts)
}

func NewDeckWith(powers PowerCounts) *Deck {
	cards := make([]Card, 0, 52+len(powers)*2)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for face := MinFace; face <= Ace; face++ {
			cards = append(cards, Card{ID: CardID(len(cards)), Rank: Standard(face), Suit: suit})
		}
	}
	for kind := Hypnos; kind <= Joker; kind++ {
		if powers[kind] < 0 {
			panic(fmt.Sprintf("negative count for %s", kind))
		}
		for i := 0; i < powers[kind]; i++ {
			cards = append(cards, Card{ID: CardID(len(cards)), Rank: Power(kind)})
		}
	}
	return &Deck{cards: cards}
}

// NewDeckOf builds a deck holding exactly the given ranks, in order. Standard
// cards cycle through the suits.
func NewDeckOf(ranks ...Rank) *Deck {
	cards := make([]Card, len(ranks))
	for i, rank := range ranks {
		suit := NoSuit
		if !rank.IsPower() {
			suit = Suit(i%4) + Clubs
		}
		cards[i] = Card{ID: CardID(i), Rank: rank, Suit: suit}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Card(id CardID) Card {
	return d.cards[id]
}

func (d *Deck) IDs() []CardID {
	ids := make([]CardID, len(d.cards))
	for i := range ids {
		ids[i] = CardID(i)
	}
	return ids
}
