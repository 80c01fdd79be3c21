package game

import (
	"cmp"
	"fmt"
	"strconv"
)

type PowerKind uint8

const (
	NoPower PowerKind = iota // 0
	Hypnos                   // 1
	Artemis                  // 2
	Hades                    // 3
	Joker                    // 4
)

var powerNames = [...]string{"None", "Hypnos", "Artemis", "Hades", "Joker"}

func (k PowerKind) String() string {
	if int(k) < len(powerNames) {
		return powerNames[k]
	}
	return "PowerKind(" + strconv.Itoa(int(k)) + ")"
}

// Standard face values
const (
	MinFace uint8 = 2
	Jack    uint8 = 11
	Queen   uint8 = 12
	King    uint8 = 13
	Ace     uint8 = 14
)

// Rank is either a standard face (2..14) or one of the four power tiers.
// Every power tier outranks every standard face.
type Rank struct {
	face  uint8
	power PowerKind
}

// LowestRank is what a disabled card compares as.
var LowestRank = Standard(MinFace)

func Standard(face uint8) Rank {
	if face < MinFace || face > Ace {
		panic(fmt.Sprintf("invalid standard face %d", face))
	}
	return Rank{face: face}
}

func Power(kind PowerKind) Rank {
	if kind == NoPower || kind > Joker {
		panic(fmt.Sprintf("invalid power kind %d", kind))
	}
	return Rank{power: kind}
}

func (r Rank) IsPower() bool {
	return r.power != NoPower
}

func (r Rank) Kind() PowerKind {
	return r.power
}

func (r Rank) Face() uint8 {
	return r.face
}

// Value maps the rank onto the flat 2..18 scale (Hypnos=15, Artemis=16,
// Hades=17, Joker=18).
func (r Rank) Value() int {
	if r.IsPower() {
		return int(Ace) + int(r.power)
	}
	return int(r.face)
}

// Compare returns -1, 0 or +1 when r is lower than, equal to or higher than other.
func (r Rank) Compare(other Rank) int {
	switch {
	case r.IsPower() && !other.IsPower():
		return 1
	case !r.IsPower() && other.IsPower():
		return -1
	case r.IsPower():
		return cmp.Compare(r.power, other.power)
	default:
		return cmp.Compare(r.face, other.face)
	}
}

func (r Rank) String() string {
	if r.IsPower() {
		return r.power.String()
	}
	switch r.face {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r.face))
}

// Suit has no bearing on legality
type Suit uint8

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suitSymbols = [...]string{"", "♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if int(s) < len(suitSymbols) {
		return suitSymbols[s]
	}
	return "?"
}

// CardID indexes a card in its Deck. Zones hold ids, never Card values.
type CardID int

type Card struct {
	ID   CardID
	Rank Rank
	Suit Suit
}

func (c Card) IsPower() bool {
	return c.Rank.IsPower()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
