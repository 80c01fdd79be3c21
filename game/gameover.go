package game

type Reason int

const (
	NotOver         Reason = iota
	EmptyHand              // Empty hand wins
	PowerCardFinish        // Hand emptied by a power card loses
	ArtemisThreat          // Empty hand, but the opponent can still give cards back
)

func (r Reason) String() string {
	switch r {
	case EmptyHand:
		return "empty hand"
	case PowerCardFinish:
		return "finishing on a power card is a loss"
	case ArtemisThreat:
		return "opponent still holds Artemis"
	}
	return "not over"
}

type Outcome struct {
	IsOver bool
	Winner string
	Loser  string
	Reason Reason
}

// IsGameOver checks the player who acted last first, then the other. An
// empty hand wins unless the opponent holds an active Artemis (the game goes
// on), and loses instead when a power card emptied it.
func IsGameOver(s *GameState) Outcome {
	if s.PendingArtemis > 0 {
		// The Artemis effect is still being resolved
		return Outcome{Reason: ArtemisThreat}
	}

	first := s.lastActor
	if first < 0 {
		first = s.Current
	}
	for _, seat := range [2]int{first, 1 - first} {
		if len(s.Hands[seat]) > 0 {
			continue
		}
		opponent := 1 - seat
		if s.holdsActiveArtemis(opponent) {
			return Outcome{Reason: ArtemisThreat}
		}
		if s.emptiedByPower[seat] {
			return Outcome{IsOver: true, Winner: s.Players[opponent], Loser: s.Players[seat], Reason: PowerCardFinish}
		}
		return Outcome{IsOver: true, Winner: s.Players[seat], Loser: s.Players[opponent], Reason: EmptyHand}
	}
	return Outcome{}
}

func (s *GameState) holdsActiveArtemis(seat int) bool {
	for _, id := range s.Hands[seat] {
		if s.EffectiveRank(id) == Power(Artemis) {
			return true
		}
	}
	return false
}
