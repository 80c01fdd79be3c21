package game

// ActionKind names the last event applied to a GameState, for narration.
type ActionKind int

const (
	GameBegin           ActionKind = iota // dice duel decided the starting player
	CardPlayed                            // standard cards put on the trick
	JokerPlayed                           // trick cleared, player keeps the turn
	HypnosPlayed                          // no standard card left to disable
	HadesPlayed                           // opponent had nothing to discard
	ArtemisPlayed                         // waiting for the player to pick gifts
	ArtemisGiven                          // gifts moved to the opponent
	HadesDiscarded                        // opponent's best card discarded
	HypnosTurnedOff                       // opponent's best standard card disabled
	DiceRollPickCard                      // skip with a draw
	DiceRollUnchanged                     // skip without a draw
	GameFinished                          // empty hand wins
	GameFinishedArtemis                   // empty hand, but the opponent still holds Artemis
	GameFinishedGod                       // hand emptied by a power card, so it loses
)

var actionNames = [...]string{
	"GameBegin", "CardPlayed", "JokerPlayed", "HypnosPlayed", "HadesPlayed",
	"ArtemisPlayed", "ArtemisGiven", "HadesDiscarded", "HypnosTurnedOff",
	"DiceRollPickCard", "DiceRollUnchanged", "GameFinished",
	"GameFinishedArtemis", "GameFinishedGod",
}

func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return "Unknown"
}

// Action is the event emitted by the last transition.
type Action struct {
	Kind     ActionKind
	PlayerID string
	TargetID string   // Opponent affected by the event, if any
	Cards    []CardID // Cards played, given, disabled or discarded
	Roll     int      // Dice value for GameBegin and skips
}
