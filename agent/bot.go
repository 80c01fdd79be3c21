package agent

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"helios/game"
	"helios/searcher"

	"github.com/rs/zerolog/log"
)

const DefaultTimeout = 100 * time.Millisecond

var ErrNotBotTurn = errors.New("not the bot's turn")

// Config is the search budget of a bot decision. Episodes, when positive,
// replaces the timeout with a fixed number of episodes; a non-zero Seed makes
// the search reproducible.
type Config struct {
	Timeout           time.Duration
	ExplorationFactor float64
	Goroutines        int
	Episodes          int
	Cutoff            int
	Seed              uint64
}

func (c Config) options() []searcher.Option {
	options := []searcher.Option{searcher.WithMetrics()}

	if c.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(c.Episodes))
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	options = append(options, searcher.WithDuration(timeout))

	exploration := c.ExplorationFactor
	if exploration <= 0 {
		exploration = math.Sqrt2
	}
	options = append(options, searcher.WithExploration(exploration))

	if c.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(c.Cutoff))
	}
	if c.Seed != 0 {
		options = append(options, searcher.WithSeed(c.Seed))
	}
	return options
}

// Decision is what the bot does on its turn: skip, play Cards, or give Cards
// away to complete its own Artemis play.
type Decision struct {
	Skip  bool
	Gift  bool
	Cards []game.CardID
}

func (d Decision) String() string {
	switch {
	case d.Skip:
		return "skip"
	case d.Gift:
		return fmt.Sprintf("give %v", d.Cards)
	}
	return fmt.Sprintf("play %v", d.Cards)
}

// Apply runs the decision through the rules engine for playerID.
func (d Decision) Apply(s *game.GameState, playerID string, src game.Source) (*game.GameState, *game.Draw, error) {
	switch {
	case d.Skip:
		return game.SkipTurn(s, src)
	case d.Gift:
		next, err := game.ApplyArtemisTransfer(s, d.Cards)
		return next, nil, err
	default:
		next, err := game.PlayCards(s, playerID, d.Cards)
		return next, nil, err
	}
}

var rejections atomic.Int64

// Rejections counts the searched moves the rules engine refused, over the
// life of the process.
func Rejections() int64 {
	return rejections.Load()
}

// ChooseBotMove searches the position for botID and returns a move the rules
// engine accepts. A pending Artemis gift is answered with the weakest cards.
func ChooseBotMove(s *game.GameState, botID string, config Config) (Decision, error) {
	decision, _, err := chooseBotMove(s, botID, config)
	return decision, err
}

func chooseBotMove(s *game.GameState, botID string, config Config) (Decision, searcher.SearchMetric, error) {
	if err := checkTurn(s, botID); err != nil {
		return Decision{}, searcher.SearchMetric{}, err
	}
	if s.PendingArtemis > 0 {
		return Decision{Gift: true, Cards: ChooseArtemisGift(s, botID)}, searcher.SearchMetric{}, nil
	}

	mcts := searcher.NewMCTS(config.Goroutines, config.options()...)
	move, metric := mcts.Search(game.NewPosition(s))
	log.Debug().Msgf("%s searched %d episodes (%d full playouts) in %v, picked %v",
		botID, metric.Episodes, metric.FullPlayouts, metric.Duration, move)

	return validate(s, botID, move), metric, nil
}

func checkTurn(s *game.GameState, botID string) error {
	if game.IsGameOver(s).IsOver {
		return fmt.Errorf("cannot choose move: %w", game.ErrGameOver)
	}
	if s.CurrentPlayerID() != botID {
		return fmt.Errorf("cannot choose move for %s: %w", botID, ErrNotBotTurn)
	}
	return nil
}

// validate maps the searched move onto the bot's hand and re-checks it
// against the rules engine, falling back to a skip, or to the first legal
// play when a skip is not allowed.
func validate(s *game.GameState, botID string, move game.Move) Decision {
	var decision Decision
	var err error

	switch m := move.(type) {
	case nil:
		decision = Decision{Skip: true}
	case game.SkipMove:
		decision = Decision{Skip: true}
	case game.PlayMove:
		cards, ok := fromHand(s.Hand(botID), m.Cards)
		if !ok {
			err = fmt.Errorf("%w: searched cards are not in the hand", game.ErrIllegalMove)
			break
		}
		decision = Decision{Cards: cards}
		_, err = game.PlayCards(s, botID, cards)
	default:
		err = fmt.Errorf("unexpected move type %T", move)
	}
	if err == nil && decision.Skip && !game.CanSkip(s, botID) {
		err = fmt.Errorf("%w: skip on an empty trick", game.ErrIllegalMove)
	}
	if err == nil {
		return decision
	}

	rejections.Add(1)
	log.Warn().Msgf("bot move %v rejected for %s: %v", move, botID, err)

	if game.CanSkip(s, botID) {
		return Decision{Skip: true}
	}
	if plays := game.LegalPlays(s, botID); len(plays) > 0 {
		return Decision{Cards: plays[0]}
	}
	return Decision{Skip: true}
}

// fromHand resolves the move's cards by id against the hand, never by rank,
// so two cards of the same rank cannot be confused.
func fromHand(hand []game.CardID, cards []game.CardID) ([]game.CardID, bool) {
	resolved := make([]game.CardID, 0, len(cards))
	for _, id := range cards {
		i := slices.Index(hand, id)
		if i < 0 {
			return nil, false
		}
		resolved = append(resolved, hand[i])
	}
	return resolved, true
}

// ChooseArtemisGift gives away the bot's weakest cards, one per Artemis played.
func ChooseArtemisGift(s *game.GameState, botID string) []game.CardID {
	return game.WeakestCards(s, botID, s.PendingArtemis)
}
