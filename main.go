package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"helios/agent"
	"helios/engine"
	"helios/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", 10, "Number of matches to play")
	difficulty := flag.String("difficulty", "medium", "Bot difficulty: easy, medium or hard")
	opponent := flag.String("opponent", "random", "Opponent of the bot: bot or random")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of the first match")
	profiles := flag.String("profiles", "", "YAML file overriding the built-in deck and difficulty profiles")
	out := flag.String("out", "", "Directory to store game and move records as CSV")
	jsonLogs := flag.Bool("json", false, "Log JSON instead of console output")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	if !*jsonLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*games, *difficulty, *opponent, *seed, *profiles, *out); err != nil {
		log.Error().Err(err).Msg("self-play failed")
		os.Exit(1)
	}
}

func run(games int, difficulty, opponent string, seed uint64, profiles, out string) error {
	config := meta.Default()
	if profiles != "" {
		var err error
		if config, err = meta.Load(profiles); err != nil {
			return err
		}
	}
	level, err := meta.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	profile, err := config.Profile(level)
	if err != nil {
		return err
	}

	players := [2]string{"bot", opponent}
	if opponent == "bot" {
		players = [2]string{"bot1", "bot2"}
	} else if opponent != "random" {
		return fmt.Errorf("unknown opponent %q", opponent)
	}

	log.Info().Msgf("playing %d matches of %s vs %s at %s difficulty (%+v)", games, players[0], players[1], level, profile)

	wins := map[string]int{}
	stalled := 0
	var gameMetrics []engine.GameMetric
	var moveRecords []engine.MoveRecord

	for i := 0; i < games; i++ {
		matchSeed := seed + uint64(i)
		botConfig := profile.BotConfig()
		botConfig.Seed = matchSeed

		agents := [2]agent.Agent{agent.NewMCTSAgent(botConfig), agent.NewRandomAgent(matchSeed)}
		if opponent == "bot" {
			other := botConfig
			other.Seed = matchSeed + 1
			agents[1] = agent.NewMCTSAgent(other)
		}

		e := engine.NewLocal(players, agents, config.Deck.NewDeck(), matchSeed)
		gameMetric, moveMetrics, err := e.Run()
		switch {
		case err == nil:
			wins[gameMetric.Winner]++
		case errors.Is(err, engine.ErrStalled):
			stalled++
		default:
			return err
		}

		gameMetrics = append(gameMetrics, gameMetric)
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, engine.MoveRecord{Game: gameMetric.ID.String(), MoveMetric: mm})
		}
		log.Info().Msgf("completed match %d of %d: %s %d, %s %d", i+1, games, players[0], wins[players[0]], players[1], wins[players[1]])
	}

	log.Info().
		Int(players[0], wins[players[0]]).
		Int(players[1], wins[players[1]]).
		Int("stalled", stalled).
		Int64("rejections", agent.Rejections()).
		Msg("self-play complete")

	if out == "" {
		return nil
	}
	writer, err := engine.NewWriter(out)
	if err != nil {
		return err
	}
	if err := writer.WriteGames(gameMetrics); err != nil {
		return err
	}
	if err := writer.WriteMoves(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored records in %s", out)
	return nil
}
