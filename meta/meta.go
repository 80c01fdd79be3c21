// meta/meta.go
package meta

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"helios/agent"
	"helios/game"

	"gopkg.in/yaml.v3"
)

// MAX_TURNS caps a self-play match before it is declared stalled.
const MAX_TURNS = 2000

// WITH_CUTOFF defines the playout cutoff used by bots.
const WITH_CUTOFF = 500

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Profile is the search budget of one difficulty.
type Profile struct {
	Timeout     time.Duration `yaml:"timeout"`
	Exploration float64       `yaml:"exploration"`
	Goroutines  int           `yaml:"goroutines"`
}

func (p Profile) BotConfig() agent.Config {
	return agent.Config{
		Timeout:           p.Timeout,
		ExplorationFactor: p.Exploration,
		Goroutines:        p.Goroutines,
		Cutoff:            WITH_CUTOFF,
	}
}

type DeckConfig struct {
	Hypnos  int `yaml:"hypnos"`
	Artemis int `yaml:"artemis"`
	Hades   int `yaml:"hades"`
	Joker   int `yaml:"joker"`
}

func (d DeckConfig) PowerCounts() game.PowerCounts {
	return game.PowerCounts{
		game.Hypnos:  d.Hypnos,
		game.Artemis: d.Artemis,
		game.Hades:   d.Hades,
		game.Joker:   d.Joker,
	}
}

func (d DeckConfig) NewDeck() *game.Deck {
	return game.NewDeckWith(d.PowerCounts())
}

type Config struct {
	Deck         DeckConfig             `yaml:"deck"`
	Difficulties map[Difficulty]Profile `yaml:"difficulties"`
}

//go:embed profiles.yaml
var defaultConfig []byte

// Default returns the built-in deck and difficulty profiles.
func Default() Config {
	config, err := Parse(defaultConfig)
	if err != nil {
		panic(err)
	}
	return config
}

// Load reads a YAML config file. Sections missing from the file keep their
// built-in values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot load config: %w", err)
	}
	return parseOver(Default(), data)
}

func Parse(data []byte) (Config, error) {
	return parseOver(Config{}, data)
}

func parseOver(config Config, data []byte) (Config, error) {
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("cannot parse config: %w", err)
	}
	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c Config) validate() error {
	for kind, count := range c.Deck.PowerCounts() {
		if count < 0 {
			return fmt.Errorf("negative %s count", kind)
		}
	}
	for difficulty, profile := range c.Difficulties {
		if _, err := ParseDifficulty(string(difficulty)); err != nil {
			return err
		}
		if profile.Timeout <= 0 {
			return fmt.Errorf("%s: timeout must be positive", difficulty)
		}
		if profile.Exploration < 0 {
			return fmt.Errorf("%s: exploration must not be negative", difficulty)
		}
		if profile.Goroutines < 1 {
			return fmt.Errorf("%s: at least one goroutine is needed", difficulty)
		}
	}
	return nil
}

func (c Config) Profile(difficulty Difficulty) (Profile, error) {
	profile, ok := c.Difficulties[difficulty]
	if !ok {
		return Profile{}, fmt.Errorf("no profile for difficulty %q", difficulty)
	}
	return profile, nil
}
