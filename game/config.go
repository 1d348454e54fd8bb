package game

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

type GameConfig struct {
	// Cells per side of the board. 0 means ask the player.
	Size int `yaml:"size"`
	// Number of mines to place. 0 means ask the player.
	NumMines int `yaml:"mines"`

	// Seed for mine placement; 0 seeds from the clock
	Seed int64 `yaml:"seed"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Size:     0,
		NumMines: 0,
		Seed:     0,
	}
}

// LoadGameConfig reads a yaml config file over the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	in, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(in, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

func (config GameConfig) Validate() error {
	return validateConfiguration(config.Size, config.NumMines)
}

func (config GameConfig) CreateBoard() (*Board, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewBoard(config.Size, config.NumMines, rand.New(rand.NewSource(seed)))
}
