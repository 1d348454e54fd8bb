package game_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/they4kman/squaresweep/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadGameConfig(t *testing.T) {
	path := writeConfig(t, "size: 8\nmines: 10\nseed: 1234\n")

	config, err := game.LoadGameConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	want := game.GameConfig{Size: 8, NumMines: 10, Seed: 1234}
	if config != want {
		t.Fatalf("config = %+v, want %+v", config, want)
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestLoadGameConfigPartial(t *testing.T) {
	config, err := game.LoadGameConfig(writeConfig(t, "size: 5\n"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Size != 5 || config.NumMines != 0 || config.Seed != 0 {
		t.Fatalf("unexpected config: %+v", config)
	}
	if !errors.Is(config.Validate(), game.ErrInvalidConfiguration) {
		t.Fatalf("config without mines should not validate")
	}
}

func TestLoadGameConfigErrors(t *testing.T) {
	if _, err := game.LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got: %v", err)
	}
	if _, err := game.LoadGameConfig(writeConfig(t, "size: [1, 2\n")); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := game.LoadGameConfig(writeConfig(t, "size: lots\n")); err == nil {
		t.Fatalf("expected a type error")
	}
}

func TestCreateBoardIsSeeded(t *testing.T) {
	config := game.GameConfig{Size: 10, NumMines: 20, Seed: 99}

	first, err := config.CreateBoard()
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	second, err := config.CreateBoard()
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if !reflect.DeepEqual(first.Mines(), second.Mines()) {
		t.Fatalf("same seed produced different layouts:\n%v\n%v", first.Mines(), second.Mines())
	}
}

func TestCreateBoardInvalid(t *testing.T) {
	config := game.GameConfig{Size: 3, NumMines: 9, Seed: 1}
	if _, err := config.CreateBoard(); !errors.Is(err, game.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got: %v", err)
	}
}
