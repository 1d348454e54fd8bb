package random_test

import (
	"math/rand"
	"testing"

	"github.com/they4kman/squaresweep/director/random"
	"github.com/they4kman/squaresweep/game"
	"github.com/they4kman/squaresweep/util/collections"
)

func TestPlayReachesTerminalStatus(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		board, err := game.NewBoard(8, 10, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Failed to create board: %v", err)
		}

		status := game.Play(board, random.New(rand.New(rand.NewSource(seed))))
		if !status.IsTerminal() {
			t.Fatalf("seed %d: game ended %v", seed, status)
		}
	}
}

func TestActRevealsOneUnrevealedCell(t *testing.T) {
	board, err := game.NewBoardWithMines(4, []game.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	director := random.New(rand.New(rand.NewSource(3)))
	director.Avoid = collections.NewSet(board.Mines()...)
	director.Init(board)

	before := board.RevealedCount()
	result := director.Act()
	if len(result.Revealed) == 0 {
		t.Fatalf("director made no move")
	}
	if board.RevealedCount() != before+len(result.Revealed) {
		t.Fatalf("revealed count %d does not match %d revealed cells", board.RevealedCount(), len(result.Revealed))
	}
}

func TestAvoidedCellsAreSkipped(t *testing.T) {
	mines := []game.Position{{Row: 1, Col: 1}, {Row: 3, Col: 0}, {Row: 2, Col: 3}}
	for seed := int64(0); seed < 20; seed++ {
		board, err := game.NewBoardWithMines(5, mines)
		if err != nil {
			t.Fatalf("Failed to create board: %v", err)
		}

		director := random.New(rand.New(rand.NewSource(seed)))
		director.Avoid = collections.NewSet(mines...)

		if status := game.Play(board, director); status != game.Won {
			t.Fatalf("seed %d: avoiding every mine still ended %v", seed, status)
		}
	}
}

func TestActAfterGameOver(t *testing.T) {
	board, err := game.NewBoardWithMines(2, []game.Position{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	board.Reveal(0, 0)

	director := random.New(nil)
	director.Init(board)
	result := director.Act()
	if result.Status != game.Lost || len(result.Revealed) != 0 {
		t.Fatalf("Act after loss returned %+v", result)
	}
}
