package constraint_test

import (
	"math/rand"
	"testing"

	"github.com/they4kman/squaresweep/director/constraint"
	"github.com/they4kman/squaresweep/game"
	"github.com/they4kman/squaresweep/util/collections"
)

func TestSolvesWithoutGuessing(t *testing.T) {
	mine := game.Position{Row: 2, Col: 2}
	board, err := game.NewBoardWithMines(4, []game.Position{mine})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	// Opens everything except the corner around the mine
	board.Reveal(0, 0)

	director := constraint.New(rand.New(rand.NewSource(1)))
	if status := game.Play(board, director); status != game.Won {
		t.Fatalf("status = %v, want WON", status)
	}
	if !director.KnownMines().Equal(collections.NewSet(mine)) {
		t.Fatalf("known mines = %v, want only %v", director.KnownMines(), mine)
	}
}

func TestDeducedSafeCellIsRevealed(t *testing.T) {
	board, err := game.NewBoardWithMines(4, []game.Position{{Row: 2, Col: 2}})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	board.Reveal(0, 0)

	director := constraint.New(rand.New(rand.NewSource(1)))
	director.Init(board)

	result := director.Act()
	if result.Status == game.Lost {
		t.Fatalf("deduced move hit a mine")
	}
	if len(result.Revealed) != 1 {
		t.Fatalf("expected a single numbered cell, got %v", result.Revealed)
	}
}

func TestKnownMinesAreMines(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		board, err := game.NewBoard(9, 10, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("Failed to create board: %v", err)
		}

		director := constraint.New(rand.New(rand.NewSource(seed)))
		status := game.Play(board, director)
		if !status.IsTerminal() {
			t.Fatalf("seed %d: game ended %v", seed, status)
		}

		mines := collections.NewSet(board.Mines()...)
		if !director.KnownMines().IsSubset(mines) {
			t.Fatalf("seed %d: deduced mines %v are not all mines %v", seed, director.KnownMines(), mines)
		}
	}
}
