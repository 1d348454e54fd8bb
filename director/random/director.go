package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/squaresweep/game"
	"github.com/they4kman/squaresweep/util/collections"
)

var Log = logrus.New()

// Director reveals cells in a random order
type Director struct {
	Rand *rand.Rand

	// Cells to skip while any other unrevealed cell remains
	Avoid collections.Set[game.Position]

	board *game.Board
	order []*game.Cell
}

func New(rng *rand.Rand) *Director {
	return &Director{Rand: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	if director.Rand == nil {
		director.Rand = board.Rand()
	}
	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(int64(board.NumCells())))
	}

	director.order = board.Cells()
	director.Rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() game.RevealResult {
	cell := director.pick()
	if cell == nil {
		return game.RevealResult{Status: director.board.Status()}
	}

	Log.WithField("cell", cell).Debug("revealing random cell")
	return director.board.Reveal(cell.Row(), cell.Col())
}

func (director *Director) pick() *game.Cell {
	var avoided *game.Cell
	for _, cell := range director.order {
		if cell.IsRevealed() {
			continue
		}
		if director.Avoid.Contains(cell.Position()) {
			if avoided == nil {
				avoided = cell
			}
			continue
		}
		return cell
	}
	return avoided
}
