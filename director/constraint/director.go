package constraint

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/squaresweep/director/random"
	"github.com/they4kman/squaresweep/game"
	"github.com/they4kman/squaresweep/util/collections"
)

var Log = logrus.New()

// Director reveals cells it can prove are safe from the numbers on the
// board, and guesses randomly only when nothing can be deduced
type Director struct {
	Rand *rand.Rand

	board    *game.Board
	fallback *random.Director

	// Cells deduced to hold a mine. Kept privately, the board has no flags.
	knownMines collections.Set[game.Position]
}

// Observation records that numMines of the hidden cells around origin are
// mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[game.Position]
}

func (observation Observation) String() string {
	cells := make([]string, 0, len(observation.cells))
	for pos := range observation.cells {
		cells = append(cells, pos.String())
	}
	sort.Strings(cells)

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = observation.origin.Position().String()
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, strings.Join(cells, ", "))
}

func New(rng *rand.Rand) *Director {
	return &Director{Rand: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.knownMines = collections.NewSet[game.Position]()

	director.fallback = random.New(director.Rand)
	director.fallback.Avoid = director.knownMines
	director.fallback.Init(board)
}

// KnownMines returns the mines deduced so far
func (director *Director) KnownMines() collections.Set[game.Position] {
	return director.knownMines
}

func (director *Director) Act() game.RevealResult {
	if safe, found := director.deduceSafeCell(); found {
		Log.WithField("cell", safe).Debug("revealing deduced safe cell")
		return director.board.Reveal(safe.Row, safe.Col)
	}

	Log.WithField("knownMines", director.knownMines.Len()).Debug("no safe cell deduced, guessing")
	return director.fallback.Act()
}

// observe builds an observation for every revealed number that still borders
// hidden cells not known to be mines
func (director *Director) observe() []*Observation {
	var observations []*Observation

	for _, cell := range director.board.Cells() {
		numMines, ok := cell.AdjacentMines()
		if !ok {
			continue
		}

		observation := &Observation{
			origin:   cell,
			numMines: numMines,
			cells:    collections.NewSet[game.Position](),
		}
		for _, neighbor := range director.board.Neighbors(cell) {
			if neighbor.IsRevealed() {
				continue
			}
			if director.knownMines.Contains(neighbor.Position()) {
				observation.numMines--
			} else {
				observation.cells.Add(neighbor.Position())
			}
		}

		if observation.cells.Len() > 0 {
			observations = append(observations, observation)
		}
	}

	return observations
}

func (director *Director) markMines(cells collections.Set[game.Position]) {
	for pos := range cells {
		director.knownMines.Add(pos)
	}
}

func (director *Director) deduceSafeCell() (game.Position, bool) {
	for {
		observations := director.observe()
		changed := false

		for _, observation := range observations {
			switch observation.numMines {
			case 0:
				return observation.cells.Any()
			case observation.cells.Len():
				Log.WithField("observation", observation).Debug("all hidden neighbors are mines")
				director.markMines(observation.cells)
				changed = true
			}
		}
		if changed {
			continue
		}

		// If one observation's cells lie within another's, the remaining
		// cells of the larger one hold the difference in mines
		for _, inner := range observations {
			for _, outer := range observations {
				if inner == outer || inner.cells.Len() >= outer.cells.Len() || !inner.cells.IsSubset(outer.cells) {
					continue
				}

				rest := outer.cells.Difference(inner.cells)
				restMines := outer.numMines - inner.numMines
				switch restMines {
				case 0:
					return rest.Any()
				case rest.Len():
					director.markMines(rest)
					changed = true
				}
			}
		}

		if !changed {
			return game.Position{}, false
		}
	}
}
