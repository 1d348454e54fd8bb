package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    [][]Cell

	status        Status
	revealedCount int

	rand *rand.Rand
}

type RevealResult struct {
	Status Status

	// Cells uncovered by this reveal, in the order they were uncovered
	Revealed []Position
}

// NewBoard creates a size×size board with numMines placed uniformly at
// random. A nil rng is replaced by a time-seeded source.
func NewBoard(size, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateConfiguration(size, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := createBoard(size, numMines)
	board.rand = rng
	board.placeRandomMines()

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": numMines,
	}).Debug("created board")

	return board, nil
}

// NewBoardWithMines creates a board with mines at exactly the given
// positions, bypassing random placement.
func NewBoardWithMines(size int, mines []Position) (*Board, error) {
	if err := validateConfiguration(size, len(mines)); err != nil {
		return nil, err
	}

	board := createBoard(size, len(mines))
	for i := range mines {
		pos := mines[i]
		cell := board.CellAt(pos.Row, pos.Col)
		if cell == nil {
			return nil, &InvalidConfigurationError{Size: size, Mines: len(mines), Position: &pos}
		}
		if cell.isMine {
			return nil, &InvalidConfigurationError{Size: size, Mines: len(mines), Position: &pos, Duplicate: true}
		}
		cell.setMine()
	}

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": len(mines),
	}).Debug("created board from fixed layout")

	return board, nil
}

func createBoard(size, numMines int) *Board {
	board := &Board{
		status:   InProgress,
		size:     size,
		numMines: numMines,
		cells:    make([][]Cell, size),
	}

	cellIdx := 0
	for row := 0; row < size; row++ {
		board.cells[row] = make([]Cell, size)

		for col := 0; col < size; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.idx = cellIdx
			cell.row, cell.col = row, col
			cellIdx++
		}
	}

	return board
}

// placeRandomMines samples cells until numMines distinct cells are mined.
// Rejecting already-mined picks keeps every layout equally likely.
func (board *Board) placeRandomMines() {
	for placed := 0; placed < board.numMines; {
		cell := board.CellAt(board.rand.Intn(board.size), board.rand.Intn(board.size))
		if cell.isMine {
			continue
		}
		cell.setMine()
		placed++
	}
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) MineCount() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

func (board *Board) RevealedCount() int {
	return board.revealedCount
}

func (board *Board) Status() Status {
	return board.status
}

// Rand returns the source used to place mines, or nil for fixed layouts
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) CellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.size && col < board.size {
		return &board.cells[row][col]
	}
	return nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			cells = append(cells, &board.cells[row][col])
		}
	}
	return cells
}

func (board *Board) UnrevealedCells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells()-board.revealedCount)
	for _, cell := range board.Cells() {
		if !cell.isRevealed {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (board *Board) Neighbors(cell *Cell) []*Cell {
	return cell.neighbors()
}

// Mines returns the position of every mine, for displaying the layout once
// the game has ended
func (board *Board) Mines() []Position {
	mines := make([]Position, 0, board.numMines)
	for _, cell := range board.Cells() {
		if cell.isMine {
			mines = append(mines, cell.Position())
		}
	}
	return mines
}

func (board *Board) canPlay() bool {
	return board.status == InProgress
}

// Reveal uncovers the cell at (row, col), cascading through zero-count
// regions. Clicks after the game has ended, outside the grid, or on an
// already revealed cell change nothing.
func (board *Board) Reveal(row, col int) RevealResult {
	if !board.canPlay() {
		return RevealResult{Status: board.status}
	}

	cell := board.CellAt(row, col)
	if cell == nil || cell.isRevealed {
		return RevealResult{Status: board.status}
	}

	if cell.isMine {
		cell.reveal()
		board.lose(cell)
		return RevealResult{Status: board.status, Revealed: []Position{cell.Position()}}
	}

	revealed := cell.cascade()

	Log.WithFields(logrus.Fields{
		"cell":     cell,
		"revealed": len(revealed),
		"total":    board.revealedCount,
	}).Debug("revealed cells")

	if board.revealedCount == board.NumCells()-board.numMines {
		board.win()
	}

	return RevealResult{Status: board.status, Revealed: revealed}
}

func (board *Board) win() {
	board.status = Won
	Log.WithField("revealed", board.revealedCount).Debug("game won")
}

func (board *Board) lose(mine *Cell) {
	board.status = Lost
	Log.WithField("cell", mine).Debug("game lost")
}
