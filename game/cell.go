package game

import (
	"fmt"
	"strconv"
)

type Position struct {
	Row, Col int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

type Cell struct {
	board *Board

	row, col int
	idx      int

	// Number of mines among the 8 surrounding cells
	numMines int

	isMine, isRevealed bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Position() Position {
	return Position{Row: cell.row, Col: cell.col}
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

// AdjacentMines returns the cell's mine count, once the cell has been safely
// revealed
func (cell *Cell) AdjacentMines() (int, bool) {
	if !cell.isRevealed || cell.isMine {
		return 0, false
	}
	return cell.numMines, true
}

// Display returns the text a presentation layer should show for the cell.
// Unrevealed mines are only shown when revealMines is set and the game was
// lost.
func (cell *Cell) Display(revealMines bool) string {
	switch {
	case cell.isMine && cell.isRevealed:
		return MineMarker
	case cell.isMine && revealMines && cell.board.status == Lost:
		return MineMarker
	case cell.isRevealed:
		return strconv.Itoa(cell.numMines)
	default:
		return HiddenMarker
	}
}

func (cell *Cell) neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if neighbor := board.CellAt(cell.row+dRow, cell.col+dCol); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

func (cell *Cell) setMine() {
	cell.isMine = true
	for _, neighbor := range cell.neighbors() {
		neighbor.numMines++
	}
}

// reveal uncovers a single cell. Returns false if the cell was already
// revealed.
func (cell *Cell) reveal() bool {
	if cell.isRevealed {
		return false
	}
	cell.isRevealed = true
	cell.board.revealedCount++
	return true
}
