package game

import (
	"strings"

	"gopkg.in/yaml.v2"
)

type BoardSnapshot struct {
	Status Status     `yaml:"status"`
	Cells  [][]string `yaml:"cells,flow"`
}

// Snapshot captures the display value of every cell. Mines other than the
// detonated one are only included when revealMines is set and the game is
// lost.
func (board *Board) Snapshot(revealMines bool) *BoardSnapshot {
	snapshot := &BoardSnapshot{
		Status: board.status,
		Cells:  make([][]string, board.size),
	}

	for row := range board.cells {
		snapshot.Cells[row] = make([]string, board.size)
		for col := range board.cells[row] {
			snapshot.Cells[row][col] = board.cells[row][col].Display(revealMines)
		}
	}

	return snapshot
}

func (snapshot *BoardSnapshot) Size() int {
	return len(snapshot.Cells)
}

func (snapshot *BoardSnapshot) At(row, col int) string {
	return snapshot.Cells[row][col]
}

// Rows renders each row as its cell values joined by spaces
func (snapshot *BoardSnapshot) Rows() []string {
	rows := make([]string, len(snapshot.Cells))
	for i, row := range snapshot.Cells {
		rows[i] = strings.Join(row, " ")
	}
	return rows
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
