package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/squaresweep/console"
	"github.com/they4kman/squaresweep/game"
)

// session drives one game, from the first reveal until the board is won or
// lost. Input comes from the prompter, or from director when one is given.
type session struct {
	board    *game.Board
	prompter *console.Prompter
	printer  *console.Printer
	out      io.Writer
}

func (s *session) play(director game.Director) (game.Status, error) {
	fmt.Fprintln(s.out, "Here is your minefield:")
	s.printer.Print(s.board.Snapshot(false))

	if director != nil {
		director.Init(s.board)
	}

	for !s.board.Status().IsTerminal() {
		var target game.Position
		if director != nil {
			result := director.Act()
			if len(result.Revealed) == 0 {
				return result.Status, fmt.Errorf("director made no move")
			}
			target = result.Revealed[0]
		} else {
			pos, err := s.prompter.ReadMove(s.board.Size())
			if err != nil {
				return s.board.Status(), err
			}
			if cell := s.board.CellAt(pos.Row, pos.Col); cell.IsRevealed() {
				fmt.Fprintln(s.out, "That square is already revealed.")
				continue
			}
			s.board.Reveal(pos.Row, pos.Col)
			target = pos
		}

		log.WithFields(logrus.Fields{
			"row":    target.Row,
			"col":    target.Col,
			"status": s.board.Status(),
		}).Debug("move")

		if s.board.Status() == game.Lost {
			break
		}

		cell := s.board.CellAt(target.Row, target.Col)
		if numMines, ok := cell.AdjacentMines(); ok {
			fmt.Fprintf(s.out, "This square contains %d adjacent mines.\n", numMines)
		}
		fmt.Fprintln(s.out, "Here is your updated minefield:")
		s.printer.Print(s.board.Snapshot(false))
	}

	switch s.board.Status() {
	case game.Won:
		fmt.Fprintln(s.out, "Congratulations, you have won the game!")
	case game.Lost:
		s.printer.Print(s.board.Snapshot(true))
		fmt.Fprintln(s.out, "Oh no, you detonated a mine! Game over.")
	}

	return s.board.Status(), nil
}
