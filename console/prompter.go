package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/they4kman/squaresweep/game"
)

// Prompter asks the player for game settings and moves, repeating each
// question until a valid answer is given
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// readLine returns the next line of input, or io.EOF once input runs out
func (prompter *Prompter) readLine() (string, error) {
	if !prompter.in.Scan() {
		if err := prompter.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(prompter.in.Text()), nil
}

func (prompter *Prompter) readIntInRange(question string, min, max int, rangeHint string) (int, error) {
	for {
		fmt.Fprintln(prompter.out, question)

		line, err := prompter.readLine()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(prompter.out, "Invalid input. Please enter an integer.")
			continue
		}
		if value < min || value > max {
			fmt.Fprintln(prompter.out, rangeHint)
			continue
		}
		return value, nil
	}
}

func (prompter *Prompter) ReadGridSize() (int, error) {
	return prompter.readIntInRange(
		"Enter the size of the grid (e.g. 4 for a 4x4 grid): ",
		game.MinSize, game.MaxSize,
		fmt.Sprintf("Enter the valid size of the grid > %d and <= %d", game.MinSize-1, game.MaxSize),
	)
}

func (prompter *Prompter) ReadMineCount(size int) (int, error) {
	maxMines := game.MaxMines(size)
	return prompter.readIntInRange(
		"Enter the number of mines to place on the grid (maximum is 35% of the total squares): ",
		1, maxMines,
		fmt.Sprintf("Enter a valid number of mines between 1 and %d", maxMines),
	)
}

// ReadMove asks for a square such as "B3": a row letter followed by a
// 1-based column number
func (prompter *Prompter) ReadMove(size int) (game.Position, error) {
	for {
		fmt.Fprint(prompter.out, "Select a square to reveal (e.g. A1): ")

		line, err := prompter.readLine()
		if err != nil {
			return game.Position{}, err
		}

		pos, ok := ParseSquare(line, size)
		if !ok {
			fmt.Fprintf(prompter.out, "Invalid square %q. Use a row from A to %c and a column from 1 to %d.\n",
				line, RowLabel(size-1), size)
			continue
		}
		return pos, nil
	}
}

// PlayAgain waits for the player to confirm another game. Entering "exit"
// means stop.
func (prompter *Prompter) PlayAgain() (bool, error) {
	fmt.Fprintln(prompter.out, "Press any key to play again... ")

	line, err := prompter.readLine()
	if err != nil {
		return false, err
	}
	return !strings.EqualFold(line, "exit"), nil
}

// ParseSquare converts a label like "C10" into a grid position
func ParseSquare(square string, size int) (game.Position, bool) {
	square = strings.TrimSpace(square)
	if len(square) < 2 {
		return game.Position{}, false
	}

	letter := unicode.ToUpper(rune(square[0]))
	row := int(letter - 'A')
	col, err := strconv.Atoi(strings.TrimSpace(square[1:]))
	if err != nil {
		return game.Position{}, false
	}
	col--

	if row < 0 || row >= size || col < 0 || col >= size {
		return game.Position{}, false
	}
	return game.Position{Row: row, Col: col}, true
}

func RowLabel(row int) rune {
	return rune('A' + row)
}
