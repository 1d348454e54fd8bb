package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/they4kman/squaresweep/game"
)

type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print writes the grid with 1-based column numbers across the top and row
// letters down the side
//
//	   1 2 3
//	A  _ 1 0
//	B  _ 2 0
//	C  _ _ 1
func (printer *Printer) Print(snapshot *game.BoardSnapshot) {
	size := snapshot.Size()

	// Columns past 9 take two characters
	width := len(strconv.Itoa(size))

	var out strings.Builder
	out.WriteString("\n  ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&out, " %*d", width, col+1)
	}
	out.WriteString("\n")

	for row := 0; row < size; row++ {
		fmt.Fprintf(&out, "%c ", RowLabel(row))
		for col := 0; col < size; col++ {
			fmt.Fprintf(&out, " %*s", width, snapshot.At(row, col))
		}
		out.WriteString("\n")
	}
	out.WriteString("\n")

	io.WriteString(printer.out, out.String())
}
