package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/they4kman/squaresweep/console"
	"github.com/they4kman/squaresweep/game"
)

func TestPrint(t *testing.T) {
	out := &bytes.Buffer{}
	console.NewPrinter(out).Print(&game.BoardSnapshot{
		Cells: [][]string{
			{"_", "1", "0"},
			{"_", "2", "0"},
			{"_", "_", "1"},
		},
	})

	want := "\n" +
		"   1 2 3\n" +
		"A  _ 1 0\n" +
		"B  _ 2 0\n" +
		"C  _ _ 1\n" +
		"\n"
	if out.String() != want {
		t.Fatalf("printed:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestPrintWideBoard(t *testing.T) {
	board, err := game.NewBoardWithMines(12, []game.Position{{Row: 0, Col: 0}})
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	out := &bytes.Buffer{}
	console.NewPrinter(out).Print(board.Snapshot(false))

	lines := strings.Split(strings.Trim(out.String(), "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("printed %d lines, want 13", len(lines))
	}
	if !strings.HasSuffix(lines[0], " 9 10 11 12") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[12], "L ") {
		t.Fatalf("unexpected last row %q", lines[12])
	}
	for _, line := range lines[1:] {
		if len(line) != len(lines[0]) {
			t.Fatalf("row %q not aligned with header %q", line, lines[0])
		}
	}
}
