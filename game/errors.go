package game

import (
	"errors"
	"fmt"
)

var ErrInvalidConfiguration = errors.New("invalid board configuration")

type InvalidConfigurationError struct {
	Size  int
	Mines int

	// Set when an explicit mine layout is rejected
	Position  *Position
	Duplicate bool
}

func (e *InvalidConfigurationError) Error() string {
	switch {
	case e.Size < MinSize || e.Size > MaxSize:
		return fmt.Sprintf("cannot create a board of size %d (must be between %d and %d)", e.Size, MinSize, MaxSize)
	case e.Mines < 1:
		return fmt.Sprintf("cannot create a board with %d mines (need at least 1)", e.Mines)
	case e.Mines > MaxMines(e.Size):
		return fmt.Sprintf("too many mines for a %dx%d board: %d > %d", e.Size, e.Size, e.Mines, MaxMines(e.Size))
	case e.Position != nil && e.Duplicate:
		return fmt.Sprintf("mine placed twice at %v", *e.Position)
	case e.Position != nil:
		return fmt.Sprintf("mine at %v is outside a %dx%d board", *e.Position, e.Size, e.Size)
	default:
		return "cannot construct board: unknown error"
	}
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func validateConfiguration(size, mines int) error {
	if size < MinSize || size > MaxSize || mines < 1 || mines > MaxMines(size) {
		return &InvalidConfigurationError{Size: size, Mines: mines}
	}
	return nil
}
