package game

// Director plays a game without human input
type Director interface {
	// Init prepares the director to play board
	Init(*Board)

	// Act performs a single reveal
	Act() RevealResult
}

// Play lets director act until the board reaches a terminal status, or the
// director stops making moves
func Play(board *Board, director Director) Status {
	director.Init(board)
	for board.canPlay() {
		if result := director.Act(); len(result.Revealed) == 0 {
			break
		}
	}
	return board.status
}
