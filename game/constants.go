package game

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

var statusNames = map[Status]string{
	InProgress: "IN_PROGRESS",
	Won:        "WON",
	Lost:       "LOST",
}

func (status Status) String() string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further reveals will be accepted
func (status Status) IsTerminal() bool {
	return status == Won || status == Lost
}

func (status Status) MarshalYAML() (interface{}, error) {
	return status.String(), nil
}

const (
	MinSize = 2
	MaxSize = 26

	// Percentage of the grid that may be covered by mines
	maxMinePercent = 35
)

// Display values produced by Snapshot
const (
	HiddenMarker = "_"
	MineMarker   = "*"
)

// MaxMines returns the largest mine count accepted for a size×size grid,
// i.e. floor(0.35 * size * size)
func MaxMines(size int) int {
	return size * size * maxMinePercent / 100
}
