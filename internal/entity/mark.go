package entity

// Mark is the content of a single board cell.
type Mark uint8

const (
	EmptyCell Mark = iota
	PlayerX
	PlayerO
)

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the mark that moves after m.
func (m Mark) Opponent() Mark {
	if m == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}
