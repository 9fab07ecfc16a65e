package entity

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// Mark - the state of a single board cell.
type Mark string

// Other - returns the opponent's mark. EmptyCell has no opponent.
func (that Mark) Other() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == EmptyCell {
		return "_"
	}
	return string(that)
}

// Move - zero-based coordinates of a cell.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}
