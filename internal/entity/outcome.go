package entity

type Outcome uint8

const (
	Ongoing Outcome = iota
	WinX
	WinO
	Draw
)

// WinFor - returns the winning outcome for the given mark.
func WinFor(mark Cell) Outcome {
	switch mark {
	case MarkX:
		return WinX
	case MarkO:
		return WinO
	default:
		return Ongoing
	}
}

func (that Outcome) IsFinished() bool {
	return that != Ongoing
}

func (that Outcome) String() string {
	switch that {
	case WinX:
		return "win_x"
	case WinO:
		return "win_o"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}
