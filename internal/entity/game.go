package entity

type Game struct {
	ID      string  `json:"id"`
	Board   Board   `json:"board"`
	Turn    Cell    `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
	Moves   int     `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:      id,
		Turn:    MarkX,
		Outcome: Ongoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *Game) IsOngoing() bool {
	return that.Outcome == Ongoing
}

// Winner - returns the winning mark, or Empty for a draw or an ongoing game.
func (that *Game) Winner() Cell {
	switch that.Outcome {
	case WinX:
		return MarkX
	case WinO:
		return MarkO
	default:
		return Empty
	}
}
