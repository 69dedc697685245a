package entity

// PlayerColors is the display color of each seat, in turn order.
var PlayerColors = [MaxPlayers]string{"#f44336", "#1976d2", "#ffd600", "#43a047"}

type Player struct {
	Index    int    `json:"index"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

func NewPlayer(index int) *Player {
	return &Player{
		Index: index,
		Color: PlayerColors[index],
	}
}

// Number is the 1-based seat number shown to people.
func (that *Player) Number() int {
	return that.Index + 1
}

// IsOnBoard reports whether the player has entered the board.
func (that *Player) IsOnBoard() bool {
	return that.Position > 0
}
