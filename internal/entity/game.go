package entity

import (
	"fmt"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
)

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

type Game struct {
	Players       []*Player `json:"players"`
	CurrentPlayer int       `json:"current_player"`
	Status        string    `json:"status"`
}

// NewGame resets the table for numPlayers: everyone off the board, player 1 to move, not started yet.
func NewGame(numPlayers int) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayersCount, numPlayers)
	}

	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = NewPlayer(i)
	}

	return &Game{
		Players:       players,
		CurrentPlayer: 0,
		Status:        StatusNotStarted,
	}, nil
}

func (that *Game) Start() error {
	if !that.IsNotStarted() {
		return apperror.ErrGameAlreadyStarted
	}

	that.Status = StatusInProgress

	return nil
}

func (that *Game) NumPlayers() int {
	return len(that.Players)
}

func (that *Game) Position(player int) (int, error) {
	if player < 0 || player >= len(that.Players) {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerIndex, player)
	}

	return that.Players[player].Position, nil
}

func (that *Game) Current() *Player {
	return that.Players[that.CurrentPlayer]
}

// Winner returns the winning player index once the game is over.
// The turn never passes on the winning roll, so the winner is the current player.
func (that *Game) Winner() (int, bool) {
	if !that.IsGameOver() {
		return 0, false
	}

	return that.CurrentPlayer, true
}

func (that *Game) IsGameOver() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsNotStarted() bool {
	return that.Status == StatusNotStarted
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsNotStarted():
		return apperror.ErrGameIsNotStarted
	case that.IsGameOver():
		return apperror.ErrGameFinished
	case that.IsInProgress():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// Clone returns a deep copy that is safe to hand to readers.
func (that *Game) Clone() *Game {
	players := make([]*Player, len(that.Players))
	for i, player := range that.Players {
		p := *player
		players[i] = &p
	}

	return &Game{
		Players:       players,
		CurrentPlayer: that.CurrentPlayer,
		Status:        that.Status,
	}
}
