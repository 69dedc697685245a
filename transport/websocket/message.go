package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/snakesladders-backend/internal/apperror"
	"github.com/rocketscienceinc/snakesladders-backend/internal/snakesladders"
	"github.com/rocketscienceinc/snakesladders-backend/internal/view"
)

const writeWait = 10 * time.Second

const (
	actionStart   = "game:start"
	actionRoll    = "game:roll"
	actionRolling = "dice:rolling"
	actionMove    = "game:move"
	actionTurn    = "game:turn"
	actionOver    = "game:over"
	actionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Players int `json:"players,omitempty"`
}

type ResponsePayload struct {
	Game    *view.GameView            `json:"game,omitempty"`
	Dice    int                       `json:"dice,omitempty"`
	Move    *snakesladders.MoveResult `json:"move,omitempty"`
	Message string                    `json:"message,omitempty"`
	Error   string                    `json:"error,omitempty"`
}

func sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func sendErrorResponse(conn *websocket.Conn, action string, err error) error {
	return sendMessage(conn, action, ResponsePayload{Error: clientError(err)})
}

// clientError - hides wrapping details and keeps the text a person can act on.
func clientError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlayersCount):
		return "players count must be between 2 and 4"
	case errors.Is(err, apperror.ErrInvalidDiceValue):
		return "dice value must be between 1 and 6"
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "game is not started"
	case errors.Is(err, apperror.ErrGameFinished):
		return "game is already finished"
	case errors.Is(err, errUnknownAction):
		return err.Error()
	case errors.Is(err, errBadMessage):
		return "malformed message"
	default:
		return "internal error"
	}
}
