package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rocketscienceinc/snakesladders-backend/internal/view"
)

// handleStartGame resets the table for the requested players count.
// Rule errors go back to the client; only write failures end the connection.
func (that *Server) handleStartGame(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleStartGame")

	var payloadReq RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			log.Warn("failed to unmarshal payload", "error", err)
			return sendErrorResponse(sess.conn, msg.Action, errBadMessage)
		}
	}

	game, err := sess.manager.StartGame(ctx, payloadReq.Players)
	if err != nil {
		log.Warn("failed to start game", "error", err)
		return sendErrorResponse(sess.conn, msg.Action, err)
	}

	gameView := view.NewGameView(game)

	return sendMessage(sess.conn, msg.Action, ResponsePayload{
		Game:    &gameView,
		Message: view.TurnMessage(game.CurrentPlayer),
	})
}

// handleRoll plays one turn with the client pacing: rolling, move, then next turn or game over.
func (that *Server) handleRoll(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleRoll")

	game, err := sess.manager.GetGame(ctx)
	if err == nil {
		err = game.ConfirmOngoingState()
	}

	if err != nil {
		log.Warn("roll refused", "error", err)
		return sendErrorResponse(sess.conn, msg.Action, err)
	}

	if err = sendMessage(sess.conn, actionRolling, ResponsePayload{Message: "Rolling..."}); err != nil {
		return err
	}

	if err = wait(ctx, that.pacing.RollDelay); err != nil {
		return fmt.Errorf("roll interrupted: %w", err)
	}

	turn, err := sess.manager.Roll(ctx)
	if err != nil {
		log.Warn("failed to roll", "error", err)
		return sendErrorResponse(sess.conn, msg.Action, err)
	}

	gameView := view.NewGameView(turn.Game)

	err = sendMessage(sess.conn, actionMove, ResponsePayload{
		Game:    &gameView,
		Dice:    turn.Dice,
		Move:    &turn.Move,
		Message: view.MoveMessage(turn.Move),
	})
	if err != nil {
		return err
	}

	if turn.Move.WonGame {
		return sendMessage(sess.conn, actionOver, ResponsePayload{
			Game:    &gameView,
			Message: view.WinMessage(turn.Move.Player),
		})
	}

	if err = wait(ctx, that.pacing.TurnDelay); err != nil {
		return fmt.Errorf("turn announcement interrupted: %w", err)
	}

	return sendMessage(sess.conn, actionTurn, ResponsePayload{
		Game:    &gameView,
		Message: view.TurnMessage(turn.Move.NextPlayer),
	})
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
