package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"

	"github.com/rocketscienceinc/snakesladders-backend/internal/entity"
	"github.com/rocketscienceinc/snakesladders-backend/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

var (
	errUnknownAction = errors.New("unknown action")
	errBadMessage    = errors.New("malformed message")
)

type GameManager interface {
	StartGame(ctx context.Context, numPlayers int) (*entity.Game, error)
	Roll(ctx context.Context) (*usecase.Turn, error)
	GetGame(ctx context.Context) (*entity.Game, error)
}

// Pacing is how long the client waits between the steps of a turn.
type Pacing struct {
	RollDelay time.Duration
	TurnDelay time.Duration
}

type handlerFunc func(ctx context.Context, sess *session, msg *Message) error

// session is one connection and the game it owns.
type session struct {
	conn    *websocket.Conn
	manager GameManager
}

type Server struct {
	logger     *slog.Logger
	pacing     Pacing
	newManager func() GameManager

	ctx      context.Context
	upgrader websocket.Upgrader
	router   *way.Router
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, pacing Pacing, newManager func() GameManager) *Server {
	server := &Server{
		logger:     logger.With("component", "websocket"),
		pacing:     pacing,
		newManager: newManager,

		ctx:      context.Background(),
		upgrader: websocket.Upgrader{CheckOrigin: allowAnyOrigin},
		router:   way.NewRouter(),
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionStart] = server.handleStartGame
	server.handlers[actionRoll] = server.handleRoll

	server.router.HandleFunc(http.MethodGet, "/ws", server.upgradeToWebSocket)

	return server
}

// allowAnyOrigin - the page that draws the board is served from another port.
func allowAnyOrigin(_ *http.Request) bool {
	return true
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	that.ctx = ctx

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves it until the client leaves.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeConnection")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	ctx, cancel := context.WithCancel(that.ctx)
	defer cancel()

	// unblock the read loop on shutdown
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	log.Info("WebSocket connection established", "remote", req.RemoteAddr)

	sess := &session{
		conn:    conn,
		manager: that.newManager(),
	}

	if err = that.handleMessages(ctx, sess); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := sess.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) || ctx.Err() != nil {
				log.Info("WebSocket connection closed")
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = sendErrorResponse(sess.conn, actionError, errBadMessage); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)

			err = fmt.Errorf("%w: %s", errUnknownAction, message.Action)
			if err = sendErrorResponse(sess.conn, actionError, err); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, sess, &message); err != nil {
			return fmt.Errorf("failed to process %s: %w", message.Action, err)
		}
	}
}
