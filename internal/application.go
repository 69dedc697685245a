package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/snakesladders-backend/internal/config"
	"github.com/rocketscienceinc/snakesladders-backend/internal/dice"
	"github.com/rocketscienceinc/snakesladders-backend/internal/usecase"
	"github.com/rocketscienceinc/snakesladders-backend/transport/rest"
	"github.com/rocketscienceinc/snakesladders-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	roller, err := newRoller(conf.Game)
	if err != nil {
		return fmt.Errorf("could not create dice roller: %w", err)
	}

	newManager := func() websocket.GameManager {
		return usecase.NewGameManager(logger, roller)
	}

	pacing := websocket.Pacing{
		RollDelay: conf.Game.RollDelay,
		TurnDelay: conf.Game.TurnDelay,
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger).Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, pacing, newManager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newRoller(conf config.Game) (*dice.Roller, error) {
	if conf.HasFixedSeed() {
		return dice.NewRoller(conf.DiceSeed), nil
	}

	seed, err := dice.NewSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dice seed: %w", err)
	}

	return dice.NewRoller(seed), nil
}
