package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/matryer/way"

	"github.com/rocketscienceinc/snakesladders-backend/internal/view"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	router *way.Router

	board view.BoardView
}

func New(logger *slog.Logger) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		router: way.NewRouter(),
		board:  view.NewBoardView(),
	}

	server.router.HandleFunc(http.MethodGet, "/ping", pingHandler)
	server.router.HandleFunc(http.MethodGet, "/board", server.boardHandler)

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
