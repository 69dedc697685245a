package suite

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ScriptedRoller returns the given faces in order and then repeats the last one.
type ScriptedRoller struct {
	mu    sync.Mutex
	faces []int
	next  int
}

func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

func (that *ScriptedRoller) Roll() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.faces) == 0 {
		return 1
	}

	face := that.faces[that.next]
	if that.next < len(that.faces)-1 {
		that.next++
	}

	return face
}
