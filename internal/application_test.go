package application

import (
	"testing"

	"github.com/rocketscienceinc/snakesladders-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoller(t *testing.T) {
	t.Run("A fixed seed gives reproducible dice", func(t *testing.T) {
		conf := config.Game{DiceSeed: 12}

		first, err := newRoller(conf)
		require.NoError(t, err)

		second, err := newRoller(conf)
		require.NoError(t, err)

		for i := 0; i < 20; i++ {
			assert.Equal(t, first.Roll(), second.Roll())
		}
	})

	t.Run("No seed still gives a working roller", func(t *testing.T) {
		roller, err := newRoller(config.Game{})
		require.NoError(t, err)

		face := roller.Roll()
		assert.True(t, face >= 1 && face <= 6)
	})
}
