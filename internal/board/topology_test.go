package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorTables(t *testing.T) {
	t.Run("No square is both a ladder and a snake", func(t *testing.T) {
		for from := range Ladders() {
			_, isSnake := Snakes()[from]
			assert.False(t, isSnake, "square %d", from)
		}
	})

	t.Run("Ladders go up and snakes go down", func(t *testing.T) {
		for from, to := range Ladders() {
			assert.Greater(t, to, from)
			assert.LessOrEqual(t, to, Goal)
		}

		for from, to := range Snakes() {
			assert.Less(t, to, from)
			assert.GreaterOrEqual(t, to, 1)
		}
	})

	t.Run("The goal is never an entry square", func(t *testing.T) {
		_, ok := ConnectorAt(Goal)
		assert.False(t, ok)
	})

	t.Run("Copies do not leak into the tables", func(t *testing.T) {
		// Given: a copy of the ladder table
		copied := Ladders()

		// When: the copy is changed
		copied[1] = 2
		delete(copied, 4)

		// Then: the board still resolves the original ladders
		assert.Equal(t, 38, ResolveConnector(1))
		assert.Equal(t, 14, ResolveConnector(4))
	})
}

func TestResolveConnector(t *testing.T) {
	cases := []struct {
		name string
		pos  int
		want int
	}{
		{name: "ladder at 1", pos: 1, want: 38},
		{name: "ladder to goal", pos: 80, want: 100},
		{name: "snake at 87", pos: 87, want: 24},
		{name: "snake at 98", pos: 98, want: 78},
		{name: "plain square", pos: 50, want: 50},
		{name: "goal", pos: 100, want: 100},
		{name: "off board", pos: 0, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveConnector(tc.pos))
		})
	}
}

func TestConnectorAt(t *testing.T) {
	ladder, ok := ConnectorAt(28)
	require.True(t, ok)
	assert.Equal(t, Connector{From: 28, To: 84, Kind: ConnectorLadder}, ladder)

	snake, ok := ConnectorAt(16)
	require.True(t, ok)
	assert.Equal(t, Connector{From: 16, To: 6, Kind: ConnectorSnake}, snake)

	_, ok = ConnectorAt(2)
	assert.False(t, ok)
}

func TestConnectors(t *testing.T) {
	connectors := Connectors()

	require.Len(t, connectors, len(Ladders())+len(Snakes()))
	assert.Equal(t, Connector{From: 1, To: 38, Kind: ConnectorLadder}, connectors[0])
	assert.Equal(t, Connector{From: 98, To: 78, Kind: ConnectorSnake}, connectors[len(connectors)-1])

	for i := 1; i < len(connectors); i++ {
		assert.Less(t, connectors[i-1].From, connectors[i].From)
	}
}
