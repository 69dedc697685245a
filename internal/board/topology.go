package board

import "sort"

type ConnectorKind string

const (
	ConnectorNone   ConnectorKind = "none"
	ConnectorLadder ConnectorKind = "ladder"
	ConnectorSnake  ConnectorKind = "snake"
)

// Connector is a ladder or a snake, from its entry square to its destination.
type Connector struct {
	From int           `json:"from"`
	To   int           `json:"to"`
	Kind ConnectorKind `json:"kind"`
}

var (
	ladders = map[int]int{
		1:  38,
		4:  14,
		9:  31,
		21: 42,
		28: 84,
		36: 44,
		51: 67,
		71: 91,
		80: 100,
	}

	snakes = map[int]int{
		16: 6,
		47: 26,
		49: 11,
		56: 53,
		62: 19,
		64: 60,
		87: 24,
		93: 73,
		95: 75,
		98: 78,
	}
)

// ResolveConnector returns where a player landing on pos ends up.
func ResolveConnector(pos int) int {
	if connector, ok := ConnectorAt(pos); ok {
		return connector.To
	}

	return pos
}

// ConnectorAt returns the connector whose entry square is pos. Ladders are looked up first.
func ConnectorAt(pos int) (Connector, bool) {
	if to, ok := ladders[pos]; ok {
		return Connector{From: pos, To: to, Kind: ConnectorLadder}, true
	}

	if to, ok := snakes[pos]; ok {
		return Connector{From: pos, To: to, Kind: ConnectorSnake}, true
	}

	return Connector{}, false
}

// Ladders returns a copy of the ladder table.
func Ladders() map[int]int {
	return copyTable(ladders)
}

// Snakes returns a copy of the snake table.
func Snakes() map[int]int {
	return copyTable(snakes)
}

// Connectors returns every ladder and snake ordered by entry square.
func Connectors() []Connector {
	connectors := make([]Connector, 0, len(ladders)+len(snakes))

	for from, to := range ladders {
		connectors = append(connectors, Connector{From: from, To: to, Kind: ConnectorLadder})
	}

	for from, to := range snakes {
		connectors = append(connectors, Connector{From: from, To: to, Kind: ConnectorSnake})
	}

	sort.Slice(connectors, func(i, j int) bool {
		return connectors[i].From < connectors[j].From
	})

	return connectors
}

func copyTable(table map[int]int) map[int]int {
	result := make(map[int]int, len(table))
	for from, to := range table {
		result[from] = to
	}

	return result
}
