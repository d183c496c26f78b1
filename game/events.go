package game

import (
	"encoding/json"
	"strconv"
	"strings"

	"hyperoxo-nd/board"
)

// Event represents the common structure for everything a game reports.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// JSON renders the event for logging or forwarding.
func (e Event) JSON() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// OnEvent registers a callback invoked synchronously for every event
// the game emits from then on. Passing nil turns reporting off.
func (g *Game) OnEvent(fn func(Event)) {
	g.emit = fn
}

func (g *Game) emitEvent(eventType string, attributes map[string]string) {
	if g.emit == nil {
		return
	}
	g.emit(Event{Type: eventType, Attributes: attributes})
}

// emitMove reports a committed placement, including who moved and the
// target cell coordinates.
func (g *Game) emitMove(player board.Cell, pos []int) {
	g.emitEvent("gameMove", map[string]string{
		"moveBy": strconv.Itoa(int(player)),
		"cell":   formatPos(pos),
	})
}

// emitWon reports the end of the game with a winner.
func (g *Game) emitWon(winner board.Cell) {
	g.emitEvent("gameWon", map[string]string{
		"winner": strconv.Itoa(int(winner)),
	})
}

// emitDraw reports a game that ended with nobody winning.
func (g *Game) emitDraw() {
	g.emitEvent("gameDraw", map[string]string{})
}

// emitResigned reports a player leaving the match.
func (g *Game) emitResigned(player board.Cell) {
	g.emitEvent("gameResigned", map[string]string{
		"resigner": strconv.Itoa(int(player)),
	})
}

// formatPos renders a position as comma-separated coordinates.
func formatPos(pos []int) string {
	parts := make([]string, len(pos))
	for i, c := range pos {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}
