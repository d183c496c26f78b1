// Package game drives a single local match of N-dimensional
// tic-tac-toe on top of the board package: player rotation, win and
// draw finalization, resignations, a move log, and an event stream.
package game

import (
	"errors"

	"hyperoxo-nd/board"
)

// Status indicates the current state of a match in its lifecycle.
type Status uint8

const (
	InProgress Status = 0 // players are taking turns
	Finished   Status = 1 // ended by win, draw, or resignation
)

var (
	// ErrBadDimension rejects boards with no axes.
	ErrBadDimension = errors.New("dimension must be at least 1")

	// ErrBadPlayers rejects player counts that cannot be stored as
	// 1-based cell values.
	ErrBadPlayers = errors.New("player count must be between 1 and 255")

	// ErrFinished reports a move or resignation after the game ended.
	ErrFinished = errors.New("game is already finished")
)

// Move is one committed placement.
type Move struct {
	Player board.Cell
	Pos    []int
}

// record kinds in the move log.
const (
	recMove   uint8 = 0
	recResign uint8 = 1
)

type record struct {
	kind   uint8
	player board.Cell
	pos    []int // nil for resignations
}

// Game holds the full state of one running match. Player ids are the
// 1-based seat numbers; seat order is also turn order. All methods
// assume exclusive access; a match is driven by one loop.
type Game struct {
	Board   *board.Board
	Players int
	Status  Status
	Winner  board.Cell // 0 while running or after a draw

	turn   int    // 0-based index of the player to move
	active []bool // false once a player has resigned
	moves  []record
	emit   func(Event)
}

// New starts a match on a fresh zero-initialized board.
func New(dimension, players int) (*Game, error) {
	if dimension < 1 {
		return nil, ErrBadDimension
	}
	if players < 1 || players > 255 {
		return nil, ErrBadPlayers
	}
	g := &Game{
		Board:   board.New(dimension),
		Players: players,
		active:  make([]bool, players),
	}
	for i := range g.active {
		g.active[i] = true
	}
	return g, nil
}

// CurrentPlayer returns the 1-based id of the player to move.
func (g *Game) CurrentPlayer() board.Cell {
	return board.Cell(g.turn + 1)
}

// Move places a piece for the player whose turn it is and reports
// whether that move won the game. On an illegal move the board and the
// turn are left untouched and the caller may retry. A full board with
// no winner finishes the game as a draw.
func (g *Game) Move(pos []int) (bool, error) {
	if g.Status != InProgress {
		return false, ErrFinished
	}

	player := g.CurrentPlayer()
	won, err := g.Board.Place(player, pos)
	if err != nil {
		return false, err
	}

	stored := make([]int, len(pos))
	copy(stored, pos)
	g.moves = append(g.moves, record{kind: recMove, player: player, pos: stored})
	g.emitMove(player, stored)

	if won {
		g.Status = Finished
		g.Winner = player
		g.emitWon(player)
		return true, nil
	}
	if g.placed() == len(g.Board.Cells) {
		g.Status = Finished
		g.emitDraw()
		return false, nil
	}

	g.advanceTurn()
	return false, nil
}

// Resign forfeits the match for the player to move. With more than two
// players the game continues without them; the last player standing
// wins.
func (g *Game) Resign() error {
	if g.Status != InProgress {
		return ErrFinished
	}

	player := g.CurrentPlayer()
	g.active[g.turn] = false
	g.moves = append(g.moves, record{kind: recResign, player: player})
	g.emitResigned(player)

	remaining, last := 0, -1
	for i, a := range g.active {
		if a {
			remaining++
			last = i
		}
	}
	switch remaining {
	case 0:
		g.Status = Finished
		g.emitDraw()
	case 1:
		g.Status = Finished
		g.Winner = board.Cell(last + 1)
		g.emitWon(g.Winner)
	default:
		g.advanceTurn()
	}
	return nil
}

// Moves returns a copy of the committed placements in order.
func (g *Game) Moves() []Move {
	out := make([]Move, 0, len(g.moves))
	for _, r := range g.moves {
		if r.kind != recMove {
			continue
		}
		pos := make([]int, len(r.pos))
		copy(pos, r.pos)
		out = append(out, Move{Player: r.player, Pos: pos})
	}
	return out
}

// placed counts committed placements; resignations don't fill cells.
func (g *Game) placed() int {
	n := 0
	for _, r := range g.moves {
		if r.kind == recMove {
			n++
		}
	}
	return n
}

// advanceTurn rotates to the next player still in the game. Callers
// guarantee at least one active player remains.
func (g *Game) advanceTurn() {
	for {
		g.turn = (g.turn + 1) % g.Players
		if g.active[g.turn] {
			return
		}
	}
}
