// Command hyperoxo plays N-dimensional tic-tac-toe in the terminal.
// The engine lives in the board and game packages; this is only the
// prompt loop around them.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"hyperoxo-nd/game"
)

type config struct {
	// MaxDimension bounds the board so 3^D stays allocatable.
	MaxDimension int  `env:"HYPEROXO_MAX_DIMENSION" envDefault:"8"`
	MaxPlayers   int  `env:"HYPEROXO_MAX_PLAYERS" envDefault:"8"`
	ShowEvents   bool `env:"HYPEROXO_SHOW_EVENTS" envDefault:"false"`
}

var stdin = bufio.NewScanner(os.Stdin)

func main() {
	log.SetPrefix("[HYPEROXO] ")
	log.SetFlags(0)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	fmt.Println("Welcome, to a wild and unbridled version of tic-tac-toe, played in as many dimensions as you wish!")

	dimension := askInt("Enter dimension of game", 1, cfg.MaxDimension)
	players := askInt("Enter number of players", 1, cfg.MaxPlayers)

	g, err := game.New(dimension, players)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	if cfg.ShowEvents {
		g.OnEvent(func(e game.Event) {
			if s, err := e.JSON(); err == nil {
				log.Println(s)
			}
		})
	}

	fmt.Println()
	fmt.Println("Positions are zero-based coordinates, separated by spaces or commas.")
	fmt.Println(`Type "q" to quit or "resign" to forfeit your turn.`)

	for g.Status == game.InProgress {
		fmt.Println()
		fmt.Println("board:", g.Board.Ascii())
		fmt.Printf("Player %d, enter position to place piece: ", g.CurrentPlayer())

		line, ok := readLine()
		if !ok {
			return
		}
		line = strings.TrimSpace(line)
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return
		case "resign":
			if err := g.Resign(); err != nil {
				fmt.Println(err)
			}
			continue
		}

		pos, err := parsePosition(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if _, err := g.Move(pos); err != nil {
			fmt.Println(err)
		}
	}

	fmt.Println()
	fmt.Println("board:", g.Board.Ascii())
	if g.Winner != 0 {
		fmt.Printf("Player %d WINS\n", g.Winner)
	} else {
		fmt.Println("Nobody wins")
	}
}

func readLine() (string, bool) {
	if stdin.Scan() {
		return stdin.Text(), true
	}
	return "", false
}

// askInt prompts until the user enters an integer within [lo, hi].
func askInt(prompt string, lo, hi int) int {
	for {
		fmt.Printf("\n%s (%d-%d): ", prompt, lo, hi)
		line, ok := readLine()
		if !ok {
			os.Exit(0)
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Println("Failed to parse as integer:", err)
			continue
		}
		if v < lo || v > hi {
			fmt.Printf("Value must be between %d and %d\n", lo, hi)
			continue
		}
		return v
	}
}

// parsePosition splits comma, space, or underscore separated
// coordinates into a position vector.
func parsePosition(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '_'
	})
	pos := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q as integer: %w", f, err)
		}
		pos = append(pos, v)
	}
	return pos, nil
}
