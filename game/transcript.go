package game

import (
	"encoding/binary"
	"errors"
	"fmt"

	"hyperoxo-nd/board"
)

// transcriptVersion increments when the transcript encoding changes.
const transcriptVersion uint8 = 1

// ErrBadTranscript reports bytes that do not decode into a legal
// sequence of records.
var ErrBadTranscript = errors.New("malformed transcript")

// Transcript serializes the match history into a compact binary form
// that Replay can rebuild the game from. The dimension must fit in one
// byte; any board a caller can realistically allocate does.
//
// Layout (big-endian):
//
//	version u8 | dimension u8 | players u8 | count u32 |
//	count records: kind u8, player u8, then one byte per coordinate
//	for placements
func (g *Game) Transcript() []byte {
	dim := g.Board.Dimension
	out := make([]byte, 0, 7+len(g.moves)*(2+dim))

	out = append(out, transcriptVersion, byte(dim), byte(g.Players))

	var cnt [4]byte
	binary.BigEndian.PutUint32(cnt[:], uint32(len(g.moves)))
	out = append(out, cnt[:]...)

	for _, r := range g.moves {
		out = append(out, r.kind, byte(r.player))
		if r.kind == recMove {
			for _, c := range r.pos {
				out = append(out, byte(c))
			}
		}
	}
	return out
}

// Replay rebuilds a game by applying a transcript record by record.
// Every record goes through the normal Move/Resign rules, so a
// transcript that was tampered with or truncated comes back as an
// error rather than an inconsistent game.
func Replay(data []byte) (*Game, error) {
	r := &reader{b: data}

	v, err := r.u8()
	if err != nil {
		return nil, err
	}
	if v != transcriptVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadTranscript, v)
	}

	dim, err := r.u8()
	if err != nil {
		return nil, err
	}
	players, err := r.u8()
	if err != nil {
		return nil, err
	}
	count, err := r.u32()
	if err != nil {
		return nil, err
	}

	g, err := New(int(dim), int(players))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTranscript, err)
	}

	for i := uint32(0); i < count; i++ {
		kind, err := r.u8()
		if err != nil {
			return nil, err
		}
		player, err := r.u8()
		if err != nil {
			return nil, err
		}
		if board.Cell(player) != g.CurrentPlayer() {
			return nil, fmt.Errorf("%w: record %d out of turn", ErrBadTranscript, i+1)
		}

		switch kind {
		case recMove:
			coords, err := r.bytes(int(dim))
			if err != nil {
				return nil, err
			}
			pos := make([]int, dim)
			for j, c := range coords {
				pos[j] = int(c)
			}
			if _, err := g.Move(pos); err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrBadTranscript, i+1, err)
			}
		case recResign:
			if err := g.Resign(); err != nil {
				return nil, fmt.Errorf("%w: record %d: %v", ErrBadTranscript, i+1, err)
			}
		default:
			return nil, fmt.Errorf("%w: unknown record kind %d", ErrBadTranscript, kind)
		}
	}

	if err := r.end(); err != nil {
		return nil, err
	}
	return g, nil
}

// reader is a bounds-checked binary reader over a transcript buffer.
type reader struct {
	b []byte
	i int
}

// need ensures that n bytes are available from the current position.
func (r *reader) need(n int) error {
	if r.i+n > len(r.b) {
		return fmt.Errorf("%w: truncated", ErrBadTranscript)
	}
	return nil
}

func (r *reader) u8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.b[r.i]
	r.i++
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.b[r.i : r.i+4])
	r.i += 4
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.b[r.i : r.i+n]
	r.i += n
	return v, nil
}

// end verifies the reader consumed all bytes exactly.
func (r *reader) end() error {
	if r.i != len(r.b) {
		return fmt.Errorf("%w: trailing bytes", ErrBadTranscript)
	}
	return nil
}
