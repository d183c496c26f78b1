package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptRoundTrip(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)

	script := [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}}
	for _, pos := range script {
		_, err := g.Move(pos)
		require.NoError(t, err)
	}
	require.Equal(t, Finished, g.Status)

	replayed, err := Replay(g.Transcript())
	require.NoError(t, err)

	assert.Equal(t, g.Status, replayed.Status)
	assert.Equal(t, g.Winner, replayed.Winner)
	assert.Equal(t, g.Board.Ascii(), replayed.Board.Ascii())
	assert.Equal(t, g.Moves(), replayed.Moves())
}

func TestTranscriptWithResign(t *testing.T) {
	g, err := New(3, 3)
	require.NoError(t, err)

	_, err = g.Move([]int{0, 0, 0})
	require.NoError(t, err)
	require.NoError(t, g.Resign()) // player 2
	_, err = g.Move([]int{1, 0, 0})
	require.NoError(t, err)

	replayed, err := Replay(g.Transcript())
	require.NoError(t, err)
	assert.Equal(t, g.CurrentPlayer(), replayed.CurrentPlayer())
	assert.Equal(t, g.Board.Ascii(), replayed.Board.Ascii())
}

func TestReplayRejectsMalformed(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	_, err = g.Move([]int{0, 0})
	require.NoError(t, err)
	data := g.Transcript()
	// layout: version, dimension, players, count u32, then records;
	// the first record's player byte sits at offset 8
	require.Len(t, data, 11)

	mutate := func(idx int, val byte) []byte {
		d := append([]byte{}, data...)
		d[idx] = val
		return d
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad version", mutate(0, 99)},
		{"truncated", data[:len(data)-1]},
		{"trailing bytes", append(append([]byte{}, data...), 0)},
		{"unknown record kind", mutate(7, 7)},
		{"out of turn", mutate(8, 2)},
		{"out of bounds move", mutate(len(data)-1, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Replay(tt.data)
			assert.ErrorIs(t, err, ErrBadTranscript)
		})
	}
}
