// Package board implements an N-dimensional tic-tac-toe board: a
// hypercube of side length 3 in Dimension axes, with gravity-aware
// piece placement and win detection along every line through the
// lattice.
package board

// Side is the length of the board along every axis. It is also the
// number of pieces in a row needed to win.
const Side = 3

// Cell holds the contents of a single board cell. Empty means no piece;
// any other value is a player identifier (1..255).
type Cell uint8

// Empty marks a cell with no piece on it.
const Empty Cell = 0

// Board is a hypercube of Side^Dimension cells kept in a flat buffer.
// The fields are exported for raw board-state inspection and direct
// test setup; gameplay goes through Place.
//
// Invariant: len(Cells) == Side^Dimension for the board's whole
// lifetime. The board exclusively owns its buffer.
type Board struct {
	Dimension int
	Cells     []Cell
}

// New allocates a zero-initialized board of the requested dimension.
// The caller is responsible for keeping dimension reasonable: the cell
// count grows as 3^dimension.
func New(dimension int) *Board {
	return &Board{
		Dimension: dimension,
		Cells:     make([]Cell, Length(dimension)),
	}
}

// Length returns the cell count of a board with the given dimension,
// Side^dimension.
func Length(dimension int) int {
	n := 1
	for i := 0; i < dimension; i++ {
		n *= Side
	}
	return n
}

// index converts a position into a flat offset into Cells. Axis i has
// place value Side^i, a mixed-radix base-3 encoding, so distinct valid
// positions map to distinct offsets and every offset in
// 0..Side^Dimension corresponds to exactly one position.
func (b *Board) index(pos []int) (int, error) {
	if len(pos) != b.Dimension {
		return 0, ErrOutOfDimension
	}
	idx := 0
	stride := 1
	for _, c := range pos {
		if c < 0 || c >= Side {
			return 0, ErrOutOfBounds
		}
		idx += c * stride
		stride *= Side
	}
	return idx, nil
}

// Get returns the value at a position.
func (b *Board) Get(pos []int) (Cell, error) {
	idx, err := b.index(pos)
	if err != nil {
		return Empty, err
	}
	return b.Cells[idx], nil
}

// At returns a handle to the cell at a position, granting write access
// to exactly that cell. Used internally by Place and externally for
// test setup.
func (b *Board) At(pos []int) (*Cell, error) {
	idx, err := b.index(pos)
	if err != nil {
		return nil, err
	}
	return &b.Cells[idx], nil
}

// Ascii flattens the board to a compact string, one character per cell
// in offset order. Each cell becomes '0' plus its value, which keeps
// debugging output tiny; only meaningful for single-digit player ids.
func (b *Board) Ascii() string {
	out := make([]byte, len(b.Cells))
	for i, c := range b.Cells {
		out[i] = byte('0' + c)
	}
	return string(out)
}
