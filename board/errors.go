package board

import "errors"

// Index errors: the position cannot be mapped into the board at all.
var (
	// ErrOutOfDimension reports a position or direction vector whose
	// length does not match the board's dimension.
	ErrOutOfDimension = errors.New("not enough or too few dimensions given in position")

	// ErrOutOfBounds reports a coordinate outside the valid per-axis
	// range 0..3.
	ErrOutOfBounds = errors.New("given position exceeds bounds of board")
)

// Placement errors: the position indexes fine but the move is illegal.
var (
	// ErrUnsupported reports a piece that would float above an empty
	// cell in the next-lower layer along its highest occupied axis.
	ErrUnsupported = errors.New("position is not supported by previous pieces")

	// ErrOccupied reports a target cell that already holds a piece.
	ErrOccupied = errors.New("position is already occupied")
)
