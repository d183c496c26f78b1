package board

// Place puts a player's piece at a position, taking gravity into
// account, and reports whether the move completed a winning line.
//
// The base 2D plane (axes 0 and 1) needs no support, like the classic
// board. Any position whose highest nonzero axis lies beyond that plane
// must rest on an occupied cell one step lower along that axis,
// generalizing Connect-Four style stacking to arbitrary dimension.
//
// Placing Empty as the player is meaningless; callers pass ids 1..255.
func (b *Board) Place(player Cell, pos []int) (bool, error) {
	// find the highest nonzero axis of the position
	highest := 0
	for i := len(pos) - 1; i > 0; i-- {
		if pos[i] != 0 {
			highest = i
			break
		}
	}

	// placements on the original 2D board are always supported
	if highest > 1 {
		supporting := make([]int, len(pos))
		copy(supporting, pos)
		supporting[highest]--

		below, err := b.Get(supporting)
		if err != nil {
			return false, err
		}
		if below == Empty {
			return false, ErrUnsupported
		}
	}

	cell, err := b.At(pos)
	if err != nil {
		return false, err
	}
	if *cell != Empty {
		return false, ErrOccupied
	}
	*cell = player

	return b.IsWinAt(pos)
}
