package board

// IsWinAt reports whether the piece at pos sits on a completed line of
// Side equal cells. Intended to be called right after a placement to
// detect the winning move.
//
// Direction vectors over {-1,0,1} per axis are enumerated with an
// odometer loop. Stopping once the first component goes positive tests
// exactly half of the 3^D-1 nonzero vectors, which suffices because a
// line and its reverse are the same line.
func (b *Board) IsWinAt(pos []int) (bool, error) {
	n := len(pos)
	if n != b.Dimension {
		return false, ErrOutOfDimension
	}
	if n == 0 {
		return false, nil // a point has no lines through it
	}

	dir := make([]int, n)
	for i := range dir {
		dir[i] = -1
	}

	for dir[0] <= 0 {
		// the all-zero vector points nowhere and would always match
		if !zeroVector(dir) {
			win, err := b.checkWinDir(pos, dir)
			if err != nil {
				return false, err
			}
			if win {
				return true, nil
			}
		}

		// add one at the last axis and carry upward
		dir[n-1]++
		for i := n - 1; i > 0; i-- {
			if dir[i] > 1 {
				dir[i-1]++
				dir[i] = -1
			}
		}
	}

	return false, nil
}

// checkWinDir walks Side-1 steps from pos along dir, wrapping every
// coordinate back into 0..Side with a Euclidean modulo. Because the
// side length equals the win length, the wrapped walk visits exactly
// the three colinear cells in that direction, diagonals included, so
// lines never run off the board.
func (b *Board) checkWinDir(pos, dir []int) (bool, error) {
	if len(pos) != len(dir) {
		return false, ErrOutOfDimension
	}

	player, err := b.Get(pos)
	if err != nil {
		return false, err
	}
	if player == Empty {
		return false, nil
	}

	cur := make([]int, len(pos))
	copy(cur, pos)

	for step := 0; step < Side-1; step++ {
		for i := range cur {
			cur[i] = ((cur[i]+dir[i])%Side + Side) % Side
		}
		v, err := b.Get(cur)
		if err != nil {
			return false, err
		}
		if v != player {
			return false, nil
		}
	}

	return true, nil
}

func zeroVector(v []int) bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}
	return true
}
