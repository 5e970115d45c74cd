// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

// State counts how many tiles, in grid order, are uncovered.
// The zero value has no tiles and is already complete.
//
// Invariant: 0 <= Revealed() <= Total().
type State struct {
	revealed int
	total    int
}

// NewState returns a fully covered state with total tiles.
// A negative total is treated as zero.
func NewState(total int) State {
	return State{total: max(total, 0)}
}

// RevealPieces sets the revealed count to n clamped to [0, Total()].
// It is a set, not an increment, so it may cover tiles back up.
func (s *State) RevealPieces(n int) {
	s.revealed = min(max(n, 0), s.total)
}

// RevealNext uncovers one more tile. It reports false, and changes
// nothing, once every tile is revealed.
func (s *State) RevealNext() bool {
	if s.revealed >= s.total {
		return false
	}
	s.revealed++
	return true
}

// Revealed returns the number of uncovered tiles.
func (s State) Revealed() int { return s.revealed }

// Total returns the number of tiles.
func (s State) Total() int { return s.total }

// IsComplete reports whether every tile is uncovered.
func (s State) IsComplete() bool { return s.revealed >= s.total }
