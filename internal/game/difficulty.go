// internal/game/difficulty.go
//
// Group selection. Two stages for every difficulty:
//
//   Stage 1 — pick a target group size. The largest size keeps the biggest
//   pool of indistinguishable words alive, which is what makes the keeper
//   evil. EASY and MEDIUM periodically hand the player the second-largest
//   distinct size instead (every second and every fourth guess), closing
//   the exploit where a player who knows the policy forces the same branch
//   every time. HARD never relents.
//
//   Stage 2 — among groups of the target size, take the lexicographically
//   smallest pattern. Mandatory even when the size is unique; this is what
//   makes selection deterministic.

package game

import "sort"

// selectGroup picks the surviving group from a non-empty partition.
// guessCount is the number of guesses made this round, counting the
// current one.
func selectGroup(p Partition, guessCount int, diff Difficulty) Group {
	// Distinct group sizes, descending.
	seen := make(map[int]bool, len(p))
	sizes := make([]int, 0, len(p))
	for _, g := range p {
		if !seen[g.Size()] {
			seen[g.Size()] = true
			sizes = append(sizes, g.Size())
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	target := sizes[0]
	switch diff {
	case Easy:
		if guessCount%2 == 0 && len(sizes) > 1 {
			target = sizes[1]
		}
	case Medium:
		if guessCount%4 == 0 && len(sizes) > 1 {
			target = sizes[1]
		}
	}

	// The partition is already in ascending pattern order, so the first
	// group of the target size has the smallest pattern.
	for _, g := range p {
		if g.Size() == target {
			return g
		}
	}
	return p[0] // unreachable: target always comes from p
}
