package math

import "golang.org/x/exp/constraints"

// Half returns v/2 truncated towards zero, the same way the surface
// coordinates are split between the two sides of a center line.
func Half[T constraints.Integer](v T) T {
	return v / 2
}
