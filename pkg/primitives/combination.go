package primitives

import "strings"

// Combination is an ordered sequence of chosen words forming one candidate solution.
type Combination []string

// With returns a new combination with word appended. The receiver is left untouched, so sibling
// branches of a search never share a backing array.
func (c Combination) With(word string) Combination {
	next := make(Combination, len(c), len(c)+1)
	copy(next, c)
	return append(next, word)
}

// Depth returns the number of words in the combination.
func (c Combination) Depth() int {
	return len(c)
}

// String renders the words separated by exactly one space.
func (c Combination) String() string {
	return strings.Join(c, " ")
}
