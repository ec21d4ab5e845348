// Package complexity estimates the asymptotic cost of a function from its
// syntactic loop and recursion shape alone. The estimate is deliberately
// coarse: no data-flow analysis is performed, and three or more levels of
// loop nesting still collapse to O(n²).
package complexity

import (
	"fmt"
	"math"
)

// Class is an ordinal complexity label. Classes are totally ordered by rank.
type Class string

const (
	O1    Class = "O(1)"
	OLogN Class = "O(log n)"
	ON    Class = "O(n)"
	ONLog Class = "O(n log n)"
	ON2   Class = "O(n²)"
	O2N   Class = "O(2^n)"
	ONFac Class = "O(n!)"
)

// String returns the string representation.
func (c Class) String() string {
	return string(c)
}

// ranked lists the classes in ascending order of cost. Rank is index+1.
var ranked = []Class{O1, OLogN, ON, ONLog, ON2, O2N, ONFac}

// defaultRank is used for unrecognized labels so that averaging stays
// conservative rather than dragging the mean toward O(1).
const defaultRank = 3

// Rank returns the ordinal rank of the class, 1 through 7.
// Unrecognized labels map to rank 3 (O(n)).
func (c Class) Rank() int {
	for i, r := range ranked {
		if r == c {
			return i + 1
		}
	}
	return defaultRank
}

// FromRank maps an ordinal rank back to its class label. Ranks outside 1..7
// clamp to the nearest bound.
func FromRank(rank int) Class {
	if rank < 1 {
		rank = 1
	}
	if rank > len(ranked) {
		rank = len(ranked)
	}
	return ranked[rank-1]
}

// IsHigh reports whether the class warrants an optimization warning.
func (c Class) IsHigh() bool {
	return c == ON2 || c == O2N || c == ONFac
}

// Warning returns the advisory message for a high class, or "" otherwise.
func (c Class) Warning() string {
	if !c.IsHigh() {
		return ""
	}
	return fmt.Sprintf("Consider optimizing - complexity is %s", c)
}

// Average computes the mean ordinal rank across classes and maps it back to
// the nearest class label. An empty input averages to O(1).
func Average(classes []Class) Class {
	if len(classes) == 0 {
		return O1
	}
	total := 0
	for _, c := range classes {
		total += c.Rank()
	}
	mean := float64(total) / float64(len(classes))
	return FromRank(int(math.Round(mean)))
}

// Record is one complexity estimate for a discovered function or method.
// Nested functions produce their own independent records.
type Record struct {
	Function string `json:"function" toon:"function"`
	File     string `json:"file" toon:"file"`
	Class    Class  `json:"complexity" toon:"complexity"`
	Line     int    `json:"line" toon:"line"`
	Warning  string `json:"warning,omitempty" toon:"warning,omitempty"`
}

// NewRecord builds a record, attaching the advisory warning for high classes.
func NewRecord(function, file string, class Class, line int) Record {
	return Record{
		Function: function,
		File:     file,
		Class:    class,
		Line:     line,
		Warning:  class.Warning(),
	}
}
