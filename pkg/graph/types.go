package graph

// Severity classifies how urgent a circular dependency is.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// String returns the string representation.
func (s Severity) String() string {
	return string(s)
}

// severityThreshold is the closed-walk length above which a cycle is an error.
const severityThreshold = 5

// Cycle represents one circular dependency. Nodes is the closed walk with
// the starting node repeated at the end, so a self loop is ["a", "a"].
type Cycle struct {
	Nodes    []string `json:"cycle" toon:"cycle"`
	Severity Severity `json:"severity" toon:"severity"`
}

// SeverityFor classifies a closed walk by its length.
func SeverityFor(walk []string) Severity {
	if len(walk) > severityThreshold {
		return SeverityError
	}
	return SeverityWarning
}

// Len returns the number of distinct nodes on the cycle.
func (c Cycle) Len() int {
	if len(c.Nodes) == 0 {
		return 0
	}
	return len(c.Nodes) - 1
}
