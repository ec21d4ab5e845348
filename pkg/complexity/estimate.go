package complexity

import (
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// The two estimation paths share one precedence order:
//
//  1. direct self-recursion        -> O(2^n)
//  2. a loop inside an open loop   -> O(n²)
//  3. at least one loop            -> O(n)
//  4. otherwise                    -> O(1)
//
// Recursion without detected memoization is assumed exponential.

// TreeShape names the AST node types that introduce loops and calls for one
// grammar, used by the structural estimation path.
type TreeShape struct {
	LoopTypes []string
	CallType  string
	CallField string
}

// EstimateTree classifies a function by walking its syntax subtree.
// selfName is the function's own name, used for self-recursion detection;
// aliased or indirect recursion is not detected.
func EstimateTree(fn *sitter.Node, source []byte, selfName string, shape TreeShape) Class {
	if fn == nil {
		return O1
	}

	loops := make(map[string]bool, len(shape.LoopTypes))
	for _, t := range shape.LoopTypes {
		loops[t] = true
	}

	var loopCount, nested, recursive int
	walkTree(fn, func(n *sitter.Node) {
		t := n.Type()
		if loops[t] {
			loopCount++
			if hasLoopDescendant(n, loops) {
				nested++
			}
			return
		}
		if t == shape.CallType && selfName != "" {
			callee := n.ChildByFieldName(shape.CallField)
			if callee != nil && callee.Type() == "identifier" &&
				nodeText(callee, source) == selfName {
				recursive++
			}
		}
	})

	switch {
	case recursive > 0:
		return O2N
	case nested > 0:
		return ON2
	case loopCount > 0:
		return ON
	default:
		return O1
	}
}

// hasLoopDescendant reports whether any strict descendant of n is a loop.
func hasLoopDescendant(n *sitter.Node, loops map[string]bool) bool {
	found := false
	for i := 0; i < int(n.ChildCount()); i++ {
		walkTree(n.Child(i), func(c *sitter.Node) {
			if loops[c.Type()] {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}

// walkTree visits n and every descendant in depth-first order.
func walkTree(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		walkTree(n.Child(i), visit)
	}
}

// nodeText extracts the source text for a node.
func nodeText(n *sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}

// EstimateText classifies a function from its raw body lines. The first line
// is the declaration; loop is the language's loop-keyword pattern.
func EstimateText(body []string, selfName string, loop *regexp.Regexp) Class {
	loopCount := 0
	for _, line := range body {
		loopCount += len(loop.FindAllStringIndex(line, -1))
	}

	switch {
	case selfName != "" && countSelfCalls(body, selfName) > 0:
		return O2N
	case nestedByLoopFlag(body, loop):
		return ON2
	case loopCount > 0:
		return ON
	default:
		return O1
	}
}

// countSelfCalls counts calls to selfName in the body, skipping the
// declaration line so the definition itself does not register.
func countSelfCalls(body []string, selfName string) int {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(selfName) + `\s*\(`)
	count := 0
	for i, line := range body {
		if i == 0 {
			continue
		}
		count += len(re.FindAllStringIndex(line, -1))
	}
	return count
}

// nestedByLoopFlag is the single-level nesting heuristic for text-based
// extraction: a flag set on loop lines and cleared on closing-brace lines.
// It is knowingly lossy on multi-line conditionals; keep it behind this
// function so a real nested-scope tracker can replace it.
func nestedByLoopFlag(body []string, loop *regexp.Regexp) bool {
	inLoop := false
	for _, line := range body {
		if loop.MatchString(line) {
			if inLoop {
				return true
			}
			inLoop = true
		} else if strings.Contains(line, "}") {
			inLoop = false
		}
	}
	return false
}
