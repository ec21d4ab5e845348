package graph

import (
	"strings"
	"testing"
)

func TestToMermaid(t *testing.T) {
	g := New()
	g.AddEdge("src/a.py", "src/b.py")

	out := g.ToMermaid()

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, `src_a_py["src/a.py"]`) {
		t.Errorf("missing node declaration: %q", out)
	}
	if !strings.Contains(out, "src_a_py -.->|imports| src_b_py") {
		t.Errorf("missing edge: %q", out)
	}
}

func TestToMermaidDirection(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")

	out := g.ToMermaidWithOptions(MermaidOptions{Direction: "LR"})
	if !strings.HasPrefix(out, "graph LR\n") {
		t.Errorf("direction not honored: %q", out)
	}
}

func TestToMermaidNodeCap(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")

	out := g.ToMermaidWithOptions(MermaidOptions{MaxNodes: 2, Direction: "TD"})

	if !strings.Contains(out, `a["a"]`) || !strings.Contains(out, `b["b"]`) {
		t.Errorf("kept nodes missing: %q", out)
	}
	if strings.Contains(out, `c["c"]`) {
		t.Errorf("node past cap rendered: %q", out)
	}
	// The b->c edge leaves the kept set and must be dropped with it.
	if strings.Contains(out, "b -.->") {
		t.Errorf("edge to dropped node rendered: %q", out)
	}
}

func TestToMermaidEdgeCap(t *testing.T) {
	g := New()
	g.AddEdge("a", "b")
	g.AddEdge("a", "c")
	g.AddEdge("a", "d")

	out := g.ToMermaidWithOptions(MermaidOptions{MaxEdges: 1, Direction: "TD"})

	if got := strings.Count(out, "-.->"); got != 1 {
		t.Errorf("rendered %d edges, want 1: %q", got, out)
	}
}

func TestSanitizeID(t *testing.T) {
	cases := map[string]string{
		"src/a.py":  "src_a_py",
		"9lives.go": "n9lives_go",
		"":          "empty",
		"plain":     "plain",
	}
	for in, want := range cases {
		if got := sanitizeID(in); got != want {
			t.Errorf("sanitizeID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeLabel(t *testing.T) {
	if got := escapeLabel(`a<b>&"c"|d`); got != `a&lt;b&gt;&amp;&quot;c&quot;&#124;d` {
		t.Errorf("escapeLabel = %q", got)
	}
}
