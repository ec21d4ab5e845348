package graph

import "strings"

// MermaidOptions configures Mermaid diagram generation.
type MermaidOptions struct {
	MaxNodes  int
	MaxEdges  int
	Direction string
}

// DefaultMermaidOptions returns sensible defaults.
func DefaultMermaidOptions() MermaidOptions {
	return MermaidOptions{
		MaxNodes:  50,
		MaxEdges:  150,
		Direction: "TD",
	}
}

// ToMermaid generates Mermaid diagram syntax using default options.
func (g *Graph) ToMermaid() string {
	return g.ToMermaidWithOptions(DefaultMermaidOptions())
}

// ToMermaidWithOptions generates Mermaid diagram syntax with custom options.
func (g *Graph) ToMermaidWithOptions(opts MermaidOptions) string {
	direction := opts.Direction
	if direction == "" {
		direction = "TD"
	}

	var b strings.Builder
	b.WriteString("graph " + direction + "\n")

	nodes := g.Nodes()
	if opts.MaxNodes > 0 && len(nodes) > opts.MaxNodes {
		nodes = nodes[:opts.MaxNodes]
	}
	kept := make(map[string]bool, len(nodes))
	for _, node := range nodes {
		kept[node] = true
		b.WriteString("    " + sanitizeID(node) + "[\"" + escapeLabel(node) + "\"]\n")
	}

	edges := 0
	for _, source := range nodes {
		for _, target := range g.Successors(source) {
			if !kept[target] {
				continue
			}
			if opts.MaxEdges > 0 && edges >= opts.MaxEdges {
				return b.String()
			}
			b.WriteString("    " + sanitizeID(source) + " -.->|imports| " + sanitizeID(target) + "\n")
			edges++
		}
	}

	return b.String()
}

// sanitizeID makes a node name safe for use as a Mermaid identifier.
func sanitizeID(id string) string {
	if id == "" {
		return "empty"
	}
	var out []byte
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			out = append(out, c)
		} else {
			out = append(out, '_')
		}
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]byte{'n'}, out...)
	}
	return string(out)
}

// escapeLabel escapes characters Mermaid treats specially inside labels.
func escapeLabel(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
		"|", "&#124;",
		"[", "&#91;",
		"]", "&#93;",
	)
	return r.Replace(s)
}
