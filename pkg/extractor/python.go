package extractor

import (
	"context"
	"fmt"

	"github.com/panbanda/codegraph/pkg/complexity"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// pythonShape drives the structural complexity estimation path.
var pythonShape = complexity.TreeShape{
	LoopTypes: []string{"for_statement", "while_statement"},
	CallType:  "call",
	CallField: "function",
}

// Python extracts dependencies and complexity from a full Python syntax
// tree. It is the one structural extractor; the parser it holds is not safe
// for concurrent use, so parallel callers create one Python per worker.
type Python struct {
	parser *sitter.Parser
}

// NewPython creates the Python extractor.
func NewPython() *Python {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &Python{parser: p}
}

// Close releases parser resources.
func (p *Python) Close() {
	p.parser.Close()
}

// CanHandle implements Extractor.
func (p *Python) CanHandle(path string) bool {
	return hasExtension(path, []string{".py", ".pyw", ".pyi"})
}

// Extract implements Extractor.
func (p *Python) Extract(path string, content []byte) (*FileAnalysis, error) {
	fa := NewFileAnalysis()

	if err := validUTF8(path, content); err != nil {
		return fa, err
	}

	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return fa, fmt.Errorf("%s: parse failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	p.walk(root, content, path, fa)
	return fa, nil
}

// walk visits every node once, dispatching on the statement kinds the
// shared record model cares about. Function definitions are not terminal:
// descending into them is what surfaces nested functions as independent
// records.
func (p *Python) walk(node *sitter.Node, source []byte, path string, fa *FileAnalysis) {
	if node == nil {
		return
	}

	switch node.Type() {
	case "import_statement":
		p.extractImport(node, source, path, fa)
	case "import_from_statement":
		p.extractFromImport(node, source, path, fa)
	case "function_definition":
		p.extractFunction(node, source, path, fa)
	case "class_definition":
		if name := node.ChildByFieldName("name"); name != nil {
			fa.TypeDefinitions = append(fa.TypeDefinitions, text(name, source))
		}
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		p.walk(node.Child(i), source, path, fa)
	}
}

// extractImport emits one edge per bound name of a plain import statement.
func (p *Python) extractImport(node *sitter.Node, source []byte, path string, fa *FileAnalysis) {
	for _, name := range childrenByField(node, "name") {
		target := importedName(name, source)
		if target == "" {
			continue
		}
		fa.Dependencies = append(fa.Dependencies, edgeAt(node, path, target))
		fa.Imports = append(fa.Imports, target)
	}
}

// extractFromImport emits one edge per bound name, each target qualified as
// module.name.
func (p *Python) extractFromImport(node *sitter.Node, source []byte, path string, fa *FileAnalysis) {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return
	}
	modName := text(module, source)
	fa.Imports = append(fa.Imports, modName)

	for _, name := range childrenByField(node, "name") {
		bound := importedName(name, source)
		if bound == "" {
			continue
		}
		fa.Dependencies = append(fa.Dependencies, edgeAt(node, path, modName+"."+bound))
	}
}

// extractFunction records one complexity estimate per function or method,
// including nested and asynchronous definitions, inspecting only that
// function's own subtree.
func (p *Python) extractFunction(node *sitter.Node, source []byte, path string, fa *FileAnalysis) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	name := text(nameNode, source)
	fa.Functions = append(fa.Functions, name)

	class := complexity.EstimateTree(node, source, name, pythonShape)
	fa.Complexity = append(fa.Complexity,
		complexity.NewRecord(name, path, class, int(node.StartPoint().Row)+1))
}

// importedName resolves the bound module name of a dotted_name or
// aliased_import node. Aliases bind the original name, not the alias.
func importedName(node *sitter.Node, source []byte) string {
	switch node.Type() {
	case "dotted_name":
		return text(node, source)
	case "aliased_import":
		if orig := node.ChildByFieldName("name"); orig != nil {
			return text(orig, source)
		}
	case "wildcard_import":
		return "*"
	}
	return ""
}

// childrenByField collects every child bound to the given field name.
func childrenByField(node *sitter.Node, field string) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.FieldNameForChild(i) == field {
			out = append(out, node.Child(i))
		}
	}
	return out
}

// edgeAt builds an import edge positioned at the statement node.
func edgeAt(stmt *sitter.Node, path, target string) DependencyEdge {
	return DependencyEdge{
		Source: path,
		Target: target,
		Kind:   EdgeImport,
		Line:   int(stmt.StartPoint().Row) + 1,
		Column: int(stmt.StartPoint().Column),
	}
}

// text extracts the source text for a node.
func text(n *sitter.Node, source []byte) string {
	start, end := n.StartByte(), n.EndByte()
	if start > end || end > uint32(len(source)) {
		return ""
	}
	return string(source[start:end])
}
