package extractor

import (
	"strings"
	"testing"

	"github.com/panbanda/codegraph/pkg/complexity"
)

func extractGo(t *testing.T, code string) *FileAnalysis {
	t.Helper()
	g := NewGo()
	fa, err := g.Extract("main.go", []byte(code))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return fa
}

func TestGoSingleImports(t *testing.T) {
	code := `package main

import "fmt"
import f "flag"
`
	fa := extractGo(t, code)

	if len(fa.Dependencies) != 2 {
		t.Fatalf("got %d edges, want 2: %v", len(fa.Dependencies), fa.Dependencies)
	}
	if fa.Dependencies[0].Target != "fmt" || fa.Dependencies[0].Line != 3 {
		t.Errorf("edge 0 = %+v, want fmt at line 3", fa.Dependencies[0])
	}
	if fa.Dependencies[1].Target != "flag" || fa.Dependencies[1].Line != 4 {
		t.Errorf("edge 1 = %+v, want flag at line 4", fa.Dependencies[1])
	}
}

func TestGoBlockImports(t *testing.T) {
	code := `package main

import (
	"os"
	log "fmt"
	_ "net/http/pprof"
	. "strings"
)

var x = "not an import"
`
	fa := extractGo(t, code)

	want := []string{"os", "fmt", "net/http/pprof", "strings"}
	if len(fa.Imports) != len(want) {
		t.Fatalf("Imports = %v, want %v", fa.Imports, want)
	}
	for i, target := range want {
		if fa.Imports[i] != target {
			t.Errorf("Imports[%d] = %q, want %q", i, fa.Imports[i], target)
		}
	}

	// A quoted string after the block closes must not register.
	for _, edge := range fa.Dependencies {
		if edge.Target == "not an import" {
			t.Error("string literal outside import block recorded as edge")
		}
	}
}

func TestGoImportColumn(t *testing.T) {
	fa := extractGo(t, "package main\n\nimport \"errors\"\n")

	if len(fa.Dependencies) != 1 {
		t.Fatalf("got %d edges, want 1", len(fa.Dependencies))
	}
	if col := fa.Dependencies[0].Column; col != 7 {
		t.Errorf("Column = %d, want 7", col)
	}
}

func TestGoFunctionsAndReceivers(t *testing.T) {
	code := `package main

func Run(n int) int {
	return n
}

func (s *Server) Handle(req string) {
	s.log(req)
}
`
	fa := extractGo(t, code)

	want := []string{"Run", "Handle"}
	if len(fa.Functions) != len(want) {
		t.Fatalf("Functions = %v, want %v", fa.Functions, want)
	}
	for i, name := range want {
		if fa.Functions[i] != name {
			t.Errorf("Functions[%d] = %q, want %q", i, fa.Functions[i], name)
		}
	}
}

func TestGoComplexity(t *testing.T) {
	code := `package main

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}

func pairs(xs []int) {
	for i := range xs {
		for j := range xs {
			use(i, j)
		}
	}
}

func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
`
	fa := extractGo(t, code)

	classes := map[string]complexity.Class{}
	for _, rec := range fa.Complexity {
		classes[rec.Function] = rec.Class
	}
	if classes["sum"] != complexity.ON {
		t.Errorf("sum = %q, want %q", classes["sum"], complexity.ON)
	}
	if classes["pairs"] != complexity.ON2 {
		t.Errorf("pairs = %q, want %q", classes["pairs"], complexity.ON2)
	}
	if classes["fib"] != complexity.O2N {
		t.Errorf("fib = %q, want %q", classes["fib"], complexity.O2N)
	}
}

func TestGoTypeDefinitions(t *testing.T) {
	code := `package main

type Server struct {
	addr string
}

type Handler interface {
	Handle(string)
}

type alias = int
`
	fa := extractGo(t, code)

	got := strings.Join(fa.TypeDefinitions, ",")
	if got != "Server,Handler" {
		t.Errorf("TypeDefinitions = %v, want [Server Handler]", fa.TypeDefinitions)
	}
}

func TestGoCanHandle(t *testing.T) {
	g := NewGo()
	if !g.CanHandle("pkg/graph/graph.go") {
		t.Error("CanHandle(graph.go) = false")
	}
	if g.CanHandle("notes.god") || g.CanHandle("main.rs") {
		t.Error("non-Go path accepted")
	}
}
