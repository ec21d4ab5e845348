package extractor

import (
	"strings"
	"testing"

	"github.com/panbanda/codegraph/pkg/complexity"
)

func extractJS(t *testing.T, code string) *FileAnalysis {
	t.Helper()
	j := NewJavaScript()
	fa, err := j.Extract("app.js", []byte(code))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return fa
}

func TestJavaScriptImportForms(t *testing.T) {
	code := `import React from 'react';
import './styles.css';
const fs = require('fs');
const mod = import('./dynamic');
`
	fa := extractJS(t, code)

	targets := make([]string, len(fa.Dependencies))
	for i, d := range fa.Dependencies {
		targets[i] = d.Target
	}

	for _, want := range []string{"react", "./styles.css", "fs", "./dynamic"} {
		found := false
		for _, got := range targets {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing import target %q in %v", want, targets)
		}
	}
}

func TestJavaScriptImportPosition(t *testing.T) {
	fa := extractJS(t, "const x = 1;\nimport lib from 'lib';\n")

	if len(fa.Dependencies) != 1 {
		t.Fatalf("got %d edges, want 1", len(fa.Dependencies))
	}
	edge := fa.Dependencies[0]
	if edge.Line != 2 {
		t.Errorf("Line = %d, want 2", edge.Line)
	}
	if edge.Column != 0 {
		t.Errorf("Column = %d, want 0", edge.Column)
	}
}

func TestJavaScriptFunctionForms(t *testing.T) {
	code := `function plain(a) {
  return a;
}
const obj = {
  method: function(b) {
    return b;
  },
};
handler = function(c) {
  return c;
};
const arrow = (d) => {
  return d;
};
`
	fa := extractJS(t, code)

	want := []string{"plain", "method", "handler", "arrow"}
	if len(fa.Functions) != len(want) {
		t.Fatalf("Functions = %v, want %v", fa.Functions, want)
	}
	for i, name := range want {
		if fa.Functions[i] != name {
			t.Errorf("Functions[%d] = %q, want %q", i, fa.Functions[i], name)
		}
	}
}

func TestJavaScriptArrowCountedOnce(t *testing.T) {
	fa := extractJS(t, "const once = (x) => {\n  return x;\n};\n")

	if len(fa.Functions) != 1 {
		t.Errorf("arrow function recorded %d times: %v", len(fa.Functions), fa.Functions)
	}
}

func TestJavaScriptComplexity(t *testing.T) {
	code := `function nested(xs) {
  for (const a of xs) {
    for (const b of xs) {
      use(a, b);
    }
  }
}
function recurse(n) {
  if (n <= 0) return 0;
  return recurse(n - 1);
}
`
	fa := extractJS(t, code)

	classes := map[string]complexity.Class{}
	for _, rec := range fa.Complexity {
		classes[rec.Function] = rec.Class
	}
	if classes["nested"] != complexity.ON2 {
		t.Errorf("nested = %q, want %q", classes["nested"], complexity.ON2)
	}
	if classes["recurse"] != complexity.O2N {
		t.Errorf("recurse = %q, want %q", classes["recurse"], complexity.O2N)
	}
}

func TestJavaScriptClasses(t *testing.T) {
	code := `class Widget {}
class Panel extends Widget {}
`
	fa := extractJS(t, code)

	got := strings.Join(fa.TypeDefinitions, ",")
	if got != "Widget,Panel" {
		t.Errorf("TypeDefinitions = %v, want [Widget Panel]", fa.TypeDefinitions)
	}
}

func TestJavaScriptCanHandle(t *testing.T) {
	j := NewJavaScript()
	for _, path := range []string{"a.js", "b.ts", "c.jsx", "d.tsx"} {
		if !j.CanHandle(path) {
			t.Errorf("CanHandle(%q) = false", path)
		}
	}
	if j.CanHandle("a.java") {
		t.Error("CanHandle(a.java) = true")
	}
}
