package main

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle"
)

func TestGenerateMarkers(t *testing.T) {
	parser := participle.MustBuild(&SumDecls{})

	decls := SumDecls{}
	err := parser.ParseString(`sum Operand = OperandCopy | OperandMove ;`, &decls)
	if err != nil {
		t.Fatal(err)
	}
	if len(decls.Declarations) != 1 || len(decls.Declarations[0].Variants) != 2 {
		t.Fatalf("unexpected declarations: %#v", decls)
	}

	got := GenerateMarkers("mir", "nodes.sum", &decls)
	for _, want := range []string{
		"package mir",
		"func (*OperandCopy) isOperand() {}",
		"func (*OperandMove) isOperand() {}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated code lacks %q:\n%s", want, got)
		}
	}
}

func TestGenerateMarkersContiguous(t *testing.T) {
	parser := participle.MustBuild(&SumDecls{})

	decls := SumDecls{}
	err := parser.ParseString(`sum TypePath = Path | QualifiedPath ; sum Operand = OperandCopy ;`, &decls)
	if err != nil {
		t.Fatal(err)
	}

	got := GenerateMarkers("mir", "nodes.sum", &decls)
	body := got[strings.Index(got, "func"):]
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 contiguous marker lines, got %d:\n%s", len(lines), got)
	}
	for i, want := range []string{"func (*Path) isTypePath()", "func (*QualifiedPath) isTypePath()", "func (*OperandCopy) isOperand()"} {
		if !strings.HasPrefix(lines[i], want) || !strings.HasSuffix(lines[i], "{}") {
			t.Errorf("line %d = %q, want %q ... {}", i, lines[i], want)
		}
	}
}
