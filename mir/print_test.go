package mir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "assign call",
			node: &StmtAssign{
				Place: NewPlace("x", &ProjDeref{Bare: true}),
				Value: &Call{
					Func: NewPath("std", "mem", "take"),
					Args: []Operand{&OperandMove{Place: NewPlace("y")}},
				},
			},
			want: "*x = std::mem::take(move y)",
		},
		{
			name: "place",
			node: NewPlace("x",
				&ProjField{Field: NewID("0")},
				&ProjDeref{},
				&ProjSubslice{From: Offset{Value: 1}, To: Offset{Value: 3, FromEnd: true}},
			),
			want: "(*x.0)[1:-3]",
		},
		{
			name: "downcast",
			node: NewPlace("x3", &ProjDowncast{Variant: NewID("Some")}, &ProjField{Field: NewID("0")}),
			want: "(x3 as Some).0",
		},
		{
			name: "crate path",
			node: &Path{Crate: true, Segments: []PathSegment{{Ident: NewID("ffi")}, {Ident: NewID("attach")}}},
			want: "$crate::ffi::attach",
		},
		{
			name: "turbofish",
			node: &Path{Segments: []PathSegment{
				{Ident: NewID("Vec"), Generics: &GenericArgs{Turbofish: true, Args: []Type{NewPath("u8")}}},
				{Ident: NewID("new")},
			}},
			want: "Vec::<u8>::new",
		},
		{
			name: "qualified",
			node: &QualifiedPath{
				Self:     &QualifiedPath{Self: NewPath("CStr"), Segments: []PathSegment{{Ident: NewID("f")}}},
				Segments: []PathSegment{{Ident: NewID("g")}},
			},
			want: "<<CStr>::f>::g",
		},
		{
			name: "raw ref",
			node: &RvalueRawRef{Mut: true, Place: NewPlace("y", &ProjDeref{Bare: true})},
			want: "&raw mut *y",
		},
		{
			name: "ref type",
			node: &TypeRef{Mut: true, Elem: &TypeSlice{Elem: NewPath("u8")}},
			want: "&mut [u8]",
		},
		{
			name: "aggregate",
			node: &RvalueAggregate{
				Path:   NewPath("Test"),
				Fields: []FieldValue{{Name: NewID("x"), Value: &OperandConst{Value: IntLit("0")}}},
			},
			want: "Test { x: const 0 }",
		},
		{
			name: "ptr from",
			node: &RvaluePtrFrom{
				Type: &TypeSlice{Elem: NewPath("i32")},
				Data: &OperandPath{Path: NewPath("ptr")},
				Meta: &OperandPath{Path: NewPath("meta")},
			},
			want: "*const [i32] from (ptr, meta)",
		},
		{
			name: "cast",
			node: &RvalueCast{
				Operand: &OperandCopy{Place: NewPlace("x")},
				Type:    NewPath("isize"),
				Kind:    CastKind{NewID("IntToInt")},
			},
			want: "copy x as isize (IntToInt)",
		},
		{
			name: "braced meta",
			node: &Meta{Delim: Braces, Vars: []MetaVar{{Name: NewID("$T"), Kind: NewID("ty")}}, TrailingComma: true},
			want: "meta! {$T:ty,}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.node))
		})
	}
}

func TestFormatLayout(t *testing.T) {
	loop := &Loop{Body: &Block{Stmts: []Statement{
		&SwitchInt{
			Discr: &OperandMove{Place: NewPlace("cmp")},
			Arms: []*SwitchArm{
				{Key: Literal{Kind: LitBool, Text: "false"}, Body: &Break{}, Comma: true},
				{Wildcard: true, Body: &Block{}},
			},
		},
	}}}
	assert.Equal(t, "loop {\n    switchInt(move cmp) {\n        false => break,\n        _ => {}\n    }\n}", Format(loop))

	m := &Mir{
		Metas: []*Meta{{Vars: []MetaVar{{Name: NewID("$T"), Kind: NewID("ty")}}}},
		Types: []*TypeDecl{{Name: NewID("A"), Type: &TypeSlice{Elem: NewPath("$T")}}},
		Body:  []Statement{&StmtDrop{Place: NewPlace("x")}},
	}
	assert.Equal(t, "meta!($T:ty);\n\ntype A = [$T];\n\ndrop(x);", Format(m))
	assert.Equal(t, "", Format(&Mir{}))
}

func TestGlued(t *testing.T) {
	assert.True(t, glued("a", "b"))
	assert.True(t, glued(":", ":"))
	assert.True(t, glued("=", ">"))
	assert.False(t, glued("x", "::"))
	assert.False(t, glued("(", "x"))
}
