package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontaoski/mirpat/types"
)

func texts(toks []types.Token) []string {
	var ret []string
	for _, tok := range toks {
		ret = append(ret, tok.Text)
	}
	return ret
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"path", "std::mem::take", []string{"std", "::", "mem", "::", "take"}},
		{"crate marker", "$crate::ffi", []string{"$crate", "::", "ffi"}},
		{"nested generics", "Vec<Vec<T>>", []string{"Vec", "<", "Vec", "<", "T", ">", ">"}},
		{"suffixed int", "const 0_usize", []string{"const", "0_usize"}},
		{"tuple field", "x.0", []string{"x", ".", "0"}},
		{"subslice", "[1:-3]", []string{"[", "1", ":", "-", "3", "]"}},
		{"arm", "_ => break,", []string{"_", "=>", "break", ","}},
		{"comments", "a // b\n/* c\n d */ e", []string{"a", "e"}},
		{"string", `const "a\"b"`, []string{"const", `"a\"b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize("test", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(toks))
		})
	}
}

func TestTokenKinds(t *testing.T) {
	toks, err := Tokenize("test", `$T x 1_u8 "s" ;`)
	require.NoError(t, err)
	require.Len(t, toks, 5)

	want := []types.TokenKind{types.METAVAR, types.IDENT, types.INT, types.STRING, types.PUNCT}
	for i, tok := range toks {
		assert.Equal(t, want[i], tok.Kind, "token %q", tok.Text)
	}
	assert.Equal(t, 1, toks[0].Location.From.Line)
	assert.Equal(t, 1, toks[0].Location.From.Column)
	assert.Equal(t, 2, toks[0].Location.To.Column)
}

func TestInvalidToken(t *testing.T) {
	_, err := Tokenize("test", "x = `y`")
	require.Error(t, err)
	assert.Equal(t, "invalid token", err.Error())
}

func TestCursorFork(t *testing.T) {
	c, err := NewCursor("test", "a b c")
	require.NoError(t, err)

	fork := c.Fork()
	assert.Equal(t, "a", fork.Next().Text)
	assert.Equal(t, "b", fork.Next().Text)

	assert.Equal(t, 0, c.Offset())
	assert.True(t, c.PeekIs("a"))
	assert.Equal(t, "b", c.PeekN(1).Text)

	c.Next()
	c.Next()
	c.Next()
	assert.True(t, c.AtEOF())
	assert.Equal(t, types.EOF, c.Next().Kind)
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("crate"))
	assert.True(t, IsKeyword("as"))
	assert.False(t, IsKeyword("copy"))
	assert.False(t, IsKeyword("raw"))
}
