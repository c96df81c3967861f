package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/pontaoski/mirpat/config"
)

func writePattern(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(src), 0o644))
	return path
}

func newRunner(out *bytes.Buffer) *runner {
	return &runner{cfg: config.Default(), out: out}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writePattern(t, dir, "good.mir", "meta!($T:ty);\ntype A = [$T];\n")
	generic := writePattern(t, dir, "generic.mir", "type A<T> = u8;\n")
	undeclared := writePattern(t, dir, "undeclared.mir", "let x: usize = SizeOf($T);\n")

	var out bytes.Buffer
	r := newRunner(&out)
	require.NoError(t, r.check([]string{good}))
	assert.Empty(t, out.String())

	err := r.check([]string{good, generic, undeclared})
	require.Error(t, err)
	assert.Equal(t, "2 of 3 pattern files failed", err.Error())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		generic + ":1:7: generics not supported on type declaration",
		undeclared + ":1:23: use of undeclared meta variable `$T`",
	}, lines)
}

func TestCheckLax(t *testing.T) {
	dir := t.TempDir()
	undeclared := writePattern(t, dir, "undeclared.mir", "let x: usize = SizeOf($T);\n")

	var out bytes.Buffer
	r := newRunner(&out)
	strict := false
	r.cfg.StrictMeta = &strict
	assert.NoError(t, r.check([]string{undeclared}))
}

func TestFormat(t *testing.T) {
	dir := t.TempDir()
	path := writePattern(t, dir, "loop.mir", "let len: usize;  loop{cmp=Lt(copy i,copy len);switchInt(move cmp){false=>break,_=>{}}}")

	want := `let len: usize;

loop {
    cmp = Lt(copy i, copy len);
    switchInt(move cmp) {
        false => break,
        _ => {}
    }
}
`
	var out bytes.Buffer
	r := newRunner(&out)
	require.NoError(t, r.format([]string{path}, false))
	assert.Equal(t, want, out.String())

	out.Reset()
	require.NoError(t, r.format([]string{path}, true))
	assert.Empty(t, out.String())
	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestTokens(t *testing.T) {
	dir := t.TempDir()
	path := writePattern(t, dir, "a.mir", "x = copy y;")

	var out bytes.Buffer
	require.NoError(t, newRunner(&out).tokens([]string{path}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, path+":1:1\tIDENT\tx", lines[0])
	assert.Equal(t, path+":1:11\tPUNCT\t;", lines[4])
}

func TestDump(t *testing.T) {
	dir := t.TempDir()
	path := writePattern(t, dir, "a.mir", "drop(x);")

	var out bytes.Buffer
	require.NoError(t, newRunner(&out).dump([]string{path}))
	assert.Contains(t, out.String(), "StmtDrop")
}

func newAppTo(out, errOut *bytes.Buffer) *cli.App {
	app := newApp()
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

func TestRunExitStatus(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), newAppTo(&out, &errOut), []string{"mirpat", "--no-such-flag"}))
	assert.Contains(t, errOut.String(), "mirpat: flag provided but not defined")

	out.Reset()
	errOut.Reset()
	assert.Equal(t, 0, run(context.Background(), newAppTo(&out, &errOut), []string{"mirpat", "--version"}))
	assert.Contains(t, out.String(), "mirpat version")
	assert.Empty(t, errOut.String())
}
