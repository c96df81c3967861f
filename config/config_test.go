package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/coreos/pkg/capnslog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Strict())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: DEBUG
patterns: ["patterns/*.mir"]
strict_meta: false
requires: ">= 0.3, < 1"
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"patterns/*.mir"}, cfg.Patterns)
	assert.False(t, cfg.Strict())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, capnslog.DEBUG, level)

	assert.NoError(t, cfg.CheckGrammar(semver.MustParse("0.3.0")))
	assert.Error(t, cfg.CheckGrammar(semver.MustParse("1.0.0")))
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown field", "strict: true"},
		{"bad level", "log_level: LOUD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}

	cfg := &Config{Requires: "not a version"}
	assert.Error(t, cfg.CheckGrammar(semver.MustParse("0.3.0")))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	strict := false
	want := &Config{LogLevel: "INFO", Patterns: []string{"a/*.mir"}, StrictMeta: &strict}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mir", "a.mir", "c.txt"} {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	cfg := &Config{Patterns: []string{"*.mir", "a.*"}}
	files, err := cfg.Files(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.mir"), filepath.Join(dir, "b.mir")}, files)
}
