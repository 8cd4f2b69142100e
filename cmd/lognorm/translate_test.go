package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildscan/lognorm/pkg/optparse"
)

func newTestTranslator(t *testing.T, compilers ...string) *Translator {
	t.Helper()
	parser, err := optparse.New()
	require.NoError(t, err)
	return NewTranslator(parser, compilers)
}

func TestTranslateEntryArguments(t *testing.T) {
	tr := newTestTranslator(t)
	results, err := tr.TranslateEntry(Entry{
		Arguments: []string{"g++", "-c", "a.cpp", "-o", "a.o"},
		File:      "a.cpp",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, optparse.Compile, results[0].Action)
	assert.Equal(t, []string{"a.cpp"}, results[0].Files)
	assert.Equal(t, "g++", results[0].Compiler)
}

func TestTranslateEntryCommand(t *testing.T) {
	tr := newTestTranslator(t)
	results, err := tr.TranslateEntry(Entry{Command: "gcc -c a.c -o a.o"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"a.c"}, results[0].Files)
}

func TestTranslateLine(t *testing.T) {
	t.Run("compound line", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine("cd /src && gcc -c a.c -o a.o")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, optparse.Compile, results[0].Action)
		assert.Equal(t, []string{"a.c"}, results[0].Files)
	})

	t.Run("non-compiler line yields nothing", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine("rm -f a.o")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("dynamic compiler call skipped", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine("gcc $CFLAGS -c a.c")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("redirected line keeps only real inputs", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine("gcc -c a.c > build.log 2>&1")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []string{"a.c"}, results[0].Files)
		assert.Equal(t, optparse.Compile, results[0].Action)
	})

	t.Run("wrapped call flattens quoted whitespace", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine(`cd /x && gcc -DMSG="a b" -c f.c`)
		require.NoError(t, err)
		require.Len(t, results, 1)
		// AST resolution removed the quotes; the value is kept as one
		// option but cannot round-trip another shell split.
		assert.Equal(t, []string{"-DMSG=a b"}, results[0].CompileOpts)
		assert.Equal(t, []string{"f.c"}, results[0].Files)
	})

	t.Run("single plain call preserves quoting", func(t *testing.T) {
		tr := newTestTranslator(t)
		results, err := tr.TranslateLine(`gcc -c -DVAR="v a" x.c`)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, []string{`-DVAR="\"v a"\"`}, results[0].CompileOpts)
	})

	t.Run("extra compiler names", func(t *testing.T) {
		tr := newTestTranslator(t, "icc")
		results, err := tr.TranslateLine("icc -c a.c")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "icc", results[0].Compiler)
	})
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single", input: "icc", want: []string{"icc"}},
		{name: "multiple with spaces", input: "icc, icpc ,tcc", want: []string{"icc", "icpc", "tcc"}},
		{name: "empty entries filtered", input: "icc,,tcc,", want: []string{"icc", "tcc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitList(tt.input))
		})
	}
}
