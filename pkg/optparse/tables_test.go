package optparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Options the target toolchain cannot consume must vanish from the result,
// even when a lower-priority pattern would have kept them: -DNDEBUG would
// match the merged -D rule and -mno-spe the generic -m rule.
func TestUnsupportedOptionsDropped(t *testing.T) {
	tokens := []string{
		"-fconserve-stack",
		"-finline-limit=64",
		"-mno-spe",
		"-DNDEBUG",
		"-g3",
		"-flto",
	}

	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			var notices []Notice
			p := newTestParser(t, WithNotifier(func(n Notice) { notices = append(notices, n) }))

			res, err := p.ParseArgs([]string{"gcc", token, "-c", "x.c"})
			require.NoError(t, err)

			assert.Empty(t, res.CompileOpts)
			assert.Empty(t, res.LinkOpts)
			assert.Equal(t, []string{"x.c"}, res.Files)
			assert.Equal(t, []Notice{{Category: CategoryIgnored, Token: token}}, notices)
		})
	}
}

func TestReplacementBeatsGenericMachineOption(t *testing.T) {
	p := newTestParser(t)
	res, err := p.ParseArgs([]string{"gcc", "-mips64", "-c", "x.c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-target", "mips64", "-mips64"}, res.CompileOpts)
}

func TestCompilerLinkerOptionsKeptOnLinkSide(t *testing.T) {
	p := newTestParser(t)
	res, err := p.ParseArgs([]string{"gcc", "-target", "arm-none-eabi", "-rdynamic", "-c", "x.c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-target", "arm-none-eabi", "-rdynamic"}, res.LinkOpts)
	assert.Empty(t, res.CompileOpts)
}

func TestDefaultTablesCompile(t *testing.T) {
	_, err := New()
	require.NoError(t, err)
}
