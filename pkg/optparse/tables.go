package optparse

// The classification tables are the stable configuration surface of the
// parser. They describe gcc/g++ style options the way the clang analyzer
// family of tools expects to consume them: options the analyzer understands
// are kept (compile or link), options with no clang equivalent are dropped,
// and a few build-target flags are replaced wholesale.
//
// Exact tables map an option name to the number of following arguments it
// consumes. Regex tables are ordered; within one table the first matching
// pattern wins. Patterns are matched anchored at the start of the token,
// and merged-prefix patterns must carry exactly one capture group for the
// attached value.

// RegexEntry pairs a pattern with the number of following arguments the
// matched option consumes.
type RegexEntry struct {
	Pattern string
	Arity   int
}

// Tables bundles the seven classification tables consumed by New. A zero
// table is valid and simply never matches; embedders may extend or replace
// any of them to cover another toolchain's flags.
type Tables struct {
	// Replacements expands one flag into a fixed sequence of compiler
	// options for the target toolchain. The original flag itself is not
	// kept.
	Replacements map[string][]string
	// UnknownRegex lists options the target toolchain does not know;
	// matches are dropped silently.
	UnknownRegex []RegexEntry
	// IgnoredExact lists options to drop along with their arguments.
	IgnoredExact map[string]int
	// IgnoredRegex lists option patterns to drop.
	IgnoredRegex []RegexEntry
	// CompileExact lists compiler options kept verbatim, with arity.
	CompileExact map[string]int
	// CompilerLinkerExact lists options meaningful to both phases; they
	// are kept on the linker side.
	CompilerLinkerExact map[string]int
	// LinkerRegex lists linker option patterns kept verbatim.
	LinkerRegex []RegexEntry
	// CompileRegex lists compiler option patterns kept verbatim.
	CompileRegex []RegexEntry
	// CompileMerged lists prefix patterns whose value may be attached or
	// in the next token; both forms are stored as one joined option.
	CompileMerged []string
	// LinkMerged is the linker-side counterpart of CompileMerged.
	LinkMerged []string
	// LinkerExact lists linker options to drop along with their
	// arguments (they have no analyzer-side use).
	LinkerExact map[string]int
	// FileListFlag names the option whose argument is a file containing
	// one input path per line.
	FileListFlag string
}

// DefaultTables returns the table set for gcc/g++ invocations retargeted at
// the clang frontend.
func DefaultTables() Tables {
	return Tables{
		Replacements: map[string][]string{
			"-mips32":     {"-target", "mips", "-mips32"},
			"-mips64":     {"-target", "mips64", "-mips64"},
			"-mpowerpc":   {"-target", "powerpc"},
			"-mpowerpc64": {"-target", "powerpc64"},
		},
		UnknownRegex: []RegexEntry{
			{Pattern: `^-fallow-fetchr-insn`},
			{Pattern: `^-fcall-saved-.*`},
			{Pattern: `^-fcond-mismatch`},
			{Pattern: `^-fconserve-stack`},
			{Pattern: `^-fcrossjumping`},
			{Pattern: `^-fcse-follow-jumps`},
			{Pattern: `^-fcse-skip-blocks`},
			{Pattern: `^-ffixed-r2`},
			{Pattern: `^-ffp$`},
			{Pattern: `^-fgcse-lm`},
			{Pattern: `^-fhoist-adjacent-loads`},
			{Pattern: `^-findirect-inlining`},
			{Pattern: `^-finline-limit.*`},
			{Pattern: `^-finline-local-initialisers`},
			{Pattern: `^-fipa-sra`},
			{Pattern: `^-fno-aggressive-loop-optimizations`},
			{Pattern: `^-fno-delete-null-pointer-checks`},
			{Pattern: `^-fno-jump-table`},
			{Pattern: `^-fno-strength-reduce`},
			{Pattern: `^-fno-toplevel-reorder`},
			{Pattern: `^-fno-unit-at-a-time`},
			{Pattern: `^-fno-var-tracking-assignments`},
			{Pattern: `^-fpartial-inlining`},
			{Pattern: `^-fpeephole2`},
			{Pattern: `^-fr$`},
			{Pattern: `^-fregmove`},
			{Pattern: `^-frename-registers`},
			{Pattern: `^-freorder-functions`},
			{Pattern: `^-frerun-cse-after-loop`},
			{Pattern: `^-fs$`},
			{Pattern: `^-fsched-spec`},
			{Pattern: `^-fthread-jumps`},
			{Pattern: `^-ftree-pre`},
			{Pattern: `^-ftree-switch-conversion`},
			{Pattern: `^-ftree-tail-merge`},
			{Pattern: `^-m(no-)?abm.*$`},
			{Pattern: `^-m(no-)?sdata.*$`},
			{Pattern: `^-m(no-)?spe.*`},
			{Pattern: `^-m(no-)?string$`},
			{Pattern: `^-m(no-)?dsbt`},
			{Pattern: `^-m(no-)?fixed-ssp`},
			{Pattern: `^-m(no-)?pointers-to-nested-functions`},
			{Pattern: `^-mpcrel-func-addr`},
			{Pattern: `^-maccumulate-outgoing-args`},
			{Pattern: `^-mcall-aixdesc`},
			{Pattern: `^-mppa3-addr-bug`},
			{Pattern: `^-mtraceback=.*`},
			{Pattern: `^-mtext=.*`},
			{Pattern: `^-misa=.*`},
			{Pattern: `^-mfix-cortex-m3-ldrd$`},
			{Pattern: `^-mmultiple$`},
			{Pattern: `^-msahf$`},
			{Pattern: `^-mthumb-interwork$`},
			{Pattern: `^-mupdate$`},
			// Deprecated ARM option generating stack frames compliant
			// with the ARM Procedure Call Standard.
			{Pattern: `^-mapcs`},
			{Pattern: `^-fno-merge-const-bfstores$`},
			{Pattern: `^-fno-ipa-sra$`},
			{Pattern: `^-mno-thumb-interwork$`},
			// ARM option preventing instruction reordering in the
			// function prologue.
			{Pattern: `^-mno-sched-prolog`},
			// Known to the analyzer, but asserts are kept enabled to
			// improve analysis quality.
			{Pattern: `^-DNDEBUG$`},
		},
		IgnoredExact: map[string]int{
			"-MT":                     1,
			"-MQ":                     1,
			"-MF":                     1,
			"-MJ":                     1,
			"-MM":                     0,
			"-MP":                     0,
			"-MD":                     0,
			"-MV":                     0,
			"-MMD":                    0,
			"-save-temps":             0,
			"-install_name":           1,
			"-exported_symbols_list":  1,
			"-current_version":        1,
			"-compatibility_version":  1,
			"-init":                   1,
			"-e":                      1,
			"-seg1addr":               1,
			"-bundle_loader":          1,
			"-multiply_defined":       1,
			"-sectorder":              3,
			"--param":                 1,
			"-u":                      1,
			"--serialize-diagnostics": 1,
			// The analyzer warns differently than gcc; keeping these
			// can fail an analysis that compiles cleanly under gcc.
			"-Werror":          0,
			"-pedantic-errors": 0,
		},
		IgnoredRegex: []RegexEntry{
			{Pattern: `^-g(.+)?$`},
			// Link time optimization.
			{Pattern: `^-flto`},
			// MicroBlaze options.
			{Pattern: `^-mxl`},
			// PowerPC SPE option.
			{Pattern: `^-mfloat-gprs`},
		},
		CompileExact: map[string]int{
			"-nostdinc": 0,
			"--sysroot": 1,
			"--include": 1,
			"-pedantic": 0,
			"-G":        1,
		},
		CompilerLinkerExact: map[string]int{
			"-Xlinker":                    1,
			"-ftrapv-handler":             1,
			"-lobjc":                      0,
			"-mios-simulator-version-min": 0,
			"-miphoneos-version-min":      0,
			"-mmacosx-version-min":        0,
			"-no-pie":                     0,
			"-nostartfiles":               0,
			"-nostdlib":                   0,
			"-pie":                        0,
			"-rdynamic":                   0,
			"-s":                          0,
			"-stdlib":                     0,
			"-target":                     1,
			"-v":                          0,
			"-write-strings":              0,
		},
		LinkerRegex: []RegexEntry{
			{Pattern: `^-:L.*$`},
			{Pattern: `^-l.*$`},
			{Pattern: `^-shared.*$`},
			{Pattern: `^-static.*$`},
		},
		CompileRegex: []RegexEntry{
			{Pattern: `-O([1-3]|s)?$`},
			{Pattern: `-std=.*`},
			{Pattern: `^-f.*`},
			{Pattern: `-m.*`},
			{Pattern: `^-Wno-.*`},
			{Pattern: `^-m(32|64)$`},
			{Pattern: `^--sysroot=`},
			{Pattern: `^--gcc-toolchain=`},
		},
		CompileMerged: []string{
			`^-iquote(.*)$`,
			`^-[DIU](.*)$`,
			`^-F(.+)$`,
			`^-idirafter(.*)$`,
			`^-isystem(.*)$`,
			`^-imacros(.*)$`,
			`^-include(.*)$`,
			`^-isysroot(.*)$`,
			`^-iprefix(.*)$`,
			`^-iwithprefix(.*)$`,
			`^-iwithprefixbefore(.*)$`,
		},
		LinkMerged: []string{
			`^-[L](.*)$`,
		},
		LinkerExact: map[string]int{
			"-framework":          1,
			"-fobjc-link-runtime": 0,
		},
		FileListFlag: "-filelist",
	}
}
