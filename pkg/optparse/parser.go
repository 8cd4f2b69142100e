// Package optparse normalizes captured gcc/g++ style compiler invocations
// into structured action descriptors a clang-based analyzer can re-run. It
// classifies every argument token against a fixed-priority rule table,
// filtering, rewriting and reorganizing the invocation into an action kind,
// compile and link option lists, input files, language and output path.
//
// The classification tables are explicit configuration: the default set
// targets gcc-to-clang translation, and embedders can substitute extended
// tables without touching the dispatch engine.
package optparse

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
)

// Notice categories reported through the Notifier.
const (
	// CategoryUnmatched marks a token no rule recognized.
	CategoryUnmatched = "unmatched"
	// CategoryIgnored marks a token dropped by an ignored or unknown
	// option table.
	CategoryIgnored = "unknown/ignored"
)

// Notice is one advisory diagnostic about a token the parser dropped. It
// never affects the returned result.
type Notice struct {
	Category string
	Token    string
}

// Notifier receives advisory notices during a parse. Implementations must
// not retain the cursor or result; they only observe.
type Notifier func(Notice)

// FileReader returns the whitespace-trimmed lines of the file at path. It is
// the parser's only I/O dependency, used by the file-list inclusion rule.
type FileReader func(path string) ([]string, error)

// ReadFileLines is the default FileReader, backed by the local filesystem.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}

func logNotice(n Notice) {
	logrus.WithFields(logrus.Fields{
		"category": n.Category,
		"token":    n.Token,
	}).Debug("dropped compiler argument")
}

type config struct {
	tables   Tables
	readFile FileReader
	notify   Notifier
}

// Option configures a Parser.
type Option func(*config)

// WithTables replaces the default classification tables.
func WithTables(t Tables) Option {
	return func(c *config) { c.tables = t }
}

// WithFileReader replaces the filesystem-backed reader used by the file-list
// inclusion rule.
func WithFileReader(r FileReader) Option {
	return func(c *config) { c.readFile = r }
}

// WithNotifier replaces the default logrus debug notifier.
func WithNotifier(n Notifier) Option {
	return func(c *config) { c.notify = n }
}

// Parser classifies compiler invocations against one fixed rule table. It is
// immutable after New and safe for concurrent use.
type Parser struct {
	rules  []rule
	notify Notifier
}

// New builds a Parser from the default tables and the given options. It
// fails only when a configured table pattern does not compile.
func New(opts ...Option) (*Parser, error) {
	cfg := config{
		tables:   DefaultTables(),
		readFile: ReadFileLines,
		notify:   logNotice,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	rules, err := buildRules(cfg)
	if err != nil {
		return nil, err
	}
	return &Parser{rules: rules, notify: cfg.notify}, nil
}

// buildRules flattens the table set into the single priority-ordered rule
// sequence the dispatch loop walks. The order is load-bearing: several
// patterns overlap (-mips32 is both a replacement key and a -m.* compile
// option) and the first match wins.
func buildRules(cfg config) ([]rule, error) {
	t := cfg.tables

	unknown, err := compileEntries(t.UnknownRegex)
	if err != nil {
		return nil, err
	}
	ignored, err := compileEntries(t.IgnoredRegex)
	if err != nil {
		return nil, err
	}
	linker, err := compileEntries(t.LinkerRegex)
	if err != nil {
		return nil, err
	}
	compile, err := compileEntries(t.CompileRegex)
	if err != nil {
		return nil, err
	}
	compileMerged, err := compilePatterns(t.CompileMerged)
	if err != nil {
		return nil, err
	}
	linkMerged, err := compilePatterns(t.LinkMerged)
	if err != nil {
		return nil, err
	}
	preprocess, err := anchored(`-(E|M[T|Q|F|J|P|V|M]*)$`)
	if err != nil {
		return nil, err
	}
	bareFile, err := anchored(`[^-].+`)
	if err != nil {
		return nil, err
	}

	return []rule{
		&replaceRule{table: t.Replacements},
		&dropRegexRule{entries: unknown, notify: cfg.notify},
		&dropExactRule{table: t.IgnoredExact, notify: cfg.notify},
		&dropRegexRule{entries: ignored, notify: cfg.notify},
		&captureRule{flag: "-x", set: func(res *Result, v string) { res.Lang = &v }},
		&captureRule{flag: "-o", set: func(res *Result, v string) { res.Output = &v }},
		&captureRule{flag: "-arch", set: func(res *Result, v string) { res.Arch = &v }},
		&actionRule{m: exactMatcher("-c"), action: Compile},
		&actionRule{m: regexMatcher{re: preprocess}, action: Preprocess},
		&actionRule{m: exactMatcher("-print-prog-name"), action: Info},
		&appendExactRule{table: t.CompileExact, target: compileOpts},
		&appendExactRule{table: t.CompilerLinkerExact, target: linkOpts},
		&appendRegexRule{entries: linker, target: linkOpts},
		&appendRegexRule{entries: compile, target: compileOpts},
		&mergedRule{patterns: compileMerged, target: compileOpts},
		&mergedRule{patterns: linkMerged, target: linkOpts},
		&dropExactRule{table: t.LinkerExact, notify: cfg.notify},
		&fileListRule{flag: t.FileListFlag, read: cfg.readFile},
		&bareFileRule{re: bareFile},
	}, nil
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := anchored(p)
		if err != nil {
			return nil, err
		}
		out = append(out, re)
	}
	return out, nil
}

// ParseCommand normalizes a full shell-quoted invocation string. The first
// word is the compiler executable. Literal double quotes are escaped before
// word splitting so a quoted value containing spaces (-DVAR="val ue")
// survives as one token; options that still carry a quote get one more
// escape round in the post-pass so they round-trip through the downstream
// driver's shell unharmed.
func (p *Parser) ParseCommand(command string) (*Result, error) {
	escaped := strings.ReplaceAll(command, `"`, `"\"`)
	argv, err := shlex.Split(escaped)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShellSyntax, err)
	}
	return p.ParseArgs(argv)
}

// ParseArgs normalizes an already-tokenized invocation. argv[0] is the
// compiler executable, never an option.
func (p *Parser) ParseArgs(argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty invocation", ErrShellSyntax)
	}

	res := newResult(argv[0])
	cur := newCursor(argv[1:])
	for !cur.done() {
		tok := cur.current()
		matched := false
		for _, r := range p.rules {
			ok, err := r.apply(tok, cur, res)
			if err != nil {
				return nil, err
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			p.notify(Notice{Category: CategoryUnmatched, Token: tok})
		}
		cur.advance()
	}

	p.finalize(res)
	return res, nil
}

// finalize runs the post-pass: re-escape quoted compile options, infer C++
// from the compiler name, detect the language from the first recognized
// source file, and downgrade to a link action when no source is present.
func (p *Parser) finalize(res *Result) {
	for i, opt := range res.CompileOpts {
		if strings.Contains(opt, `"`) {
			res.CompileOpts[i] = strings.ReplaceAll(opt, `"`, `"\"`)
		}
	}

	// A ++ in the compiler name (g++, clang++, c++) pins the language,
	// overriding anything dispatch recorded.
	if strings.Contains(res.Compiler, "++") {
		lang := "c++"
		res.Lang = &lang
	}

	sourceFound := false
	for _, file := range res.Files {
		lang, ok := LanguageForFile(file)
		if !ok {
			continue
		}
		sourceFound = true
		if res.Lang == nil {
			res.Lang = &lang
		}
		break
	}

	// No recognized source file means this invocation only links.
	if !sourceFound {
		res.Action = Link
	}
}
