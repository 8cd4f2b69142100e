package main

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/buildscan/lognorm/pkg/optparse"
	"github.com/buildscan/lognorm/pkg/shellparse"
)

// Entry is one captured compile command in the JSON shape the build-log
// interception tool emits (the compile_commands.json layout). Either
// Command or Arguments is set.
type Entry struct {
	Directory string   `json:"directory,omitempty"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	File      string   `json:"file,omitempty"`
}

// Translator normalizes captured build-log entries into structured compile
// and link actions.
type Translator struct {
	parser    *optparse.Parser
	compilers []string
}

// NewTranslator creates a Translator. compilers extends the recognized
// compiler executable names.
func NewTranslator(parser *optparse.Parser, compilers []string) *Translator {
	return &Translator{parser: parser, compilers: compilers}
}

// TranslateEntry normalizes one captured entry. Pre-tokenized entries go
// straight to the parser; command strings go through shell-line extraction.
func (t *Translator) TranslateEntry(e Entry) ([]*optparse.Result, error) {
	if len(e.Arguments) > 0 {
		res, err := t.parser.ParseArgs(e.Arguments)
		if err != nil {
			return nil, err
		}
		return []*optparse.Result{res}, nil
	}
	return t.TranslateLine(e.Command)
}

// TranslateLine normalizes every compiler call found in one shell line.
// Lines that are a single plain compiler invocation take the string path,
// which preserves quoted argument values exactly; redirected, compound and
// otherwise wrapped lines are split and each compiler call is normalized
// from its resolved words. Dynamic calls and untranslatable invocations are
// skipped with a warning, per the fallback policy of the analysis driver.
func (t *Translator) TranslateLine(line string) ([]*optparse.Result, error) {
	invocations, err := shellparse.Commands(line)
	if err != nil {
		return nil, err
	}

	if len(invocations) == 1 && t.isPlainCompilerCall(invocations[0]) {
		res, err := t.parser.ParseCommand(line)
		if err != nil {
			return nil, err
		}
		return []*optparse.Result{res}, nil
	}

	var results []*optparse.Result
	for _, inv := range invocations {
		if len(inv.Argv) == 0 || !shellparse.IsCompilerCommand(inv.Argv[0], t.compilers) {
			continue
		}
		if inv.Dynamic {
			logrus.WithField("command", inv.Argv[0]).
				Warn("skipping compiler call with dynamic shell content")
			continue
		}
		warnFlattenedQuoting(inv.Argv)
		res, err := t.parser.ParseArgs(inv.Argv)
		if err != nil {
			logrus.WithError(err).WithField("command", inv.Argv[0]).
				Warn("skipping untranslatable invocation")
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// Only a plain call may be re-parsed from the raw line: a statement with
// redirections carries tokens (> build.log, 2>&1) that are not part of the
// invocation and must not be mistaken for input files.
func (t *Translator) isPlainCompilerCall(inv shellparse.Invocation) bool {
	return !inv.Dynamic && !inv.Redirected && len(inv.Argv) > 0 &&
		shellparse.IsCompilerCommand(inv.Argv[0], t.compilers)
}

// warnFlattenedQuoting reports words whose quoting the AST resolution
// removed. An option value with embedded whitespace (-DMSG="a b") is kept,
// but without its quotes it will not survive another shell split downstream.
func warnFlattenedQuoting(argv []string) {
	for _, word := range argv {
		if strings.ContainsAny(word, " \t") {
			logrus.WithField("word", word).
				Warn("quoted whitespace flattened in wrapped compiler call")
			return
		}
	}
}
