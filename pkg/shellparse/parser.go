// Package shellparse extracts compiler invocations from captured build-log
// command lines. Interception tools record full shell lines, so a single
// entry may wrap the interesting compiler call in cd-and-compile chains,
// subshells or conditionals; this package walks the shell AST and returns
// every simple command, flagging the ones whose words cannot be resolved
// statically.
package shellparse

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Invocation is one simple command found in a build-log line.
type Invocation struct {
	// Argv holds the statically resolved words, command name first.
	// Redirection operands are not words and never appear here.
	Argv []string
	// Dynamic reports that at least one word contained a variable,
	// command substitution or similar expansion. Such an invocation
	// cannot be normalized faithfully and should be skipped.
	Dynamic bool
	// Redirected reports that the statement carried redirections
	// (> build.log, 2>&1). The raw line then contains tokens that are
	// not part of the invocation.
	Redirected bool
}

// Commands parses a shell line and returns every simple command in it, in
// source order. Malformed shell syntax fails the whole line.
func Commands(line string) ([]Invocation, error) {
	parser := syntax.NewParser()
	node, err := parser.Parse(strings.NewReader(line), "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line: %w", err)
	}

	var invocations []Invocation
	syntax.Walk(node, func(node syntax.Node) bool {
		stmt, ok := node.(*syntax.Stmt)
		if !ok {
			return true
		}
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}

		inv := Invocation{
			Argv:       make([]string, 0, len(call.Args)),
			Redirected: len(stmt.Redirs) > 0,
		}
		for _, word := range call.Args {
			val, isStatic := resolveStaticWord(word)
			if !isStatic {
				inv.Dynamic = true
			}
			inv.Argv = append(inv.Argv, val)
		}
		invocations = append(invocations, inv)
		return true
	})

	return invocations, nil
}

// resolveStaticWord flattens a word into a string. The second return value
// reports whether the word consisted only of literal parts; expansions make
// it dynamic and the returned string is only the literal remainder.
func resolveStaticWord(word *syntax.Word) (val string, isStatic bool) {
	if word == nil {
		return "", true
	}

	var sb strings.Builder
	isStatic = true

	for _, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			sb.WriteString(p.Value)
		case *syntax.SglQuoted:
			sb.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, subPart := range p.Parts {
				if lit, ok := subPart.(*syntax.Lit); ok {
					sb.WriteString(lit.Value)
				} else {
					isStatic = false
				}
			}
		default:
			// Parameter expansion, command substitution,
			// arithmetic, process substitution.
			isStatic = false
		}
	}

	return sb.String(), isStatic
}

// knownCompilers are the executable names recognized as C/C++ compiler
// frontends, after path normalization.
var knownCompilers = []string{
	"cc", "c++", "gcc", "g++", "clang", "clang++",
}

// NormalizeCommandPath reduces a command word to a bare executable name for
// comparison: path components and a Windows .exe suffix are stripped.
func NormalizeCommandPath(cmd string) string {
	base := filepath.Base(filepath.Clean(cmd))
	return strings.TrimSuffix(base, ".exe")
}

// IsCompilerCommand reports whether cmd names a known compiler frontend,
// directly (gcc, /usr/bin/g++), versioned (gcc-12, clang++-15) or from the
// extra set supplied by the caller.
func IsCompilerCommand(cmd string, extra []string) bool {
	base := NormalizeCommandPath(cmd)
	if slices.Contains(knownCompilers, base) || slices.Contains(extra, base) {
		return true
	}
	// Versioned names (gcc-12) and cross-compile prefixes
	// (arm-linux-gnueabi-gcc).
	name, _, found := strings.Cut(base, "-")
	if found && slices.Contains(knownCompilers, name) {
		return true
	}
	if idx := strings.LastIndex(base, "-"); idx >= 0 {
		return slices.Contains(knownCompilers, base[idx+1:])
	}
	return false
}

// CompilerCalls returns the compiler invocations in a shell line, in source
// order. Non-compiler commands (cd, rm, echo) are skipped; dynamic compiler
// calls are returned with Dynamic set so the caller can report them.
func CompilerCalls(line string, extra []string) ([]Invocation, error) {
	invocations, err := Commands(line)
	if err != nil {
		return nil, err
	}

	var calls []Invocation
	for _, inv := range invocations {
		if len(inv.Argv) == 0 || !IsCompilerCommand(inv.Argv[0], extra) {
			continue
		}
		calls = append(calls, inv)
	}
	return calls, nil
}
