package optparse

import (
	"fmt"
	"regexp"
)

// A rule inspects the current token and, when it matches, applies its effect
// to the result, consuming trailing tokens through the cursor as needed.
// Rules are tried in declared order and at most one fires per token.
type rule interface {
	apply(tok string, cur *cursor, res *Result) (bool, error)
}

// matcher decides whether a single-flag rule applies to a token.
type matcher interface {
	match(tok string) bool
}

type exactMatcher string

func (m exactMatcher) match(tok string) bool { return tok == string(m) }

type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) match(tok string) bool { return m.re.MatchString(tok) }

// anchored compiles a table pattern with Python re.match semantics: the
// pattern must match at the start of the token but not necessarily all of it.
func anchored(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("bad table pattern %q: %w", pattern, err)
	}
	return re, nil
}

type regexRule struct {
	re    *regexp.Regexp
	arity int
}

func compileEntries(entries []RegexEntry) ([]regexRule, error) {
	out := make([]regexRule, 0, len(entries))
	for _, e := range entries {
		re, err := anchored(e.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, regexRule{re: re, arity: e.Arity})
	}
	return out, nil
}

// listSelector picks the option list a rule appends to, so one rule type
// serves both the compile and the link side.
type listSelector func(res *Result) *[]string

func compileOpts(res *Result) *[]string { return &res.CompileOpts }
func linkOpts(res *Result) *[]string    { return &res.LinkOpts }

// replaceRule expands a flag into a fixed sequence of compiler options; the
// flag itself is not kept and no extra tokens are consumed.
type replaceRule struct {
	table map[string][]string
}

func (r *replaceRule) apply(tok string, _ *cursor, res *Result) (bool, error) {
	repl, ok := r.table[tok]
	if !ok {
		return false, nil
	}
	res.CompileOpts = append(res.CompileOpts, repl...)
	return true, nil
}

// dropExactRule silently drops a flag and its declared arguments, reporting
// each drop through the notifier.
type dropExactRule struct {
	table  map[string]int
	notify Notifier
}

func (r *dropExactRule) apply(tok string, cur *cursor, _ *Result) (bool, error) {
	arity, ok := r.table[tok]
	if !ok {
		return false, nil
	}
	for i := 0; i < arity; i++ {
		if _, err := cur.next(); err != nil {
			return false, err
		}
	}
	r.notify(Notice{Category: CategoryIgnored, Token: tok})
	return true, nil
}

// dropRegexRule silently drops flags matching any of its patterns.
type dropRegexRule struct {
	entries []regexRule
	notify  Notifier
}

func (r *dropRegexRule) apply(tok string, cur *cursor, _ *Result) (bool, error) {
	for _, e := range r.entries {
		if !e.re.MatchString(tok) {
			continue
		}
		for i := 0; i < e.arity; i++ {
			if _, err := cur.next(); err != nil {
				return false, err
			}
		}
		r.notify(Notice{Category: CategoryIgnored, Token: tok})
		return true, nil
	}
	return false, nil
}

// captureRule sets a result attribute from the token following the flag.
type captureRule struct {
	flag string
	set  func(res *Result, value string)
}

func (r *captureRule) apply(tok string, cur *cursor, res *Result) (bool, error) {
	if tok != r.flag {
		return false, nil
	}
	value, err := cur.next()
	if err != nil {
		return false, err
	}
	r.set(res, value)
	return true, nil
}

// actionRule sets the result's action kind when its flag matches.
type actionRule struct {
	m      matcher
	action ActionKind
}

func (r *actionRule) apply(tok string, _ *cursor, res *Result) (bool, error) {
	if !r.m.match(tok) {
		return false, nil
	}
	res.Action = r.action
	return true, nil
}

// appendExactRule keeps a flag and its declared arguments, in order, on the
// selected option list.
type appendExactRule struct {
	table  map[string]int
	target listSelector
}

func (r *appendExactRule) apply(tok string, cur *cursor, res *Result) (bool, error) {
	arity, ok := r.table[tok]
	if !ok {
		return false, nil
	}
	list := r.target(res)
	*list = append(*list, tok)
	for i := 0; i < arity; i++ {
		arg, err := cur.next()
		if err != nil {
			return false, err
		}
		*list = append(*list, arg)
	}
	return true, nil
}

// appendRegexRule keeps flags matching any of its patterns, plus their
// declared arguments, on the selected option list.
type appendRegexRule struct {
	entries []regexRule
	target  listSelector
}

func (r *appendRegexRule) apply(tok string, cur *cursor, res *Result) (bool, error) {
	for _, e := range r.entries {
		if !e.re.MatchString(tok) {
			continue
		}
		list := r.target(res)
		*list = append(*list, tok)
		for i := 0; i < e.arity; i++ {
			arg, err := cur.next()
			if err != nil {
				return false, err
			}
			*list = append(*list, arg)
		}
		return true, nil
	}
	return false, nil
}

// mergedRule handles prefix options whose value is either attached to the
// flag or in the following token. Both spellings normalize to the single
// joined string prefix+value.
type mergedRule struct {
	patterns []*regexp.Regexp
	target   listSelector
}

func (r *mergedRule) apply(tok string, cur *cursor, res *Result) (bool, error) {
	for _, re := range r.patterns {
		m := re.FindStringSubmatch(tok)
		if m == nil {
			continue
		}
		joined := tok
		if len(m) > 1 && m[1] == "" {
			value, err := cur.next()
			if err != nil {
				return false, err
			}
			joined = tok + value
		}
		list := r.target(res)
		*list = append(*list, joined)
		return true, nil
	}
	return false, nil
}

// fileListRule reads the file named by the flag's argument and appends each
// line as one input file. The read goes through the injected FileReader so
// the engine itself stays free of filesystem access.
type fileListRule struct {
	flag string
	read FileReader
}

func (r *fileListRule) apply(tok string, cur *cursor, res *Result) (bool, error) {
	// An unset flag disables the rule; without this, an empty token in a
	// caller-supplied argv would trigger a file read.
	if r.flag == "" || tok != r.flag {
		return false, nil
	}
	path, err := cur.next()
	if err != nil {
		return false, err
	}
	lines, err := r.read(path)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %v", ErrMissingFileList, path, err)
	}
	res.Files = append(res.Files, lines...)
	return true, nil
}

// bareFileRule records any token without a flag marker as an input file.
type bareFileRule struct {
	re *regexp.Regexp
}

func (r *bareFileRule) apply(tok string, _ *cursor, res *Result) (bool, error) {
	if !r.re.MatchString(tok) {
		return false, nil
	}
	res.Files = append(res.Files, tok)
	return true, nil
}
