package optparse

// Result is the structured descriptor of one normalized compiler invocation.
// It is filled in during a single dispatch pass over the argument tokens and
// finalized by the post-pass; after Parse returns, the caller owns it and the
// parser keeps no reference to it.
//
// Arch, Target, Lang and Output are pointers so that "never set" is
// distinguishable from "explicitly set to the empty string".
type Result struct {
	// Action is the resolved phase of the invocation. It defaults to
	// Compile, is changed by explicit action flags, and is downgraded to
	// Link by the post-pass when no recognized source file is present.
	Action ActionKind `json:"action"`
	// CompileOpts holds the filtered compiler options in encounter order.
	CompileOpts []string `json:"compile_opts,omitempty"`
	// LinkOpts holds the filtered linker options in encounter order.
	LinkOpts []string `json:"link_opts,omitempty"`
	// Files holds the input file paths in encounter order. Duplicates are
	// kept.
	Files []string `json:"files,omitempty"`
	// Arch is the value of an explicit -arch flag.
	Arch *string `json:"arch,omitempty"`
	// Target is reserved for an explicit target triple. No default rule
	// sets it; custom tables may.
	Target *string `json:"target,omitempty"`
	// Lang is the source language, from an explicit -x flag, from the
	// compiler name, or from the first recognized source file extension.
	Lang *string `json:"lang,omitempty"`
	// Output is the value of an explicit -o flag.
	Output *string `json:"output,omitempty"`
	// Compiler is the executable name from the first invocation token.
	Compiler string `json:"compiler"`
}

func newResult(compiler string) *Result {
	return &Result{Action: Compile, Compiler: compiler}
}
