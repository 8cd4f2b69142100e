package optparse

// ActionKind is the high-level phase a compiler invocation represents.
type ActionKind int

const (
	// Link is assigned in the post-pass when no recognized source file
	// appears among the input files.
	Link ActionKind = iota
	// Compile is the default action of a fresh result and the effect of -c.
	Compile
	// Preprocess is set by the -E/-M* flag family.
	Preprocess
	// Info is set by informational queries such as -print-prog-name.
	Info
)

// String returns the human-readable name of the action.
func (a ActionKind) String() string {
	switch a {
	case Link:
		return "Link"
	case Compile:
		return "Compile"
	case Preprocess:
		return "Preprocess"
	case Info:
		return "Info"
	}
	return "Unknown"
}

// MarshalText encodes the action as its name, for JSON output.
func (a ActionKind) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
