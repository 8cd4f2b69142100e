package optparse

import (
	"path/filepath"
	"strings"
)

// Source file extensions recognized for language detection. Anything else is
// still recorded as an input file but never influences source detection or
// language inference.
var languageByExt = map[string]string{
	".c":   "c",
	".cp":  "c++",
	".cpp": "c++",
	".cxx": "c++",
	".txx": "c++",
	".cc":  "c++",
	".C":   "c++",
	".ii":  "c++",
	".m":   "objective-c",
	".mm":  "objective-c++",
}

// LanguageForFile maps a file path's extension to a source language
// identifier. The second return value reports whether the extension is a
// recognized source extension.
func LanguageForFile(path string) (string, bool) {
	// A trailing quote can survive the defensive escaping of quoted
	// arguments; strip it before the lookup.
	ext := strings.TrimRight(filepath.Ext(path), `"`)
	lang, ok := languageByExt[ext]
	return lang, ok
}
