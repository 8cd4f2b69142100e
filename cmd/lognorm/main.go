// Package main implements lognorm, a CLI that normalizes captured compiler
// invocations from a build log into structured action descriptors for an
// analysis driver.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/buildscan/lognorm/pkg/optparse"
)

func main() {
	var (
		inputPath     = flag.String("f", "-", "Input file, or - for stdin")
		jsonInput     = flag.Bool("json", false, "Input is a JSON capture array instead of one invocation per line")
		compilersFlag = flag.String("compilers", "", "Comma-separated extra compiler names to recognize")
		pretty        = flag.Bool("pretty", false, "Indent JSON output")
		verbose       = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	parser, err := optparse.New()
	if err != nil {
		logrus.WithError(err).Fatal("cannot build parser")
	}
	translator := NewTranslator(parser, splitList(*compilersFlag))

	in := os.Stdin
	if *inputPath != "-" {
		f, err := os.Open(*inputPath)
		if err != nil {
			logrus.WithError(err).Fatal("cannot open input")
		}
		defer f.Close()
		in = f
	}

	var results []*optparse.Result
	if *jsonInput {
		var entries []Entry
		if err := json.NewDecoder(in).Decode(&entries); err != nil {
			logrus.WithError(err).Fatal("cannot decode capture file")
		}
		for _, e := range entries {
			translated, err := translator.TranslateEntry(e)
			if err != nil {
				logrus.WithError(err).WithField("file", e.File).
					Warn("skipping untranslatable entry")
				continue
			}
			results = append(results, translated...)
		}
	} else {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			translated, err := translator.TranslateLine(line)
			if err != nil {
				logrus.WithError(err).Warn("skipping untranslatable line")
				continue
			}
			results = append(results, translated...)
		}
		if err := scanner.Err(); err != nil {
			logrus.WithError(err).Fatal("cannot read input")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(results); err != nil {
		logrus.WithError(err).Fatal("cannot encode results")
	}
}

// splitList parses a comma-separated flag value into trimmed, non-empty
// entries.
func splitList(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
