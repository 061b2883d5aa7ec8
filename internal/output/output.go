// Package output renders parse results for the command line.
package output

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/sbomkit/cdxingest/pkg/cdxingest"
)

// ErrUnknownFormat is returned when asked to render in a format that does
// not exist.
var ErrUnknownFormat = errors.New("unknown output format")

// FileResult is the result of parsing the document at Path.
type FileResult struct {
	Path string `json:"path" yaml:"path"`

	cdxingest.Result `yaml:",inline"`
}

type Results struct {
	Results []FileResult `json:"results" yaml:"results"`
}

var formats = []string{"table", "markdown", "json", "yaml"}

// Formats returns the names accepted by Print, default first.
func Formats() []string {
	return slices.Clone(formats)
}

// IsMachineFormat reports whether the format is meant to be read by other
// programs, in which case nothing but the results may be written to stdout.
func IsMachineFormat(format string) bool {
	return format == "json" || format == "yaml"
}

// Print writes results in the given format. A terminalWidth of zero or less
// means the writer is not a terminal.
func Print(results []FileResult, format string, w io.Writer, terminalWidth int) error {
	switch format {
	case "table":
		PrintTableResults(results, w, terminalWidth)
		return nil
	case "markdown":
		PrintMarkdownTableResults(results, w)
		return nil
	case "json":
		return PrintJSONResults(results, w, terminalWidth > 0)
	case "yaml":
		return PrintYAMLResults(results, w)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
