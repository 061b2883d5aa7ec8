package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// PrintYAMLResults writes results to the provided writer in YAML format.
func PrintYAMLResults(results []FileResult, outputWriter io.Writer) error {
	out := Results{Results: results}
	if out.Results == nil {
		out.Results = []FileResult{}
	}

	enc := yaml.NewEncoder(outputWriter)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}
