package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tidwall/pretty"
)

// PrintJSONResults writes results to the provided writer in JSON format,
// highlighted when the writer is a terminal.
func PrintJSONResults(results []FileResult, outputWriter io.Writer, color bool) error {
	out := Results{Results: results}
	if out.Results == nil {
		out.Results = []FileResult{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return err
	}

	b := buf.Bytes()
	if color {
		b = pretty.Color(b, nil)
	}
	_, err := outputWriter.Write(b)

	return err
}
