// Package cdxingest reads CycloneDX SBOMs, in either their JSON or XML
// serialization, into a single canonical model.
package cdxingest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/internal/sbom"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// DebugEnvVar names the environment variable read by DebugFromEnv.
const DebugEnvVar = "CDXINGEST_DEBUG"

// DocumentType is the Document.Type of every recognised document.
const DocumentType = "cyclonedx"

// DuplicatePolicy decides what happens when two components share a name and
// version.
type DuplicatePolicy int

const (
	// Overwrite replaces the earlier package with the later one. The entry
	// keeps its original position in the package table.
	Overwrite DuplicatePolicy = iota
	// KeepFirst ignores every package after the first with the same key.
	KeepFirst
)

func (d DuplicatePolicy) String() string {
	switch d {
	case KeepFirst:
		return "keep-first"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(d))
	}
}

// ParseDuplicatePolicy parses the textual form used in configuration files.
// The empty string selects Overwrite.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return Overwrite, nil
	case "keep-first":
		return KeepFirst, nil
	default:
		return Overwrite, fmt.Errorf("%w: %q", ErrInvalidDuplicatePolicy, s)
	}
}

type Options struct {
	// Debug enables diagnostics about skipped or incomplete input. It never
	// changes the parsed result.
	Debug bool
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	DuplicatePolicy DuplicatePolicy
}

// DebugFromEnv reports whether CDXINGEST_DEBUG is set to something other
// than "", "0" or "false".
func DebugFromEnv() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(DebugEnvVar)))

	return v != "" && v != "0" && v != "false"
}

// Parser parses CycloneDX documents. It holds no per-document state and may
// be used concurrently.
type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Parser{opts: opts}
}

// Result is everything extracted from one document.
type Result struct {
	Document models.Document `json:"document" yaml:"document"`
	// Files is always empty for CycloneDX input.
	Files           map[string]models.File `json:"files" yaml:"files"`
	Packages        *models.PackageTable   `json:"packages" yaml:"packages"`
	Relationships   []models.Relationship  `json:"relationships" yaml:"relationships"`
	Vulnerabilities models.Vulnerabilities `json:"vulnerabilities" yaml:"vulnerabilities"`
}

func emptyResult() *Result {
	return &Result{
		Files:           map[string]models.File{},
		Packages:        models.NewPackageTable(),
		Relationships:   []models.Relationship{},
		Vulnerabilities: models.Vulnerabilities{},
	}
}

// ParseFile parses the file at path, choosing the serialization from its
// extension. Files with an unrecognised extension produce an empty Result
// and no error.
func (p *Parser) ParseFile(path string) (*Result, error) {
	format, ok := sbom.FormatFromPath(path)
	if !ok {
		p.debugf("%s: not a recognised CycloneDX file extension, skipping", path)
		return emptyResult(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SBOM: %w", err)
	}
	defer f.Close()

	result, err := p.Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return result, nil
}

// Parse parses a document in the given serialization.
//
// Syntax errors are reported wrapping ErrMalformedDocument and produce no
// result. Input that is well-formed but not CycloneDX produces an empty
// Result.
func (p *Parser) Parse(r io.Reader, format cyclonedx.BOMFileFormat) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var bom *cdxnode.BOM
	switch format {
	case cyclonedx.BOMFileFormatJSON:
		bom, err = cdxnode.DecodeJSON(data)
	case cyclonedx.BOMFileFormatXML:
		bom, err = cdxnode.DecodeXML(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if !bom.IsCycloneDX {
		p.debugf("%s document is not a CycloneDX BOM, skipping", sbom.FormatName(format))
		return emptyResult(), nil
	}

	pc := newParseContext(p)
	pc.extractMetadata(bom)
	pc.walkComponents(bom.Components)
	pc.resolveDependencies(bom.Dependencies)
	pc.extractVulnerabilities(bom)

	return pc.result(), nil
}

func (p *Parser) debugf(msg string, args ...any) {
	if !p.opts.Debug {
		return
	}
	p.opts.Logger.Warn(fmt.Sprintf(msg, args...))
}
