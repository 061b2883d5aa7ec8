// Package sbom recognizes CycloneDX files by name.
package sbom

import (
	"strings"

	"github.com/CycloneDX/cyclonedx-go"
)

type extensions struct {
	format   cyclonedx.BOMFileFormat
	suffixes []string
}

var cycloneDXTypes = []extensions{
	{format: cyclonedx.BOMFileFormatJSON, suffixes: []string{".bom.json", ".cdx.json", ".json"}},
	{format: cyclonedx.BOMFileFormatXML, suffixes: []string{".bom.xml", ".cdx.xml", ".xml"}},
}

// FormatFromPath reports which CycloneDX serialization a file name implies.
// Matching is on the suffix only and is case-sensitive.
func FormatFromPath(path string) (cyclonedx.BOMFileFormat, bool) {
	for _, t := range cycloneDXTypes {
		for _, suffix := range t.suffixes {
			if strings.HasSuffix(path, suffix) {
				return t.format, true
			}
		}
	}

	return 0, false
}

// FormatName returns the lowercase serialization name, "json" or "xml".
func FormatName(format cyclonedx.BOMFileFormat) string {
	switch format {
	case cyclonedx.BOMFileFormatJSON:
		return "json"
	case cyclonedx.BOMFileFormatXML:
		return "xml"
	default:
		return ""
	}
}
