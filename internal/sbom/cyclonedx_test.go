package sbom_test

import (
	"testing"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/sbomkit/cdxingest/internal/sbom"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		wantFormat cyclonedx.BOMFileFormat
		wantOK     bool
	}{
		{path: "app.bom.json", wantFormat: cyclonedx.BOMFileFormatJSON, wantOK: true},
		{path: "dir/app.cdx.json", wantFormat: cyclonedx.BOMFileFormatJSON, wantOK: true},
		{path: "sbom.json", wantFormat: cyclonedx.BOMFileFormatJSON, wantOK: true},
		{path: "app.bom.xml", wantFormat: cyclonedx.BOMFileFormatXML, wantOK: true},
		{path: "/tmp/app.cdx.xml", wantFormat: cyclonedx.BOMFileFormatXML, wantOK: true},
		{path: "bom.xml", wantFormat: cyclonedx.BOMFileFormatXML, wantOK: true},
		{path: "sbom.spdx", wantOK: false},
		{path: "bom.json.txt", wantOK: false},
		{path: "BOM.JSON", wantOK: false},
		{path: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			format, ok := sbom.FormatFromPath(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("FormatFromPath(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && format != tt.wantFormat {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, format, tt.wantFormat)
			}
		})
	}
}

func TestFormatName(t *testing.T) {
	t.Parallel()

	if got := sbom.FormatName(cyclonedx.BOMFileFormatJSON); got != "json" {
		t.Errorf("FormatName(JSON) = %q, want %q", got, "json")
	}
	if got := sbom.FormatName(cyclonedx.BOMFileFormatXML); got != "xml" {
		t.Errorf("FormatName(XML) = %q, want %q", got, "xml")
	}
}
