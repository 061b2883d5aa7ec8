package models

// CreatorKind identifies who or what produced an SBOM document.
type CreatorKind string

const (
	CreatorTool   CreatorKind = "tool"
	CreatorPerson CreatorKind = "person"
)

// Creator is one entry of the document's creation info.
//
// Name carries the version (tools) or email (persons) as a "#" suffix,
// e.g. "cyclonedx-gomod#1.4.0" or "Jane Doe#jane@example.com".
type Creator struct {
	Kind CreatorKind `json:"kind" yaml:"kind"`
	Name string      `json:"name" yaml:"name"`
}

// Document is the header of a parsed SBOM.
type Document struct {
	SpecVersion   string    `json:"spec_version,omitempty" yaml:"spec_version,omitempty"`
	Type          string    `json:"type,omitempty" yaml:"type,omitempty"`
	Serialization string    `json:"serialization,omitempty" yaml:"serialization,omitempty"`
	Created       string    `json:"created,omitempty" yaml:"created,omitempty"`
	Creators      []Creator `json:"creators,omitempty" yaml:"creators,omitempty"`

	// Name, MetadataType, MetadataVersion and BOMRef describe the primary
	// component declared in the document metadata.
	Name            string `json:"name,omitempty" yaml:"name,omitempty"`
	MetadataType    string `json:"metadata_type,omitempty" yaml:"metadata_type,omitempty"`
	MetadataVersion string `json:"metadata_version,omitempty" yaml:"metadata_version,omitempty"`
	BOMRef          string `json:"bom_ref,omitempty" yaml:"bom_ref,omitempty"`
}

// IsEmpty reports whether no CycloneDX document was recognised.
func (d Document) IsEmpty() bool {
	return d.Type == ""
}
