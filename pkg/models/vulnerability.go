package models

// Vulnerability is a vulnerability entry declared by an SBOM, together with
// the producer's impact analysis when one was given.
type Vulnerability struct {
	ID          string `json:"id" yaml:"id"`
	BOMRef      string `json:"bom_ref,omitempty" yaml:"bom_ref,omitempty"`
	SourceName  string `json:"source_name,omitempty" yaml:"source_name,omitempty"`
	SourceURL   string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Created     string `json:"created,omitempty" yaml:"created,omitempty"`

	Status        string `json:"status,omitempty" yaml:"status,omitempty"`
	Comment       string `json:"comment,omitempty" yaml:"comment,omitempty"`
	Justification string `json:"justification,omitempty" yaml:"justification,omitempty"`
}
