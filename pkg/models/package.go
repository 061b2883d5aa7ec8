package models

// MissingVersion is the version used in a PackageKey when the source
// component does not declare one.
const MissingVersion = "MISSING"

// External reference categories.
const (
	CategorySecurity       = "SECURITY"
	CategoryPackageManager = "PACKAGE-MANAGER"
)

// External reference types.
const (
	ReferenceCPE23 = "cpe23Type"
	ReferenceCPE22 = "cpe22Type"
	ReferencePURL  = "purl"
)

// PackageKey identifies a package within a PackageTable.
type PackageKey struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

func (k PackageKey) String() string {
	return k.Name + "@" + k.Version
}

// Property is a name/value pair. Names may repeat.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type ExternalReference struct {
	Category string `json:"category" yaml:"category"`
	Type     string `json:"type" yaml:"type"`
	Locator  string `json:"locator" yaml:"locator"`
}

// Package is the canonical form of one CycloneDX component.
type Package struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Type    string `json:"type" yaml:"type"`
	BOMRef  string `json:"bom_ref" yaml:"bom_ref"`
	Group   string `json:"group,omitempty" yaml:"group,omitempty"`

	Supplier      string `json:"supplier,omitempty" yaml:"supplier,omitempty"`
	Originator    string `json:"originator,omitempty" yaml:"originator,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	CopyrightText string `json:"copyright_text,omitempty" yaml:"copyright_text,omitempty"`

	LicenseConcluded string `json:"license_concluded,omitempty" yaml:"license_concluded,omitempty"`
	LicenseDeclared  string `json:"license_declared,omitempty" yaml:"license_declared,omitempty"`

	Checksums          map[string]string   `json:"checksums,omitempty" yaml:"checksums,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty" yaml:"external_references,omitempty"`
	Homepage           string              `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	DownloadLocation   string              `json:"download_location,omitempty" yaml:"download_location,omitempty"`
	Properties         []Property          `json:"properties,omitempty" yaml:"properties,omitempty"`

	ModelCard *ModelCard `json:"model_card,omitempty" yaml:"model_card,omitempty"`
}

// Key returns the table key of the package, substituting MissingVersion
// when the package has no version.
func (p Package) Key() PackageKey {
	if p.Version == "" {
		return PackageKey{Name: p.Name, Version: MissingVersion}
	}

	return PackageKey{Name: p.Name, Version: p.Version}
}

// SetLicense records license as both the concluded and the declared license.
func (p *Package) SetLicense(license string) {
	p.LicenseConcluded = license
	p.LicenseDeclared = license
}

func (p *Package) SetChecksum(algorithm, digest string) {
	if p.Checksums == nil {
		p.Checksums = make(map[string]string)
	}
	p.Checksums[algorithm] = digest
}

func (p *Package) AddExternalReference(category, refType, locator string) {
	p.ExternalReferences = append(p.ExternalReferences, ExternalReference{
		Category: category,
		Type:     refType,
		Locator:  locator,
	})
}

func (p *Package) AddProperty(name, value string) {
	p.Properties = append(p.Properties, Property{Name: name, Value: value})
}

// ExternalReference returns the locator of the first reference of the given
// type, if any.
func (p Package) ExternalReference(refType string) (string, bool) {
	for _, ref := range p.ExternalReferences {
		if ref.Type == refType {
			return ref.Locator, true
		}
	}

	return "", false
}

// PropertyValues returns every value recorded for the property name, in
// document order.
func (p Package) PropertyValues(name string) []string {
	var values []string
	for _, prop := range p.Properties {
		if prop.Name == name {
			values = append(values, prop.Value)
		}
	}

	return values
}

// File is a file-level SBOM entry. CycloneDX ingestion never produces any,
// the type exists so results share a shape with other SBOM sources.
type File struct {
	Name      string            `json:"name" yaml:"name"`
	Checksums map[string]string `json:"checksums,omitempty" yaml:"checksums,omitempty"`
}
