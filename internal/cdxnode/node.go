// Package cdxnode translates the JSON and XML serializations of CycloneDX
// into one format-neutral set of intermediate records.
//
// The adapters only deal with syntax: where a value lives in each encoding,
// attribute versus element, wrapper elements around lists. They make no
// decisions about which of several alternative fields wins; that is left to
// the normalization done by the caller.
package cdxnode

import "errors"

// Serialization names.
const (
	JSON = "json"
	XML  = "xml"
)

// ErrSyntax is returned when the input is not well-formed JSON or XML.
var ErrSyntax = errors.New("invalid syntax")

// BOM is the format-neutral view of one CycloneDX document.
type BOM struct {
	Serialization string
	// IsCycloneDX is false when the input parsed but does not look like a
	// CycloneDX BOM (no bomFormat marker in JSON, a non-bom root in XML).
	IsCycloneDX bool
	SpecVersion string

	Metadata        Metadata
	Components      []Node
	Dependencies    []Dependency
	Vulnerabilities []Vulnerability
}

// Node is a component of the source document. Both adapters build the tree
// with an explicit stack, so assemblies of any depth decode and can be walked
// without recursion.
type Node interface {
	Component() Component
	Children() []Node
}

type Tool struct {
	Name    string
	Version string
}

type Contact struct {
	Name  string
	Email string
}

type Metadata struct {
	Timestamp string
	Tools     []Tool
	// LegacyTools is set when tools were declared with the pre-1.5 array form.
	LegacyTools bool
	Authors     []Contact
	Component   *Component
}

type Supplier struct {
	Name     string
	Contacts []Contact
}

type Hash struct {
	Algorithm string
	Content   string
}

// License is one entry of a licenses list. ID, Name and LicenseExpression
// come from a license object; Expression is an entry-level SPDX expression.
type License struct {
	ID                string
	Name              string
	LicenseExpression string
	Expression        string
}

type Property struct {
	Name  string
	Value string
}

type ExternalReference struct {
	Type string
	URL  string
}

// Component holds the fields of a single component, without its children.
type Component struct {
	Type        string
	BOMRef      string
	Name        string
	Version     string
	Group       string
	Author      string
	Description string
	Copyright   string
	CPE         string
	PURL        string

	Supplier           *Supplier
	Hashes             []Hash
	Licenses           []License
	EvidenceLicenses   []License
	Properties         []Property
	ExternalReferences []ExternalReference
	ModelCard          *ModelCard
}

type Dependency struct {
	Ref       string
	DependsOn []string
}

type Analysis struct {
	State         string
	Justification string
	Detail        string
}

type Vulnerability struct {
	ID          string
	BOMRef      string
	SourceName  string
	SourceURL   string
	Description string
	Created     string
	Analysis    *Analysis
}
