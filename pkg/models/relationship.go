package models

type RelationshipKind string

const (
	RelationshipDescribes RelationshipKind = "DESCRIBES"
	RelationshipDependsOn RelationshipKind = "DEPENDS_ON"
)

// Relationship is a directed edge between two packages, identified both by
// package name and by the bom-refs they were resolved from.
type Relationship struct {
	Source    string           `json:"source" yaml:"source"`
	Target    string           `json:"target" yaml:"target"`
	Kind      RelationshipKind `json:"type" yaml:"type"`
	SourceRef string           `json:"source_id" yaml:"source_id"`
	TargetRef string           `json:"target_id" yaml:"target_id"`
}
