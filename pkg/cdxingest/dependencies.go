package cdxingest

import (
	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// resolveDependencies turns dependency declarations into relationships.
// The first relationship of a document describes it; all later ones are
// dependencies.
func (pc *parseContext) resolveDependencies(deps []cdxnode.Dependency) {
	for _, dep := range deps {
		source, ok := pc.lookup(dep.Ref)
		if !ok {
			pc.debugf("dependency source %q does not match any component", dep.Ref)
			continue
		}

		for _, targetRef := range dep.DependsOn {
			target, ok := pc.lookup(targetRef)
			if !ok {
				pc.debugf("dependency target %q of %q does not match any component", targetRef, dep.Ref)
				continue
			}

			kind := models.RelationshipDependsOn
			if len(pc.relationships) == 0 {
				kind = models.RelationshipDescribes
			}

			pc.relationships = append(pc.relationships, models.Relationship{
				Source:    source,
				Target:    target,
				Kind:      kind,
				SourceRef: dep.Ref,
				TargetRef: targetRef,
			})
		}
	}
}
