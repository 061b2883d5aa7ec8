package cdxingest

import (
	"fmt"

	"github.com/sbomkit/cdxingest/pkg/models"
)

// parseContext is the state of a single Parse call.
type parseContext struct {
	*Parser

	document models.Document
	packages *models.PackageTable
	// ids maps bom-refs to package names. Later registrations win.
	ids map[string]string
	// counter numbers every visited component, accepted or not, and is used
	// to synthesize bom-refs.
	counter         int
	relationships   []models.Relationship
	vulnerabilities models.Vulnerabilities
}

func newParseContext(p *Parser) *parseContext {
	return &parseContext{
		Parser:          p,
		packages:        models.NewPackageTable(),
		ids:             make(map[string]string),
		relationships:   []models.Relationship{},
		vulnerabilities: models.Vulnerabilities{},
	}
}

func syntheticRef(n int) string {
	return fmt.Sprintf("Component-%d", n)
}

func (pc *parseContext) register(bomRef, name string) {
	pc.ids[bomRef] = name
}

func (pc *parseContext) lookup(bomRef string) (string, bool) {
	name, ok := pc.ids[bomRef]
	return name, ok
}

// store adds pkg to the package table according to the duplicate policy.
func (pc *parseContext) store(pkg models.Package) {
	key := pkg.Key()
	if pc.packages.Has(key) {
		if pc.opts.DuplicatePolicy == KeepFirst {
			pc.debugf("duplicate package %s (%s), keeping the first occurrence", key, pkg.BOMRef)
			return
		}
		pc.debugf("duplicate package %s (%s), replacing the earlier occurrence", key, pkg.BOMRef)
	}
	pc.packages.Put(pkg)
}

func (pc *parseContext) result() *Result {
	return &Result{
		Document:        pc.document,
		Files:           map[string]models.File{},
		Packages:        pc.packages,
		Relationships:   pc.relationships,
		Vulnerabilities: pc.vulnerabilities,
	}
}
