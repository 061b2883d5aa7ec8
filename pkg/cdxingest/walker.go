package cdxingest

import (
	"github.com/CycloneDX/cyclonedx-go"
	"github.com/sbomkit/cdxingest/internal/cdxnode"
)

var acceptedTypes = map[cyclonedx.ComponentType]bool{
	cyclonedx.ComponentTypeFile:                 true,
	cyclonedx.ComponentTypeLibrary:              true,
	cyclonedx.ComponentTypeApplication:          true,
	cyclonedx.ComponentTypeOS:                   true,
	cyclonedx.ComponentTypeMachineLearningModel: true,
}

// walkComponents visits the component tree in document order, parents
// before children. Components of any other type are skipped together with
// everything nested below them.
func (pc *parseContext) walkComponents(roots []cdxnode.Node) {
	stack := make([]cdxnode.Node, 0, len(roots))
	stack = pushReversed(stack, roots)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pc.counter++
		c := node.Component()

		if !acceptedTypes[cyclonedx.ComponentType(c.Type)] {
			pc.debugf("skipping component %q of unsupported type %q", c.Name, c.Type)
			continue
		}

		pc.visit(c)
		stack = pushReversed(stack, node.Children())
	}
}

func pushReversed(stack []cdxnode.Node, nodes []cdxnode.Node) []cdxnode.Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, nodes[i])
	}

	return stack
}

func (pc *parseContext) visit(c cdxnode.Component) {
	pkg := normalizeComponent(c)

	pkg.BOMRef = c.BOMRef
	if pkg.BOMRef == "" {
		pkg.BOMRef = syntheticRef(pc.counter)
	}

	if pkg.Name == "" {
		pc.debugf("component %s has no name", pkg.BOMRef)
	}
	if pkg.Version == "" {
		pc.debugf("component %q (%s) has no version", pkg.Name, pkg.BOMRef)
	}

	if cyclonedx.ComponentType(c.Type) == cyclonedx.ComponentTypeMachineLearningModel && c.ModelCard != nil {
		pkg.ModelCard = extractModelCard(c.ModelCard)
	}

	pc.store(pkg)
	pc.register(pkg.BOMRef, pkg.Name)
}
