package cdxingest

import (
	"slices"

	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// Spec versions in which the array form of metadata.tools is still current.
var legacyToolsVersions = []string{"1.0", "1.1", "1.2", "1.3", "1.4"}

// extractMetadata fills in the document header and registers the primary
// component, so that dependencies declared on it can be resolved.
func (pc *parseContext) extractMetadata(bom *cdxnode.BOM) {
	md := bom.Metadata

	pc.document = models.Document{
		SpecVersion:   bom.SpecVersion,
		Type:          DocumentType,
		Serialization: bom.Serialization,
		Created:       md.Timestamp,
	}

	if md.LegacyTools && bom.SpecVersion != "" && !slices.Contains(legacyToolsVersions, bom.SpecVersion) {
		pc.debugf("legacy tools array used in a %s document", bom.SpecVersion)
	}

	for _, tool := range md.Tools {
		if tool.Name == "" {
			continue
		}
		pc.document.Creators = append(pc.document.Creators, models.Creator{
			Kind: models.CreatorTool,
			Name: joinCreator(tool.Name, tool.Version),
		})
	}

	for _, author := range md.Authors {
		if author.Name == "" {
			continue
		}
		pc.document.Creators = append(pc.document.Creators, models.Creator{
			Kind: models.CreatorPerson,
			Name: joinCreator(author.Name, author.Email),
		})
	}

	if c := md.Component; c != nil {
		bomRef := c.BOMRef
		if bomRef == "" {
			bomRef = syntheticRef(0)
		}
		pc.document.Name = c.Name
		pc.document.MetadataType = c.Type
		pc.document.MetadataVersion = c.Version
		pc.document.BOMRef = bomRef
		pc.register(bomRef, c.Name)
	}
}

func joinCreator(name, detail string) string {
	if detail == "" {
		return name
	}

	return name + "#" + detail
}
