package cdxingest

import (
	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// extractVulnerabilities copies the vulnerabilities of a JSON document.
// Vulnerabilities are not read from XML documents.
func (pc *parseContext) extractVulnerabilities(bom *cdxnode.BOM) {
	if bom.Serialization != cdxnode.JSON {
		return
	}

	for _, v := range bom.Vulnerabilities {
		vuln := models.Vulnerability{
			ID:          v.ID,
			BOMRef:      v.BOMRef,
			SourceName:  v.SourceName,
			SourceURL:   v.SourceURL,
			Description: v.Description,
			Created:     v.Created,
		}
		if v.ID == "" {
			pc.debugf("vulnerability without an id")
		}
		if a := v.Analysis; a != nil {
			vuln.Status = a.State
			vuln.Comment = a.Detail
			vuln.Justification = a.Justification
		}
		pc.vulnerabilities = append(pc.vulnerabilities, vuln)
	}
}
