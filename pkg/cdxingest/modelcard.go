package cdxingest

import (
	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/pkg/models"
)

func extractModelCard(mc *cdxnode.ModelCard) *models.ModelCard {
	card := &models.ModelCard{
		BOMRef:     mc.BOMRef,
		Properties: convertProperties(mc.Properties),
	}

	if p := mc.ModelParameters; p != nil {
		card.ModelType = p.ApproachType
		card.Task = p.Task
		card.ArchitectureFamily = p.ArchitectureFamily
		card.ModelArchitecture = p.ModelArchitecture
		card.Inputs = p.Inputs
		card.Outputs = p.Outputs

		for _, d := range p.Datasets {
			card.Datasets = append(card.Datasets, convertDataset(d))
		}
	}

	if q := mc.QuantitativeAnalysis; q != nil {
		card.Graphics = convertGraphics(q.Graphics)

		for _, m := range q.PerformanceMetrics {
			metric := models.PerformanceMetric{Type: m.Type, Value: m.Value, Slice: m.Slice}
			if ci := m.ConfidenceInterval; ci != nil {
				metric.LowerBound = ci.LowerBound
				metric.UpperBound = ci.UpperBound
			}
			card.PerformanceMetrics = append(card.PerformanceMetrics, metric)
		}
	}

	if c := mc.Considerations; c != nil {
		card.Users = c.Users
		card.UseCases = c.UseCases
		card.TechnicalLimitations = c.TechnicalLimitations
		card.PerformanceTradeoffs = c.PerformanceTradeoffs

		for _, e := range c.EthicalConsiderations {
			card.EthicalConsiderations = append(card.EthicalConsiderations, models.EthicalConsideration{
				Name:               e.Name,
				MitigationStrategy: e.MitigationStrategy,
			})
		}
		for _, f := range c.FairnessAssessments {
			card.FairnessAssessments = append(card.FairnessAssessments, models.FairnessAssessment{
				GroupAtRisk:        f.GroupAtRisk,
				Benefits:           f.Benefits,
				Harms:              f.Harms,
				MitigationStrategy: f.MitigationStrategy,
			})
		}
	}

	return card
}

func convertDataset(d cdxnode.Dataset) models.ModelDataset {
	ds := models.ModelDataset{
		Type:           d.Type,
		Name:           d.Name,
		BOMRef:         d.BOMRef,
		Ref:            d.Ref,
		Classification: d.Classification,
		Sensitive:      d.Sensitive,
		SensitiveData:  d.SensitiveData,
		Graphics:       convertGraphics(d.Graphics),
		Description:    d.Description,
	}

	if c := d.Contents; c != nil {
		ds.Contents = c.Attachment
		ds.URL = c.URL
		ds.ContentProperties = convertProperties(c.Properties)
	}

	if g := d.Governance; g != nil {
		ds.Governance = appendGovernance(ds.Governance, models.GovernanceCustodian, g.Custodians)
		ds.Governance = appendGovernance(ds.Governance, models.GovernanceSteward, g.Stewards)
		ds.Governance = appendGovernance(ds.Governance, models.GovernanceOwner, g.Owners)
	}

	return ds
}

func appendGovernance(out []models.Governance, role models.GovernanceRole, parties []cdxnode.Party) []models.Governance {
	for _, p := range parties {
		if p.Organization == "" && p.Contact == "" {
			continue
		}
		out = append(out, models.Governance{Role: role, Organization: p.Organization, Contact: p.Contact})
	}

	return out
}

func convertGraphics(g *cdxnode.Graphics) *models.Graphics {
	if g == nil {
		return nil
	}

	out := &models.Graphics{Description: g.Description}
	for _, img := range g.Collection {
		out.Images = append(out.Images, models.Image{Name: img.Name, Content: img.Image})
	}

	return out
}

func convertProperties(props []cdxnode.Property) []models.Property {
	var out []models.Property
	for _, p := range props {
		out = append(out, models.Property{Name: p.Name, Value: p.Value})
	}

	return out
}
