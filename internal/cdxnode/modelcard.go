package cdxnode

// Party is one governance entry: an organization name and/or a contact email.
type Party struct {
	Organization string
	Contact      string
}

type Governance struct {
	Custodians []Party
	Stewards   []Party
	Owners     []Party
}

type Graphic struct {
	Name  string
	Image string
}

type Graphics struct {
	Description string
	Collection  []Graphic
}

type DatasetContents struct {
	Attachment string
	URL        string
	Properties []Property
}

// Dataset is either inline component data or, when only Ref is set, a
// reference to a data component elsewhere in the BOM.
type Dataset struct {
	Ref            string
	BOMRef         string
	Type           string
	Name           string
	Contents       *DatasetContents
	Classification string
	// SensitiveData lists the declared kinds of sensitive data. Sensitive is
	// also set by producers that emit a plain boolean instead.
	SensitiveData []string
	Sensitive     bool
	Graphics      *Graphics
	Description   string
	Governance    *Governance
}

type ModelParameters struct {
	ApproachType       string
	Task               string
	ArchitectureFamily string
	ModelArchitecture  string
	Datasets           []Dataset
	Inputs             []string
	Outputs            []string
}

type ConfidenceInterval struct {
	LowerBound string
	UpperBound string
}

type PerformanceMetric struct {
	Type               string
	Value              string
	Slice              string
	ConfidenceInterval *ConfidenceInterval
}

type QuantitativeAnalysis struct {
	PerformanceMetrics []PerformanceMetric
	Graphics           *Graphics
}

type EthicalConsideration struct {
	Name               string
	MitigationStrategy string
}

type FairnessAssessment struct {
	GroupAtRisk        string
	Benefits           string
	Harms              string
	MitigationStrategy string
}

type Considerations struct {
	Users                 []string
	UseCases              []string
	TechnicalLimitations  []string
	PerformanceTradeoffs  []string
	EthicalConsiderations []EthicalConsideration
	FairnessAssessments   []FairnessAssessment
}

type ModelCard struct {
	BOMRef               string
	ModelParameters      *ModelParameters
	QuantitativeAnalysis *QuantitativeAnalysis
	Considerations       *Considerations
	Properties           []Property
}
