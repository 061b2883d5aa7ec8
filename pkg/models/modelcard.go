package models

// GovernanceRole is the responsibility a party holds over a dataset.
type GovernanceRole string

const (
	GovernanceCustodian GovernanceRole = "custodian"
	GovernanceSteward   GovernanceRole = "steward"
	GovernanceOwner     GovernanceRole = "owner"
)

type Governance struct {
	Role         GovernanceRole `json:"role" yaml:"role"`
	Organization string         `json:"organization,omitempty" yaml:"organization,omitempty"`
	Contact      string         `json:"contact,omitempty" yaml:"contact,omitempty"`
}

type Image struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

type Graphics struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Images      []Image `json:"images,omitempty" yaml:"images,omitempty"`
}

// ModelDataset describes a dataset used to train or evaluate a model.
//
// A dataset given only as a reference to another component has just Ref set.
type ModelDataset struct {
	Type              string     `json:"type,omitempty" yaml:"type,omitempty"`
	Name              string     `json:"name,omitempty" yaml:"name,omitempty"`
	BOMRef            string     `json:"bom_ref,omitempty" yaml:"bom_ref,omitempty"`
	Ref               string     `json:"ref,omitempty" yaml:"ref,omitempty"`
	Contents          string     `json:"contents,omitempty" yaml:"contents,omitempty"`
	URL               string     `json:"url,omitempty" yaml:"url,omitempty"`
	ContentProperties []Property `json:"content_properties,omitempty" yaml:"content_properties,omitempty"`
	Classification    string     `json:"classification,omitempty" yaml:"classification,omitempty"`
	Sensitive         bool       `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
	SensitiveData     []string   `json:"sensitive_data,omitempty" yaml:"sensitive_data,omitempty"`
	Graphics          *Graphics  `json:"graphics,omitempty" yaml:"graphics,omitempty"`
	Description       string     `json:"description,omitempty" yaml:"description,omitempty"`

	Governance []Governance `json:"governance,omitempty" yaml:"governance,omitempty"`
}

type PerformanceMetric struct {
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Slice      string `json:"slice,omitempty" yaml:"slice,omitempty"`
	LowerBound string `json:"lower_bound,omitempty" yaml:"lower_bound,omitempty"`
	UpperBound string `json:"upper_bound,omitempty" yaml:"upper_bound,omitempty"`
}

type EthicalConsideration struct {
	Name               string `json:"name,omitempty" yaml:"name,omitempty"`
	MitigationStrategy string `json:"mitigation_strategy,omitempty" yaml:"mitigation_strategy,omitempty"`
}

type FairnessAssessment struct {
	GroupAtRisk        string `json:"group_at_risk,omitempty" yaml:"group_at_risk,omitempty"`
	Benefits           string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Harms              string `json:"harms,omitempty" yaml:"harms,omitempty"`
	MitigationStrategy string `json:"mitigation_strategy,omitempty" yaml:"mitigation_strategy,omitempty"`
}

// ModelCard holds the machine-learning metadata of a model component.
type ModelCard struct {
	BOMRef             string         `json:"bom_ref,omitempty" yaml:"bom_ref,omitempty"`
	ModelType          string         `json:"model_type,omitempty" yaml:"model_type,omitempty"`
	Task               string         `json:"task,omitempty" yaml:"task,omitempty"`
	ArchitectureFamily string         `json:"architecture_family,omitempty" yaml:"architecture_family,omitempty"`
	ModelArchitecture  string         `json:"model_architecture,omitempty" yaml:"model_architecture,omitempty"`
	Datasets           []ModelDataset `json:"datasets,omitempty" yaml:"datasets,omitempty"`
	Inputs             []string       `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs            []string       `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	PerformanceMetrics []PerformanceMetric `json:"performance_metrics,omitempty" yaml:"performance_metrics,omitempty"`
	Graphics           *Graphics           `json:"graphics,omitempty" yaml:"graphics,omitempty"`

	Users                 []string               `json:"users,omitempty" yaml:"users,omitempty"`
	UseCases              []string               `json:"use_cases,omitempty" yaml:"use_cases,omitempty"`
	TechnicalLimitations  []string               `json:"technical_limitations,omitempty" yaml:"technical_limitations,omitempty"`
	PerformanceTradeoffs  []string               `json:"performance_tradeoffs,omitempty" yaml:"performance_tradeoffs,omitempty"`
	EthicalConsiderations []EthicalConsideration `json:"ethical_considerations,omitempty" yaml:"ethical_considerations,omitempty"`
	FairnessAssessments   []FairnessAssessment   `json:"fairness_assessments,omitempty" yaml:"fairness_assessments,omitempty"`

	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}
