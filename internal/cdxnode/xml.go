package cdxnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var schemaNamespace = regexp.MustCompile(`^https?://cyclonedx\.org/schema/bom/(\d+(?:\.\d+)*)$`)

type xmlMetadata struct {
	Timestamp string        `xml:"timestamp"`
	Tools     *xmlTools     `xml:"tools"`
	Authors   []xmlContact  `xml:"authors>author"`
	Component *xmlComponent `xml:"component"`
}

type xmlTools struct {
	Tools      []xmlTool `xml:"tool"`
	Components []xmlTool `xml:"components>component"`
	Services   []xmlTool `xml:"services>service"`
}

type xmlTool struct {
	Name    string `xml:"name"`
	Version string `xml:"version"`
}

type xmlContact struct {
	Name  string `xml:"name"`
	Email string `xml:"email"`
}

type xmlSupplier struct {
	Name     string       `xml:"name"`
	Contacts []xmlContact `xml:"contact"`
}

type xmlHash struct {
	Algorithm string `xml:"alg,attr"`
	Content   string `xml:",chardata"`
}

// xmlProperty accepts both the current text-content form and the older
// value attribute.
type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Text  string `xml:",chardata"`
}

type xmlReference struct {
	Type string `xml:"type,attr"`
	URL  string `xml:"url"`
}

// xmlLicenses keeps <license> and <expression> entries in document order.
type xmlLicenses struct {
	Entries []xmlLicenseEntry `xml:",any"`
}

type xmlLicenseEntry struct {
	XMLName    xml.Name
	ID         string `xml:"id"`
	Name       string `xml:"name"`
	Expression string `xml:"expression"`
	Text       string `xml:",chardata"`
}

type xmlComponent struct {
	Type               string         `xml:"type,attr"`
	BOMRef             string         `xml:"bom-ref,attr"`
	Supplier           *xmlSupplier   `xml:"supplier"`
	Author             string         `xml:"author"`
	Group              string         `xml:"group"`
	Name               string         `xml:"name"`
	Version            string         `xml:"version"`
	Description        string         `xml:"description"`
	Hashes             []xmlHash      `xml:"hashes>hash"`
	Licenses           *xmlLicenses   `xml:"licenses"`
	Copyright          string         `xml:"copyright"`
	CPE                string         `xml:"cpe"`
	PURL               string         `xml:"purl"`
	ExternalReferences []xmlReference `xml:"externalReferences>reference"`
	Properties         []xmlProperty  `xml:"properties>property"`
	EvidenceLicenses   *xmlLicenses   `xml:"evidence>licenses"`
	ModelCard          *xmlModelCard  `xml:"modelCard"`
}

type xmlDependencies struct {
	Dependencies []xmlDependency `xml:"dependency"`
}

type xmlDependency struct {
	Ref          string          `xml:"ref,attr"`
	Dependencies []xmlDependency `xml:"dependency"`
}

type xmlModelCard struct {
	BOMRef               string                   `xml:"bom-ref,attr"`
	ModelParameters      *xmlModelParameters      `xml:"modelParameters"`
	QuantitativeAnalysis *xmlQuantitativeAnalysis `xml:"quantitativeAnalysis"`
	Considerations       *xmlConsiderations       `xml:"considerations"`
	Properties           []xmlProperty            `xml:"properties>property"`
}

type xmlModelParameters struct {
	ApproachType       string       `xml:"approach>type"`
	Task               string       `xml:"task"`
	ArchitectureFamily string       `xml:"architectureFamily"`
	ModelArchitecture  string       `xml:"modelArchitecture"`
	Datasets           []xmlDataset `xml:"datasets>dataset"`
	DatasetRefs        []string     `xml:"datasets>ref"`
	Inputs             []string     `xml:"inputs>input>format"`
	Outputs            []string     `xml:"outputs>output>format"`
}

type xmlParty struct {
	Organization string `xml:"organization>name"`
	Contact      string `xml:"contact>email"`
}

type xmlDataset struct {
	BOMRef         string         `xml:"bom-ref,attr"`
	Type           string         `xml:"type"`
	Name           string         `xml:"name"`
	Contents       *xmlContents   `xml:"contents"`
	Classification string         `xml:"classification"`
	SensitiveData  []string       `xml:"sensitiveData"`
	Graphics       *xmlGraphics   `xml:"graphics"`
	Description    string         `xml:"description"`
	Governance     *xmlGovernance `xml:"governance"`
}

type xmlContents struct {
	Attachment string        `xml:"attachment"`
	URL        string        `xml:"url"`
	Properties []xmlProperty `xml:"properties>property"`
}

type xmlGovernance struct {
	Custodians []xmlParty `xml:"custodians>custodian"`
	Stewards   []xmlParty `xml:"stewards>steward"`
	Owners     []xmlParty `xml:"owners>owner"`
}

type xmlGraphics struct {
	Description string       `xml:"description"`
	Collection  []xmlGraphic `xml:"collection>graphic"`
}

type xmlGraphic struct {
	Name  string `xml:"name"`
	Image string `xml:"image"`
}

type xmlMetric struct {
	Type       string `xml:"type"`
	Value      string `xml:"value"`
	Slice      string `xml:"slice"`
	LowerBound string `xml:"confidenceInterval>lowerBound"`
	UpperBound string `xml:"confidenceInterval>upperBound"`
}

type xmlQuantitativeAnalysis struct {
	PerformanceMetrics []xmlMetric  `xml:"performanceMetrics>performanceMetric"`
	Graphics           *xmlGraphics `xml:"graphics"`
}

type xmlEthicalConsideration struct {
	Name               string `xml:"name"`
	MitigationStrategy string `xml:"mitigationStrategy"`
}

type xmlFairnessAssessment struct {
	GroupAtRisk        string `xml:"groupAtRisk"`
	Benefits           string `xml:"benefits"`
	Harms              string `xml:"harms"`
	MitigationStrategy string `xml:"mitigationStrategy"`
}

type xmlConsiderations struct {
	Users                 []string                  `xml:"users>user"`
	UseCases              []string                  `xml:"useCases>useCase"`
	TechnicalLimitations  []string                  `xml:"technicalLimitations>technicalLimitation"`
	PerformanceTradeoffs  []string                  `xml:"performanceTradeoffs>performanceTradeoff"`
	EthicalConsiderations []xmlEthicalConsideration `xml:"ethicalConsiderations>ethicalConsideration"`
	FairnessAssessments   []xmlFairnessAssessment   `xml:"fairnessAssessments>fairnessAssessment"`
}

// DecodeXML reads a CycloneDX XML document. Vulnerabilities are not read
// from XML.
func DecodeXML(data []byte) (*BOM, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	// Set charset reader for conversion from non-UTF-8 charset into UTF-8.
	dec.CharsetReader = charset.NewReaderLabel

	bom, err := decodeXMLBOM(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}

	return bom, nil
}

func decodeXMLBOM(dec *xml.Decoder) (*BOM, error) {
	root, err := nextStart(dec)
	if err != nil {
		return nil, err
	}

	bom := &BOM{Serialization: XML}
	if root.Name.Local != "bom" {
		return bom, dec.Skip()
	}

	bom.IsCycloneDX = true
	bom.SpecVersion = specVersionFromNamespace(root.Name.Space)

	var md *xmlMetadata
	var deps xmlDependencies

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		if _, ok := tok.(xml.EndElement); ok {
			break
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "metadata":
			if md == nil {
				md = &xmlMetadata{}
			}
			err = dec.DecodeElement(md, &start)
		case "components":
			var nodes []Node
			nodes, err = decodeXMLComponents(dec)
			bom.Components = append(bom.Components, nodes...)
		case "dependencies":
			err = dec.DecodeElement(&deps, &start)
		default:
			err = dec.Skip()
		}
		if err != nil {
			return nil, err
		}
	}

	if md != nil {
		bom.Metadata = md.convert()
	}

	for _, d := range deps.Dependencies {
		dep := Dependency{Ref: trim(d.Ref)}
		for _, target := range d.Dependencies {
			dep.DependsOn = append(dep.DependsOn, trim(target.Ref))
		}
		bom.Dependencies = append(bom.Dependencies, dep)
	}

	return bom, nil
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// xmlFrame is an open element of the component tree: either a component
// whose fields are being read, or the components list of node.
type xmlFrame struct {
	node *xmlNode
	list bool
}

// decodeXMLComponents reads the body of a <components> element. Nested
// components are followed with an explicit stack, and every other child of a
// component is unmarshalled on its own, so the nesting depth of assemblies is
// not limited by the decoder.
func decodeXMLComponents(dec *xml.Decoder) ([]Node, error) {
	root := &xmlNode{}
	stack := []xmlFrame{{node: root, list: true}}

	for len(stack) > 0 {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		top := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.StartElement:
			switch {
			case top.list && t.Name.Local == "component":
				child := &xmlNode{c: newXMLComponent(t)}
				top.node.children = append(top.node.children, child)
				stack = append(stack, xmlFrame{node: child})
			case top.list:
				err = dec.Skip()
			case t.Name.Local == "components":
				stack = append(stack, xmlFrame{node: top.node, list: true})
			default:
				err = xml.NewTokenDecoder(&fieldReader{dec: dec, start: t}).Decode(top.node.c)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return root.children, nil
}

func newXMLComponent(start xml.StartElement) *xmlComponent {
	c := &xmlComponent{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "type":
			c.Type = a.Value
		case "bom-ref":
			c.BOMRef = a.Value
		}
	}

	return c
}

var componentName = xml.Name{Local: "component"}

// fieldReader replays a single child element of a component, wrapped in a
// bare <component>, so that it unmarshals through the xmlComponent tags.
type fieldReader struct {
	dec   *xml.Decoder
	start xml.StartElement
	state int
	depth int
}

func (r *fieldReader) Token() (xml.Token, error) {
	switch {
	case r.state == 0:
		r.state++
		return xml.StartElement{Name: componentName}, nil
	case r.state == 1:
		r.state++
		r.depth = 1

		return r.start.Copy(), nil
	case r.depth > 0:
		tok, err := r.dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		switch tok.(type) {
		case xml.StartElement:
			r.depth++
		case xml.EndElement:
			r.depth--
		}

		return xml.CopyToken(tok), nil
	case r.state == 2:
		r.state++
		return xml.EndElement{Name: componentName}, nil
	default:
		return nil, io.EOF
	}
}

// specVersionFromNamespace turns http://cyclonedx.org/schema/bom/1.5 into 1.5.
func specVersionFromNamespace(ns string) string {
	if m := schemaNamespace.FindStringSubmatch(ns); m != nil {
		return m[1]
	}
	if i := strings.LastIndex(ns, "/"); i >= 0 {
		return ns[i+1:]
	}

	return ns
}

func trim(s string) string {
	return strings.TrimSpace(s)
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = trim(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

type xmlNode struct {
	c        *xmlComponent
	children []Node
}

func (n *xmlNode) Component() Component {
	return n.c.convert()
}

func (n *xmlNode) Children() []Node {
	return n.children
}

func (md *xmlMetadata) convert() Metadata {
	out := Metadata{Timestamp: trim(md.Timestamp)}

	if md.Tools != nil {
		// <tool> is the pre-1.5 form; 1.5 moved tools under components/services
		out.LegacyTools = len(md.Tools.Tools) > 0
		for _, group := range [][]xmlTool{md.Tools.Tools, md.Tools.Components, md.Tools.Services} {
			for _, t := range group {
				out.Tools = append(out.Tools, Tool{Name: trim(t.Name), Version: trim(t.Version)})
			}
		}
	}

	for _, a := range md.Authors {
		out.Authors = append(out.Authors, Contact{Name: trim(a.Name), Email: trim(a.Email)})
	}

	if md.Component != nil {
		c := md.Component.convert()
		out.Component = &c
	}

	return out
}

func (c *xmlComponent) convert() Component {
	out := Component{
		Type:             trim(c.Type),
		BOMRef:           trim(c.BOMRef),
		Name:             trim(c.Name),
		Version:          trim(c.Version),
		Group:            trim(c.Group),
		Author:           trim(c.Author),
		Description:      trim(c.Description),
		Copyright:        trim(c.Copyright),
		CPE:              trim(c.CPE),
		PURL:             trim(c.PURL),
		Licenses:         c.Licenses.convert(),
		EvidenceLicenses: c.EvidenceLicenses.convert(),
		Properties:       convertProperties(c.Properties),
	}

	if c.Supplier != nil {
		s := &Supplier{Name: trim(c.Supplier.Name)}
		for _, ct := range c.Supplier.Contacts {
			s.Contacts = append(s.Contacts, Contact{Name: trim(ct.Name), Email: trim(ct.Email)})
		}
		out.Supplier = s
	}

	for _, h := range c.Hashes {
		out.Hashes = append(out.Hashes, Hash{Algorithm: trim(h.Algorithm), Content: trim(h.Content)})
	}

	for _, ref := range c.ExternalReferences {
		out.ExternalReferences = append(out.ExternalReferences, ExternalReference{
			Type: trim(ref.Type),
			URL:  trim(ref.URL),
		})
	}

	if c.ModelCard != nil {
		out.ModelCard = c.ModelCard.convert()
	}

	return out
}

func (l *xmlLicenses) convert() []License {
	if l == nil {
		return nil
	}

	var out []License
	for _, e := range l.Entries {
		switch e.XMLName.Local {
		case "license":
			out = append(out, License{
				ID:                trim(e.ID),
				Name:              trim(e.Name),
				LicenseExpression: trim(e.Expression),
			})
		case "expression":
			out = append(out, License{Expression: trim(e.Text)})
		}
	}

	return out
}

func convertProperties(props []xmlProperty) []Property {
	var out []Property
	for _, p := range props {
		value := trim(p.Text)
		if value == "" {
			value = trim(p.Value)
		}
		out = append(out, Property{Name: trim(p.Name), Value: value})
	}

	return out
}

func (mc *xmlModelCard) convert() *ModelCard {
	out := &ModelCard{
		BOMRef:     trim(mc.BOMRef),
		Properties: convertProperties(mc.Properties),
	}

	if p := mc.ModelParameters; p != nil {
		params := &ModelParameters{
			ApproachType:       trim(p.ApproachType),
			Task:               trim(p.Task),
			ArchitectureFamily: trim(p.ArchitectureFamily),
			ModelArchitecture:  trim(p.ModelArchitecture),
			Inputs:             trimAll(p.Inputs),
			Outputs:            trimAll(p.Outputs),
		}
		for _, d := range p.Datasets {
			params.Datasets = append(params.Datasets, d.convert())
		}
		for _, ref := range trimAll(p.DatasetRefs) {
			params.Datasets = append(params.Datasets, Dataset{Ref: ref})
		}
		out.ModelParameters = params
	}

	if q := mc.QuantitativeAnalysis; q != nil {
		qa := &QuantitativeAnalysis{Graphics: q.Graphics.convert()}
		for _, m := range q.PerformanceMetrics {
			metric := PerformanceMetric{Type: trim(m.Type), Value: trim(m.Value), Slice: trim(m.Slice)}
			if lo, hi := trim(m.LowerBound), trim(m.UpperBound); lo != "" || hi != "" {
				metric.ConfidenceInterval = &ConfidenceInterval{LowerBound: lo, UpperBound: hi}
			}
			qa.PerformanceMetrics = append(qa.PerformanceMetrics, metric)
		}
		out.QuantitativeAnalysis = qa
	}

	if c := mc.Considerations; c != nil {
		cons := &Considerations{
			Users:                trimAll(c.Users),
			UseCases:             trimAll(c.UseCases),
			TechnicalLimitations: trimAll(c.TechnicalLimitations),
			PerformanceTradeoffs: trimAll(c.PerformanceTradeoffs),
		}
		for _, e := range c.EthicalConsiderations {
			cons.EthicalConsiderations = append(cons.EthicalConsiderations, EthicalConsideration{
				Name:               trim(e.Name),
				MitigationStrategy: trim(e.MitigationStrategy),
			})
		}
		for _, f := range c.FairnessAssessments {
			cons.FairnessAssessments = append(cons.FairnessAssessments, FairnessAssessment{
				GroupAtRisk:        trim(f.GroupAtRisk),
				Benefits:           trim(f.Benefits),
				Harms:              trim(f.Harms),
				MitigationStrategy: trim(f.MitigationStrategy),
			})
		}
		out.Considerations = cons
	}

	return out
}

func (d xmlDataset) convert() Dataset {
	out := Dataset{
		BOMRef:         trim(d.BOMRef),
		Type:           trim(d.Type),
		Name:           trim(d.Name),
		Classification: trim(d.Classification),
		SensitiveData:  trimAll(d.SensitiveData),
		Graphics:       d.Graphics.convert(),
		Description:    trim(d.Description),
	}
	out.Sensitive = len(out.SensitiveData) > 0

	if d.Contents != nil {
		out.Contents = &DatasetContents{
			Attachment: trim(d.Contents.Attachment),
			URL:        trim(d.Contents.URL),
			Properties: convertProperties(d.Contents.Properties),
		}
	}

	if g := d.Governance; g != nil {
		out.Governance = &Governance{
			Custodians: convertParties(g.Custodians),
			Stewards:   convertParties(g.Stewards),
			Owners:     convertParties(g.Owners),
		}
	}

	return out
}

func convertParties(parties []xmlParty) []Party {
	var out []Party
	for _, p := range parties {
		out = append(out, Party{Organization: trim(p.Organization), Contact: trim(p.Contact)})
	}

	return out
}

func (g *xmlGraphics) convert() *Graphics {
	if g == nil {
		return nil
	}

	out := &Graphics{Description: trim(g.Description)}
	for _, img := range g.Collection {
		out.Collection = append(out.Collection, Graphic{Name: trim(img.Name), Image: trim(img.Image)})
	}

	return out
}
