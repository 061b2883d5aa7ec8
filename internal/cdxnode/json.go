package cdxnode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// DecodeJSON reads a CycloneDX JSON document.
//
// The decoding is deliberately loose: a value of an unexpected JSON type is
// read as its text when it is a scalar and ignored otherwise, and a single
// object is accepted wherever a list is expected.
func DecodeJSON(data []byte) (*BOM, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrSyntax)
	}

	root := gjson.ParseBytes(data)
	bom := &BOM{Serialization: JSON}

	if !root.IsObject() || text(root.Get("bomFormat")) == "" {
		return bom, nil
	}

	bom.IsCycloneDX = true
	bom.SpecVersion = text(root.Get("specVersion"))
	bom.Metadata = jsonMetadata(root.Get("metadata"))

	components, err := decodeJSONComponents(root.Get("components").Raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	bom.Components = components

	for _, d := range list(root.Get("dependencies")) {
		bom.Dependencies = append(bom.Dependencies, Dependency{
			Ref:       text(d.Get("ref")),
			DependsOn: texts(d.Get("dependsOn")),
		})
	}

	for _, v := range list(root.Get("vulnerabilities")) {
		bom.Vulnerabilities = append(bom.Vulnerabilities, jsonVulnerability(v))
	}

	return bom, nil
}

type jsonNode struct {
	members  object
	children []Node
}

func (n *jsonNode) Component() Component {
	return jsonComponent(n.members)
}

func (n *jsonNode) Children() []Node {
	return n.children
}

// jsonFrame is an open position in the component tree: either the members of
// a component object or the elements of its components list.
type jsonFrame struct {
	node *jsonNode
	list bool
}

// decodeJSONComponents builds the component tree from a components value in
// one pass over the tokens. Nested components are followed with an explicit
// stack; every other member is kept as its raw JSON for field extraction.
func decodeJSONComponents(raw string) ([]Node, error) {
	if raw == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	root := &jsonNode{}
	var stack []jsonFrame

	// openList reads the start of a components value that belongs to parent.
	// A lone object is read as a one-element list.
	openList := func(parent *jsonNode) error {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('['):
			stack = append(stack, jsonFrame{node: parent, list: true})
		case json.Delim('{'):
			child := &jsonNode{members: object{}}
			parent.children = append(parent.children, child)
			stack = append(stack, jsonFrame{node: child})
		}

		return nil
	}

	if err := openList(root); err != nil {
		return nil, err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if !dec.More() {
			// closing ] or }
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			stack = stack[:len(stack)-1]

			continue
		}

		if top.list {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			child := &jsonNode{members: object{}}
			top.node.children = append(top.node.children, child)

			switch tok {
			case json.Delim('{'):
				stack = append(stack, jsonFrame{node: child})
			case json.Delim('['):
				if err := skipJSON(dec, 1); err != nil {
					return nil, err
				}
			}

			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		if _, seen := top.node.members[key]; seen {
			if err := skipJSON(dec, 0); err != nil {
				return nil, err
			}

			continue
		}

		if key == "components" {
			top.node.members[key] = gjson.Result{}
			if err := openList(top.node); err != nil {
				return nil, err
			}

			continue
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		top.node.members[key] = gjson.ParseBytes(value)
	}

	return root.children, nil
}

// skipJSON discards tokens until depth open arrays or objects are closed.
// With depth 0 it discards exactly one value.
func skipJSON(dec *json.Decoder, depth int) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch tok {
		case json.Delim('['), json.Delim('{'):
			depth++
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}

// text returns the textual form of a scalar and "" for objects, arrays and
// missing values.
func text(r gjson.Result) string {
	if !r.Exists() || r.IsObject() || r.IsArray() || r.Type == gjson.Null {
		return ""
	}

	return r.String()
}

// list returns the elements of an array, or the value itself when it is a
// lone object.
func list(r gjson.Result) []gjson.Result {
	switch {
	case r.IsArray():
		return r.Array()
	case r.IsObject():
		return []gjson.Result{r}
	default:
		return nil
	}
}

func texts(r gjson.Result) []string {
	var out []string
	if !r.IsArray() {
		if s := text(r); s != "" {
			out = append(out, s)
		}

		return out
	}
	for _, e := range r.Array() {
		if s := text(e); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func jsonMetadata(r gjson.Result) Metadata {
	var md Metadata
	if !r.IsObject() {
		return md
	}

	md.Timestamp = text(r.Get("timestamp"))

	tools := r.Get("tools")
	switch {
	case tools.IsObject():
		// 1.5 and later: tools.components[] and tools.services[]
		for _, t := range list(tools.Get("components")) {
			md.Tools = append(md.Tools, jsonTool(t))
		}
		for _, t := range list(tools.Get("services")) {
			md.Tools = append(md.Tools, jsonTool(t))
		}
	case tools.IsArray():
		md.LegacyTools = true
		for _, t := range tools.Array() {
			// some producers wrap the tool list in a components-of-tools entry
			if nested := t.Get("components"); nested.IsArray() {
				for _, c := range nested.Array() {
					md.Tools = append(md.Tools, jsonTool(c))
				}

				continue
			}
			md.Tools = append(md.Tools, jsonTool(t))
		}
	}

	for _, a := range list(r.Get("authors")) {
		md.Authors = append(md.Authors, Contact{
			Name:  text(a.Get("name")),
			Email: text(a.Get("email")),
		})
	}

	if c := r.Get("component"); c.IsObject() {
		comp := jsonComponent(members(c))
		md.Component = &comp
	}

	return md
}

func jsonTool(r gjson.Result) Tool {
	return Tool{Name: text(r.Get("name")), Version: text(r.Get("version"))}
}

// object holds the members of a JSON object. The first occurrence of a
// repeated key wins.
type object map[string]gjson.Result

func members(r gjson.Result) object {
	o := make(object)
	r.ForEach(func(key, value gjson.Result) bool {
		if _, seen := o[key.String()]; !seen {
			o[key.String()] = value
		}

		return true
	})

	return o
}

func (o object) text(key string) string {
	return text(o[key])
}

func jsonComponent(o object) Component {
	c := Component{
		Type:        o.text("type"),
		BOMRef:      o.text("bom-ref"),
		Name:        o.text("name"),
		Version:     o.text("version"),
		Group:       o.text("group"),
		Author:      o.text("author"),
		Description: o.text("description"),
		Copyright:   o.text("copyright"),
		CPE:         o.text("cpe"),
		PURL:        o.text("purl"),
	}

	if s := o["supplier"]; s.IsObject() {
		supplier := &Supplier{Name: text(s.Get("name"))}
		for _, ct := range list(s.Get("contact")) {
			supplier.Contacts = append(supplier.Contacts, Contact{
				Name:  text(ct.Get("name")),
				Email: text(ct.Get("email")),
			})
		}
		c.Supplier = supplier
	}

	for _, h := range list(o["hashes"]) {
		c.Hashes = append(c.Hashes, Hash{
			Algorithm: text(h.Get("alg")),
			Content:   text(h.Get("content")),
		})
	}

	c.Licenses = jsonLicenses(o["licenses"])
	c.EvidenceLicenses = jsonLicenses(o["evidence"].Get("licenses"))
	c.Properties = jsonProperties(o["properties"])

	for _, ref := range list(o["externalReferences"]) {
		c.ExternalReferences = append(c.ExternalReferences, ExternalReference{
			Type: text(ref.Get("type")),
			URL:  text(ref.Get("url")),
		})
	}

	if mc := o["modelCard"]; mc.IsObject() {
		c.ModelCard = jsonModelCard(mc)
	}

	return c
}

func jsonLicenses(r gjson.Result) []License {
	var out []License
	for _, l := range list(r) {
		lic := License{Expression: text(l.Get("expression"))}
		if inner := l.Get("license"); inner.IsObject() {
			lic.ID = text(inner.Get("id"))
			lic.Name = text(inner.Get("name"))
			lic.LicenseExpression = text(inner.Get("expression"))
		}
		out = append(out, lic)
	}

	return out
}

func jsonProperties(r gjson.Result) []Property {
	var out []Property
	for _, p := range list(r) {
		out = append(out, Property{Name: text(p.Get("name")), Value: text(p.Get("value"))})
	}

	return out
}

func jsonVulnerability(r gjson.Result) Vulnerability {
	v := Vulnerability{
		ID:          text(r.Get("id")),
		BOMRef:      text(r.Get("bom-ref")),
		SourceName:  text(r.Get("source.name")),
		SourceURL:   text(r.Get("source.url")),
		Description: text(r.Get("description")),
		Created:     text(r.Get("created")),
	}
	if a := r.Get("analysis"); a.IsObject() {
		v.Analysis = &Analysis{
			State:         text(a.Get("state")),
			Justification: text(a.Get("justification")),
			Detail:        text(a.Get("detail")),
		}
	}

	return v
}

func jsonModelCard(r gjson.Result) *ModelCard {
	mc := &ModelCard{
		BOMRef:     text(r.Get("bom-ref")),
		Properties: jsonProperties(r.Get("properties")),
	}

	if p := r.Get("modelParameters"); p.IsObject() {
		params := &ModelParameters{
			ApproachType:       text(p.Get("approach.type")),
			Task:               text(p.Get("task")),
			ArchitectureFamily: text(p.Get("architectureFamily")),
			ModelArchitecture:  text(p.Get("modelArchitecture")),
		}
		for _, d := range list(p.Get("datasets")) {
			params.Datasets = append(params.Datasets, jsonDataset(d))
		}
		for _, in := range list(p.Get("inputs")) {
			params.Inputs = append(params.Inputs, text(in.Get("format")))
		}
		for _, out := range list(p.Get("outputs")) {
			params.Outputs = append(params.Outputs, text(out.Get("format")))
		}
		mc.ModelParameters = params
	}

	if q := r.Get("quantitativeAnalysis"); q.IsObject() {
		qa := &QuantitativeAnalysis{Graphics: jsonGraphics(q.Get("graphics"))}
		for _, m := range list(q.Get("performanceMetrics")) {
			metric := PerformanceMetric{
				Type:  text(m.Get("type")),
				Value: text(m.Get("value")),
				Slice: text(m.Get("slice")),
			}
			if ci := m.Get("confidenceInterval"); ci.IsObject() {
				metric.ConfidenceInterval = &ConfidenceInterval{
					LowerBound: text(ci.Get("lowerBound")),
					UpperBound: text(ci.Get("upperBound")),
				}
			}
			qa.PerformanceMetrics = append(qa.PerformanceMetrics, metric)
		}
		mc.QuantitativeAnalysis = qa
	}

	if c := r.Get("considerations"); c.IsObject() {
		cons := &Considerations{
			Users:                texts(c.Get("users")),
			UseCases:             texts(c.Get("useCases")),
			TechnicalLimitations: texts(c.Get("technicalLimitations")),
			PerformanceTradeoffs: texts(c.Get("performanceTradeoffs")),
		}
		for _, e := range list(c.Get("ethicalConsiderations")) {
			cons.EthicalConsiderations = append(cons.EthicalConsiderations, EthicalConsideration{
				Name:               text(e.Get("name")),
				MitigationStrategy: text(e.Get("mitigationStrategy")),
			})
		}
		for _, f := range list(c.Get("fairnessAssessments")) {
			cons.FairnessAssessments = append(cons.FairnessAssessments, FairnessAssessment{
				GroupAtRisk:        text(f.Get("groupAtRisk")),
				Benefits:           text(f.Get("benefits")),
				Harms:              text(f.Get("harms")),
				MitigationStrategy: text(f.Get("mitigationStrategy")),
			})
		}
		mc.Considerations = cons
	}

	return mc
}

func jsonDataset(r gjson.Result) Dataset {
	d := Dataset{
		Ref:            text(r.Get("ref")),
		BOMRef:         text(r.Get("bom-ref")),
		Type:           text(r.Get("type")),
		Name:           text(r.Get("name")),
		Classification: text(r.Get("classification")),
		Description:    text(r.Get("description")),
		Graphics:       jsonGraphics(r.Get("graphics")),
	}

	if c := r.Get("contents"); c.IsObject() {
		d.Contents = &DatasetContents{
			Attachment: text(c.Get("attachment.content")),
			URL:        text(c.Get("url")),
			Properties: jsonProperties(c.Get("properties")),
		}
	}

	if s := r.Get("sensitiveData"); s.Type == gjson.True || s.Type == gjson.False {
		d.Sensitive = s.Bool()
	} else {
		d.SensitiveData = texts(s)
		d.Sensitive = len(d.SensitiveData) > 0
	}

	if g := r.Get("governance"); g.IsObject() {
		d.Governance = &Governance{
			Custodians: jsonParties(g.Get("custodians")),
			Stewards:   jsonParties(g.Get("stewards")),
			Owners:     jsonParties(g.Get("owners")),
		}
	}

	return d
}

func jsonParties(r gjson.Result) []Party {
	var out []Party
	for _, p := range list(r) {
		out = append(out, Party{
			Organization: text(p.Get("organization.name")),
			Contact:      text(p.Get("contact.email")),
		})
	}

	return out
}

func jsonGraphics(r gjson.Result) *Graphics {
	if !r.IsObject() {
		return nil
	}

	g := &Graphics{Description: text(r.Get("description"))}
	for _, img := range list(r.Get("collection")) {
		g.Collection = append(g.Collection, Graphic{
			Name:  text(img.Get("name")),
			Image: text(img.Get("image.content")),
		})
	}

	return g
}
