package cdxnode_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sbomkit/cdxingest/internal/cdxnode"
)

func TestDecodeXML_InvalidSyntax(t *testing.T) {
	t.Parallel()

	_, err := cdxnode.DecodeXML([]byte(`<bom xmlns="http://cyclonedx.org/schema/bom/1.5"><components>`))

	if !errors.Is(err, cdxnode.ErrSyntax) {
		t.Errorf("DecodeXML() error = %v, want %v", err, cdxnode.ErrSyntax)
	}
}

func TestDecodeXML_NotCycloneDX(t *testing.T) {
	t.Parallel()

	bom, err := cdxnode.DecodeXML([]byte(`<project><artifactId>x</artifactId></project>`))
	if err != nil {
		t.Fatalf("DecodeXML() unexpected error: %v", err)
	}
	if bom.IsCycloneDX {
		t.Errorf("DecodeXML() IsCycloneDX = true, want false")
	}
}

func TestDecodeXML_DeclaredEncoding(t *testing.T) {
	t.Parallel()

	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		`<bom xmlns="http://cyclonedx.org/schema/bom/1.5" version="1"><components>` +
		"<component type=\"library\"><name>caf\xe9</name><version>1.0</version>" +
		"<description>cr\xe8me br\xfbl\xe9e</description></component>" +
		`</components></bom>`

	bom, err := cdxnode.DecodeXML([]byte(input))
	if err != nil {
		t.Fatalf("DecodeXML() unexpected error: %v", err)
	}
	if len(bom.Components) != 1 {
		t.Fatalf("DecodeXML() got %d components, want 1", len(bom.Components))
	}

	c := bom.Components[0].Component()
	if c.Name != "café" {
		t.Errorf("Name = %q, want %q", c.Name, "café")
	}
	if c.Description != "crème brûlée" {
		t.Errorf("Description = %q, want %q", c.Description, "crème brûlée")
	}
}

func TestDecodeXML_UnknownEncoding(t *testing.T) {
	t.Parallel()

	input := `<?xml version="1.0" encoding="x-no-such-charset"?><bom xmlns="http://cyclonedx.org/schema/bom/1.5"/>`

	_, err := cdxnode.DecodeXML([]byte(input))
	if !errors.Is(err, cdxnode.ErrSyntax) {
		t.Errorf("DecodeXML() error = %v, want %v", err, cdxnode.ErrSyntax)
	}
}

func TestDecodeXML_ComponentTree(t *testing.T) {
	t.Parallel()

	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.5">
  <components>
    <component type="library" bom-ref="a">
      <name>a</name>
      <hashes><hash alg="MD5">01</hash></hashes>
      <components>
        <component type="file"><name>a1</name></component>
        <service><name>not-a-component</name></service>
      </components>
      <hashes><hash alg="SHA-1">02</hash></hashes>
      <components>
        <component type="file"><name>a2</name></component>
      </components>
      <pedigree>
        <ancestors><component type="library"><name>ancestor</name></component></ancestors>
      </pedigree>
    </component>
  </components>
  <components>
    <component type="library"><name>b</name></component>
  </components>
</bom>`

	bom, err := cdxnode.DecodeXML([]byte(input))
	if err != nil {
		t.Fatalf("DecodeXML() unexpected error: %v", err)
	}

	var got []string
	for _, n := range bom.Components {
		got = append(got, n.Component().Name)
		for _, child := range n.Children() {
			got = append(got, "  "+child.Component().Name)
		}
	}

	want := []string{"a", "  a1", "  a2", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeXML() component tree mismatch (-want +got):\n%s", diff)
	}

	a := bom.Components[0].Component()
	if a.BOMRef != "a" || a.Type != "library" {
		t.Errorf("attributes = (%q, %q), want (%q, %q)", a.Type, a.BOMRef, "library", "a")
	}

	wantHashes := []cdxnode.Hash{{Algorithm: "MD5", Content: "01"}, {Algorithm: "SHA-1", Content: "02"}}
	if diff := cmp.Diff(wantHashes, a.Hashes); diff != "" {
		t.Errorf("Hashes mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeXML_SpecVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		namespace string
		want      string
	}{
		{namespace: "http://cyclonedx.org/schema/bom/1.5", want: "1.5"},
		{namespace: "http://cyclonedx.org/schema/bom/1.4", want: "1.4"},
		{namespace: "https://cyclonedx.org/schema/bom/1.6", want: "1.6"},
		{namespace: "urn:example:bom/2", want: "2"},
		{namespace: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			t.Parallel()

			input := `<bom xmlns="` + tt.namespace + `" version="1"></bom>`
			if tt.namespace == "" {
				input = `<bom version="1"></bom>`
			}

			bom, err := cdxnode.DecodeXML([]byte(input))
			if err != nil {
				t.Fatalf("DecodeXML() unexpected error: %v", err)
			}
			if bom.SpecVersion != tt.want {
				t.Errorf("SpecVersion = %q, want %q", bom.SpecVersion, tt.want)
			}
		})
	}
}

func TestDecodeXML_Document(t *testing.T) {
	t.Parallel()

	input := `<?xml version="1.0" encoding="UTF-8"?>
<bom xmlns="http://cyclonedx.org/schema/bom/1.4" version="1">
  <metadata>
    <timestamp>2024-01-02T03:04:05Z</timestamp>
    <tools>
      <tool><vendor>acme</vendor><name>builder</name><version>2.0</version></tool>
    </tools>
    <authors>
      <author><name>Jane</name><email>jane@example.com</email></author>
    </authors>
    <component type="application" bom-ref="root">
      <name>App</name>
      <version>1.0</version>
    </component>
  </metadata>
  <components>
    <component type="library" bom-ref="A">
      <supplier>
        <name>ACME</name>
        <contact><email>ops@acme.example</email></contact>
      </supplier>
      <name>libfoo</name>
      <version>2.1</version>
      <hashes>
        <hash alg="SHA-1">da39a3ee</hash>
      </hashes>
      <licenses>
        <expression>MIT OR Apache-2.0</expression>
        <license><id>MIT</id></license>
      </licenses>
      <purl>pkg:generic/libfoo@2.1</purl>
      <externalReferences>
        <reference type="distribution"><url>https://dl.example/libfoo</url></reference>
      </externalReferences>
      <properties>
        <property name="legacy" value="attr"/>
        <property name="modern">text</property>
      </properties>
      <evidence>
        <licenses><license><name>Custom</name></license></licenses>
      </evidence>
      <components>
        <component type="file"><name>libfoo.so</name></component>
      </components>
    </component>
  </components>
  <dependencies>
    <dependency ref="root">
      <dependency ref="A"/>
    </dependency>
    <dependency ref="A"/>
  </dependencies>
</bom>`

	bom, err := cdxnode.DecodeXML([]byte(input))
	if err != nil {
		t.Fatalf("DecodeXML() unexpected error: %v", err)
	}

	wantMetadata := cdxnode.Metadata{
		Timestamp:   "2024-01-02T03:04:05Z",
		Tools:       []cdxnode.Tool{{Name: "builder", Version: "2.0"}},
		LegacyTools: true,
		Authors:     []cdxnode.Contact{{Name: "Jane", Email: "jane@example.com"}},
		Component:   &cdxnode.Component{Type: "application", BOMRef: "root", Name: "App", Version: "1.0"},
	}
	if diff := cmp.Diff(wantMetadata, bom.Metadata); diff != "" {
		t.Errorf("DecodeXML() metadata mismatch (-want +got):\n%s", diff)
	}

	if len(bom.Components) != 1 {
		t.Fatalf("DecodeXML() got %d components, want 1", len(bom.Components))
	}

	wantComponent := cdxnode.Component{
		Type:     "library",
		BOMRef:   "A",
		Supplier: &cdxnode.Supplier{Name: "ACME", Contacts: []cdxnode.Contact{{Email: "ops@acme.example"}}},
		Name:     "libfoo",
		Version:  "2.1",
		Hashes:   []cdxnode.Hash{{Algorithm: "SHA-1", Content: "da39a3ee"}},
		Licenses: []cdxnode.License{
			{Expression: "MIT OR Apache-2.0"},
			{ID: "MIT"},
		},
		EvidenceLicenses:   []cdxnode.License{{Name: "Custom"}},
		PURL:               "pkg:generic/libfoo@2.1",
		ExternalReferences: []cdxnode.ExternalReference{{Type: "distribution", URL: "https://dl.example/libfoo"}},
		Properties:         []cdxnode.Property{{Name: "legacy", Value: "attr"}, {Name: "modern", Value: "text"}},
	}
	if diff := cmp.Diff(wantComponent, bom.Components[0].Component()); diff != "" {
		t.Errorf("Component() mismatch (-want +got):\n%s", diff)
	}

	children := bom.Components[0].Children()
	if len(children) != 1 || children[0].Component().Name != "libfoo.so" {
		t.Errorf("Children() = %v, want one libfoo.so node", children)
	}

	wantDeps := []cdxnode.Dependency{{Ref: "root", DependsOn: []string{"A"}}, {Ref: "A"}}
	if diff := cmp.Diff(wantDeps, bom.Dependencies); diff != "" {
		t.Errorf("DecodeXML() dependencies mismatch (-want +got):\n%s", diff)
	}

	if len(bom.Vulnerabilities) != 0 {
		t.Errorf("DecodeXML() got %d vulnerabilities, want 0", len(bom.Vulnerabilities))
	}
}

func TestDecodeXML_ModelCard(t *testing.T) {
	t.Parallel()

	input := `<bom xmlns="http://cyclonedx.org/schema/bom/1.6">
  <components>
    <component type="machine-learning-model" bom-ref="model">
      <name>classifier</name>
      <modelCard bom-ref="card">
        <modelParameters>
          <approach><type>supervised</type></approach>
          <task>classification</task>
          <architectureFamily>transformer</architectureFamily>
          <modelArchitecture>bert-base</modelArchitecture>
          <datasets>
            <dataset bom-ref="ds1">
              <type>dataset</type>
              <name>corpus</name>
              <contents><url>https://data.example/corpus</url></contents>
              <classification>public</classification>
              <sensitiveData>PII</sensitiveData>
              <governance>
                <owners><owner><organization><name>ACME</name></organization></owner></owners>
                <custodians><custodian><contact><email>data@acme.example</email></contact></custodian></custodians>
              </governance>
            </dataset>
            <ref>other-data</ref>
          </datasets>
          <inputs><input><format>string</format></input></inputs>
          <outputs><output><format>label</format></output></outputs>
        </modelParameters>
        <quantitativeAnalysis>
          <performanceMetrics>
            <performanceMetric>
              <type>accuracy</type>
              <value>0.9</value>
              <confidenceInterval><lowerBound>0.85</lowerBound><upperBound>0.95</upperBound></confidenceInterval>
            </performanceMetric>
          </performanceMetrics>
        </quantitativeAnalysis>
        <considerations>
          <users><user>analysts</user></users>
          <ethicalConsiderations>
            <ethicalConsideration><name>bias</name><mitigationStrategy>audit</mitigationStrategy></ethicalConsideration>
          </ethicalConsiderations>
        </considerations>
        <properties><property name="k">v</property></properties>
      </modelCard>
    </component>
  </components>
</bom>`

	bom, err := cdxnode.DecodeXML([]byte(input))
	if err != nil {
		t.Fatalf("DecodeXML() unexpected error: %v", err)
	}

	want := &cdxnode.ModelCard{
		BOMRef: "card",
		ModelParameters: &cdxnode.ModelParameters{
			ApproachType:       "supervised",
			Task:               "classification",
			ArchitectureFamily: "transformer",
			ModelArchitecture:  "bert-base",
			Datasets: []cdxnode.Dataset{
				{
					BOMRef:         "ds1",
					Type:           "dataset",
					Name:           "corpus",
					Contents:       &cdxnode.DatasetContents{URL: "https://data.example/corpus"},
					Classification: "public",
					SensitiveData:  []string{"PII"},
					Sensitive:      true,
					Governance: &cdxnode.Governance{
						Custodians: []cdxnode.Party{{Contact: "data@acme.example"}},
						Owners:     []cdxnode.Party{{Organization: "ACME"}},
					},
				},
				{Ref: "other-data"},
			},
			Inputs:  []string{"string"},
			Outputs: []string{"label"},
		},
		QuantitativeAnalysis: &cdxnode.QuantitativeAnalysis{
			PerformanceMetrics: []cdxnode.PerformanceMetric{{
				Type:               "accuracy",
				Value:              "0.9",
				ConfidenceInterval: &cdxnode.ConfidenceInterval{LowerBound: "0.85", UpperBound: "0.95"},
			}},
		},
		Considerations: &cdxnode.Considerations{
			Users:                 []string{"analysts"},
			EthicalConsiderations: []cdxnode.EthicalConsideration{{Name: "bias", MitigationStrategy: "audit"}},
		},
		Properties: []cdxnode.Property{{Name: "k", Value: "v"}},
	}

	if diff := cmp.Diff(want, bom.Components[0].Component().ModelCard); diff != "" {
		t.Errorf("ModelCard mismatch (-want +got):\n%s", diff)
	}
}
