package models_test

import (
	"testing"

	"github.com/sbomkit/cdxingest/internal/testutility"
	"github.com/sbomkit/cdxingest/pkg/models"
)

func TestMain(m *testing.M) {
	m.Run()

	testutility.CleanSnapshots(m)
}

func TestVulnerabilities_MarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vs   models.Vulnerabilities
	}{
		{
			name: "nil",
			vs:   nil,
		},
		{
			name: "no vulnerabilities",
			vs:   models.Vulnerabilities{},
		},
		{
			name: "one vulnerability",
			vs:   models.Vulnerabilities{models.Vulnerability{ID: "GHSA-1"}},
		},
		{
			name: "multiple vulnerabilities",
			vs: models.Vulnerabilities{
				models.Vulnerability{ID: "GHSA-1"},
				models.Vulnerability{ID: "GHSA-2", Status: "not_affected"},
				models.Vulnerability{ID: "GHSA-3"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutility.NewSnapshot().MatchJSON(t, tt.vs)
		})
	}
}

func TestVulnerabilities_Includes(t *testing.T) {
	t.Parallel()

	vs := models.Vulnerabilities{{ID: "CVE-2024-0001"}, {ID: "GHSA-xxxx"}}

	if !vs.Includes("GHSA-xxxx") {
		t.Errorf("expected GHSA-xxxx to be included")
	}

	if vs.Includes("CVE-2024-0002") {
		t.Errorf("did not expect CVE-2024-0002 to be included")
	}

	if models.Vulnerabilities(nil).Includes("") {
		t.Errorf("nil list should include nothing")
	}
}
