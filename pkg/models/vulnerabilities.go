package models

import (
	"encoding/json"
	"fmt"
)

// Vulnerabilities is the vulnerability list of a parse result, in document
// order.
type Vulnerabilities []Vulnerability

// Includes reports whether a vulnerability with the given id is present.
func (vs Vulnerabilities) Includes(id string) bool {
	for _, vuln := range vs {
		if vuln.ID == id {
			return true
		}
	}

	return false
}

// MarshalJSON ensures that if there are no vulnerabilities,
// an empty array is used as the value instead of "null"
func (vs Vulnerabilities) MarshalJSON() ([]byte, error) {
	if len(vs) == 0 {
		return []byte("[]"), nil
	}

	type innerVulnerabilities Vulnerabilities

	out, err := json.Marshal(innerVulnerabilities(vs))

	if err != nil {
		return out, fmt.Errorf("%w", err)
	}

	return out, nil
}

// MarshalYAML ensures that if there are no vulnerabilities,
// an empty sequence is used as the value instead of null
func (vs Vulnerabilities) MarshalYAML() (any, error) {
	if len(vs) == 0 {
		return []Vulnerability{}, nil
	}

	return []Vulnerability(vs), nil
}
