package cdxingest

import (
	"strings"

	"github.com/sbomkit/cdxingest/internal/cdxnode"
	"github.com/sbomkit/cdxingest/pkg/models"
)

// normalizeComponent maps the fields of a single component onto a new
// Package. The bom-ref and model card are left to the caller.
func normalizeComponent(c cdxnode.Component) models.Package {
	pkg := models.Package{
		Name:          c.Name,
		Version:       c.Version,
		Type:          c.Type,
		Group:         c.Group,
		Originator:    c.Author,
		Description:   c.Description,
		CopyrightText: c.Copyright,
	}

	if license := resolveLicense(c); license != "" {
		pkg.SetLicense(license)
	}

	for _, h := range c.Hashes {
		if h.Algorithm == "" || h.Content == "" {
			continue
		}
		pkg.SetChecksum(normalizeAlgorithm(h.Algorithm), h.Content)
	}

	if c.Supplier != nil {
		pkg.Supplier = supplierName(*c.Supplier)
	}

	if refType, ok := classifyCPE(c.CPE); ok {
		pkg.AddExternalReference(models.CategorySecurity, refType, c.CPE)
	}
	if c.PURL != "" {
		pkg.AddExternalReference(models.CategoryPackageManager, models.ReferencePURL, c.PURL)
	}

	for _, ref := range c.ExternalReferences {
		switch ref.Type {
		case "website":
			pkg.Homepage = ref.URL
		case "distribution":
			pkg.DownloadLocation = ref.URL
		}
	}

	for _, p := range c.Properties {
		pkg.AddProperty(p.Name, p.Value)
	}

	return pkg
}

// resolveLicense picks the first license entry, falling back to the
// licenses found as evidence.
func resolveLicense(c cdxnode.Component) string {
	entries := c.Licenses
	if len(entries) == 0 {
		entries = c.EvidenceLicenses
	}
	if len(entries) == 0 {
		return ""
	}

	l := entries[0]
	for _, candidate := range []string{l.ID, l.Name, l.LicenseExpression, l.Expression} {
		if candidate != "" {
			return candidate
		}
	}

	return ""
}

// normalizeAlgorithm drops the hyphen of SHA family names: SHA-256 -> SHA256.
func normalizeAlgorithm(alg string) string {
	return strings.ReplaceAll(alg, "SHA-", "SHA")
}

func supplierName(s cdxnode.Supplier) string {
	if s.Name == "" {
		return ""
	}

	for _, contact := range s.Contacts {
		if contact.Email != "" {
			return s.Name + " (" + contact.Email + ")"
		}
	}

	return s.Name
}

// classifyCPE returns the reference type for a CPE, or false if the value
// is neither a CPE 2.3 formatted string nor a CPE 2.2 URI.
func classifyCPE(cpe string) (string, bool) {
	lower := strings.ToLower(cpe)

	switch {
	case strings.HasPrefix(lower, "cpe:2.3"):
		return models.ReferenceCPE23, true
	case strings.HasPrefix(lower, "cpe:/"):
		return models.ReferenceCPE22, true
	default:
		return "", false
	}
}
