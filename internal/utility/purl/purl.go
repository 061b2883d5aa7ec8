// Package purl derives display information from package URLs.
package purl

import (
	"github.com/package-url/packageurl-go"
)

// used like so: purlEcosystems[PkgURL.Type][PkgURL.Namespace]
// * means it should match any namespace string
var purlEcosystems = map[string]map[string]string{
	"apk":   {"alpine": "Alpine"},
	"cargo": {"*": "crates.io"},
	"deb": {"debian": "Debian",
		"ubuntu": "Ubuntu"},
	"hex":         {"*": "Hex"},
	"golang":      {"*": "Go"},
	"maven":       {"*": "Maven"},
	"nuget":       {"*": "NuGet"},
	"npm":         {"*": "npm"},
	"composer":    {"*": "Packagist"},
	"pypi":        {"*": "PyPI"},
	"gem":         {"*": "RubyGems"},
	"pub":         {"*": "Pub"},
	"conan":       {"*": "ConanCenter"},
	"cran":        {"*": "CRAN"},
	"huggingface": {"*": "Hugging Face"},
}

// Info is what a package URL says about a package.
type Info struct {
	Ecosystem string
	Name      string
	Version   string
}

func ecosystem(pkgURL packageurl.PackageURL) string {
	ecoMap, ok := purlEcosystems[pkgURL.Type]
	if !ok {
		return ""
	}

	if wildcard, hasWildcard := ecoMap["*"]; hasWildcard {
		return wildcard
	}

	return ecoMap[pkgURL.Namespace]
}

// Parse reads a package URL. The ecosystem is empty for purl types that do
// not correspond to a known package ecosystem.
func Parse(purl string) (Info, error) {
	parsedPURL, err := packageurl.FromString(purl)
	if err != nil {
		return Info{}, err
	}
	eco := ecosystem(parsedPURL)

	// Info expects the full namespace in the name for ecosystems that specify it.
	name := parsedPURL.Name
	if parsedPURL.Namespace != "" {
		switch eco {
		case "Maven":
			// Maven uses : to separate namespace and package
			name = parsedPURL.Namespace + ":" + parsedPURL.Name
		case "Debian", "Alpine", "Ubuntu":
			// Debian and Alpine repeats their namespace in PURL, so don't add it to the name
			name = parsedPURL.Name
		default:
			name = parsedPURL.Namespace + "/" + parsedPURL.Name
		}
	}

	return Info{
		Ecosystem: eco,
		Name:      name,
		Version:   parsedPURL.Version,
	}, nil
}

// Ecosystem returns the ecosystem named by purl, or "" when the purl is
// invalid or of an unknown type.
func Ecosystem(purl string) string {
	if purl == "" {
		return ""
	}

	info, err := Parse(purl)
	if err != nil {
		return ""
	}

	return info.Ecosystem
}
