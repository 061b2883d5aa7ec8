package models

import "encoding/json"

// PackageTable maps PackageKeys to Packages, remembering the order in which
// keys were first inserted.
type PackageTable struct {
	keys     []PackageKey
	packages map[PackageKey]Package
}

func NewPackageTable() *PackageTable {
	return &PackageTable{packages: make(map[PackageKey]Package)}
}

// Put stores pkg under its key. An existing entry is replaced in place and
// keeps its original position; replaced reports whether that happened.
func (t *PackageTable) Put(pkg Package) (replaced bool) {
	key := pkg.Key()
	if _, replaced = t.packages[key]; !replaced {
		t.keys = append(t.keys, key)
	}
	t.packages[key] = pkg

	return replaced
}

func (t *PackageTable) Get(key PackageKey) (Package, bool) {
	pkg, ok := t.packages[key]
	return pkg, ok
}

func (t *PackageTable) Has(key PackageKey) bool {
	_, ok := t.packages[key]
	return ok
}

func (t *PackageTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *PackageTable) Keys() []PackageKey {
	if t == nil {
		return nil
	}

	return append([]PackageKey(nil), t.keys...)
}

// Packages returns the packages in insertion order.
func (t *PackageTable) Packages() []Package {
	if t == nil {
		return nil
	}

	pkgs := make([]Package, 0, len(t.keys))
	for _, key := range t.keys {
		pkgs = append(pkgs, t.packages[key])
	}

	return pkgs
}

func (t *PackageTable) MarshalJSON() ([]byte, error) {
	pkgs := t.Packages()
	if pkgs == nil {
		pkgs = []Package{}
	}

	return json.Marshal(pkgs)
}

func (t *PackageTable) MarshalYAML() (any, error) {
	return t.Packages(), nil
}
