package models_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sbomkit/cdxingest/pkg/models"
)

func TestPackage_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pkg  models.Package
		want models.PackageKey
	}{
		{
			name: "with version",
			pkg:  models.Package{Name: "libfoo", Version: "2.1"},
			want: models.PackageKey{Name: "libfoo", Version: "2.1"},
		},
		{
			name: "without version",
			pkg:  models.Package{Name: "libfoo"},
			want: models.PackageKey{Name: "libfoo", Version: models.MissingVersion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.pkg.Key(); got != tt.want {
				t.Errorf("Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageTable_PutKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	table := models.NewPackageTable()

	for _, name := range []string{"c", "a", "b"} {
		if table.Put(models.Package{Name: name, Version: "1"}) {
			t.Errorf("Put(%s) reported a replacement on first insert", name)
		}
	}

	if !table.Put(models.Package{Name: "a", Version: "1", Description: "second"}) {
		t.Errorf("Put(a) did not report a replacement")
	}

	want := []models.PackageKey{
		{Name: "c", Version: "1"},
		{Name: "a", Version: "1"},
		{Name: "b", Version: "1"},
	}
	if diff := cmp.Diff(want, table.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	got, ok := table.Get(models.PackageKey{Name: "a", Version: "1"})
	if !ok || got.Description != "second" {
		t.Errorf("Get(a) = %+v, %v; want the replaced package", got, ok)
	}

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestPackageTable_MarshalJSON(t *testing.T) {
	t.Parallel()

	table := models.NewPackageTable()
	table.Put(models.Package{Name: "libfoo", Version: "2.1", Type: "library", BOMRef: "Component-1"})

	b, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}

	want := `[{"name":"libfoo","version":"2.1","type":"library","bom_ref":"Component-1"}]`
	if string(b) != want {
		t.Errorf("json.Marshal() = %s, want %s", b, want)
	}

	empty, err := json.Marshal(models.NewPackageTable())
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	if string(empty) != "[]" {
		t.Errorf("json.Marshal(empty) = %s, want []", empty)
	}
}

func TestPackage_PropertyValues(t *testing.T) {
	t.Parallel()

	var pkg models.Package
	pkg.AddProperty("tag", "a")
	pkg.AddProperty("other", "x")
	pkg.AddProperty("tag", "b")

	if diff := cmp.Diff([]string{"a", "b"}, pkg.PropertyValues("tag")); diff != "" {
		t.Errorf("PropertyValues() mismatch (-want +got):\n%s", diff)
	}
}
