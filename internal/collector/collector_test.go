package collector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"modscan/internal/scan"
)

// fakeProvider returns canned records keyed by the base name of the
// scanned path.
type fakeProvider struct {
	modules map[string][]scan.Record
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) ListModules(_ context.Context, path string) ([]scan.Record, error) {
	return p.modules[filepath.Base(path)], nil
}

type fakeClassifier struct {
	releases map[string]string
}

func (f *fakeClassifier) FirstRelease(name string) (string, bool) {
	release, ok := f.releases[name]
	return release, ok
}

// touchFiles creates empty readable files for every key of modules and
// returns their paths in sorted key order a, b, ...
func touchFiles(t *testing.T, dir string, names ...string) []string {
	t.Helper()

	paths := make([]string, 0, len(names))

	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("placeholder"), 0644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		paths = append(paths, path)
	}

	return paths
}

func TestScanFileAccumulates(t *testing.T) {
	provider := &fakeProvider{modules: map[string][]scan.Record{
		"a.go": {{Name: "fmt"}, {Name: "github.com/foo/bar"}},
		"b.go": {{Name: "github.com/foo/bar"}, {Name: "errors"}},
	}}

	paths := touchFiles(t, t.TempDir(), "a.go", "b.go")
	col := New(provider, nil, false)

	contributed, err := col.ScanFile(context.Background(), paths[0])
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	if len(contributed) != 2 {
		t.Errorf("first file contributed %d records, want 2", len(contributed))
	}

	if _, err := col.ScanFile(context.Background(), paths[1]); err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	records := col.Records()
	if len(records) != 4 {
		t.Fatalf("accumulated %d records, want 4 (duplicates retained)", len(records))
	}

	// Insertion order across files.
	wantNames := []string{"fmt", "github.com/foo/bar", "github.com/foo/bar", "errors"}
	for i, want := range wantNames {
		if records[i].Name != want {
			t.Errorf("record %d = %q, want %q", i, records[i].Name, want)
		}
	}
}

func TestScanFileUnreadable(t *testing.T) {
	provider := &fakeProvider{modules: map[string][]scan.Record{}}
	col := New(provider, nil, false)

	missing := filepath.Join(t.TempDir(), "missing.go")

	if _, err := col.ScanFile(context.Background(), missing); err == nil {
		t.Fatal("ScanFile() expected error for unreadable file")
	}

	if len(col.Records()) != 0 {
		t.Errorf("accumulated %d records after failed scan, want 0", len(col.Records()))
	}
}

func TestExcludeCoreFiltersAccumulatedList(t *testing.T) {
	provider := &fakeProvider{modules: map[string][]scan.Record{
		"a.go": {{Name: "fmt"}, {Name: "errors"}, {Name: "github.com/foo/bar"}},
		"b.go": {{Name: "github.com/foo/bar"}, {Name: "slices"}},
	}}

	classifier := &fakeClassifier{releases: map[string]string{
		"fmt":    "1",
		"errors": "1",
		"slices": "1.21",
	}}

	paths := touchFiles(t, t.TempDir(), "a.go", "b.go")
	col := New(provider, classifier, true)

	contributed, err := col.ScanFile(context.Background(), paths[0])
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	if len(contributed) != 1 || contributed[0].Name != "github.com/foo/bar" {
		t.Errorf("contributed = %v, want only github.com/foo/bar", contributed)
	}

	if _, err := col.ScanFile(context.Background(), paths[1]); err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	// Core modules from both files stay filtered; the filter applied
	// after the second file must not resurrect anything.
	records := col.Records()
	if len(records) != 2 {
		t.Fatalf("accumulated %d records, want 2", len(records))
	}

	for _, rec := range records {
		if rec.Name != "github.com/foo/bar" {
			t.Errorf("unexpected record %q after exclude-core", rec.Name)
		}
	}
}

func TestExcludeCoreWithoutClassifier(t *testing.T) {
	provider := &fakeProvider{modules: map[string][]scan.Record{
		"a.go": {{Name: "fmt"}},
	}}

	paths := touchFiles(t, t.TempDir(), "a.go")
	col := New(provider, nil, true)

	contributed, err := col.ScanFile(context.Background(), paths[0])
	if err != nil {
		t.Fatalf("ScanFile() error = %v", err)
	}

	// Without the classifier nothing can be identified as core.
	if len(contributed) != 1 {
		t.Errorf("contributed %d records, want 1", len(contributed))
	}
}
