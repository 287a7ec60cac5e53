package scan

import (
	"context"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/mod/modfile"
)

// SyntaxProvider scans in process: go/parser for source files and
// x/mod/modfile for module manifests. It needs nothing from the host
// system and serves as the default fallback when the toolchain binary
// is missing.
type SyntaxProvider struct{}

func NewSyntaxProvider() *SyntaxProvider { return &SyntaxProvider{} }

func (p *SyntaxProvider) Name() string { return "gosyntax" }

func (p *SyntaxProvider) ListModules(_ context.Context, path string) ([]Record, error) {
	if filepath.Base(path) == "go.mod" {
		return p.listRequires(path)
	}

	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file: %w", err)
	}

	records := make([]Record, 0, len(file.Imports))

	for _, imp := range file.Imports {
		name, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		records = append(records, Record{Name: name})
	}

	return records, nil
}

func (p *SyntaxProvider) listRequires(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mf, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	records := make([]Record, 0, len(mf.Require))

	for _, req := range mf.Require {
		records = append(records, Record{Name: req.Mod.Path, Version: req.Mod.Version})
	}

	return records, nil
}
