package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"modscan/pkg/exec"
)

// ToolchainProvider delegates scanning to the installed Go toolchain
// binary. It is the preferred provider because the toolchain applies
// the same file parsing the build itself would.
type ToolchainProvider struct {
	goBinPath string
}

// NewToolchainProvider probes the toolchain binary and fails when it
// cannot be executed, so provider selection falls through to the next
// candidate.
func NewToolchainProvider(goBinPath string) (*ToolchainProvider, error) {
	if err := validGoBinary(goBinPath); err != nil {
		return nil, err
	}

	return &ToolchainProvider{goBinPath: goBinPath}, nil
}

func (p *ToolchainProvider) Name() string { return "golist" }

// ListModules shells out to `go list` for source files and to
// `go mod edit -json` for module manifests. Manifest records carry
// versions; source imports do not.
func (p *ToolchainProvider) ListModules(ctx context.Context, path string) ([]Record, error) {
	if filepath.Base(path) == "go.mod" {
		return p.listRequires(ctx, path)
	}

	return p.listImports(ctx, path)
}

func (p *ToolchainProvider) listImports(ctx context.Context, path string) ([]Record, error) {
	// A list of .go files is treated by go list as one synthesized
	// package; -e keeps broken files from turning into hard errors.
	cmd := exec.CommandContext(ctx, p.goBinPath, "list", "-e", "-json", "--", path)

	var out bytes.Buffer

	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("go list failed: %w", err)
	}

	var pkg goListPackage
	if err := json.NewDecoder(&out).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to decode go list output: %w", err)
	}

	records := make([]Record, 0, len(pkg.Imports))

	for _, imp := range pkg.Imports {
		records = append(records, Record{Name: imp})
	}

	return records, nil
}

func (p *ToolchainProvider) listRequires(ctx context.Context, path string) ([]Record, error) {
	cmd := exec.CommandContext(ctx, p.goBinPath, "mod", "edit", "-json", path)

	var out bytes.Buffer

	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("go mod edit failed: %w", err)
	}

	var mf goModFile
	if err := json.NewDecoder(&out).Decode(&mf); err != nil {
		return nil, fmt.Errorf("failed to decode go mod edit output: %w", err)
	}

	records := make([]Record, 0, len(mf.Require))

	for _, req := range mf.Require {
		records = append(records, Record{Name: req.Path, Version: req.Version})
	}

	return records, nil
}
