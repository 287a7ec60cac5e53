package scan

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/mod/module"
)

var (
	// A quoted path on its own line, after an import keyword, or after
	// an alias. This deliberately over-matches; implausible import
	// paths are discarded below.
	importLineRe = regexp.MustCompile(`^\s*(?:import\s+)?(?:[\w.]+\s+)?"([^"]+)"`)

	// A require directive or a line inside a require block.
	requireLineRe = regexp.MustCompile(`^\s*(?:require\s+)?([A-Za-z0-9][\w./-]*)\s+(v\S+)`)
)

// LineScanProvider is a last-resort scanner that pattern-matches
// import declarations line by line. It trades precision for
// resilience: files the parser rejects can still be reported on.
type LineScanProvider struct{}

func NewLineScanProvider() *LineScanProvider { return &LineScanProvider{} }

func (p *LineScanProvider) Name() string { return "linescan" }

func (p *LineScanProvider) ListModules(_ context.Context, path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	manifest := filepath.Base(path) == "go.mod"

	var records []Record

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if manifest {
			if m := requireLineRe.FindStringSubmatch(line); m != nil {
				if module.CheckPath(m[1]) == nil {
					records = append(records, Record{Name: m[1], Version: m[2]})
				}
			}

			continue
		}

		m := importLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if err := module.CheckImportPath(m[1]); err != nil {
			continue
		}

		records = append(records, Record{Name: m[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file: %w", err)
	}

	return records, nil
}
