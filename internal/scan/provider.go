// Package scan detects the modules a source file declares as
// dependencies. Detection is delegated to a provider selected once per
// run from an ordered preference list; providers differ in how they
// recognize import declarations but share one contract.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoScanner is returned when no provider in the preference list
// could be constructed. It is fatal: no file is scanned without a
// provider.
var ErrNoScanner = errors.New("no scanner provider available")

// Provider lists the modules a single file declares.
type Provider interface {
	Name() string
	ListModules(ctx context.Context, path string) ([]Record, error)
}

// Factory constructs a named provider. Construction may fail, e.g.
// when the provider needs a toolchain binary that is not installed.
type Factory struct {
	Name string
	New  func() (Provider, error)
}

// DefaultFactories returns the built-in providers in default
// preference order: the toolchain-backed scanner first, then the
// in-process parser, then the line-oriented fallback.
func DefaultFactories() []Factory {
	return []Factory{
		{Name: "golist", New: func() (Provider, error) { return NewToolchainProvider("go") }},
		{Name: "gosyntax", New: func() (Provider, error) { return NewSyntaxProvider(), nil }},
		{Name: "linescan", New: func() (Provider, error) { return NewLineScanProvider(), nil }},
	}
}

// Select probes factories in the order given by names and returns the
// first provider that constructs. Names without a matching factory are
// skipped. Probing happens exactly once per run, before any file is
// read.
func Select(factories []Factory, names []string) (Provider, error) {
	byName := make(map[string]Factory, len(factories))
	for _, f := range factories {
		byName[f.Name] = f
	}

	for _, name := range names {
		f, ok := byName[name]
		if !ok {
			slog.Debug("unknown scanner provider requested", "name", name)
			continue
		}

		p, err := f.New()
		if err != nil {
			slog.Debug("scanner provider unavailable", "name", name, "error", err)
			continue
		}

		return p, nil
	}

	return nil, fmt.Errorf("%w (tried: %v)", ErrNoScanner, names)
}
