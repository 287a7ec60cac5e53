// Package collector accumulates the module records contributed by
// each scanned file over the life of one run.
package collector

import (
	"context"
	"fmt"
	"os"

	"modscan/internal/scan"
)

// Collector owns the insertion-ordered accumulated record list. It is
// constructed once per process and handed to the formatter by
// reference, so no run state hides in function locals.
type Collector struct {
	provider    scan.Provider
	classifier  scan.CoreClassifier
	excludeCore bool
	records     []scan.Record
}

func New(provider scan.Provider, classifier scan.CoreClassifier, excludeCore bool) *Collector {
	return &Collector{
		provider:    provider,
		classifier:  classifier,
		excludeCore: excludeCore,
		records:     make([]scan.Record, 0),
	}
}

// ScanFile checks readability, delegates to the provider and appends
// the file's records to the accumulated list. The returned slice holds
// only this file's contribution, already filtered when exclude-core is
// active. Errors are per-file: the caller reports them and moves on.
func (c *Collector) ScanFile(ctx context.Context, path string) ([]scan.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	_ = f.Close()

	contributed, err := c.provider.ListModules(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	c.records = append(c.records, contributed...)

	if c.excludeCore {
		// Re-applied to the whole accumulated list after every file.
		// The filter is idempotent: a record removed once stays
		// removed.
		c.records = c.filterCore(c.records)
		contributed = c.filterCore(contributed)
	}

	return contributed, nil
}

// Records returns the accumulated list in insertion order. Duplicates
// across files are retained; they are resolved at formatting time.
func (c *Collector) Records() []scan.Record {
	return c.records
}

func (c *Collector) filterCore(records []scan.Record) []scan.Record {
	if c.classifier == nil {
		return records
	}

	kept := make([]scan.Record, 0, len(records))

	for _, rec := range records {
		if release, ok := c.classifier.FirstRelease(rec.Name); ok && release != "" {
			continue
		}

		kept = append(kept, rec)
	}

	return kept
}
