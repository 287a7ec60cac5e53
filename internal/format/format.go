// Package format renders accumulated module records in the output
// modes of modprereqs.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"modscan/internal/scan"
)

// Mode selects one of the mutually exclusive output renderings.
type Mode int

const (
	ModeVerbose Mode = iota
	ModeList
	ModeNull
	ModeJSON
	ModeManifest
)

// ResolveMode maps the output flags onto a single mode. When several
// flags are set at once the priority is fixed and documented:
// list > null > JSON > manifest > verbose.
func ResolveMode(list, null, jsonList, manifest bool) Mode {
	switch {
	case list:
		return ModeList
	case null:
		return ModeNull
	case jsonList:
		return ModeJSON
	case manifest:
		return ModeManifest
	default:
		return ModeVerbose
	}
}

// Formatter renders record collections. The seen set backing the
// list, null and JSON modes lives as long as the formatter, so
// repeated calls never emit a name twice.
type Formatter struct {
	classifier scan.CoreClassifier
	seen       map[string]struct{}
}

// New returns a formatter. A nil classifier marks the classification
// capability as unavailable for the run, which changes how the
// verbose report tallies modules.
func New(classifier scan.CoreClassifier) *Formatter {
	return &Formatter{
		classifier: classifier,
		seen:       make(map[string]struct{}),
	}
}

// unseenNames drops names already printed by an earlier call, marks
// the rest seen and returns them sorted.
func (f *Formatter) unseenNames(records []scan.Record) []string {
	var names []string

	for _, rec := range records {
		if _, ok := f.seen[rec.Name]; ok {
			continue
		}

		f.seen[rec.Name] = struct{}{}
		names = append(names, rec.Name)
	}

	sort.Strings(names)

	return names
}

// WriteList prints the sorted, deduplicated names one per line, each
// line newline-terminated.
func (f *Formatter) WriteList(w io.Writer, records []scan.Record) error {
	return f.writeSeparated(w, records, "\n")
}

// WriteNull is WriteList with a null byte separator, for consumers
// like xargs -0. The last name is followed by a trailing separator.
func (f *Formatter) WriteNull(w io.Writer, records []scan.Record) error {
	return f.writeSeparated(w, records, "\x00")
}

func (f *Formatter) writeSeparated(w io.Writer, records []scan.Record, sep string) error {
	for _, name := range f.unseenNames(records) {
		if _, err := fmt.Fprintf(w, "%s%s", name, sep); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON prints the same name set as the list mode, rendered as a
// JSON array with two-space indentation and a trailing newline.
func (f *Formatter) WriteJSON(w io.Writer, records []scan.Record) error {
	names := f.unseenNames(records)
	if names == nil {
		names = []string{}
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}

// WriteManifest prints one requires declaration per record, keeping
// insertion order and duplicates, so the manifest mirrors the scanned
// files rather than the deduplicated name set.
func (f *Formatter) WriteManifest(w io.Writer, records []scan.Record) error {
	for _, rec := range records {
		if rec.Version != "" {
			if _, err := fmt.Fprintf(w, "requires '%s', '%s';\n", rec.Name, rec.Version); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(w, "requires '%s';\n", rec.Name); err != nil {
			return err
		}
	}

	return nil
}

// WriteFileReport prints the verbose per-file listing: every record
// the file contributed, annotated with its first core release when
// known, followed by the core/external tally line.
//
// The tally semantics are preserved from the reference behavior: a
// module counts as core when the classifier returns a release, as
// external only when the classifier is unavailable for the whole run,
// and in neither tally when the classifier knows nothing about it.
func (f *Formatter) WriteFileReport(w io.Writer, path string, records []scan.Record) error {
	if _, err := fmt.Fprintf(w, "%s:\n", path); err != nil {
		return err
	}

	var core, external int

	for _, rec := range records {
		if f.classifier == nil {
			external++

			if _, err := fmt.Fprintf(w, "  %s\n", rec.Name); err != nil {
				return err
			}

			continue
		}

		if release, ok := f.classifier.FirstRelease(rec.Name); ok && release != "" {
			core++

			if _, err := fmt.Fprintf(w, "  %s (first released with Go %s)\n", rec.Name, release); err != nil {
				return err
			}

			continue
		}

		if _, err := fmt.Fprintf(w, "  %s\n", rec.Name); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d module(s) in core, %d external module(s)\n", core, external)

	return err
}
