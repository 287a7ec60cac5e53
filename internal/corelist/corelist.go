// Package corelist classifies module names against the packages that
// ship with the Go standard distribution and knows which release each
// of them first appeared in.
package corelist

import "errors"

// Classifier resolves standard-library import paths to the Go release
// that first shipped them.
type Classifier struct {
	releases map[string]string
}

// New loads the embedded release table. Callers treat a failure here
// as the classification capability being unavailable for the run.
func New() (*Classifier, error) {
	if len(firstReleases) == 0 {
		return nil, errors.New("corelist: release table is empty")
	}

	return &Classifier{releases: firstReleases}, nil
}

// FirstRelease returns the Go release that first shipped the named
// package, e.g. "1.21" for slices. ok is false for anything that is
// not part of the standard distribution.
func (c *Classifier) FirstRelease(name string) (string, bool) {
	release, ok := c.releases[name]
	return release, ok
}
