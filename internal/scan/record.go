package scan

// Record is a single module reference reported by a provider. Name is
// the deduplication key; Version is carried for display only and is
// empty when the provider has no version information for the module.
type Record struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// CoreClassifier reports the release a module first shipped with when
// it is part of the standard distribution. A nil classifier means the
// capability is unavailable for the whole run.
type CoreClassifier interface {
	FirstRelease(name string) (release string, ok bool)
}
