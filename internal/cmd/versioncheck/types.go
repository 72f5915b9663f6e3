package versioncheck

// ReportKind classifies how much there was to compare.
type ReportKind string

const (
	// NoSourcesFound means no readable version source exists; nothing to enforce.
	NoSourcesFound ReportKind = "noSourcesFound"
	// SingleSource means only one source was readable; trivially consistent.
	SingleSource ReportKind = "singleSource"
	// MultiSource means two or more sources were compared against the reference.
	MultiSource ReportKind = "multiSource"
)

// Source represents one location where a version string is declared.
type Source struct {
	// Name is the stable identifier of the source (e.g. "root-version-file")
	Name string `json:"name"`
	// Path is where the value was read from, for diagnostics
	Path string `json:"path"`
	// Value is the extracted version string, already trimmed
	Value string `json:"value"`
}

// Report represents the result of one consistency check run.
// Reports are built fresh per invocation and never mutated after creation.
type Report struct {
	Kind ReportKind `json:"kind"`
	// Sources holds every readable source, in discovery order
	Sources []Source `json:"sources"`
	// Reference is the first source in discovery order, nil when Sources is empty
	Reference *Source `json:"reference,omitempty"`
	// Mismatches is the subsequence of Sources whose value differs from Reference
	Mismatches []Source `json:"mismatches"`
	Success    bool     `json:"success"`
}

// IsMismatch reports whether the named source disagrees with the reference.
func (r *Report) IsMismatch(name string) bool {
	for _, src := range r.Mismatches {
		if src.Name == name {
			return true
		}
	}
	return false
}

// CountResults returns counts of matching and mismatching sources.
func (r *Report) CountResults() (matched, mismatched int) {
	mismatched = len(r.Mismatches)
	matched = len(r.Sources) - mismatched
	return
}
