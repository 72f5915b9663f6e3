package versioncheck

// BuildReport compares the discovered sources against the reference and
// assembles the full report before anything is printed.
//
// The reference is whichever source was discovered first, not a canonical
// file; callers relying on the exit code should not reorder discovery.
// Comparison is exact string equality on the trimmed values: case-sensitive,
// no "v" stripping, no semantic-version interpretation.
func BuildReport(sources []Source) Report {
	report := Report{
		Sources:    sources,
		Mismatches: []Source{},
		Success:    true,
	}

	switch len(sources) {
	case 0:
		report.Kind = NoSourcesFound
		return report
	case 1:
		report.Kind = SingleSource
		reference := sources[0]
		report.Reference = &reference
		return report
	}

	report.Kind = MultiSource
	reference := sources[0]
	report.Reference = &reference

	for _, source := range sources[1:] {
		if source.Value != reference.Value {
			report.Mismatches = append(report.Mismatches, source)
		}
	}

	report.Success = len(report.Mismatches) == 0

	return report
}

// CheckVersions runs the whole check against a project root: discover every
// readable source, then judge them against the first one found.
func CheckVersions(projectRoot string, opts Options) Report {
	return BuildReport(DiscoverSources(projectRoot, opts))
}
