package versioncheck

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	log "github.com/mallardduck/version-drift-tool/internal/logging"
)

// OutputJSON prints the report as indented JSON.
func OutputJSON(w io.Writer, report *Report) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Log.Errorf("Failed to marshal JSON: %v", err)
		return
	}
	fmt.Fprintln(w, string(data))
}

// OutputSourcesJSON prints just the discovered sources as indented JSON,
// with no consistency verdict attached.
func OutputSourcesJSON(w io.Writer, sources []Source) {
	if sources == nil {
		sources = []Source{}
	}
	data, err := json.MarshalIndent(sources, "", "  ")
	if err != nil {
		log.Log.Errorf("Failed to marshal JSON: %v", err)
		return
	}
	fmt.Fprintln(w, string(data))
}

// OutputHuman prints the report in human-readable format: a table of every
// readable source with its drift status, then a colored summary line.
func OutputHuman(w io.Writer, report *Report) {
	switch report.Kind {
	case NoSourcesFound:
		fmt.Fprintln(w, "No version sources found - nothing to enforce.")
		return
	case SingleSource:
		fmt.Fprintf(w, "Only one version source found (%s: %s) - trivially consistent.\n",
			report.Reference.Name, report.Reference.Value)
		return
	}

	OutputSourcesTable(w, report)

	matched, mismatched := report.CountResults()
	fmt.Fprintf(w, "Summary: %d source(s) match the reference, %d drifted\n", matched, mismatched)

	if mismatched > 0 {
		fmt.Fprintln(w, text.Color.Sprint(text.FgRed, "Version check FAILED - declared versions have drifted"))
		for _, mismatch := range report.Mismatches {
			fmt.Fprintf(w, "  %s: %s (reference %s: %s)\n",
				mismatch.Name, mismatch.Value, report.Reference.Name, report.Reference.Value)
		}
	} else {
		fmt.Fprintln(w, text.Color.Sprint(text.FgGreen, "Version check PASSED - all sources agree"))
	}
}

// OutputSourcesTable renders the discovered sources as a table. The status
// column contrasts each source against the reference (the first row).
func OutputSourcesTable(w io.Writer, report *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Source", "Path", "Value", "Status"})
	for idx, source := range report.Sources {
		status := "✅"
		if report.IsMismatch(source.Name) {
			status = "❌"
		}
		if idx == 0 {
			status = "reference"
		}
		t.AppendRow(table.Row{
			idx + 1,
			source.Name,
			source.Path,
			source.Value,
			status,
		})
	}
	t.Render()
}
