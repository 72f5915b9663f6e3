package versioncheck

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func writeProjectFile(t *testing.T, root, relPath, content string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// tagProject turns root into a git repository with one commit and one tag.
func tagProject(t *testing.T, root, tag string) {
	t.Helper()

	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add(".")
	require.NoError(t, err)

	commit, err := worktree.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	_, err = repo.CreateTag(tag, commit, nil)
	require.NoError(t, err)
}

func TestDiscoverSourcesFixedOrder(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "0.3.1\n")
	writeProjectFile(t, root, filepath.Join("ui", "package.json"), `{"name": "ui", "version": "0.3.1"}`)
	writeProjectFile(t, root, filepath.Join("chart", "Chart.yaml"),
		"apiVersion: v2\nname: app\nversion: 0.3.1\nappVersion: \"0.3.1\"\n")
	tagProject(t, root, "0.3.1")

	sources := DiscoverSources(root, DefaultOptions())

	var names []string
	for _, source := range sources {
		names = append(names, source.Name)
	}
	require.Equal(t, []string{
		SourceRootVersionFile,
		SourceUIPackageManifest,
		SourceChartDefinition,
		SourceChartAppVersion,
		SourceLatestGitTag,
	}, names)

	for _, source := range sources {
		require.Equal(t, "0.3.1", source.Value)
		require.NotEmpty(t, source.Path)
	}
}

func TestDiscoverSourcesSkipsUnreadable(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "1.0.0\n")
	// Malformed manifest gets dropped, not surfaced as an error
	writeProjectFile(t, root, filepath.Join("ui", "package.json"), "{ broken")
	// Chart without a version field contributes only appVersion
	writeProjectFile(t, root, filepath.Join("chart", "Chart.yaml"), "name: app\nappVersion: \"1.0.0\"\n")

	sources := DiscoverSources(root, DefaultOptions())

	var names []string
	for _, source := range sources {
		names = append(names, source.Name)
	}
	require.Equal(t, []string{SourceRootVersionFile, SourceChartAppVersion}, names)
}

func TestDiscoverSourcesCustomPaths(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "version.txt", "2.0.0\n")
	writeProjectFile(t, root, filepath.Join("web", "package.json"), `{"version": "2.0.0"}`)
	writeProjectFile(t, root, filepath.Join("deploy", "Chart.yaml"), "version: 2.0.0\n")

	opts := Options{
		VersionFile: "version.txt",
		UIManifest:  filepath.Join("web", "package.json"),
		ChartFile:   filepath.Join("deploy", "Chart.yaml"),
	}
	sources := DiscoverSources(root, opts)

	require.Len(t, sources, 3)
	for _, source := range sources {
		require.Equal(t, "2.0.0", source.Value)
	}
}

func TestCheckVersionsWorkedExample(t *testing.T) {
	// Root file and UI manifest say 0.3.1, chart says 0.3.0: the chart is the
	// sole mismatch against reference 0.3.1
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "0.3.1\n")
	writeProjectFile(t, root, filepath.Join("ui", "package.json"), `{"version": "0.3.1"}`)
	writeProjectFile(t, root, filepath.Join("chart", "Chart.yaml"), "version: 0.3.0\n")

	report := CheckVersions(root, DefaultOptions())

	require.Equal(t, MultiSource, report.Kind)
	require.False(t, report.Success)
	require.Equal(t, SourceRootVersionFile, report.Reference.Name)
	require.Equal(t, "0.3.1", report.Reference.Value)
	require.Len(t, report.Mismatches, 1)
	require.Equal(t, SourceChartDefinition, report.Mismatches[0].Name)
	require.Equal(t, "0.3.0", report.Mismatches[0].Value)
}

func TestCheckVersionsSingleSource(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "1.0.0\n")

	report := CheckVersions(root, DefaultOptions())

	require.Equal(t, SingleSource, report.Kind)
	require.True(t, report.Success)
}

func TestCheckVersionsNoSources(t *testing.T) {
	report := CheckVersions(t.TempDir(), DefaultOptions())

	require.Equal(t, NoSourcesFound, report.Kind)
	require.True(t, report.Success)
}

func TestCheckVersionsTrimmedValuesCompareEqual(t *testing.T) {
	// "1.2.3\n" in the version file and "1.2.3" in the manifest agree
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "1.2.3\n")
	writeProjectFile(t, root, filepath.Join("ui", "package.json"), `{"version": "1.2.3"}`)

	report := CheckVersions(root, DefaultOptions())

	require.True(t, report.Success)
	require.Empty(t, report.Mismatches)
}

func TestCheckVersionsTagMustMatchVerbatim(t *testing.T) {
	// A v-prefixed tag is distinct from the bare value in the files
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "1.2.3\n")
	tagProject(t, root, "v1.2.3")

	report := CheckVersions(root, DefaultOptions())

	require.False(t, report.Success)
	require.Len(t, report.Mismatches, 1)
	require.Equal(t, SourceLatestGitTag, report.Mismatches[0].Name)
	require.Equal(t, "v1.2.3", report.Mismatches[0].Value)
}

func TestCheckVersionsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "VERSION", "0.3.1\n")
	writeProjectFile(t, root, filepath.Join("chart", "Chart.yaml"), "version: 0.3.0\n")

	first := CheckVersions(root, DefaultOptions())
	second := CheckVersions(root, DefaultOptions())

	require.Equal(t, first, second)

	// Byte-identical rendered reports as well
	var firstOut, secondOut bytes.Buffer
	OutputJSON(&firstOut, &first)
	OutputJSON(&secondOut, &second)
	require.Equal(t, firstOut.Bytes(), secondOut.Bytes())
}
