package versioncheck

import (
	"path/filepath"

	gitpkg "github.com/mallardduck/version-drift-tool/internal/git"
	log "github.com/mallardduck/version-drift-tool/internal/logging"
	"github.com/mallardduck/version-drift-tool/internal/manifest"
)

// Stable source identifiers, in discovery order.
const (
	SourceRootVersionFile   = "root-version-file"
	SourceUIPackageManifest = "ui-package-manifest"
	SourceChartDefinition   = "chart-definition"
	SourceChartAppVersion   = "chart-app-version"
	SourceLatestGitTag      = "latest-git-tag"
)

// Options holds the relative paths discovery looks at under the project root.
type Options struct {
	VersionFile string
	UIManifest  string
	ChartFile   string
}

// DefaultOptions returns the conventional project layout.
func DefaultOptions() Options {
	return Options{
		VersionFile: "VERSION",
		UIManifest:  filepath.Join("ui", "package.json"),
		ChartFile:   filepath.Join("chart", "Chart.yaml"),
	}
}

// DiscoverSources attempts, in a fixed order, to read each known version
// location under projectRoot: the root version file, the UI manifest's
// `version` field, the chart's `version` and `appVersion` fields, and the
// repository's latest git tag. Each attempt is independent; a source that is
// missing, malformed, or lacks the field is omitted, never an error. The
// order matters: the first readable source becomes the comparison reference.
func DiscoverSources(projectRoot string, opts Options) []Source {
	var sources []Source

	versionFilePath := filepath.Join(projectRoot, opts.VersionFile)
	if value, ok := manifest.ReadVersionFile(versionFilePath); ok {
		sources = append(sources, Source{
			Name:  SourceRootVersionFile,
			Path:  versionFilePath,
			Value: value,
		})
	}

	uiManifestPath := filepath.Join(projectRoot, opts.UIManifest)
	if value, ok := manifest.ReadVersionField(uiManifestPath, "version"); ok {
		sources = append(sources, Source{
			Name:  SourceUIPackageManifest,
			Path:  uiManifestPath,
			Value: value,
		})
	}

	chartFilePath := filepath.Join(projectRoot, opts.ChartFile)
	if value, ok := manifest.ReadVersionField(chartFilePath, "version"); ok {
		sources = append(sources, Source{
			Name:  SourceChartDefinition,
			Path:  chartFilePath,
			Value: value,
		})
	}
	if value, ok := manifest.ReadVersionField(chartFilePath, "appVersion"); ok {
		sources = append(sources, Source{
			Name:  SourceChartAppVersion,
			Path:  chartFilePath,
			Value: value,
		})
	}

	if tag, ok := gitpkg.LatestTag(projectRoot); ok {
		sources = append(sources, Source{
			Name:  SourceLatestGitTag,
			Path:  projectRoot,
			Value: tag,
		})
	}

	log.Log.Debugf("Discovered %d version source(s) under '%s'", len(sources), projectRoot)

	return sources
}
