package git

import (
	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5/plumbing"

	log "github.com/mallardduck/version-drift-tool/internal/logging"
	"github.com/mallardduck/version-drift-tool/internal/util"
)

// extractVersion parses the semantic version from a git tag reference.
// semver tolerates a leading "v", so both "1.2.3" and "v1.2.3" tags parse.
func extractVersion(ref *plumbing.Reference) (*semver.Version, error) {
	return semver.NewVersion(ref.Name().Short())
}

// FindHighestVersionTag selects the tag with the highest version number.
func FindHighestVersionTag(tags []*plumbing.Reference) *plumbing.Reference {
	candidates := util.FilterSlice(tags, func(tag *plumbing.Reference) bool {
		if _, err := extractVersion(tag); err != nil {
			log.Log.Debugf("Skipping non-version tag '%s': %v", tag.Name().Short(), err)
			return false
		}
		return true
	})

	var highestRef *plumbing.Reference
	var highestVersion *semver.Version

	for _, tag := range candidates {
		version, _ := extractVersion(tag)
		if highestVersion == nil || version.GreaterThan(highestVersion) {
			highestVersion = version
			highestRef = tag
		}
	}

	return highestRef
}
