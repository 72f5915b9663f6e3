package git

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	log "github.com/mallardduck/version-drift-tool/internal/logging"
)

// CollectTagRefs returns every tag reference of the repository at repoDir.
// A directory that is not a git repository yields no refs, not an error;
// the caller treats that the same as a repository without tags.
func CollectTagRefs(repoDir string) []*plumbing.Reference {
	repo, err := git.PlainOpen(repoDir)
	if err != nil {
		log.Log.Debugf("Not a git repository at '%s': %v", repoDir, err)
		return nil
	}

	tagIter, err := repo.Tags()
	if err != nil {
		log.Log.Debugf("Failed listing tags at '%s': %v", repoDir, err)
		return nil
	}

	var refs []*plumbing.Reference
	_ = tagIter.ForEach(func(ref *plumbing.Reference) error {
		refs = append(refs, ref)
		return nil
	})

	return refs
}

// LatestTag returns the short name of the repository's latest release tag.
// "Latest" is the highest version-ordered tag; tags that don't parse as a
// version are skipped. The returned value is the verbatim tag name, so a
// "v" prefix is preserved. The second return is false when the directory is
// not a repository, has no tags, or has no version-shaped tags.
func LatestTag(repoDir string) (string, bool) {
	highestRef := FindHighestVersionTag(CollectTagRefs(repoDir))
	if highestRef == nil {
		return "", false
	}

	return highestRef.Name().Short(), true
}
