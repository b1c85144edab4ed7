// Package git discovers release versions from git tags. It uses the go-git
// library, so no git CLI is required.
package git

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNoVersionTag is returned when no tag points at HEAD.
var ErrNoVersionTag = errors.New("no tag points at HEAD")

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository containing path, walking up to find .git.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// IsGitRepository checks if path is within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsGitRepository(%s): %v", path, result)
	return result
}

// HeadTags returns the names of all tags pointing at the HEAD commit, sorted.
// Annotated tags are resolved to the commit they tag.
func HeadTags(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	tagIter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var names []string
	err = tagIter.ForEach(func(ref *plumbing.Reference) error {
		target, err := tagTarget(repo, ref)
		if err != nil {
			return err
		}
		if target == head.Hash() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}

	sort.Strings(names)
	logDebug("[git] HeadTags: %v", names)
	return names, nil
}

// tagTarget returns the commit hash a tag reference points at.
func tagTarget(repo *git.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	tag, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, err := tag.Commit()
		if err != nil {
			// tags of trees or blobs never match a commit
			return plumbing.ZeroHash, nil
		}
		return commit.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// lightweight tag
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("resolving tag %s: %w", ref.Name().Short(), err)
	}
}

// VersionAtHead returns the version named by the tag at HEAD, without a
// leading "v". When several tags point at HEAD the greatest name wins.
func VersionAtHead(path string) (string, error) {
	tags, err := HeadTags(path)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "", ErrNoVersionTag
	}

	version := NormalizeVersion(tags[len(tags)-1])
	logDebug("[git] VersionAtHead: %s", version)
	return version, nil
}

// NormalizeVersion removes a leading "v" so "v0.6.0" and "0.6.0" render alike.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if len(version) > 1 && (version[0] == 'v' || version[0] == 'V') && version[1] >= '0' && version[1] <= '9' {
		return version[1:]
	}
	return version
}
