package report

import (
	"os"
	"os/exec"
	"regexp"
	"strings"
)

var repoSlugPattern = regexp.MustCompile(`github\.com[:/]([^/]+/[^/.]+?)(?:\.git)?/?$`)

// RepoSlug resolves the owner/name pair used for report links,
// preferring the CI-provided environment over the local git remote.
// Returns "" when neither is available.
func RepoSlug() string {
	if slug := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY")); slug != "" {
		return slug
	}

	out, err := exec.Command("git", "config", "--get", "remote.origin.url").Output()
	if err != nil {
		return ""
	}
	remote := strings.TrimSpace(string(out))
	if remote == "" {
		return ""
	}

	match := repoSlugPattern.FindStringSubmatch(remote)
	if match == nil {
		return ""
	}
	return match[1]
}
