package remote

import (
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// Kind names the hosting platform a remote URL points at.
type Kind string

const (
	KindGitHub Kind = "github"
	KindGitLab Kind = "gitlab"
	KindLocal  Kind = "local"
)

// Remote describes where the repository's origin lives.
type Remote struct {
	Kind Kind
	Host string
	// Path is the namespaced project path, e.g. "bayesimpact/gitreview".
	Path  string
	Owner string
	Name  string
	URL   string
}

// ptnRemoteURL matches both scp-like and URL-style remotes:
// git@github.com:owner/repo.git, https://gitlab.com/group/repo.git,
// ssh://git@github.com/owner/repo.
var ptnRemoteURL = regexp.MustCompile(`^(?:[a-z+]+://)?(?:[^@/]+@)?([a-zA-Z0-9.-]+)[:/](.+?)(?:\.git)?/?$`)

// Detect opens the repository containing dir and classifies its origin
// remote. Repositories without an origin, or with a filesystem remote, are
// classified as local.
func Detect(dir string) (*Remote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(types.ErrSetup, "not inside a git repository", goerr.V("dir", dir))
	}

	origin, err := repo.Remote("origin")
	if err != nil {
		return &Remote{Kind: KindLocal}, nil
	}
	urls := origin.Config().URLs
	if len(urls) == 0 {
		return &Remote{Kind: KindLocal}, nil
	}

	return Parse(urls[0]), nil
}

// Parse classifies a single remote URL.
func Parse(rawURL string) *Remote {
	if strings.HasPrefix(rawURL, "/") || strings.HasPrefix(rawURL, ".") || strings.HasPrefix(rawURL, "file://") {
		return &Remote{Kind: KindLocal, URL: rawURL}
	}

	m := ptnRemoteURL.FindStringSubmatch(rawURL)
	if m == nil {
		return &Remote{Kind: KindLocal, URL: rawURL}
	}
	host, path := m[1], m[2]

	r := &Remote{Kind: KindLocal, Host: host, Path: path, URL: rawURL}
	switch {
	case host == "github.com":
		r.Kind = KindGitHub
	case host == "gitlab.com" || strings.HasPrefix(host, "gitlab."):
		r.Kind = KindGitLab
	}

	if idx := strings.LastIndex(path, "/"); idx > 0 {
		r.Owner = path[:idx]
		r.Name = path[idx+1:]
	} else {
		r.Name = path
	}
	return r
}
