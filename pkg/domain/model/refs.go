package model

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"golang.org/x/text/unicode/norm"
)

// References is the set of branch names involved in one review.
type References struct {
	// Default is the default branch of the hosting platform, such as "main".
	Default string
	// Branch is the local working branch.
	Branch string
	// Base is the branch the review should be merged onto.
	Base string
	// RemoteBase is Base qualified with the remote name.
	RemoteBase string
	// Remote is the name the working branch is pushed as.
	Remote string
	// MergeBase is the most recent common ancestor of Branch and RemoteBase.
	MergeBase types.CommitSHA
}

// CleanBranchName strips the characters that are not allowed in a remote
// branch name: "#" and Unicode combining marks. Accented letters are
// decomposed first, so their base Latin letter survives.
func CleanBranchName(name string) string {
	var sb strings.Builder
	for _, r := range norm.NFD.String(name) {
		if r == '#' || unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

var ptnWord = regexp.MustCompile(`\w+`)

// BranchNameFromSubject derives a candidate branch name from a commit
// subject line: lower-cased, limited to the first two words. The caller is
// responsible for making the name unique among remote branches.
func BranchNameFromSubject(subject string) string {
	words := ptnWord.FindAllString(strings.ToLower(subject), 2)
	return CleanBranchName(strings.Join(words, "-"))
}
