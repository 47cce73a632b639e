package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
)

func TestCleanBranchName(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected string
	}{
		"plain name is unchanged":     {"fix-bug", "fix-bug"},
		"hash is stripped":            {"issue#12", "issue12"},
		"accents are transliterated":  {"Clôture#42", "Cloture42"},
		"multiple accents":            {"réséau-électrique", "reseau-electrique"},
		"empty name stays empty":      {"", ""},
		"only forbidden characters":   {"#", ""},
		"unicode without decomposing": {"日本語", "日本語"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, model.CleanBranchName(tc.input)).Equal(tc.expected)
		})
	}
}

func TestBranchNameFromSubject(t *testing.T) {
	testCases := map[string]struct {
		subject  string
		expected string
	}{
		"two first words":     {"Fix the flux capacitor", "fix-the"},
		"single word":         {"Refactoring", "refactoring"},
		"punctuation skipped": {"[WIP] Add tests", "wip-add"},
		"empty subject":       {"", ""},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.V(t, model.BranchNameFromSubject(tc.subject)).Equal(tc.expected)
		})
	}
}

func TestBranchTracked(t *testing.T) {
	t.Run("remote qualified name", func(t *testing.T) {
		branch := model.Branch{Local: "fix-bug", Remote: "origin", Merge: "guillaume-fix-bug"}
		gt.V(t, branch.Tracked()).Equal("origin/guillaume-fix-bug")
	})

	t.Run("untracked branch has no tracked name", func(t *testing.T) {
		branch := model.Branch{Local: "fix-bug"}
		gt.V(t, branch.Tracked()).Equal("")
	})
}
