//go:build integration

package git

import (
	"strings"
	"testing"
)

func TestGit_HeadSummary(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	summary, err := git.HeadSummary(".")
	if err != nil {
		t.Fatalf("Expected no error in git repository: %v", err)
	}

	if summary == "" {
		t.Error("Expected non-empty head summary")
	}
	if !strings.Contains(summary, "Initial commit") {
		t.Errorf("Expected head summary to mention the initial commit, got: %q", summary)
	}
	if strings.Contains(summary, "\n") {
		t.Errorf("Expected single-line head summary, got: %q", summary)
	}

	// Test in non-existent directory
	_, err = git.HeadSummary("/non/existent/directory")
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}
