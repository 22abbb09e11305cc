//go:build integration

package git

import (
	"os"
	"testing"
)

func TestGit_IsClean(t *testing.T) {
	git := NewGit()
	_, cleanup := SetupTestRepo(t)
	defer cleanup()

	// Fresh repository with everything committed is clean
	isClean, err := git.IsClean(".")
	if err != nil {
		t.Fatalf("Expected no error in git repository: %v", err)
	}
	if !isClean {
		t.Error("Expected clean state in fresh repository")
	}

	// An untracked file makes the work tree dirty
	if err := os.WriteFile("untracked.txt", []byte("dirty"), 0644); err != nil {
		t.Fatalf("Failed to create untracked file: %v", err)
	}

	isClean, err = git.IsClean(".")
	if err != nil {
		t.Fatalf("Expected no error in git repository: %v", err)
	}
	if isClean {
		t.Error("Expected dirty state with untracked file present")
	}

	// Test in non-existent directory
	_, err = git.IsClean("/non/existent/directory")
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}
