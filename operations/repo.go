package operations

import (
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/deployd-project/deployd/model"
)

// Repo inspects and updates the local clone of the deployment target. All
// remote operations go through the git executable via the Runner; go-git is
// only used to read the local clone.
type Repo struct {
	config model.Config
	runner Runner
}

func NewRepo(config model.Config, runner Runner) *Repo {
	return &Repo{config: config, runner: runner}
}

// IsAbsentOrEmpty reports whether path needs a fresh clone: it does not
// exist, cannot be read, or is an empty directory.
func IsAbsentOrEmpty(path string) bool {
	entries, err := os.ReadDir(path)
	if err != nil {
		return true
	}
	return len(entries) == 0
}

// DetectChanges fetches the target branch from origin and compares the local
// HEAD against the fetched remote tip. A missing local path is reported as
// RepoMissing, not as an error; fetch and diff failures propagate to the
// caller.
func (r *Repo) DetectChanges() (model.ChangeDecision, error) {
	if _, err := os.Stat(r.config.LocalPath); err != nil {
		return model.RepoMissing, nil
	}

	remoteRef := "origin/" + r.config.TargetBranch

	if _, err := r.runner.Run("git", []string{"fetch", "origin", r.config.TargetBranch}, r.config.LocalPath); err != nil {
		return model.NoChanges, fmt.Errorf("failed to fetch %s: %w", remoteRef, err)
	}

	diff, err := r.runner.Run("git", []string{"diff", "--name-only", "HEAD", remoteRef}, r.config.LocalPath)
	if err != nil {
		return model.NoChanges, fmt.Errorf("failed to diff HEAD against %s: %w", remoteRef, err)
	}

	if diff == "" {
		return model.NoChanges, nil
	}
	return model.ChangesDetected, nil
}

// Clone checks out the target branch from the remote into the local path.
func (r *Repo) Clone() error {
	args := []string{"clone", "--branch", r.config.TargetBranch, r.config.RepoURL, r.config.LocalPath}
	if _, err := r.runner.Run("git", args, ""); err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}
	return nil
}

// Pull fast-forwards the checked-out branch to the remote tip.
func (r *Repo) Pull() error {
	if _, err := r.runner.Run("git", []string{"pull"}, r.config.LocalPath); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// Head returns the commit hash the local clone currently points at.
func (r *Repo) Head() (plumbing.Hash, error) {
	repo, err := git.PlainOpen(r.config.LocalPath)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to open repository: %w", err)
	}
	headRef, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get HEAD: %w", err)
	}
	return headRef.Hash(), nil
}
