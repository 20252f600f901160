package model

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

type Config struct {
	RepoURL        string `mapstructure:"repoUrl" validate:"required"`
	LocalPath      string `mapstructure:"localPath" validate:"required"`
	TargetBranch   string `mapstructure:"targetBranch" validate:"required"`
	PollIntervalMs int    `mapstructure:"pollIntervalMs" validate:"required,gt=0"`
	PackageManager string `mapstructure:"packageManager"`
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ChangeDecision is the outcome of a single poll cycle.
type ChangeDecision int

const (
	// RepoMissing means the local path does not exist and a clone is needed.
	RepoMissing ChangeDecision = iota
	// ChangesDetected means the remote branch tip differs from local HEAD.
	ChangesDetected
	// NoChanges means local HEAD already matches the remote branch tip.
	NoChanges
)

func (d ChangeDecision) String() string {
	switch d {
	case RepoMissing:
		return "repository-missing"
	case ChangesDetected:
		return "changes-detected"
	case NoChanges:
		return "no-changes"
	}
	return "unknown"
}

type RepoUpdate struct {
	WasCloned bool
	OldHash   plumbing.Hash
	NewHash   plumbing.Hash
}
