package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/deployd-project/deployd/model"
)

// State identifies the syncer's position in its clone/poll/deploy cycle.
type State int

const (
	StateBootstrapping State = iota
	StatePolling
	StateDeploying
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StatePolling:
		return "polling"
	case StateDeploying:
		return "deploying"
	}
	return "unknown"
}

// Next returns the state that follows the current one. Bootstrapping and
// Deploying always settle back into Polling; from Polling, both a missing
// repository and a detected change lead to a deployment.
func Next(state State, decision model.ChangeDecision) State {
	if state != StatePolling {
		return StatePolling
	}
	switch decision {
	case model.RepoMissing, model.ChangesDetected:
		return StateDeploying
	}
	return StatePolling
}

// Syncer owns the long-lived polling loop: it ensures the repository exists,
// watches it for remote changes and hands detected changes to the Deployer,
// one cycle at a time.
type Syncer struct {
	config   model.Config
	repo     *Repo
	deployer *Deployer
	logger   *slog.Logger
	state    State
}

func NewSyncer(config model.Config, runner Runner, logger *slog.Logger) *Syncer {
	repo := NewRepo(config, runner)
	return &Syncer{
		config:   config,
		repo:     repo,
		deployer: NewDeployer(config, runner, repo, logger),
		logger:   logger,
		state:    StateBootstrapping,
	}
}

// Run drives the loop until ctx is cancelled. A clone failure during
// bootstrap is returned to the caller and should terminate the process;
// every failure after that is logged and the loop keeps going.
func (s *Syncer) Run(ctx context.Context) error {
	if IsAbsentOrEmpty(s.config.LocalPath) {
		s.logger.Info("Repository not found, cloning...", "local_path", s.config.LocalPath, "repo_url", s.config.RepoURL)
		if err := s.repo.Clone(); err != nil {
			return fmt.Errorf("bootstrap failed: %w", err)
		}
		s.state = Next(StateBootstrapping, model.RepoMissing)
		s.deployer.Deploy()
	}
	s.state = StatePolling

	s.logger.Info("Entering polling loop", "interval", s.config.PollInterval(), "branch", s.config.TargetBranch)
	for {
		s.cycle()
		if err := s.wait(ctx); err != nil {
			s.logger.Info("Shutdown signal received. Exiting gracefully.")
			return nil
		}
	}
}

// cycle performs one detect-then-optionally-deploy iteration. Nothing that
// happens here may escape: detection errors are logged and the next cycle
// runs as usual.
func (s *Syncer) cycle() {
	decision, err := s.repo.DetectChanges()
	if err != nil {
		s.logger.Error("ERROR during change detection", "error", err)
		s.state = StatePolling
		return
	}

	s.state = Next(StatePolling, decision)

	switch decision {
	case model.RepoMissing:
		s.logger.Warn("Repository disappeared, cloning again...", "local_path", s.config.LocalPath)
		if err := s.repo.Clone(); err != nil {
			s.logger.Error("ERROR during clone", "error", err)
			break
		}
		s.deployer.Deploy()
	case model.ChangesDetected:
		s.logger.Info("Changes detected, starting deployment...")
		s.deployer.Deploy()
	case model.NoChanges:
		s.logger.Info("Repository is already up-to-date")
	}

	s.state = Next(s.state, decision)
}

// wait blocks for the configured poll interval on a cancellable timer.
func (s *Syncer) wait(ctx context.Context) error {
	timer := time.NewTimer(s.config.PollInterval())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
