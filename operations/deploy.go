package operations

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/deployd-project/deployd/model"
)

// BuildDescriptor is the marker file whose presence means the clone needs a
// dependency install and a build after every pull.
const BuildDescriptor = "package.json"

// Deployer pulls the latest commits and rebuilds the local clone. A failed
// deployment must never kill the polling loop, so Deploy absorbs every error
// and reports the outcome through the logger only.
type Deployer struct {
	config model.Config
	runner Runner
	repo   *Repo
	logger *slog.Logger
}

func NewDeployer(config model.Config, runner Runner, repo *Repo, logger *slog.Logger) *Deployer {
	return &Deployer{config: config, runner: runner, repo: repo, logger: logger}
}

func (d *Deployer) Deploy() {
	update, err := d.deploy()
	if err != nil {
		d.logger.Error("Deployment failed", "error", err)
		return
	}
	if update.OldHash == update.NewHash {
		d.logger.Info("Deployment succeeded", "hash", update.NewHash)
	} else {
		d.logger.Info("Deployment succeeded", "old_hash", update.OldHash, "new_hash", update.NewHash)
	}
}

func (d *Deployer) deploy() (model.RepoUpdate, error) {
	var update model.RepoUpdate

	// HEAD hashes are only for log output; a clone that go-git cannot open
	// still deploys fine.
	if head, err := d.repo.Head(); err == nil {
		update.OldHash = head
	}

	d.logger.Info("Pulling latest commits...", "local_path", d.config.LocalPath)
	if err := d.repo.Pull(); err != nil {
		return update, err
	}

	if head, err := d.repo.Head(); err == nil {
		update.NewHash = head
	}

	descriptor := filepath.Join(d.config.LocalPath, BuildDescriptor)
	if _, err := os.Stat(descriptor); err != nil {
		d.logger.Info("No build descriptor found, skipping install and build", "descriptor", BuildDescriptor)
		return update, nil
	}

	pm := d.config.PackageManager
	if pm == "" {
		pm = "npm"
	}

	d.logger.Info("Installing dependencies...", "package_manager", pm)
	if _, err := d.runner.Run(pm, []string{"install"}, d.config.LocalPath); err != nil {
		return update, fmt.Errorf("failed to install dependencies: %w", err)
	}

	d.logger.Info("Running build...", "package_manager", pm)
	if _, err := d.runner.Run(pm, []string{"run", "build"}, d.config.LocalPath); err != nil {
		return update, fmt.Errorf("failed to build: %w", err)
	}

	return update, nil
}
