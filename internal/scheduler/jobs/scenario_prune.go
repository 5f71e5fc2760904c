package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scenario"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// ScenarioPruneJob deletes draft scenarios past the retention window.
// Drafts are throwaway what-if runs; named non-draft cases are never
// touched.
type ScenarioPruneJob struct {
	store         *scenario.Store
	retentionDays int
	schedule      string
	logger        *logger.Logger
}

// NewScenarioPruneJob creates a new draft prune job
func NewScenarioPruneJob(store *scenario.Store, retentionDays int, schedule string, log *logger.Logger) *ScenarioPruneJob {
	return &ScenarioPruneJob{
		store:         store,
		retentionDays: retentionDays,
		schedule:      schedule,
		logger:        log,
	}
}

// Name returns the job name
func (j *ScenarioPruneJob) Name() string {
	return "scenario_prune"
}

// Schedule returns the cron schedule from config
func (j *ScenarioPruneJob) Schedule() string {
	return j.schedule
}

// Run executes the draft prune
func (j *ScenarioPruneJob) Run(ctx context.Context) error {
	j.logger.Debug("Starting scheduled draft prune")

	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	removed, err := j.store.PruneDrafts(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune draft scenarios: %w", err)
	}

	if removed > 0 {
		j.logger.WithFields(map[string]interface{}{
			"removed":        removed,
			"retention_days": j.retentionDays,
		}).Info("Draft scenarios pruned")
	}

	return nil
}
