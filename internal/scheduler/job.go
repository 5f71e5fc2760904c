package scheduler

import (
	"context"
	"time"
)

// Job is one schedulable unit of maintenance work.
// ⭐ SSOT: the scheduled job contract is defined here and nowhere else.
type Job interface {
	// Name identifies the job in logs and history lookups.
	Name() string

	// Run does the work. The context is the scheduler's, not a request's.
	Run(ctx context.Context) error

	// Schedule returns a cron expression with a seconds field,
	// e.g. "0 0 3 * * *" or "@daily".
	Schedule() string
}

// JobResult records a single completed run, retries included.
type JobResult struct {
	JobName   string        `json:"job_name"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
}

// historyCap bounds how many results are retained per job.
const historyCap = 100

// JobHistory is a bounded, oldest-first record of a job's runs.
type JobHistory struct {
	Results []JobResult
}

// AddResult appends a run, evicting the oldest entries past the cap.
func (h *JobHistory) AddResult(result JobResult) {
	h.Results = append(h.Results, result)
	if excess := len(h.Results) - historyCap; excess > 0 {
		h.Results = h.Results[excess:]
	}
}

// GetLatestResults returns up to n of the most recent runs, oldest first.
func (h *JobHistory) GetLatestResults(n int) []JobResult {
	if n > len(h.Results) {
		n = len(h.Results)
	}
	return h.Results[len(h.Results)-n:]
}

// GetFailedResults returns only the runs that failed.
func (h *JobHistory) GetFailedResults() []JobResult {
	failed := make([]JobResult, 0)
	for _, r := range h.Results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	return failed
}

// GetSuccessRate reports the fraction of retained runs that succeeded.
func (h *JobHistory) GetSuccessRate() float64 {
	if len(h.Results) == 0 {
		return 0.0
	}
	succeeded := 0
	for _, r := range h.Results {
		if r.Success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(h.Results))
}
