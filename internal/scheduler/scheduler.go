// Package scheduler runs registered maintenance jobs on cron schedules,
// retrying transient failures and keeping a bounded run history per job.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// registration pairs a job with its run history.
type registration struct {
	job     Job
	history *JobHistory
}

// Scheduler dispatches registered jobs on their cron schedules.
// ⭐ SSOT: every scheduled job is registered and dispatched here.
type Scheduler struct {
	cron *cron.Cron
	log  *logger.Logger

	mu   sync.RWMutex
	jobs map[string]*registration

	maxRetries int
	retryDelay time.Duration
}

// New creates a scheduler with cron-with-seconds parsing and the
// default retry policy.
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		log:        log,
		jobs:       make(map[string]*registration),
		maxRetries: 3,
		retryDelay: 1 * time.Minute,
	}
}

// AddJob registers a job under its name. Duplicate names and
// unparseable schedules are rejected.
func (s *Scheduler) AddJob(job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("job %s already exists", name)
	}

	if _, err := s.cron.AddFunc(job.Schedule(), func() { s.runJob(job) }); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.jobs[name] = &registration{job: job, history: &JobHistory{}}

	s.log.WithFields(map[string]interface{}{
		"job":      name,
		"schedule": job.Schedule(),
	}).Info("Job added to scheduler")

	return nil
}

// Start begins dispatching on the registered schedules.
func (s *Scheduler) Start() {
	s.log.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts dispatch and blocks until in-flight jobs finish.
func (s *Scheduler) Stop() {
	s.log.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

// RunJob triggers one registered job immediately, off schedule.
func (s *Scheduler) RunJob(jobName string) error {
	s.mu.RLock()
	reg, ok := s.jobs[jobName]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("job %s not found", jobName)
	}

	go s.runJob(reg.job)
	return nil
}

// runJob executes one job, retrying up to maxRetries times, and
// records the outcome in the job's history.
func (s *Scheduler) runJob(job Job) {
	name := job.Name()
	started := time.Now()

	s.log.WithField("job", name).Info("Job started")

	var runErr error
	for attempt := 0; ; attempt++ {
		runErr = job.Run(context.Background())
		if runErr == nil || attempt >= s.maxRetries {
			break
		}

		s.log.WithFields(map[string]interface{}{
			"job":     name,
			"attempt": attempt + 1,
			"error":   runErr.Error(),
		}).Warn("Job execution failed, retrying")

		time.Sleep(s.retryDelay)
	}

	finished := time.Now()
	result := JobResult{
		JobName:   name,
		StartTime: started,
		EndTime:   finished,
		Duration:  finished.Sub(started),
		Success:   runErr == nil,
	}
	if runErr != nil {
		result.Error = runErr.Error()
	}

	s.mu.Lock()
	if reg, ok := s.jobs[name]; ok {
		reg.history.AddResult(result)
	}
	s.mu.Unlock()

	if runErr != nil {
		s.log.WithFields(map[string]interface{}{
			"job":      name,
			"duration": result.Duration,
			"error":    runErr.Error(),
		}).Error("Job failed after all retries")
		return
	}

	s.log.WithFields(map[string]interface{}{
		"job":      name,
		"duration": result.Duration,
	}).Info("Job completed successfully")
}

// GetJobHistory returns the run history recorded for one job.
func (s *Scheduler) GetJobHistory(jobName string) (*JobHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.jobs[jobName]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobName)
	}

	return reg.history, nil
}

// GetAllJobs returns the registered job names, in no particular order.
func (s *Scheduler) GetAllJobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}
