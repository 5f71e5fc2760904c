package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

type stubJob struct {
	name     string
	schedule string
	calls    int
	failures int
}

func (j *stubJob) Name() string     { return j.name }
func (j *stubJob) Schedule() string { return j.schedule }

func (j *stubJob) Run(ctx context.Context) error {
	j.calls++
	if j.calls <= j.failures {
		return errors.New("transient failure")
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func TestAddJob_RejectsDuplicates(t *testing.T) {
	s := New(testLogger())

	job := &stubJob{name: "scenario_prune", schedule: "0 0 3 * * *"}
	if err := s.AddJob(job); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	if err := s.AddJob(job); err == nil {
		t.Error("Expected error when adding duplicate job")
	}

	names := s.GetAllJobs()
	if len(names) != 1 || names[0] != "scenario_prune" {
		t.Errorf("GetAllJobs() = %v, want [scenario_prune]", names)
	}
}

func TestAddJob_RejectsBadSchedule(t *testing.T) {
	s := New(testLogger())

	job := &stubJob{name: "broken", schedule: "not a cron expression"}
	if err := s.AddJob(job); err == nil {
		t.Error("Expected error for invalid schedule")
	}
}

func TestRunJob_UnknownJob(t *testing.T) {
	s := New(testLogger())

	if err := s.RunJob("missing"); err == nil {
		t.Error("Expected error for unknown job")
	}
}

func TestRunJob_RecordsSuccess(t *testing.T) {
	s := New(testLogger())

	job := &stubJob{name: "scenario_prune", schedule: "@daily"}
	if err := s.AddJob(job); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	s.runJob(job)

	history, err := s.GetJobHistory("scenario_prune")
	if err != nil {
		t.Fatalf("GetJobHistory() error = %v", err)
	}
	if len(history.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(history.Results))
	}
	if !history.Results[0].Success {
		t.Errorf("Expected success, got error %q", history.Results[0].Error)
	}
	if job.calls != 1 {
		t.Errorf("Expected 1 run, got %d", job.calls)
	}
	if rate := history.GetSuccessRate(); rate != 1.0 {
		t.Errorf("Success rate = %v, want 1.0", rate)
	}
}

func TestRunJob_RetriesTransientFailure(t *testing.T) {
	s := New(testLogger())
	s.retryDelay = time.Millisecond

	job := &stubJob{name: "scenario_prune", schedule: "@daily", failures: 2}
	if err := s.AddJob(job); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	s.runJob(job)

	if job.calls != 3 {
		t.Errorf("Expected 3 attempts (2 failures then success), got %d", job.calls)
	}

	history, _ := s.GetJobHistory("scenario_prune")
	if !history.Results[0].Success {
		t.Error("Expected eventual success after retries")
	}
}

func TestRunJob_GivesUpAfterMaxRetries(t *testing.T) {
	s := New(testLogger())
	s.maxRetries = 1
	s.retryDelay = time.Millisecond

	job := &stubJob{name: "scenario_prune", schedule: "@daily", failures: 10}
	if err := s.AddJob(job); err != nil {
		t.Fatalf("AddJob() error = %v", err)
	}

	s.runJob(job)

	if job.calls != 2 {
		t.Errorf("Expected 2 attempts with maxRetries=1, got %d", job.calls)
	}

	history, _ := s.GetJobHistory("scenario_prune")
	result := history.Results[0]
	if result.Success {
		t.Error("Expected failure after exhausting retries")
	}
	if result.Error == "" {
		t.Error("Expected error message in result")
	}

	if len(history.GetFailedResults()) != 1 {
		t.Errorf("Expected 1 failed result, got %d", len(history.GetFailedResults()))
	}
}

func TestJobHistory_CapsAtHundred(t *testing.T) {
	h := &JobHistory{}

	for i := 0; i < 105; i++ {
		h.AddResult(JobResult{JobName: fmt.Sprintf("run-%d", i), Success: true})
	}

	if len(h.Results) != 100 {
		t.Errorf("Expected history capped at 100, got %d", len(h.Results))
	}
	// Oldest entries are dropped first
	if h.Results[0].JobName != "run-5" {
		t.Errorf("Expected oldest surviving entry run-5, got %s", h.Results[0].JobName)
	}

	latest := h.GetLatestResults(3)
	if len(latest) != 3 {
		t.Fatalf("Expected 3 latest results, got %d", len(latest))
	}
	if latest[2].JobName != "run-104" {
		t.Errorf("Expected newest entry run-104, got %s", latest[2].JobName)
	}
}
