package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of one date's generation run.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusFetching   JobStatus = "fetching"
	StatusExtracting JobStatus = "extracting"
	StatusPublishing JobStatus = "publishing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks the generation of a single date page.
type Job struct {
	mu sync.Mutex

	ID    string
	Month string
	Day   int
	Date  time.Time // Target date, used for age arithmetic.

	Status  JobStatus
	Entries int    // Qualifying entries published.
	Path    string // Output file once published.
	Err     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewJob creates a queued job for one date.
func NewJob(month string, day int, date time.Time) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Month:     month,
		Day:       day,
		Date:      date,
		Status:    StatusQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetStatus moves the job to a new state.
func (j *Job) SetStatus(s JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = s
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed with a reason.
func (j *Job) Fail(reason string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.Err = reason
	j.UpdatedAt = time.Now()
}

// Complete marks the job done with its published output.
func (j *Job) Complete(path string, entries int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusCompleted
	j.Path = path
	j.Entries = entries
	j.UpdatedAt = time.Now()
}

// State returns the current status and failure reason.
func (j *Job) State() (JobStatus, string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Status, j.Err
}
