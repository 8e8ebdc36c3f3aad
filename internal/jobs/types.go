package jobs

import (
	"context"
	"time"
)

// JobType represents the type of job to be executed.
type JobType string

const (
	// JobTypeResolveMessage represents an inbound-message resolution job.
	JobTypeResolveMessage JobType = "resolve_message"
)

// MessageKind tells the worker how to obtain the text to resolve.
type MessageKind string

const (
	// KindText is a typed message; Text is already populated.
	KindText MessageKind = "text"
	// KindVoice carries audio bytes that need transcription first.
	KindVoice MessageKind = "voice"
	// KindReceipt carries a receipt photo that needs vision extraction first.
	KindReceipt MessageKind = "receipt"
)

// JobStatus represents the current status of a job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusRetrying  JobStatus = "retrying"
)

// ResolveMessageJob represents one inbound user message awaiting resolution.
// Each job is independent; resolutions may complete in any order.
type ResolveMessageJob struct {
	// JobID is the unique identifier for this job.
	JobID string `json:"job_id"`

	// UserID identifies the message author for storage handoff.
	UserID int64 `json:"user_id"`

	// ChatID identifies where the outcome should be reported.
	ChatID int64 `json:"chat_id"`

	// Kind selects the preprocessing step (none, transcription, vision).
	Kind MessageKind `json:"kind"`

	// Text is the raw message for KindText jobs.
	Text string `json:"text,omitempty"`

	// Payload carries audio or image bytes for voice/receipt jobs.
	Payload []byte `json:"payload,omitempty"`

	// MimeType describes Payload for the vision extractor.
	MimeType string `json:"mime_type,omitempty"`

	// Status is the current status of the job.
	Status JobStatus `json:"status"`

	// CreatedAt is when the job was created.
	CreatedAt time.Time `json:"created_at"`

	// StartedAt is when the job started processing.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// CompletedAt is when the job completed (success or failure).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Error contains error details if the job failed.
	Error string `json:"error,omitempty"`

	// RetryCount is the number of times this job has been retried.
	RetryCount int `json:"retry_count"`

	// MaxRetries is the maximum number of retries allowed.
	MaxRetries int `json:"max_retries"`
}

// Job is a generic interface for all job types.
type Job interface {
	GetID() string
	GetType() JobType
	GetStatus() JobStatus
}

// GetID implements the Job interface.
func (j *ResolveMessageJob) GetID() string {
	return j.JobID
}

// GetType implements the Job interface.
func (j *ResolveMessageJob) GetType() JobType {
	return JobTypeResolveMessage
}

// GetStatus implements the Job interface.
func (j *ResolveMessageJob) GetStatus() JobStatus {
	return j.Status
}

// Publisher defines the interface for publishing jobs to a queue.
// The abstraction allows swapping the in-memory queue for a broker later.
type Publisher interface {
	// PublishResolveMessage publishes a message resolution job.
	PublishResolveMessage(ctx context.Context, job *ResolveMessageJob) error

	// Close closes the publisher and releases resources.
	Close() error
}

// Consumer defines the interface for consuming jobs from a queue.
type Consumer interface {
	// Start begins consuming jobs; the handler is called for each job.
	Start(ctx context.Context, handler JobHandler) error

	// Stop stops consuming and waits for in-flight jobs to complete.
	Stop(ctx context.Context) error
}

// JobHandler processes one job. A returned error marks the job for retry.
type JobHandler func(ctx context.Context, job Job) error

// JobStore defines the interface for storing and retrieving job status.
type JobStore interface {
	SaveJob(ctx context.Context, job *ResolveMessageJob) error
	GetJob(ctx context.Context, jobID string) (*ResolveMessageJob, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]*ResolveMessageJob, error)
	UpdateJobStatus(ctx context.Context, jobID string, status JobStatus, errorMsg string) error
}

// JobFilter defines filtering criteria for listing jobs.
type JobFilter struct {
	// UserID filters jobs by message author.
	UserID int64

	// Status filters jobs by status.
	Status JobStatus

	// Limit limits the number of results.
	Limit int

	// Offset for pagination.
	Offset int
}
