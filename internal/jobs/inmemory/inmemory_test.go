package inmemory

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pulkeeper/pulkeeper/internal/jobs"
)

func TestStore_SaveAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	job := &jobs.ResolveMessageJob{
		JobID:  "job-1",
		UserID: 42,
		Kind:   jobs.KindText,
		Text:   "такси 18000",
		Status: jobs.JobStatusPending,
	}

	if err := s.SaveJob(ctx, job); err != nil {
		t.Fatalf("SaveJob() error = %v", err)
	}

	got, err := s.GetJob(ctx, "job-1")
	if err != nil {
		t.Fatalf("GetJob() error = %v", err)
	}
	if got.Text != job.Text || got.UserID != job.UserID {
		t.Errorf("GetJob() = %+v, want %+v", got, job)
	}

	// Mutating the original must not affect the stored copy.
	job.Text = "changed"
	got, _ = s.GetJob(ctx, "job-1")
	if got.Text != "такси 18000" {
		t.Error("stored job shares memory with the caller's copy")
	}
}

func TestStore_ListJobsFilter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, j := range []*jobs.ResolveMessageJob{
		{JobID: "a", UserID: 1, Status: jobs.JobStatusPending},
		{JobID: "b", UserID: 1, Status: jobs.JobStatusCompleted},
		{JobID: "c", UserID: 2, Status: jobs.JobStatusPending},
	} {
		if err := s.SaveJob(ctx, j); err != nil {
			t.Fatalf("SaveJob() error = %v", err)
		}
	}

	got, err := s.ListJobs(ctx, jobs.JobFilter{UserID: 1, Status: jobs.JobStatusPending})
	if err != nil {
		t.Fatalf("ListJobs() error = %v", err)
	}
	if len(got) != 1 || got[0].JobID != "a" {
		t.Errorf("ListJobs() = %v, want single job a", got)
	}
}

func TestQueue_RetryReenqueuesCopy(t *testing.T) {
	store := NewStore()
	q := NewQueue(10, 1, store)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu       sync.Mutex
		attempts []*jobs.ResolveMessageJob
	)
	done := make(chan struct{})

	err := q.Start(ctx, func(ctx context.Context, job jobs.Job) error {
		msgJob := job.(*jobs.ResolveMessageJob)

		mu.Lock()
		attempts = append(attempts, msgJob)
		n := len(attempts)
		mu.Unlock()

		if n == 1 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := q.PublishResolveMessage(ctx, &jobs.ResolveMessageJob{
		JobID:  "retry-me",
		UserID: 7,
		Kind:   jobs.KindText,
		Text:   "обед 12000",
	}); err != nil {
		t.Fatalf("PublishResolveMessage() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job was not retried")
	}

	mu.Lock()
	if len(attempts) != 2 {
		mu.Unlock()
		t.Fatalf("handler invoked %d times, want 2", len(attempts))
	}
	// The retry must run on its own copy, not on the struct the first
	// attempt's bookkeeping still writes to.
	if attempts[0] == attempts[1] {
		t.Error("retry re-enqueued the same job pointer")
	}
	if attempts[1].RetryCount != 1 {
		t.Errorf("RetryCount = %d, want 1", attempts[1].RetryCount)
	}
	mu.Unlock()

	// The completed status is saved after the handler returns; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for {
		got, err := store.GetJob(ctx, "retry-me")
		if err != nil {
			t.Fatalf("GetJob() error = %v", err)
		}
		if got.Status == jobs.JobStatusCompleted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("Status = %q, want completed", got.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestQueue_PublishAndConsume(t *testing.T) {
	store := NewStore()
	q := NewQueue(10, 2, store)
	defer q.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var handled atomic.Int32
	done := make(chan struct{})

	err := q.Start(ctx, func(ctx context.Context, job jobs.Job) error {
		if handled.Add(1) == 3 {
			close(done)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := q.PublishResolveMessage(ctx, &jobs.ResolveMessageJob{
			UserID: int64(i),
			Kind:   jobs.KindText,
			Text:   "такси 18000",
		}); err != nil {
			t.Fatalf("PublishResolveMessage() error = %v", err)
		}
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("handled %d jobs, want 3", handled.Load())
	}
}
