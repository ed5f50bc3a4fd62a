// Package scheduler runs maintenance tasks at fixed intervals inside the server process.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobStatus represents the outcome of one task run
type JobStatus string

const (
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
)

// Task is a unit of periodic work
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Job records a single run of a task, including its retries
type Job struct {
	ID          uuid.UUID
	Task        string
	Status      JobStatus
	Attempts    int
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// Config holds scheduler configuration
type Config struct {
	JobTimeout    time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() Config {
	return Config{
		JobTimeout:    5 * time.Minute,
		RetryAttempts: 2,
		RetryDelay:    30 * time.Second,
	}
}

// Scheduler runs each registered task on its own ticker
type Scheduler struct {
	config Config
	logger *zap.Logger

	mu      sync.Mutex
	tasks   map[string]Task
	lastRun map[string]Job
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewScheduler creates a new scheduler instance
func NewScheduler(config Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = DefaultConfig().JobTimeout
	}
	return &Scheduler{
		config:  config,
		logger:  logger.Named("scheduler"),
		tasks:   make(map[string]Task),
		lastRun: make(map[string]Job),
	}
}

// Register adds a task. Tasks must be registered before Start.
func (s *Scheduler) Register(task Task) error {
	if task.Name == "" || task.Run == nil || task.Interval <= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidTask, task.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrSchedulerRunning
	}
	if _, ok := s.tasks[task.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTask, task.Name)
	}
	s.tasks[task.Name] = task
	return nil
}

// Start launches one loop per task. The first run happens one interval after Start.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, task := range s.tasks {
		s.wg.Add(1)
		go s.loop(ctx, task)
	}
	s.logger.Info("Scheduler started", zap.Int("tasks", len(s.tasks)))
}

// Stop cancels the task loops and waits for in-flight runs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.cancel()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.logger.Info("Scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out")
		return ctx.Err()
	}
}

// RunNow runs a task synchronously outside its schedule
func (s *Scheduler) RunNow(ctx context.Context, name string) (Job, error) {
	s.mu.Lock()
	task, ok := s.tasks[name]
	s.mu.Unlock()
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrTaskNotFound, name)
	}
	return s.execute(ctx, task), nil
}

// LastRun returns the most recent run of a task
func (s *Scheduler) LastRun(name string) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.lastRun[name]
	return job, ok
}

func (s *Scheduler) loop(ctx context.Context, task Task) {
	defer s.wg.Done()
	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, task)
		}
	}
}

// execute runs a task with a per-attempt timeout, retrying failed attempts
func (s *Scheduler) execute(ctx context.Context, task Task) Job {
	job := Job{ID: uuid.New(), Task: task.Name, Status: JobStatusRunning, StartedAt: time.Now()}
	log := s.logger.With(zap.String("task", task.Name), zap.String("job_id", job.ID.String()))

	for {
		job.Attempts++
		err := s.attempt(ctx, task)
		if err == nil {
			job.Status, job.Error = JobStatusSuccess, ""
			break
		}
		job.Status, job.Error = JobStatusFailed, err.Error()
		log.Error("Task failed", zap.Int("attempt", job.Attempts), zap.Error(err))
		if job.Attempts > s.config.RetryAttempts || ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case <-time.After(s.config.RetryDelay):
		}
	}

	now := time.Now()
	job.CompletedAt = &now
	if job.Status == JobStatusSuccess {
		log.Debug("Task completed", zap.Int("attempts", job.Attempts), zap.Duration("duration", now.Sub(job.StartedAt)))
	}

	s.mu.Lock()
	s.lastRun[task.Name] = job
	s.mu.Unlock()
	return job
}

func (s *Scheduler) attempt(ctx context.Context, task Task) (err error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return task.Run(ctx)
}
