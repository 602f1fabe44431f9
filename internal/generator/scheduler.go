package generator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/postpilot/postpilot/pkg/logging"
	"github.com/postpilot/postpilot/pkg/telemetry"
)

// generateTimeout bounds a single backend call once the delay has elapsed
const generateTimeout = 30 * time.Second

// CompleteFunc delivers a finished caption back to the post store. The
// receiver must tolerate ids that no longer exist.
type CompleteFunc func(id, content, hashtags string)

type task struct {
	cancel context.CancelFunc
}

// Scheduler runs one deferred generation per post id. Each task waits the
// configured delay, calls the generator, and hands the result to the
// completion callback. Cancelling or re-scheduling an id drops the pending
// task; a task that fires after its post was removed is absorbed by the
// completion callback.
type Scheduler struct {
	gen      Generator
	fallback Template
	delay    time.Duration
	complete CompleteFunc
	logger   *zap.Logger

	mu     sync.Mutex
	tasks  map[string]*task
	wg     sync.WaitGroup
	closed bool
}

// NewScheduler creates a generation scheduler
func NewScheduler(gen Generator, delay time.Duration, complete CompleteFunc) *Scheduler {
	return &Scheduler{
		gen:      gen,
		delay:    delay,
		complete: complete,
		logger:   logging.WithComponent("generator"),
		tasks:    make(map[string]*task),
	}
}

// Schedule queues a generation completion for the post. A pending task for
// the same id is replaced.
func (s *Scheduler) Schedule(id, description string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if existing, ok := s.tasks[id]; ok {
		existing.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &task{cancel: cancel}
	s.tasks[id] = t
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(ctx, t, id, description)
}

// Cancel drops the pending generation for the post, if any
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tasks[id]; ok {
		t.cancel()
		delete(s.tasks, id)
	}
}

// Shutdown cancels all pending generations and waits for their goroutines
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	s.closed = true
	for id, t := range s.tasks {
		t.cancel()
		delete(s.tasks, id)
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, t *task, id, description string) {
	defer s.wg.Done()
	defer s.drop(id, t)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Debug("Generation cancelled", zap.String("post_id", id))
		return
	case <-timer.C:
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	spanCtx, span := telemetry.StartSpan(genCtx, "generator.generate")
	content, hashtags, err := s.gen.Generate(spanCtx, description)
	span.End()

	if err != nil {
		if ctx.Err() != nil {
			// Cancelled mid-call, the post is gone or we are shutting down
			return
		}
		s.logger.Warn("Generation failed, using template caption",
			zap.String("post_id", id),
			zap.Error(err))
		content, hashtags, _ = s.fallback.Generate(context.Background(), description)
	}

	s.complete(id, content, hashtags)
}

// drop removes the task entry unless a re-schedule already replaced it
func (s *Scheduler) drop(id string, t *task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.tasks[id]; ok && current == t {
		delete(s.tasks, id)
	}
}
