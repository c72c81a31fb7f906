package sim

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// SweepResult tracks the outcome of one pass over due trainings.
type SweepResult struct {
	Found     int           `json:"found"`
	Completed int           `json:"completed"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"-"`
	Errors    []string      `json:"errors,omitempty"`
}

// Summary returns a human-readable summary.
func (r *SweepResult) Summary() string {
	return fmt.Sprintf("found=%d completed=%d failed=%d dur=%s",
		r.Found, r.Completed, r.Failed, r.Duration.Round(time.Millisecond))
}

// ProcessDueTrainings finds every pending training whose end date has
// passed and completes each through a bounded worker pool. Individual
// failures are collected, not fatal to the sweep.
func (e *Engine) ProcessDueTrainings(ctx context.Context, workers int) SweepResult {
	start := time.Now()
	var result SweepResult

	due, err := e.store.ListPendingTrainings(ctx, e.now())
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		result.Duration = time.Since(start)
		return result
	}
	result.Found = len(due)
	if len(due) == 0 {
		result.Duration = time.Since(start)
		return result
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(due) {
		workers = len(due)
	}

	ch := make(chan string, len(due))
	for _, t := range due {
		ch <- t.ID
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range ch {
				_, err := e.CheckTraining(ctx, id)
				mu.Lock()
				if err != nil {
					result.Failed++
					result.Errors = append(result.Errors, fmt.Sprintf("training %s: %v", id, err))
				} else {
					result.Completed++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	result.Duration = time.Since(start)
	e.log.Info("training sweep complete", "summary", result.Summary())
	return result
}
