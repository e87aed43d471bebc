// Package taskrunner is the "shared task pool" referenced in spec §5 and
// §9: the consumer hands fire-and-forget work here instead of awaiting
// it, and the runner owns each task's lifetime. Unhandled panics and
// errors are captured here and logged — they never propagate back into
// the consumer's offset-commit path. The runner keeps no count of them;
// a task that wants its failure counted does so before returning.
package taskrunner

import (
	"github.com/logstream/pipeline/internal/logger"
)

// Runner dispatches fire-and-forget work on a bounded pool of goroutines.
type Runner struct {
	sem chan struct{}
	log logger.InterfaceLogger
}

// New builds a Runner with the given concurrency ceiling.
func New(concurrency int, log logger.InterfaceLogger) *Runner {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &Runner{sem: make(chan struct{}, concurrency), log: log}
}

// Go dispatches fn on the pool, blocking only if concurrency is already
// at the ceiling. Any error it returns, or any panic it raises, is
// logged and swallowed — it never reaches the caller, and never affects
// offset commit.
func (r *Runner) Go(name string, fn func() error) {
	r.sem <- struct{}{}
	go func() {
		defer func() { <-r.sem }()
		defer func() {
			if rec := recover(); rec != nil {
				r.log.Errorf("taskrunner: task %s panicked: %v", name, rec)
			}
		}()
		if err := fn(); err != nil {
			r.log.Errorf("taskrunner: task %s failed: %v", name, err)
		}
	}()
}
