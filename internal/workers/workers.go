package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

// New collects workers; nil entries are skipped.
func New(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits for all of them to
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
