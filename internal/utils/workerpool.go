package utils

import (
	"context"
	"sync"
)

// ParallelForEach executes fn for each item using at most workers goroutines.
// The returned slice holds one error per item, in input order. Items not yet
// started when ctx is cancelled are left with a nil error.
func ParallelForEach[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) error) []error {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	errs := make([]error, len(items))
	taskChan := make(chan int, len(items))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-taskChan:
					if !ok {
						return
					}
					// each index is written by exactly one worker
					errs[idx] = fn(ctx, items[idx])
				}
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
			close(taskChan)
			wg.Wait()
			return errs
		case taskChan <- i:
		}
	}

	close(taskChan)
	wg.Wait()

	return errs
}

// CollectErrors collects all non-nil errors from a slice
func CollectErrors(errs []error) []error {
	var result []error
	for _, err := range errs {
		if err != nil {
			result = append(result, err)
		}
	}
	return result
}
