package concurrency

import "sync"

// Worker runs a job for every argument using a fixed number of goroutines.
type Worker[A any, R any] struct {
	size        int
	jobCallback func(arg A) R
}

func NewWorker[A any, R any](size int, jobCallback func(arg A) R) Worker[A, R] {
	if size < 1 {
		size = 1
	}
	return Worker[A, R]{size: size, jobCallback: jobCallback}
}

// Run blocks until every job is done. results[i] belongs to jobArgs[i].
func (w *Worker[A, R]) Run(jobArgs []A) []R {

	results := make([]R, len(jobArgs))
	jobChannel := make(chan int, len(jobArgs))

	for i := range jobArgs {
		jobChannel <- i
	}
	close(jobChannel)

	var wg sync.WaitGroup
	for n := 0; n < min(w.size, len(jobArgs)); n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobChannel {
				results[i] = w.jobCallback(jobArgs[i])
			}
		}()
	}
	wg.Wait()

	return results
}
