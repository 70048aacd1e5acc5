package prism

import "sync"

// task splits data into contiguous chunks and runs fn over them on
// workersCount goroutines. Each index is visited exactly once, so fn may
// write to per-index slots of a shared result slice without locking.
func task[T any](workersCount int, data []T, fn func(index int, data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
