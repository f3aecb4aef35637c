package plume

import "sync"

func task[T any](workersCount int, items []T, fn func(i int, item T)) {
	if workersCount < 1 {
		workersCount = 1
	}

	var wg sync.WaitGroup
	size := len(items)
	chunkSize := (size + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i, items[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, size))
	}
	wg.Wait()
}
