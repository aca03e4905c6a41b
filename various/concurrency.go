package various

import (
	"runtime"
	"sync"
)

// KickOffChunkWorkers splits the range [0, totalItems) into contiguous
// chunks and processes each chunk in its own goroutine. fn must only
// write to indices within [start, end).
func KickOffChunkWorkers(totalItems int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 1
	}
	if totalItems < 256 {
		// Not worth the goroutine overhead.
		fn(0, totalItems)
		return
	}

	var wg sync.WaitGroup
	var chunkStart int
	chunkSize := (totalItems / numWorkers) + 1
	for i := 0; i < numWorkers; i++ {
		curChunk := chunkSize
		if rem := totalItems - chunkStart; rem < curChunk {
			curChunk = rem
		}
		if curChunk <= 0 {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(chunkStart, chunkStart+curChunk)
		chunkStart += curChunk
	}
	wg.Wait()
}
