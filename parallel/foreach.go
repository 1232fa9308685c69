// Package parallel runs independent loop bodies on a bounded number of
// goroutines.
package parallel

import "sync"

// ForEach calls body for every i in [0, length) with at most limit calls
// running at once and returns after all of them finished. A limit of
// one or less runs the loop on the calling goroutine, in order.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}
