package model

import (
	"runtime"
	"sync"

	"github.com/Hakuou123/YeadonModelGenerator/internal/measure"
	"github.com/Hakuou123/YeadonModelGenerator/internal/pose"
)

// Measure runs the full measurement table over the subject's four views and
// returns per-label values and failures.
//
// Raster-derived landmarks (crown, acromions, girth extrema, crotch) are
// located first and added to the frontal views' landmark sets; the labeled
// measurements then run on a pool of workers over the shared read-only
// rasters. Every job is independent and deterministic, so a second call
// with the same inputs reproduces the same results. workers <= 0 uses one
// worker per CPU.
func (s *Subject) Measure(p measure.Params, workers int) *Results {
	res := newResults()

	locateFeatures(&s.Front, pose.ViewFront, p, res)
	locateFeatures(&s.FrontUp, pose.ViewFrontUp, p, res)

	jobs := s.jobs(p)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan job)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				v, err := j.run()
				mu.Lock()
				if err != nil {
					res.Errors[j.label] = err
				} else {
					res.Values[j.label] = v
				}
				mu.Unlock()
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	return res
}
