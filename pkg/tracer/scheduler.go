package tracer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/optics"
)

// DefaultParallelThreshold is the source ray count below which a trace
// runs sequentially; thread fan-out doesn't amortize for tiny batches
const DefaultParallelThreshold = 20

// Params configures one trace pass
type Params struct {
	MaxEvents         int         // event budget per source ray tree (0 = DefaultMaxEvents)
	ParallelThreshold int         // minimum ray count for parallel dispatch (0 = default)
	NumWorkers        int         // worker count (0 = CPU count)
	Logger            core.Logger // optional diagnostics sink
}

// DefaultParams returns sensible default trace parameters
func DefaultParams() Params {
	return Params{
		MaxEvents:         DefaultMaxEvents,
		ParallelThreshold: DefaultParallelThreshold,
		NumWorkers:        0,
	}
}

// rayTask pairs a source ray with its input index for deterministic
// result ordering
type rayTask struct {
	taskID int
	ray    core.Ray
}

// Trace runs every source ray's full descendant tree against the element
// snapshot and returns all resulting paths, ordered to match the input
// ray order regardless of which worker finishes first. The snapshot is
// read-only for the duration of the pass; workers share it without locks
// and write only to their own index slots.
//
// Degenerate elements are dropped from the snapshot with a warning in the
// returned stats; nothing in a trace aborts the batch for one malformed
// element or ray.
func Trace(elements []optics.Element, rays []core.Ray, params Params) ([]core.RayPath, TraceStats) {
	if params.MaxEvents <= 0 {
		params.MaxEvents = DefaultMaxEvents
	}
	if params.ParallelThreshold <= 0 {
		params.ParallelThreshold = DefaultParallelThreshold
	}

	snapshot, warnings := filterElements(elements)

	stats := TraceStats{
		SourceRays: len(rays),
		Warnings:   warnings,
	}

	numWorkers := params.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Per-source-ray result slots, merged by index after the pass so
	// output order equals input order, never completion order
	results := make([][]core.RayPath, len(rays))
	events := make([]int, len(rays))

	sequential := len(rays) < params.ParallelThreshold ||
		numWorkers <= 1 || runtime.GOMAXPROCS(0) <= 1

	if sequential {
		stats.Sequential = true
		stats.Workers = 1
		if params.Logger != nil && len(rays) >= params.ParallelThreshold {
			params.Logger.Printf("tracing %d rays sequentially (no concurrent execution available)\n", len(rays))
		}
		for i, ray := range rays {
			results[i], events[i] = TraceRay(snapshot, ray, params.MaxEvents)
		}
	} else {
		stats.Workers = numWorkers
		tasks := make(chan rayTask, len(rays))
		var wg sync.WaitGroup

		for w := 0; w < numWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for task := range tasks {
					// Slots are disjoint per task, so no locking is needed
					results[task.taskID], events[task.taskID] = TraceRay(snapshot, task.ray, params.MaxEvents)
				}
			}()
		}

		for i, ray := range rays {
			tasks <- rayTask{taskID: i, ray: ray}
		}
		close(tasks)
		wg.Wait()
	}

	var paths []core.RayPath
	for i := range results {
		paths = append(paths, results[i]...)
		stats.Events += events[i]
	}
	stats.Paths = len(paths)

	return paths, stats
}

// filterElements drops degenerate (zero-length) segments from the
// snapshot, surfacing one warning per dropped element
func filterElements(elements []optics.Element) ([]optics.Element, []string) {
	kept := make([]optics.Element, 0, len(elements))
	var warnings []string

	for i := range elements {
		if elements[i].Degenerate() {
			warnings = append(warnings, fmt.Sprintf(
				"element %d (%s): degenerate segment at (%.3f, %.3f), skipped",
				i, elements[i].Kind, elements[i].A.X, elements[i].A.Y))
			continue
		}
		kept = append(kept, elements[i])
	}

	return kept, warnings
}
