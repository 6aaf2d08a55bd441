package tracer

import "fmt"

// TraceStats summarizes one trace pass
type TraceStats struct {
	SourceRays int      // source rays submitted
	Paths      int      // paths produced across all branches
	Events     int      // total ray-element interactions
	Workers    int      // workers used (1 when sequential)
	Sequential bool     // true when the parallel fallback engaged
	Warnings   []string // recoverable per-element conditions
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}
