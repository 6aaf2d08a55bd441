package core

// Logger interface for trace diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
