package excess

import "github.com/datatrails/go-datatrails-common/logger"

// BuildOptions is the target record for the Option values accepted by Build.
type BuildOptions struct {
	// Workers bounds the goroutines used for the leaf scan. Values <= 1 scan
	// sequentially.
	Workers int
	Log     logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options target record and ignore the option if that fails.
type Option func(any)

// WithParallelism computes leaf aggregates on up to workers goroutines. The
// resulting tree is identical to a sequential build.
func WithParallelism(workers int) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Workers = workers
		}
	}
}

// WithLogger logs the shape of each built tree at debug level.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Log = log
		}
	}
}
