package enumerable

import "github.com/openfga/cinq/pkg/logger"

type options struct {
	logger logger.Logger
}

// Option configures a view at construction.
type Option func(*options)

// WithLogger sets the logger the view reports materialization through.
// Views log at debug level only.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
