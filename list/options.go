package list

import (
	"github.com/hashicorp/go-hclog"
)

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	logger hclog.Logger
}

func newDefaultListOptions() listOptions {
	return listOptions{
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger option configures the logger that receives out of range reports.
//
// The nil value configures a logger that discards everything.
func WithLogger(logger hclog.Logger) Option {
	return funcOption(func(opts *listOptions) {
		if logger == nil {
			logger = hclog.NewNullLogger()
		}
		opts.logger = logger
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
