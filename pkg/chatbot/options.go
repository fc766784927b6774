package chatbot

import (
	loggerpkg "github.com/educado/edu-navigator/pkg/logger"
	"github.com/openai/openai-go/option"
)

// Option configures optional runtime dependencies for Client.
type Option func(*clientDeps)

type clientDeps struct {
	logger         loggerpkg.Logger
	requestOptions []option.RequestOption
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *clientDeps) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithRequestOptions appends SDK request options, applied after the ones
// derived from configuration.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(d *clientDeps) {
		d.requestOptions = append(d.requestOptions, opts...)
	}
}
