package catalog

import (
	"context"
	"log/slog"
	"sync"
)

// ListFunc fetches the remote tool catalog. backend.Client.ListTools
// satisfies it.
type ListFunc func(ctx context.Context) ([]Descriptor, error)

// Registry is the lazily-populated, memoized tool set. The first request
// that needs tools triggers a single remote fetch; any failure falls back to
// the built-in table. The result is kept for the life of the process.
//
// The loop driving the registry is strictly sequential, but population is
// guarded by sync.Once anyway so a concurrent caller could never observe a
// half-written set.
type Registry struct {
	list ListFunc
	log  *slog.Logger

	once  sync.Once
	tools []Descriptor
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for discovery diagnostics. If not
// provided, logs are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRegistry builds an empty Registry. list may be nil, in which case only
// the built-in table is ever served.
func NewRegistry(list ListFunc, opts ...Option) *Registry {
	r := &Registry{
		list: list,
		log:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tools returns the tool set, loading it on first use. Discovery is
// best-effort: one failed fetch immediately adopts the built-in table, with
// no retry, so a dead backend never blocks the proxy from answering.
func (r *Registry) Tools(ctx context.Context) []Descriptor {
	r.once.Do(func() {
		if r.list == nil {
			r.tools = Builtin()
			return
		}
		tools, err := r.list(ctx)
		if err != nil {
			r.log.Warn("catalog.fetch.fail", slog.String("err", err.Error()))
			r.tools = Builtin()
			return
		}
		if tools == nil {
			// An empty catalog must still list as [], not null.
			tools = []Descriptor{}
		}
		r.tools = tools
	})
	return r.tools
}
