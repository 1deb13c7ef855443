package cli

import (
	"context"

	"github.com/matzehuels/depviz/pkg/errors"
	"github.com/matzehuels/depviz/pkg/observability"
)

// stats counts registry traffic for the summary line. The resolver calls
// hooks from a single goroutine, so no locking is needed.
type stats struct {
	observability.NoopResolveHooks
	observability.NoopHTTPHooks

	onFetch  func(fetched int)
	fetched  int
	requests int
	failures int // transport errors

	reasons map[string]errors.Code // failed package -> error code
}

func newStats(onFetch func(fetched int)) *stats {
	if onFetch == nil {
		onFetch = func(int) {}
	}
	return &stats{onFetch: onFetch, reasons: make(map[string]errors.Code)}
}

func (s *stats) OnFetch(_ context.Context, name string, _ int, err error) {
	if err == nil {
		s.fetched++
	} else {
		s.reasons[name] = failureCode(err)
	}
	s.onFetch(s.fetched)
}

// failureCode falls back to INTERNAL_ERROR for errors without a code.
func failureCode(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}

func (s *stats) OnRequest(context.Context, string, string, string) {
	s.requests++
}

func (s *stats) OnError(context.Context, string, string, string, error) {
	s.failures++
}

var (
	_ observability.ResolveHooks = (*stats)(nil)
	_ observability.HTTPHooks    = (*stats)(nil)
)
