// Package telemetry reports unexpected failures to Sentry together with a
// short trail of what the user was doing.
package telemetry

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/zjrosen/gridline/internal/log"
)

// EnvEnvironment overrides the reported environment.
const EnvEnvironment = "GRIDLINE_ENV"

const flushTimeout = 2 * time.Second

// Options configures a Reporter. An empty DSN yields a disabled reporter.
type Options struct {
	DSN         string
	Environment string
	Release     string

	beforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event
}

// Reporter sends errors to its own Sentry hub. A nil or disabled Reporter
// still records breadcrumbs so callers never branch on it.
type Reporter struct {
	hub    *sentry.Hub
	crumbs *Breadcrumbs
}

// New creates a reporter. Invalid DSNs are an error; an empty DSN is not.
func New(opts Options) (*Reporter, error) {
	r := &Reporter{crumbs: NewBreadcrumbs(DefaultBreadcrumbs)}
	if opts.DSN == "" {
		return r, nil
	}

	env := opts.Environment
	if env == "" {
		env = environment()
	}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      env,
		Release:          opts.Release,
		AttachStacktrace: true,
		MaxBreadcrumbs:   DefaultBreadcrumbs,
		BeforeSend:       opts.beforeSend,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %w", err)
	}
	r.hub = sentry.NewHub(client, sentry.NewScope())
	log.Info(log.CatConfig, "Crash reporting enabled", "environment", env)
	return r, nil
}

func environment() string {
	if v := os.Getenv(EnvEnvironment); v != "" {
		return v
	}
	if _, err := os.Stat(".git"); err == nil {
		return "development"
	}
	return "production"
}

// Enabled reports whether errors are sent anywhere.
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Breadcrumbs returns the trail attached to captured errors.
func (r *Reporter) Breadcrumbs() *Breadcrumbs {
	if r == nil {
		return nil
	}
	return r.crumbs
}

// CaptureError sends err with the current breadcrumb trail, then clears the trail.
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if err == nil || !r.Enabled() {
		return
	}
	crumbs := r.crumbs.Snapshot()
	r.crumbs.Reset()

	r.hub.WithScope(func(scope *sentry.Scope) {
		for _, bc := range crumbs {
			scope.AddBreadcrumb(bc, DefaultBreadcrumbs)
		}
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// Recover reports a panic value and re-panics. Use as a deferred call.
func (r *Reporter) Recover() {
	v := recover()
	if v == nil {
		return
	}
	if r.Enabled() {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		r.CaptureError(err, map[string]string{"panic": "true"})
		r.hub.Flush(flushTimeout)
	}
	panic(v)
}

// Close flushes pending events.
func (r *Reporter) Close() error {
	if !r.Enabled() {
		return nil
	}
	if !r.hub.Flush(flushTimeout) {
		return errors.New("sentry flush timed out")
	}
	return nil
}
