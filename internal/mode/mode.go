// Package mode defines the services shared by the host pages.
package mode

import (
	"context"
	"time"

	"github.com/zjrosen/gridline/internal/clipboard"
	"github.com/zjrosen/gridline/internal/clock"
	"github.com/zjrosen/gridline/internal/config"
	"github.com/zjrosen/gridline/internal/engine"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/telemetry"
)

// RecordSource loads one page of records and the total record count.
type RecordSource interface {
	Page(ctx context.Context, p grid.Pagination) ([]grid.Record, int, error)
}

// Muter silences change notifications caused by our own writes.
type Muter interface {
	Mute(d time.Duration)
}

// Services contains the dependencies injected into a host page.
type Services struct {
	Config     *config.Config
	ConfigPath string

	Source    RecordSource
	Gateway   gateway.Gateway
	Clipboard clipboard.Channel
	Flags     *flags.Registry
	Clock     clock.Clock
	Events    *pubsub.Broker[engine.Event]
	Reporter  *telemetry.Reporter
	Watcher   Muter // nil when auto refresh is off

	Pages grid.PageHandlers
}
