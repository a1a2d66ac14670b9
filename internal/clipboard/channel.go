// Package clipboard moves grid selections to and from text clipboards.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/zjrosen/gridline/internal/cachemanager"
	"github.com/zjrosen/gridline/internal/log"
)

// DefaultKey is the well-known name of the in-process clipboard.
const DefaultKey = "gridline.clipboard"

// ErrUnavailable is returned when the platform clipboard cannot be used.
var ErrUnavailable = errors.New("platform clipboard unavailable")

// Channel is a text clipboard.
type Channel interface {
	Read() (string, error)
	Write(text string) error
}

// System is the operating system clipboard.
type System struct{}

func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Fallback keeps clipboard text in process memory under a fixed key, for
// terminals without a platform clipboard.
type Fallback struct {
	cache cachemanager.CacheManager[string, string]
	key   string
	ttl   time.Duration
}

// NewFallback stores text in cache under key. An empty key uses DefaultKey.
func NewFallback(cache cachemanager.CacheManager[string, string], key string) *Fallback {
	if key == "" {
		key = DefaultKey
	}
	return &Fallback{cache: cache, key: key, ttl: cachemanager.NoExpiration}
}

func (f *Fallback) Read() (string, error) {
	v, ok := f.cache.Get(context.Background(), f.key)
	if !ok {
		return "", nil
	}
	return v, nil
}

func (f *Fallback) Write(text string) error {
	f.cache.Set(context.Background(), f.key, text, f.ttl)
	return nil
}

// Chain writes to every channel and reads from the first one that answers.
type Chain struct {
	channels []Channel
}

func NewChain(channels ...Channel) *Chain {
	return &Chain{channels: channels}
}

// Write succeeds when at least one channel accepted the text.
func (c *Chain) Write(text string) error {
	var errs []error
	ok := false
	for _, ch := range c.channels {
		if err := ch.Write(text); err != nil {
			errs = append(errs, err)
			continue
		}
		ok = true
	}
	if ok {
		if len(errs) > 0 {
			log.Debug(log.CatClipboard, "clipboard write partially failed", "error", errors.Join(errs...))
		}
		return nil
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return fmt.Errorf("writing clipboard: %w", errors.Join(errs...))
}

// Read returns the first successful read.
func (c *Chain) Read() (string, error) {
	var errs []error
	for _, ch := range c.channels {
		text, err := ch.Read()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return text, nil
	}
	if len(errs) == 0 {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("reading clipboard: %w", errors.Join(errs...))
}

// Default returns the platform clipboard backed by the in-process
// fallback, or the fallback alone when the platform has none.
func Default(cache cachemanager.CacheManager[string, string], key string) Channel {
	fb := NewFallback(cache, key)
	if clipboard.Unsupported {
		log.Info(log.CatClipboard, "platform clipboard unsupported, using in-process fallback", "key", fb.key)
		return fb
	}
	return NewChain(System{}, fb)
}
