package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDSN = "https://public@o0.ingest.sentry.io/0"

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func TestBreadcrumbs_CollapseConsecutiveRepeats(t *testing.T) {
	clock := &fakeNow{t: time.Unix(100, 0)}
	b := NewBreadcrumbs(10)
	b.now = clock.now

	b.Key("down")
	clock.t = clock.t.Add(100 * time.Millisecond)
	b.Key("down")
	clock.t = clock.t.Add(100 * time.Millisecond)
	b.Key("down")
	b.Key("enter")

	crumbs := b.Snapshot()
	require.Len(t, crumbs, 2)
	assert.Equal(t, "key down (x3)", crumbs[0].Message)
	assert.Equal(t, 3, crumbs[0].Data["count"])
	assert.Equal(t, "keyboard", crumbs[0].Category)
	assert.Equal(t, "key enter", crumbs[1].Message)
}

func TestBreadcrumbs_RepeatsOutsideWindowStaySeparate(t *testing.T) {
	clock := &fakeNow{t: time.Unix(100, 0)}
	b := NewBreadcrumbs(10)
	b.now = clock.now

	b.Mouse("press", 1, 2)
	clock.t = clock.t.Add(5 * time.Second)
	b.Mouse("press", 1, 2)

	assert.Equal(t, 2, b.Len())
}

func TestBreadcrumbs_RingKeepsNewest(t *testing.T) {
	b := NewBreadcrumbs(3)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		b.Key(k)
	}

	crumbs := b.Snapshot()
	require.Len(t, crumbs, 3)
	assert.Equal(t, "key c", crumbs[0].Message)
	assert.Equal(t, "key e", crumbs[2].Message)

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Snapshot())
}

func TestBreadcrumbs_PersistFailureIsWarning(t *testing.T) {
	b := NewBreadcrumbs(5)
	b.Persist("commit", "p1", "age", errors.New("constraint"))

	crumbs := b.Snapshot()
	require.Len(t, crumbs, 1)
	assert.Equal(t, sentry.LevelWarning, crumbs[0].Level)
	assert.Equal(t, "constraint", crumbs[0].Data["error"])
}

func TestBreadcrumbs_NilIsSafe(t *testing.T) {
	var b *Breadcrumbs
	b.Key("x")
	b.Reset()
	assert.Zero(t, b.Len())
	assert.Nil(t, b.Snapshot())
}

func TestNew_EmptyDSNDisables(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, r.Enabled())

	r.Breadcrumbs().Key("q")
	r.CaptureError(errors.New("ignored"), nil)
	assert.Equal(t, 1, r.Breadcrumbs().Len(), "disabled reporter keeps its trail")
	require.NoError(t, r.Close())
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(Options{DSN: "not a dsn"})
	require.Error(t, err)
}

func TestReporter_CaptureErrorAttachesTrail(t *testing.T) {
	var sent []*sentry.Event
	r, err := New(Options{
		DSN:         testDSN,
		Environment: "test",
		beforeSend: func(ev *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			sent = append(sent, ev)
			return nil
		},
	})
	require.NoError(t, err)
	require.True(t, r.Enabled())

	r.Breadcrumbs().Navigation("page", "2")
	r.Breadcrumbs().Persist("commit", "p2", "name", nil)
	r.CaptureError(errors.New("boom"), map[string]string{"column": "name"})

	require.Len(t, sent, 1)
	ev := sent[0]
	assert.Equal(t, "test", ev.Environment)
	assert.Equal(t, "name", ev.Tags["column"])
	require.Len(t, ev.Breadcrumbs, 2)
	assert.Equal(t, "page: 2", ev.Breadcrumbs[0].Message)
	require.NotEmpty(t, ev.Exception)
	assert.Equal(t, "boom", ev.Exception[len(ev.Exception)-1].Value)

	assert.Zero(t, r.Breadcrumbs().Len(), "trail is cleared after capture")
	require.NoError(t, r.Close())
}

func TestReporter_RecoverRepanics(t *testing.T) {
	var sent int
	r, err := New(Options{
		DSN: testDSN,
		beforeSend: func(*sentry.Event, *sentry.EventHint) *sentry.Event {
			sent++
			return nil
		},
	})
	require.NoError(t, err)

	assert.PanicsWithValue(t, "kaboom", func() {
		defer r.Recover()
		panic("kaboom")
	})
	assert.Equal(t, 1, sent)
}

func TestEnvironment_FromEnv(t *testing.T) {
	t.Setenv(EnvEnvironment, "staging")
	assert.Equal(t, "staging", environment())
}

func TestNilReporter(t *testing.T) {
	var r *Reporter
	assert.False(t, r.Enabled())
	assert.Nil(t, r.Breadcrumbs())
	r.CaptureError(errors.New("x"), nil)
	require.NoError(t, r.Close())
}
