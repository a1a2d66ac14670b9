package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	line := Format(ts, LevelWarn, CatPersist, "commit failed", "row", 3, "col", "name")
	require.Equal(t, "2026-03-04T05:06:07 [WARN] [persist] commit failed row=3 col=name\n", line)

	line = Format(ts, LevelDebug, CatGrid, "odd", "orphan")
	require.Equal(t, "2026-03-04T05:06:07 [DEBUG] [grid] odd orphan=<missing>\n", line)
}

func TestWriterLogger(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info(CatEdit, "opened", "row", 1)
	require.Contains(t, buf.String(), "[INFO] [edit] opened row=1")

	SetMinLevel(LevelWarn)
	Info(CatEdit, "hidden")
	require.NotContains(t, buf.String(), "hidden")

	ErrorErr(CatDB, "query", errors.New("boom"))
	require.Contains(t, buf.String(), "error=boom")

	SetEnabled(false)
	Error(CatDB, "muted")
	require.NotContains(t, buf.String(), "muted")
}

func TestListenerReceivesLines(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Warn(CatClipboard, "platform clipboard unavailable")

	msg := listener.Listen()()
	ev, ok := msg.(LogEvent)
	require.True(t, ok)
	require.Contains(t, ev.Payload, "[clipboard] platform clipboard unavailable")
}

func TestNilLoggerIsSilent(t *testing.T) {
	defaultLogger = nil
	require.NotPanics(t, func() {
		Debug(CatUI, "nothing")
		SetEnabled(true)
		SetMinLevel(LevelError)
	})
	require.Nil(t, NewListener(context.Background()))
}
