// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/fixlicense/internal/testutil"
)

func TestLogfWriter(t *testing.T) {
	t.Parallel()

	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func newTestLogger(level *slog.LevelVar) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(level)
	l.Attach(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: l.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	return l, &buf
}

func TestContext(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(nil)
	ctx := Put(context.Background(), l)

	Debug(ctx, "hidden")
	Info(ctx, "processed", slog.String("file", "main.c"))
	Warn(ctx, "careful")
	Error(ctx, "failed", slog.Int("line", 3))

	testutil.AssertEqual(t, buf.String(), strings.Join([]string{
		`level=INFO msg=processed file=main.c`,
		`level=WARN msg=careful`,
		`level=ERROR msg=failed line=3`,
		``,
	}, "\n"))

	l.Level.Set(slog.LevelDebug)
	buf.Reset()
	Debug(ctx, "visible")
	testutil.AssertEqual(t, buf.String(), "level=DEBUG msg=visible\n")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	l := Get(context.Background())
	testutil.AssertEqual(t, IsDefault(l), true)
	// Must not panic.
	Info(context.Background(), "discarded")

	mine, _ := newTestLogger(nil)
	testutil.AssertEqual(t, IsDefault(Get(Put(context.Background(), mine))), false)
}

func TestAttachFanout(t *testing.T) {
	t.Parallel()

	l, first := newTestLogger(nil)
	var second bytes.Buffer
	l.Attach(slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}))

	l.With(slog.String("lang", "c")).Info("hello")
	l.Error("oops")

	testutil.AssertEqual(t, strings.Count(first.String(), "\n"), 2)
	if !strings.Contains(first.String(), "lang=c") {
		t.Fatalf("attributes are lost: %q", first.String())
	}
	testutil.AssertEqual(t, strings.Count(second.String(), "\n"), 1)
	if !strings.Contains(second.String(), `"msg":"oops"`) {
		t.Fatalf("unexpected JSON output: %q", second.String())
	}
}

func TestLoggerLogf(t *testing.T) {
	t.Parallel()

	l, buf := newTestLogger(nil)
	l.Logf(slog.LevelInfo)("loaded %d languages\n", 6)
	testutil.AssertEqual(t, buf.String(), "level=INFO msg=\"loaded 6 languages\"\n")
}
