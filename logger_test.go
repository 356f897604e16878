package geometry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/geometry/mesh"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("default logger should not be enabled")
	}
}

// captureLogs routes package logging into a buffer for the test duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestSetLogger_CreateLogs(t *testing.T) {
	buf := captureLogs(t)

	if _, err := New(PlanarU16(), WithLabel("quad")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"geometry: created", "label=quad", "layout=Planar", "index=Uint16"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestSetLogger_MissingMeshAttribute(t *testing.T) {
	buf := captureLogs(t)

	m := &mesh.TriMesh{Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	if _, err := NewWithTriMesh(Interleaved().AddNormal(), m); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "semantic=Normal") {
		t.Errorf("expected a log line for the missing normal stream: %s", out)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
