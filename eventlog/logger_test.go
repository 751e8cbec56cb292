package eventlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dshills/eventq/event"
	"github.com/dshills/eventq/event/category"
	"github.com/dshills/eventq/eventlog"
	"github.com/dshills/eventq/queue"
)

type noisy struct{}

func (noisy) EventCategory() category.Category { return "test.noisy" }

func TestLogger_Write(t *testing.T) {
	var buf bytes.Buffer
	l := eventlog.New(&buf, eventlog.WithComponent("core"))

	if err := l.Info("starting", "port", 8080); err != nil {
		t.Fatalf("Info() failed: %v", err)
	}

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if rec["message"] != "starting" {
		t.Errorf("message = %v, want starting", rec["message"])
	}
	if rec["component"] != "core" {
		t.Errorf("component = %v, want core", rec["component"])
	}
	if rec["port"] != float64(8080) {
		t.Errorf("port = %v, want 8080", rec["port"])
	}
	if rec["logger_id"] == nil {
		t.Error("record has no logger_id field")
	}
}

func TestLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := eventlog.New(&buf, eventlog.WithLevel(zerolog.WarnLevel))

	if err := l.Debug("hidden"); err != nil {
		t.Fatalf("Debug() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("debug record written below level: %s", buf.String())
	}

	if err := l.Warn("visible"); err != nil {
		t.Fatalf("Warn() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn record missing")
	}
}

func TestLogger_DisposedOnQueueClosed(t *testing.T) {
	var buf bytes.Buffer
	l := eventlog.New(&buf)

	p := queue.NewPump()
	if err := l.Attach(p); err != nil {
		t.Fatalf("Attach() failed: %v", err)
	}

	if err := l.Info("before close"); err != nil {
		t.Fatalf("Info() before close failed: %v", err)
	}

	if err := p.BeginClose(); err != nil {
		t.Fatalf("BeginClose() failed: %v", err)
	}
	p.HandleAll(context.Background())

	if !l.Disposed() {
		t.Fatal("logger not disposed after queue closed")
	}
	if err := l.Info("after close"); err != eventlog.ErrDisposed {
		t.Errorf("Info() after close = %v, want ErrDisposed", err)
	}
	if err := l.Error("after close"); err != eventlog.ErrDisposed {
		t.Errorf("Error() after close = %v, want ErrDisposed", err)
	}
	if strings.Contains(buf.String(), "after close") {
		t.Error("record written after disposal")
	}
}

func TestLogger_RecordsDeliveryFailures(t *testing.T) {
	var buf bytes.Buffer
	l := eventlog.New(&buf)

	p := queue.NewPump()
	if err := l.Attach(p); err != nil {
		t.Fatalf("Attach() failed: %v", err)
	}
	failing := event.SubscriberFunc(func(ctx context.Context, ev any) error {
		return errors.New("boom")
	})
	if err := p.Subscribe("test.noisy", failing); err != nil {
		t.Fatalf("Subscribe() failed: %v", err)
	}

	if err := p.Enqueue(noisy{}); err != nil {
		t.Fatalf("Enqueue() failed: %v", err)
	}
	p.HandleAll(context.Background())

	out := buf.String()
	if !strings.Contains(out, "event delivery failed") {
		t.Errorf("no delivery-failure record written: %s", out)
	}
	if !strings.Contains(out, "test.noisy") {
		t.Errorf("record does not name the failed event's category: %s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("record does not carry the subscriber error: %s", out)
	}
}

func TestLogger_IgnoresUnrelatedEvents(t *testing.T) {
	var buf bytes.Buffer
	l := eventlog.New(&buf)

	if err := l.Handle(context.Background(), noisy{}); err != nil {
		t.Errorf("Handle() of unrelated event = %v, want nil", err)
	}
	if l.Disposed() {
		t.Error("logger disposed by unrelated event")
	}
}
