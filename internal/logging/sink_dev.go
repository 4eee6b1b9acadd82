//go:build dev

package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"time"
)

const defaultSocket = "/tmp/mcplogd.sock"
const appName = "srcdep"

type entry struct {
	App       string         `json:"app"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// sinkHandler mirrors every handled record to the local log daemon socket.
// Delivery is best effort.
type sinkHandler struct {
	next  slog.Handler
	attrs []slog.Attr
}

func withSink(handler slog.Handler) slog.Handler {
	return &sinkHandler{next: handler}
}

func (h *sinkHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sinkHandler) Handle(ctx context.Context, record slog.Record) error {
	metadata := make(map[string]any, record.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		metadata[a.Key] = a.Value.Any()
	}
	record.Attrs(func(a slog.Attr) bool {
		metadata[a.Key] = a.Value.Any()
		return true
	})
	send(record.Level.String(), record.Message, metadata)
	return h.next.Handle(ctx, record)
}

func (h *sinkHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sinkHandler{next: h.next.WithAttrs(attrs), attrs: append(append([]slog.Attr(nil), h.attrs...), attrs...)}
}

func (h *sinkHandler) WithGroup(name string) slog.Handler {
	return &sinkHandler{next: h.next.WithGroup(name), attrs: h.attrs}
}

func send(level, message string, metadata map[string]any) {
	conn, err := net.Dial("unix", defaultSocket)
	if err != nil {
		return
	}
	defer conn.Close()

	e := entry{
		App:       appName,
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Metadata:  metadata,
	}
	data, _ := json.Marshal(e)
	fmt.Fprintf(conn, "%s\n", data)
}
