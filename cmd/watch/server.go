package watch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// broker fans graph updates and rebuild errors out to SSE clients. A new
// client gets the last graph and, if the last rebuild failed, its error.
type broker struct {
	mu        sync.Mutex
	clients   map[chan graphUpdate]struct{}
	lastGraph *graphUpdate
	lastError *graphUpdate
}

func newBroker() *broker {
	return &broker{
		clients: make(map[chan graphUpdate]struct{}),
	}
}

func (b *broker) subscribe() chan graphUpdate {
	ch := make(chan graphUpdate, 2)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	if b.lastGraph != nil {
		ch <- *b.lastGraph
	}
	if b.lastError != nil {
		ch <- *b.lastError
	}
	b.mu.Unlock()
	return ch
}

func (b *broker) unsubscribe(ch chan graphUpdate) {
	b.mu.Lock()
	delete(b.clients, ch)
	close(ch)
	b.mu.Unlock()
}

// publish records u and sends it to every client. A graph clears the last
// error. Slow clients drop the update and pick up a later one.
func (b *broker) publish(u graphUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch u.Event {
	case sseEventGraph:
		b.lastGraph, b.lastError = &u, nil
	case sseEventError:
		b.lastError = &u
	}
	for ch := range b.clients {
		select {
		case ch <- u:
		default:
		}
	}
}

func newServer(b *broker, port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc(routeIndex, handleIndex)
	mux.HandleFunc(routeEvents, handleSSE(b))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
}

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(indexHTML)); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func handleSSE(b *broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ch := b.subscribe()
		defer b.unsubscribe(ch)

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-ch:
				if !ok {
					return
				}
				payload, err := json.Marshal(u)
				if err != nil {
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", u.Event, payload)
				flusher.Flush()
			}
		}
	}
}
