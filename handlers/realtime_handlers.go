package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"louay-store/realtime"
)

// StreamChanges handles the admin panel's live update feed over
// server-sent events. Each change on the watched collections arrives as
// one "change" event; a comment line keeps proxies from closing the
// connection while nothing happens.
func (h *Handler) StreamChanges(watcher *realtime.Watcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			h.ErrorHdlr.HandleInternalError(w, "Streaming is not supported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		events, cancel := watcher.Subscribe()
		defer cancel()

		fmt.Fprint(w, ": connected\n\n")
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case event, open := <-events:
				if !open {
					return
				}
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
