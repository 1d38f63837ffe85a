package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// watchRun streams a run's progress events as server-sent events until the
// run reaches a terminal event or the client disconnects.
func (h *Handler) watchRun(w http.ResponseWriter, r *http.Request) {
	runID := strings.TrimSpace(r.URL.Query().Get("run_id"))
	if runID == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("run_id query parameter is required"))
		return
	}
	eventCh, ok := h.svc.Watch(runID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("run %s not found", runID))
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	closeStream := func() {
		fmt.Fprintf(w, "event: close\ndata: {}\n\n")
		flusher.Flush()
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case e, open := <-eventCh:
			if !open {
				closeStream()
				return
			}
			payload, err := json.Marshal(e)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
			if e.Terminal() {
				closeStream()
				return
			}
		}
	}
}
