package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zatekoja/arovia/web/internal/application/sessions"
	"github.com/zatekoja/arovia/web/internal/infrastructure/observability"
)

const defaultHeartbeat = 30 * time.Second

// NotificationHandler exposes a session's toasts as JSON and as an event stream
type NotificationHandler struct {
	heartbeat time.Duration
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(heartbeat time.Duration) *NotificationHandler {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	return &NotificationHandler{heartbeat: heartbeat}
}

// ListActive handles GET /notifications
func (h *NotificationHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	session, ok := sessions.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "no session")
		return
	}
	respondWithJSON(w, http.StatusOK, session.Notifications.Active())
}

// Dismiss handles POST /notifications/{id}/dismiss
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	session, ok := sessions.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "no session")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "toast ID is required")
		return
	}
	session.Notifications.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}

// Stream handles GET /notifications/stream
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	session, ok := sessions.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "no session")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ctx := r.Context()
	logger := observability.LoggerFromContext(ctx)
	toasts := session.Notifications.Subscribe(ctx)

	h.sendEvent(w, "connected", map[string]interface{}{
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Str("session_id", session.ID).Msg("notification stream closed")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case toast, ok := <-toasts:
			if !ok {
				return
			}
			h.sendEvent(w, "toast", toast)
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE event
func (h *NotificationHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		observability.GetLogger().Error().Err(err).Msg("failed to marshal event data")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
