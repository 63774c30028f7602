package http

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthHandler struct {
	pinger Pinger
}

func NewHealthHandler(pinger Pinger) AppHttpHandler {
	return &healthHandler{
		pinger: pinger,
	}
}

// Handle processes GET /healthz requests.
func (h *healthHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		return errInternalUnavailable(err)
	}

	return writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
