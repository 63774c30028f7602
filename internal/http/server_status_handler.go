package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/models"
	"github.com/chanderlud/dstat-frontend/internal/queries"
)

type ServerStatusResponse struct {
	Statuses []*models.ServerStatus `json:"statuses"`
}

type serverStatusHandler struct {
	queryService queries.QueryService
}

func NewServerStatusHandler(queryService queries.QueryService) AppHttpHandler {
	return &serverStatusHandler{
		queryService: queryService,
	}
}

// Handle processes GET /server-status requests.
func (h *serverStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	statuses, err := h.queryService.FleetStatus(r.Context())
	if err != nil {
		return err
	}
	if statuses == nil {
		statuses = []*models.ServerStatus{}
	}

	return writeJSON(w, http.StatusOK, ServerStatusResponse{Statuses: statuses})
}
