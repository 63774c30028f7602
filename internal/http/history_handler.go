package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/queries"
)

type historyHandler struct {
	queryService queries.QueryService
}

func NewHistoryHandler(queryService queries.QueryService) AppHttpHandler {
	return &historyHandler{
		queryService: queryService,
	}
}

// Handle processes GET /api/v1/history?name= requests.
func (h *historyHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Query().Get("name")
	if name == "" {
		return errMissingParameter("name")
	}

	summary, err := h.queryService.RecentWindow(r.Context(), name)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, summary)
}
