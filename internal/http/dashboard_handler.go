package http

import (
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/queries"
	"github.com/chanderlud/dstat-frontend/internal/shared/svcerrors"
)

type dashboardHandler struct {
	queryService queries.QueryService
}

func NewDashboardHandler(queryService queries.QueryService) AppHttpHandler {
	return &dashboardHandler{
		queryService: queryService,
	}
}

// Handle processes GET /?server= requests.
//
// An unknown server is redirected to the default dashboard. Without a server parameter there is
// nowhere further to redirect, so an empty catalog surfaces as not_found.
func (h *dashboardHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	requested := r.URL.Query().Get("server")

	target, err := h.queryService.DashboardTarget(r.Context(), requested)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsNotFound() && requested != "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return nil
		}
		return err
	}

	return writeJSON(w, http.StatusOK, target)
}
