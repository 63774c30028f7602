package http

import (
	"net/http"
	"strconv"

	"github.com/chanderlud/dstat-frontend/internal/queries"
)

type dataHandler struct {
	queryService queries.QueryService
}

func NewDataHandler(queryService queries.QueryService) AppHttpHandler {
	return &dataHandler{
		queryService: queryService,
	}
}

// Handle processes GET /api/v1/data?name= requests.
// The body is the bare decimal rate; "0" is returned both for idle and for offline servers.
func (h *dataHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	rate, err := h.queryService.RateFor(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(strconv.FormatInt(rate, 10)))
	return err
}
