package http

import (
	"encoding/json"
	"net/http"

	"github.com/chanderlud/dstat-frontend/internal/ingestors"
)

const maxReportBodyBytes = 64 << 10

type reportHandler struct {
	ingestionService ingestors.IngestionService
}

func NewReportHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &reportHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /api/v1/reports requests. A stored report is answered with an empty 200.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req ingestors.ReportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxReportBodyBytes)).Decode(&req); err != nil {
		return errMalformedBody(err)
	}

	if err := h.ingestionService.SubmitReport(r.Context(), &req); err != nil {
		return err
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
