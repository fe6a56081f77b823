package handlers

import (
	"net/http"

	"github.com/Dosada05/swiss-tournament/services"
)

type ExportHandler struct {
	exportService services.ExportService
}

func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

func (h *ExportHandler) ExportRound(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.ExportRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"export": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
