package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
)

// Exporter produces flattened dataset records.
type Exporter interface {
	Sample(n int) []models.DatasetRecord
}

// ExportHandler serves sampled synthetic datasets.
type ExportHandler struct {
	sampler Exporter
	samples int
}

// NewExportHandler creates a handler that samples the given number of
// records per request.
func NewExportHandler(sampler Exporter, samples int) *ExportHandler {
	return &ExportHandler{sampler: sampler, samples: samples}
}

// ExportResponse is the JSON response structure for GET /export.
type ExportResponse struct {
	Dataset []models.DatasetRecord `json:"dataset"`
	Count   int                    `json:"count"`
}

// Export handles GET /export and returns a freshly sampled dataset.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	dataset := h.sampler.Sample(h.samples)

	response := ExportResponse{
		Dataset: dataset,
		Count:   len(dataset),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
