package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
)

// Predictor produces per-node congestion predictions for a condition tuple.
type Predictor interface {
	Predict(timeOfDay int, weather, dayType string) map[string]models.Prediction
}

// PredictHandler handles congestion prediction requests.
type PredictHandler struct {
	sim Predictor
}

// NewPredictHandler creates a handler over the given predictor.
func NewPredictHandler(sim Predictor) *PredictHandler {
	return &PredictHandler{sim: sim}
}

// ModelInfo is the static metadata block returned with every prediction.
// The values describe the simulated model; nothing is actually trained.
type ModelInfo struct {
	Algorithm   string   `json:"algorithm"`
	Features    []string `json:"features"`
	Accuracy    float64  `json:"accuracy"`
	LastTrained string   `json:"last_trained"`
}

// PredictResponse is the JSON response structure for POST /predict.
type PredictResponse struct {
	Predictions map[string]models.Prediction `json:"predictions"`
	ModelInfo   ModelInfo                    `json:"model_info"`
}

var staticModelInfo = ModelInfo{
	Algorithm:   "Graph Convolutional Network (GCN)",
	Features:    []string{"time_of_day", "weather", "area_type", "road_type"},
	Accuracy:    0.87,
	LastTrained: "2024-01-15",
}

// Predict handles POST /predict. Invalid condition values are rejected with
// a 400 before the simulator runs.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Invalid request body",
			Details: map[string]interface{}{
				"internal": err.Error(),
			},
		})
		return
	}

	if err := req.Validate(); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: "Invalid prediction request",
			Details: map[string]interface{}{
				"validation": err.Error(),
			},
		})
		return
	}

	response := PredictResponse{
		Predictions: h.sim.Predict(req.TimeOfDay, req.Weather, req.DayType),
		ModelInfo:   staticModelInfo,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
