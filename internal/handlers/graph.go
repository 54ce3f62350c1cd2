package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/graph"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
)

// GraphHandler serves the road network snapshot. The graph is immutable
// after startup, so the handler needs no locking.
type GraphHandler struct {
	graph *graph.Graph
}

// NewGraphHandler creates a handler over the given graph.
func NewGraphHandler(g *graph.Graph) *GraphHandler {
	return &GraphHandler{graph: g}
}

// GraphResponse is the JSON response structure for GET /graph.
type GraphResponse struct {
	Nodes []models.Node `json:"nodes"`
	Edges []models.Edge `json:"edges"`
}

// GetGraph handles GET /graph and returns the full current graph snapshot.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	response := GraphResponse{
		Nodes: h.graph.Nodes,
		Edges: h.graph.Edges,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
