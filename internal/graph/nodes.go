package graph

import (
	"fmt"
	"math/rand"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/randutil"
)

// Node placement parameters.
const (
	minNodesPerAnchor = 4
	maxNodesPerAnchor = 8
	jitterDegrees     = 0.01
)

// Road type weights per area. Residential areas favor local roads; everywhere
// else highway and arterial are equally likely.
var (
	residentialRoadWeights = []float64{0.2, 0.3, 0.5}
	defaultRoadWeights     = []float64{0.4, 0.4, 0.2}
)

// GenerateNodes scatters a random number of intersections around each area
// anchor. IDs form a single monotonically increasing sequence across the
// whole pass, so generation order is a stable internal index.
func GenerateNodes(rng *rand.Rand) []models.Node {
	var nodes []models.Node
	nodeID := 0

	for _, anchor := range areaAnchors {
		count := randutil.IntBetween(rng, minNodesPerAnchor, maxNodesPerAnchor)

		for i := 0; i < count; i++ {
			latOffset := randutil.FloatBetween(rng, -jitterDegrees, jitterDegrees)
			lngOffset := randutil.FloatBetween(rng, -jitterDegrees, jitterDegrees)

			weights := defaultRoadWeights
			if anchor.AreaType == models.AreaResidential {
				weights = residentialRoadWeights
			}

			nodes = append(nodes, models.Node{
				ID:       fmt.Sprintf("node_%d", nodeID),
				Name:     fmt.Sprintf("%s Junction %d", anchor.Name, i+1),
				Lat:      anchor.Lat + latOffset,
				Lng:      anchor.Lng + lngOffset,
				RoadType: randutil.Weighted(rng, models.RoadTypes, weights),
				Features: models.NodeFeatures{
					AreaType:    anchor.AreaType,
					Capacity:    randutil.IntBetween(rng, 100, 500),
					SignalCount: randutil.IntBetween(rng, 2, 6),
				},
			})
			nodeID++
		}
	}

	return nodes
}
