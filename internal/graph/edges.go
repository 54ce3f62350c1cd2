package graph

import (
	"math/rand"
	"sort"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/geo"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/randutil"
)

// Edge construction parameters.
const (
	minConnections    = 2
	maxConnections    = 4
	maxEdgeDistanceKm = 5.0
)

type candidate struct {
	index    int
	distance float64
}

// GenerateEdges connects each node to a random-sized subset of its nearest
// neighbors, dropping candidates past the distance cutoff. The cutoff is
// applied after rank selection, so a node may end up with fewer edges than
// its drawn connection count.
//
// The pass is O(N^2) in the node count. That is deliberate: the graph is
// built once at startup over tens of nodes, and a spatial index would buy
// nothing at this scale.
func GenerateEdges(rng *rand.Rand, nodes []models.Node) []models.Edge {
	var edges []models.Edge

	for i, node := range nodes {
		candidates := make([]candidate, 0, len(nodes)-1)
		for j, other := range nodes {
			if i == j {
				continue
			}
			candidates = append(candidates, candidate{
				index:    j,
				distance: geo.DistanceKm(node.Lat, node.Lng, other.Lat, other.Lng),
			})
		}

		sort.Slice(candidates, func(a, b int) bool {
			return candidates[a].distance < candidates[b].distance
		})

		upper := maxConnections
		if len(candidates) < upper {
			upper = len(candidates)
		}
		connections := randutil.IntBetween(rng, minConnections, upper)

		for _, c := range candidates[:connections] {
			if c.distance >= maxEdgeDistanceKm {
				continue
			}
			edges = append(edges, models.Edge{
				Source:   node.ID,
				Target:   nodes[c.index].ID,
				Distance: c.distance,
				RoadType: randutil.Choice(rng, models.RoadTypes),
				Weight:   1.0,
			})
		}
	}

	return edges
}
