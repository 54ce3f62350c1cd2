// Package graph generates the synthetic road network: intersections jittered
// around fixed city-area anchors, connected by a directed proximity graph.
package graph

import (
	"math/rand"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
)

// Graph is the road network built once at startup. It is immutable after
// Build returns, so concurrent request handlers can read it freely.
type Graph struct {
	Nodes []models.Node
	Edges []models.Edge

	out map[string][]models.Edge
}

// Build generates nodes and edges from the anchor catalog using the given
// random source. Passing a seeded source makes the whole network
// reproducible.
func Build(rng *rand.Rand) *Graph {
	nodes := GenerateNodes(rng)
	edges := GenerateEdges(rng, nodes)

	out := make(map[string][]models.Edge, len(nodes))
	for _, e := range edges {
		out[e.Source] = append(out[e.Source], e)
	}

	return &Graph{Nodes: nodes, Edges: edges, out: out}
}

// Outgoing returns the edges leaving the given node.
func (g *Graph) Outgoing(nodeID string) []models.Edge {
	return g.out[nodeID]
}

// Node looks up a node by id.
func (g *Graph) Node(id string) (models.Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Node{}, false
}
