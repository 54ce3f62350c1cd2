// Package dataset draws random condition tuples against the simulator and
// flattens the results into training-style records.
package dataset

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/randutil"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/simulate"
)

var (
	weatherChoices = []string{models.WeatherSunny, models.WeatherRainy}
	dayChoices     = []string{models.DayWeekday, models.DayWeekend}
)

// Sampler emits flattened records joining node attributes with simulated
// predictions under random conditions.
type Sampler struct {
	nodes []models.Node
	sim   *simulate.Simulator

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a sampler over the given nodes and simulator.
func New(nodes []models.Node, sim *simulate.Simulator, rng *rand.Rand) *Sampler {
	return &Sampler{nodes: nodes, sim: sim, rng: rng}
}

// Sample returns exactly n records. Each iteration draws a fresh condition
// tuple and node, runs a full prediction pass, and keeps only the chosen
// node's entry. Recomputing all nodes per iteration mirrors how a consumer
// of the /predict endpoint would collect samples; it is an efficiency note,
// not a behavior contract.
func (s *Sampler) Sample(n int) []models.DatasetRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.DatasetRecord, 0, n)
	for i := 0; i < n; i++ {
		timeOfDay := randutil.IntBetween(s.rng, 0, 23)
		weather := randutil.Choice(s.rng, weatherChoices)
		dayType := randutil.Choice(s.rng, dayChoices)
		node := s.nodes[s.rng.Intn(len(s.nodes))]

		prediction := s.sim.Predict(timeOfDay, weather, dayType)[node.ID]

		records = append(records, models.DatasetRecord{
			Timestamp:        fmt.Sprintf("2024-01-%02d %02d:00:00", randutil.IntBetween(s.rng, 1, 30), timeOfDay),
			IntersectionID:   node.ID,
			IntersectionName: node.Name,
			Lat:              node.Lat,
			Lng:              node.Lng,
			RoadType:         node.RoadType,
			AreaType:         node.Features.AreaType,
			TimeOfDay:        timeOfDay,
			Weather:          weather,
			DayType:          dayType,
			CongestionLevel:  prediction.CongestionLevel,
			PredictedSpeed:   prediction.PredictedSpeed,
			Volume:           prediction.Volume,
			WaitTime:         prediction.WaitTime,
		})
	}

	return records
}
