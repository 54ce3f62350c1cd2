// Package simulate computes heuristic per-intersection congestion from a
// time/day rule table combined with weather and area multipliers. There is no
// learned model behind it; every score is a bounded random draw shaped by the
// rule table.
package simulate

import (
	"math"
	"math/rand"
	"sync"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/randutil"
)

// Derived-field constants: free-flow speed and the wait-time ceiling.
const (
	freeFlowSpeedKmh = 40.0
	maxWaitSeconds   = 180.0
)

// Simulator produces congestion predictions over an immutable node set.
// The rand source is shared across requests, so draws are serialized with a
// mutex; chi serves handlers concurrently and *rand.Rand is not safe for
// concurrent use.
type Simulator struct {
	nodes []models.Node

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a simulator over the given nodes. The caller supplies the rand
// source; tests pass a fixed seed, production passes a time-seeded one.
func New(nodes []models.Node, rng *rand.Rand) *Simulator {
	return &Simulator{nodes: nodes, rng: rng}
}

// Predict returns a fresh prediction for every node under the given
// conditions. Inputs must already be validated at the boundary. Each call
// redraws all random terms, so two calls with identical arguments will not
// agree; that is the intended behavior, not a caching bug.
func (s *Simulator) Predict(timeOfDay int, weather, dayType string) map[string]models.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	predictions := make(map[string]models.Prediction, len(s.nodes))
	for _, node := range s.nodes {
		base := s.baseCongestion(timeOfDay, dayType)
		level := base * weatherFactor(weather) * areaFactor(node.Features.AreaType, timeOfDay)
		level = round3(clamp(level, 0.1, 1.0))

		predictions[node.ID] = models.Prediction{
			CongestionLevel: level,
			PredictedSpeed:  round1(freeFlowSpeedKmh * (1 - level)),
			// Volume is drawn independently of congestion. A causal model
			// would couple them; the simulation deliberately does not.
			Volume:   randutil.IntBetween(s.rng, 50, 300),
			WaitTime: round1(level * maxWaitSeconds),
		}
	}

	return predictions
}

// baseCongestion draws the time/day base term. Rush hours and weekend middays
// sit in higher bands; every band is a uniform draw, not a fixed constant.
func (s *Simulator) baseCongestion(timeOfDay int, dayType string) float64 {
	if dayType == models.DayWeekday {
		switch {
		case (timeOfDay >= 7 && timeOfDay <= 10) || (timeOfDay >= 17 && timeOfDay <= 20):
			return randutil.FloatBetween(s.rng, 0.70, 0.95)
		case timeOfDay >= 11 && timeOfDay <= 16:
			return randutil.FloatBetween(s.rng, 0.40, 0.60)
		default:
			return randutil.FloatBetween(s.rng, 0.20, 0.40)
		}
	}

	if timeOfDay >= 10 && timeOfDay <= 14 {
		return randutil.FloatBetween(s.rng, 0.50, 0.70)
	}
	return randutil.FloatBetween(s.rng, 0.20, 0.50)
}

func weatherFactor(weather string) float64 {
	if weather == models.WeatherRainy {
		return 1.3
	}
	return 1.0
}

// areaFactor scales congestion by how active an area is at a given hour.
func areaFactor(areaType string, timeOfDay int) float64 {
	switch areaType {
	case models.AreaCommercial:
		if timeOfDay >= 9 && timeOfDay <= 21 {
			return 1.2
		}
		return 0.8
	case models.AreaTechHub:
		if timeOfDay >= 8 && timeOfDay <= 19 {
			return 1.3
		}
		return 0.7
	case models.AreaResidential:
		if (timeOfDay >= 6 && timeOfDay <= 9) || (timeOfDay >= 18 && timeOfDay <= 22) {
			return 1.1
		}
		return 0.9
	default:
		return 1.0
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
