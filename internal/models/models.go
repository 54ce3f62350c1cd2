// Package models holds the wire types shared by the graph generator, the
// congestion simulator and the HTTP layer.
package models

import "fmt"

// Road types assigned to intersections and road segments.
const (
	RoadTypeHighway  = "highway"
	RoadTypeArterial = "arterial"
	RoadTypeLocal    = "local"
)

// Area types driving the time-dependent congestion multipliers.
const (
	AreaCommercial  = "commercial"
	AreaTechHub     = "tech_hub"
	AreaResidential = "residential"
	AreaMixed       = "mixed"
)

// Weather conditions accepted by the simulator.
const (
	WeatherSunny = "sunny"
	WeatherRainy = "rainy"
)

// Day types accepted by the simulator.
const (
	DayWeekday = "weekday"
	DayWeekend = "weekend"
)

// RoadTypes lists all valid road type values.
var RoadTypes = []string{RoadTypeHighway, RoadTypeArterial, RoadTypeLocal}

// NodeFeatures are the static attributes of an intersection.
type NodeFeatures struct {
	AreaType    string `json:"area_type"`
	Capacity    int    `json:"capacity"`
	SignalCount int    `json:"signal_count"`
}

// Node is a generated intersection. Nodes are created once at startup and
// are immutable afterwards; the ID is the identity.
type Node struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Lat      float64      `json:"lat"`
	Lng      float64      `json:"lng"`
	RoadType string       `json:"road_type"`
	Features NodeFeatures `json:"features"`
}

// Edge is a directed road segment between two intersections. Edges are not
// symmetrized or deduplicated; an edge A->B does not imply B->A.
type Edge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Distance float64 `json:"distance"` // km
	RoadType string  `json:"road_type"`
	Weight   float64 `json:"weight"`
}

// Prediction is the simulated congestion state of one intersection for one
// condition tuple. Predictions are recomputed on every request, never cached.
type Prediction struct {
	CongestionLevel float64 `json:"congestion_level"`
	PredictedSpeed  float64 `json:"predicted_speed"` // km/h
	Volume          int     `json:"volume"`
	WaitTime        float64 `json:"wait_time"` // seconds
}

// PredictionRequest is the POST /predict body.
type PredictionRequest struct {
	TimeOfDay int    `json:"time_of_day"`
	Weather   string `json:"weather"`
	DayType   string `json:"day_type"`
}

// Validate rejects out-of-range or unrecognized condition values. It must be
// called at the HTTP boundary before the simulator runs.
func (r *PredictionRequest) Validate() error {
	if r.TimeOfDay < 0 || r.TimeOfDay > 23 {
		return fmt.Errorf("time_of_day must be between 0 and 23, got %d", r.TimeOfDay)
	}
	if r.Weather != WeatherSunny && r.Weather != WeatherRainy {
		return fmt.Errorf("weather must be %q or %q, got %q", WeatherSunny, WeatherRainy, r.Weather)
	}
	if r.DayType != DayWeekday && r.DayType != DayWeekend {
		return fmt.Errorf("day_type must be %q or %q, got %q", DayWeekday, DayWeekend, r.DayType)
	}
	return nil
}

// DatasetRecord is one flattened training sample: a node's static attributes
// joined with a simulated prediction under a random condition tuple.
type DatasetRecord struct {
	Timestamp        string  `json:"timestamp"`
	IntersectionID   string  `json:"intersection_id"`
	IntersectionName string  `json:"intersection_name"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	RoadType         string  `json:"road_type"`
	AreaType         string  `json:"area_type"`
	TimeOfDay        int     `json:"time_of_day"`
	Weather          string  `json:"weather"`
	DayType          string  `json:"day_type"`
	CongestionLevel  float64 `json:"congestion_level"`
	PredictedSpeed   float64 `json:"predicted_speed"`
	Volume           int     `json:"volume"`
	WaitTime         float64 `json:"wait_time"`
}
