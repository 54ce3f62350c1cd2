package graph

import "github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"

// Anchor is a named city center that intersections are scattered around.
// Anchors exist only during generation; they are not queryable afterwards.
type Anchor struct {
	Name     string
	Lat      float64
	Lng      float64
	AreaType string
}

// areaAnchors is the fixed catalog of Bangalore areas used to seed node
// placement. Coordinates are the well-known centers of each neighbourhood.
var areaAnchors = []Anchor{
	{Name: "MG Road", Lat: 12.9716, Lng: 77.5946, AreaType: models.AreaCommercial},
	{Name: "Brigade Road", Lat: 12.9698, Lng: 77.6103, AreaType: models.AreaCommercial},
	{Name: "Whitefield", Lat: 12.9698, Lng: 77.7500, AreaType: models.AreaTechHub},
	{Name: "Electronic City", Lat: 12.8456, Lng: 77.6603, AreaType: models.AreaTechHub},
	{Name: "Koramangala", Lat: 12.9352, Lng: 77.6245, AreaType: models.AreaResidential},
	{Name: "Indiranagar", Lat: 12.9719, Lng: 77.6412, AreaType: models.AreaMixed},
	{Name: "Jayanagar", Lat: 12.9279, Lng: 77.5830, AreaType: models.AreaResidential},
	{Name: "Banashankari", Lat: 12.9081, Lng: 77.5574, AreaType: models.AreaResidential},
	{Name: "Marathahalli", Lat: 12.9591, Lng: 77.6974, AreaType: models.AreaTechHub},
	{Name: "HSR Layout", Lat: 12.9082, Lng: 77.6476, AreaType: models.AreaResidential},
}

// Anchors returns the fixed area catalog.
func Anchors() []Anchor {
	return areaAnchors
}
