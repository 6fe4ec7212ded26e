package datastructure

import (
	"fmt"

	"github.com/Afroza0808/1638-GraphProject/pkg/geo"
)

// Location a geographic point. Identity is the quantized grid key, the raw
// coordinates are kept for distance computation and display.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewLocation(lat, lon float64) Location {
	return Location{Lat: lat, Lon: lon}
}

func (l Location) Key() geo.Key {
	return geo.KeyOf(l.Lat, l.Lon)
}

func (l Location) Equal(o Location) bool {
	return l.Key() == o.Key()
}

func (l Location) Less(o Location) bool {
	return l.Key().Less(o.Key())
}

// DistanceTo great-circle distance in km.
func (l Location) DistanceTo(o Location) float64 {
	return geo.HaversineDistance(l.Lat, l.Lon, o.Lat, o.Lon)
}

// String formats as (lon,lat), the order used in the route csv files.
func (l Location) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", l.Lon, l.Lat)
}

// Edge directed arc. Dist in km.
type Edge struct {
	From Location
	To   Location
	Dist float64
	Mode TransportMode
	Name string
}

func NewEdge(from, to Location, dist float64, mode TransportMode) Edge {
	return Edge{From: from, To: to, Dist: dist, Mode: mode}
}
