package itinerary

import (
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
	"github.com/samber/lo"
)

// WalkThresholdKm gaps between a query point and its snapped location up to
// this length are not worth a walk segment.
const WalkThresholdKm = 0.001

type StationNamer interface {
	StationName(loc datastructure.Location) string
}

// Segment maximal run of same mode edges. Dist is the sum of the edge
// distances, not the geodesic between the endpoints.
type Segment struct {
	From     datastructure.Location      `json:"from"`
	To       datastructure.Location      `json:"to"`
	Mode     datastructure.TransportMode `json:"mode"`
	Dist     float64                     `json:"distance_km"`
	Cost     float64                     `json:"cost"`
	FromName string                      `json:"from_name,omitempty"`
	ToName   string                      `json:"to_name,omitempty"`
}

type Itinerary struct {
	Status      routingalgorithm.RouteStatus `json:"status"`
	Objective   costpolicy.Objective         `json:"objective"`
	Source      datastructure.Location       `json:"source"`
	Destination datastructure.Location       `json:"destination"`
	Segments    []Segment                    `json:"segments"`
	// Total sum of segment distances or costs, depending on Objective.
	Total float64 `json:"total"`
}

func (it Itinerary) TotalDistance() float64 {
	return lo.SumBy(it.Segments, func(s Segment) float64 { return s.Dist })
}

func (it Itinerary) TotalCost() float64 {
	return lo.SumBy(it.Segments, func(s Segment) float64 { return s.Cost })
}

func (it Itinerary) Found() bool {
	return it.Status != routingalgorithm.RouteUnreachable
}

// Trace segment endpoints in travel order: the start of every segment
// followed by the end of the last one.
func (it Itinerary) Trace() []datastructure.Location {
	if len(it.Segments) == 0 {
		return []datastructure.Location{}
	}
	trace := lo.Map(it.Segments, func(s Segment, _ int) datastructure.Location { return s.From })
	return append(trace, it.Segments[len(it.Segments)-1].To)
}
