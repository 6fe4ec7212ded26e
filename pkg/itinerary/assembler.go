package itinerary

import (
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/routingalgorithm"
)

type Assembler struct {
	stations StationNamer
}

func NewAssembler(stations StationNamer) *Assembler {
	return &Assembler{stations: stations}
}

// Assemble turns a search result between two snapped locations into the
// itinerary between the original, unsnapped source and destination.
//
// An unreachable route yields no segments and a zero total. A trivial route
// (both points snapped to the same location) yields only the walk legs
// through that location.
func (a *Assembler) Assemble(route routingalgorithm.Route, source, destination datastructure.Location,
	policy costpolicy.Policy) Itinerary {

	it := Itinerary{
		Status:      route.Status,
		Objective:   policy.Objective,
		Source:      source,
		Destination: destination,
		Segments:    []Segment{},
	}
	if route.Status == routingalgorithm.RouteUnreachable {
		return it
	}

	entry, exit := route.From, route.To
	if len(route.Edges) > 0 {
		entry = route.Edges[0].From
		exit = route.Edges[len(route.Edges)-1].To
	}

	if d := source.DistanceTo(entry); d > WalkThresholdKm {
		it.Segments = append(it.Segments, walkSegment(source, entry, d))
	}

	for _, seg := range Coalesce(route.Edges) {
		seg.FromName = a.stations.StationName(seg.From)
		seg.ToName = a.stations.StationName(seg.To)
		it.Segments = append(it.Segments, seg)
	}

	if d := exit.DistanceTo(destination); d > WalkThresholdKm {
		it.Segments = append(it.Segments, walkSegment(exit, destination, d))
	}

	// costs come from the coalesced distance, not from per edge sums
	for i := range it.Segments {
		seg := &it.Segments[i]
		seg.Cost = policy.SegmentCost(seg.Mode, seg.Dist)
		if policy.Objective == costpolicy.ObjectiveDistance {
			it.Total += seg.Dist
		} else {
			it.Total += seg.Cost
		}
	}
	return it
}

func walkSegment(from, to datastructure.Location, dist float64) Segment {
	return Segment{From: from, To: to, Mode: datastructure.Walk, Dist: dist}
}

// Coalesce merges consecutive edges into one segment while the mode stays the
// same and each edge starts where the previous one ended.
func Coalesce(edges []datastructure.Edge) []Segment {
	segs := []Segment{}
	if len(edges) == 0 {
		return segs
	}

	curr := Segment{From: edges[0].From, To: edges[0].To, Mode: edges[0].Mode, Dist: edges[0].Dist}
	for _, e := range edges[1:] {
		if e.Mode == curr.Mode && e.From.Equal(curr.To) {
			curr.To = e.To
			curr.Dist += e.Dist
			continue
		}
		segs = append(segs, curr)
		curr = Segment{From: e.From, To: e.To, Mode: e.Mode, Dist: e.Dist}
	}
	return append(segs, curr)
}
