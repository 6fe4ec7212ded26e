package routingalgorithm

import (
	"fmt"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/geo"
	"github.com/samber/lo"
)

type Graph interface {
	Neighbors(loc datastructure.Location) []datastructure.Edge
}

// CostFunc edge weight of the search. Must be non-negative, a negative
// weight does not break the search but the path is no longer optimal.
type CostFunc func(e datastructure.Edge) float64

type RouteStatus int

const (
	// RouteFound path with at least one edge.
	RouteFound RouteStatus = iota
	// RouteTrivial source and destination are the same location.
	RouteTrivial
	// RouteUnreachable no path under the allowed modes.
	RouteUnreachable
)

func (s RouteStatus) String() string {
	switch s {
	case RouteFound:
		return "found"
	case RouteTrivial:
		return "trivial"
	case RouteUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

func (s RouteStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *RouteStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "found":
		*s = RouteFound
	case "trivial":
		*s = RouteTrivial
	case "unreachable":
		*s = RouteUnreachable
	default:
		return fmt.Errorf("unknown route status %q", string(b))
	}
	return nil
}

type Route struct {
	Status RouteStatus
	From   datastructure.Location
	To     datastructure.Location
	// Edges in source to destination order, empty unless Status is RouteFound.
	Edges []datastructure.Edge
	Cost  float64
}

func (r Route) Reachable() bool {
	return r.Status != RouteUnreachable
}

type RouteAlgorithm struct {
	g Graph
}

func NewRouteAlgorithm(g Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

/*
ShortestPath dijkstra from -> to over edges whose mode is in allowed, weighted by cost.
Every node is settled at most once, stale queue entries of settled nodes are skipped,
the search stops as soon as the destination is settled.

time complexity: O((V+E)logV) with a binary heap.
*/
func (rt *RouteAlgorithm) ShortestPath(from, to datastructure.Location, allowed datastructure.ModeSet,
	cost CostFunc) Route {

	if from.Equal(to) {
		return Route{Status: RouteTrivial, From: from, To: to, Edges: []datastructure.Edge{}}
	}

	src, dst := from.Key(), to.Key()

	dist := make(map[geo.Key]float64)
	cameFrom := make(map[geo.Key]datastructure.Edge)
	settled := make(map[geo.Key]bool)

	pq := NewMinHeap[datastructure.Location]()
	pq.Insert(PriorityQueueNode[datastructure.Location]{Rank: 0, Item: from})
	dist[src] = 0.0

	found := false
	for pq.Size() > 0 {
		curr, _ := pq.ExtractMin()
		currKey := curr.Item.Key()
		if settled[currKey] {
			continue
		}
		settled[currKey] = true

		if currKey == dst {
			found = true
			break
		}

		for _, e := range rt.g.Neighbors(curr.Item) {
			if !allowed.Contains(e.Mode) {
				continue
			}
			toKey := e.To.Key()
			if settled[toKey] {
				continue
			}

			newCost := dist[currKey] + cost(e)
			if old, ok := dist[toKey]; !ok || newCost < old {
				dist[toKey] = newCost
				cameFrom[toKey] = e
				pq.Insert(PriorityQueueNode[datastructure.Location]{Rank: newCost, Item: e.To})
			}
		}
	}

	if !found {
		return Route{Status: RouteUnreachable, From: from, To: to, Edges: []datastructure.Edge{}}
	}

	return Route{
		Status: RouteFound,
		From:   from,
		To:     to,
		Edges:  reconstructPath(cameFrom, src, dst),
		Cost:   dist[dst],
	}
}

// reconstructPath predecessors always point at nodes settled earlier, so the
// walk back from dst ends at src.
func reconstructPath(cameFrom map[geo.Key]datastructure.Edge, src, dst geo.Key) []datastructure.Edge {
	path := []datastructure.Edge{}
	for curr := dst; curr != src; {
		e := cameFrom[curr]
		path = append(path, e)
		curr = e.From.Key()
	}
	return lo.Reverse(path)
}
