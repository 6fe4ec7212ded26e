package network

import (
	"math"
	"sync"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/geo"
	"github.com/dhconnelly/rtreego"
)

// Graph multi-modal network. Built once by the loader, read-only afterwards.
// Locations are bucketed by their grid key, so points closer than the grid
// resolution share adjacency and station entries.
type Graph struct {
	adjacency map[geo.Key][]datastructure.Edge
	locations map[geo.Key]datastructure.Location
	edgeCount int

	// station tables, one per transit mode
	metroStations map[geo.Key]Station
	bikolpoStops  map[geo.Key]Station
	uttaraStops   map[geo.Key]Station

	stationTreeOnce sync.Once
	stationTree     *rtreego.Rtree
}

type Station struct {
	Location datastructure.Location      `json:"location"`
	Name     string                      `json:"name"`
	Mode     datastructure.TransportMode `json:"mode"`
}

func NewGraph() *Graph {
	return &Graph{
		adjacency:     make(map[geo.Key][]datastructure.Edge),
		locations:     make(map[geo.Key]datastructure.Location),
		metroStations: make(map[geo.Key]Station),
		bikolpoStops:  make(map[geo.Key]Station),
		uttaraStops:   make(map[geo.Key]Station),
	}
}

// AddEdge non-negative distance is the caller's responsibility.
func (g *Graph) AddEdge(e datastructure.Edge) {
	g.addLocation(e.From)
	g.addLocation(e.To)
	k := e.From.Key()
	g.adjacency[k] = append(g.adjacency[k], e)
	g.edgeCount++
}

// addLocation the first location seen for a key is the canonical one.
func (g *Graph) addLocation(l datastructure.Location) {
	k := l.Key()
	if _, ok := g.locations[k]; !ok {
		g.locations[k] = l
	}
}

// Neighbors out edges of loc. The returned slice is owned by the graph.
func (g *Graph) Neighbors(loc datastructure.Location) []datastructure.Edge {
	return g.adjacency[loc.Key()]
}

func (g *Graph) AddMetroStation(loc datastructure.Location, name string) {
	g.metroStations[loc.Key()] = Station{loc, name, datastructure.Metro}
}

func (g *Graph) AddBikolpoStop(loc datastructure.Location, name string) {
	g.bikolpoStops[loc.Key()] = Station{loc, name, datastructure.BusBikolpo}
}

func (g *Graph) AddUttaraStop(loc datastructure.Location, name string) {
	g.uttaraStops[loc.Key()] = Station{loc, name, datastructure.BusUttara}
}

// AddStation registers a named stop in the table of the given transit mode.
// Non transit modes are ignored.
func (g *Graph) AddStation(mode datastructure.TransportMode, loc datastructure.Location, name string) {
	switch mode {
	case datastructure.Metro:
		g.AddMetroStation(loc, name)
	case datastructure.BusBikolpo:
		g.AddBikolpoStop(loc, name)
	case datastructure.BusUttara:
		g.AddUttaraStop(loc, name)
	}
}

// StationName looks the tables up in metro, bikolpo, uttara order.
func (g *Graph) StationName(loc datastructure.Location) string {
	k := loc.Key()
	for _, table := range []map[geo.Key]Station{g.metroStations, g.bikolpoStops, g.uttaraStops} {
		if st, ok := table[k]; ok {
			return st.Name
		}
	}
	return ""
}

// NearestLocation linear scan over all known locations. Equal distances go
// to the smallest grid key, i.e. the first one met in ascending key order.
// On an empty network the point itself is returned.
func (g *Graph) NearestLocation(point datastructure.Location) datastructure.Location {
	if len(g.locations) == 0 {
		return point
	}

	best := math.MaxFloat64
	var bestKey geo.Key
	nearest := point
	for k, loc := range g.locations {
		d := point.DistanceTo(loc)
		if d < best || (d == best && k.Less(bestKey)) {
			best = d
			bestKey = k
			nearest = loc
		}
	}
	return nearest
}

func (g *Graph) DistanceToNearestLocation(point datastructure.Location) float64 {
	return point.DistanceTo(g.NearestLocation(point))
}

func (g *Graph) IsEmpty() bool {
	return len(g.locations) == 0
}

func (g *Graph) LocationCount() int {
	return len(g.locations)
}

func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

func (g *Graph) StationCount() int {
	return len(g.metroStations) + len(g.bikolpoStops) + len(g.uttaraStops)
}
