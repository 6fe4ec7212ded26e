package network

import (
	"sort"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/geo"
	"github.com/dhconnelly/rtreego"
)

var tol = 0.00001

type stationRect struct {
	location rtreego.Point
	station  Station
}

func (s *stationRect) Bounds() rtreego.Rect {
	return s.location.ToRect(tol)
}

type NearbyStation struct {
	Station
	DistKm float64 `json:"distance_km"`
}

func (g *Graph) buildStationTree() {
	g.stationTree = rtreego.NewTree(2, 25, 50) // 2 dimensions, 25 min and 50 max entries per node
	for _, table := range []map[geo.Key]Station{g.metroStations, g.bikolpoStops, g.uttaraStops} {
		for _, st := range table {
			g.stationTree.Insert(&stationRect{
				location: rtreego.Point{st.Location.Lat, st.Location.Lon},
				station:  st,
			})
		}
	}
}

// NearbyStations named stops of every transit line within radiusKm of point,
// nearest first. limit <= 0 means no limit. The index is built on first use,
// so all stations must be registered before the first call.
func (g *Graph) NearbyStations(point datastructure.Location, radiusKm float64, limit int) []NearbyStation {
	if radiusKm <= 0 {
		return nil
	}
	g.stationTreeOnce.Do(g.buildStationTree)

	corner, lengths := geo.BoundingBox(point.Lat, point.Lon, radiusKm)
	bb, err := rtreego.NewRect(rtreego.Point{corner[0], corner[1]}, lengths[:])
	if err != nil {
		return nil
	}

	res := []NearbyStation{}
	for _, sp := range g.stationTree.SearchIntersect(bb) {
		st := sp.(*stationRect).station
		d := point.DistanceTo(st.Location)
		if d > radiusKm {
			continue
		}
		res = append(res, NearbyStation{Station: st, DistKm: d})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].DistKm != res[j].DistKm {
			return res[i].DistKm < res[j].DistKm
		}
		return res[i].Mode < res[j].Mode
	})
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res
}
