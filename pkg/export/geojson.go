package export

import (
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/Afroza0808/1638-GraphProject/pkg/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/samber/lo"
)

func point(l datastructure.Location) orb.Point {
	return orb.Point{l.Lon, l.Lat}
}

// GeoJSON the whole trace as a "route" LineString, one LineString feature per
// segment and the two query points. Segment features carry mode, distance,
// cost and station names.
func GeoJSON(it itinerary.Itinerary) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(it.Segments) > 0 {
		route := geojson.NewFeature(TraceLineString(it))
		route.Properties["kind"] = "route"
		route.Properties["status"] = it.Status.String()
		route.Properties["objective"] = it.Objective.String()
		route.Properties["total"] = util.RoundFloat(it.Total, 2)
		fc.Append(route)
	}

	for i, s := range it.Segments {
		f := geojson.NewFeature(orb.LineString{point(s.From), point(s.To)})
		f.Properties["kind"] = "segment"
		f.Properties["index"] = i
		f.Properties["mode"] = s.Mode.Code()
		f.Properties["distance_km"] = util.RoundFloat(s.Dist, 2)
		f.Properties["cost"] = util.RoundFloat(s.Cost, 2)
		if s.FromName != "" {
			f.Properties["from_name"] = s.FromName
		}
		if s.ToName != "" {
			f.Properties["to_name"] = s.ToName
		}
		fc.Append(f)
	}

	for _, p := range []struct {
		kind string
		loc  datastructure.Location
	}{{"source", it.Source}, {"destination", it.Destination}} {
		f := geojson.NewFeature(point(p.loc))
		f.Properties["kind"] = p.kind
		fc.Append(f)
	}

	return fc
}

// TraceLineString the full itinerary path, empty when nothing was found.
func TraceLineString(it itinerary.Itinerary) orb.LineString {
	return lo.Map(it.Trace(), func(l datastructure.Location, _ int) orb.Point { return point(l) })
}
