package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

const earthRadiusKM = 6371.0

// gridScale quantizes coordinates to 1e-6 degrees (~0.11 m at the equator).
const gridScale = 1e6

// Key is the integer grid cell of a coordinate. Two coordinates share a
// graph node iff their keys are equal.
type Key struct {
	LatE6 int64
	LonE6 int64
}

func KeyOf(lat, lon float64) Key {
	return Key{
		LatE6: int64(math.Round(lat * gridScale)),
		LonE6: int64(math.Round(lon * gridScale)),
	}
}

// Less orders keys by latitude then longitude.
func (k Key) Less(o Key) bool {
	if k.LatE6 != o.LatE6 {
		return k.LatE6 < o.LatE6
	}
	return k.LonE6 < o.LonE6
}

func (k Key) Compare(o Key) int {
	switch {
	case k.Less(o):
		return -1
	case o.Less(k):
		return 1
	default:
		return 0
	}
}

// HaversineDistance great-circle distance in km between two points given in degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * earthRadiusKM
}

// BoundingBox returns [minLat, minLon] and side lengths in degrees of a box
// that contains the circle of radiusKm around (lat, lon).
func BoundingBox(lat, lon, radiusKm float64) (corner [2]float64, lengths [2]float64) {
	dLat := radToDeg(radiusKm / earthRadiusKM)
	cosLat := math.Cos(degToRad(lat))
	dLon := 180.0
	if cosLat > 1e-12 {
		dLon = math.Min(180.0, dLat/cosLat)
	}
	corner = [2]float64{lat - dLat, lon - dLon}
	lengths = [2]float64{2 * dLat, 2 * dLon}
	return
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}
