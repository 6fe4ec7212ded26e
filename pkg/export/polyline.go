package export

import (
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/twpayne/go-polyline"
)

// RenderPath encoded polyline (precision 5) of the itinerary trace.
func RenderPath(it itinerary.Itinerary) string {
	trace := it.Trace()
	coords := make([][]float64, 0, len(trace))
	for _, p := range trace {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}
