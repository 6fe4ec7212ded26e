package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
)

const kmlNamespace = "http://earth.google.com/kml/2.1"

type kmlDocument struct {
	XMLName   xml.Name     `xml:"kml"`
	Namespace string       `xml:"xmlns,attr"`
	Placemark kmlPlacemark `xml:"Document>Placemark"`
}

type kmlPlacemark struct {
	Name       string        `xml:"name"`
	LineString kmlLineString `xml:"LineString"`
}

type kmlLineString struct {
	Tessellate  int            `xml:"tessellate"`
	Coordinates kmlCoordinates `xml:"coordinates"`
}

// kmlCoordinates written raw so the tuples keep one per line.
type kmlCoordinates struct {
	Tuples string `xml:",innerxml"`
}

// WriteKML the itinerary trace as a single LineString placemark, one
// "lon,lat,0" tuple per line.
func WriteKML(w io.Writer, name string, it itinerary.Itinerary) error {
	var coords strings.Builder
	coords.WriteString("\n")
	for _, l := range it.Trace() {
		fmt.Fprintf(&coords, "%.6f,%.6f,0\n", l.Lon, l.Lat)
	}

	doc := kmlDocument{
		Namespace: kmlNamespace,
		Placemark: kmlPlacemark{
			Name:       name,
			LineString: kmlLineString{Tessellate: 1, Coordinates: kmlCoordinates{coords.String()}},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode kml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
