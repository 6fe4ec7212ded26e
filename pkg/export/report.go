package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/engine/costpolicy"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
)

const segmentIndent = "           "

// WriteReport plain text itinerary: one block per segment, then the total.
// Costs are printed only under the cost objective.
func WriteReport(w io.Writer, problemID int, it itinerary.Itinerary) error {
	bw := bufio.NewWriter(w)
	showCost := it.Objective == costpolicy.ObjectiveCost

	fmt.Fprintf(bw, "Problem %d\n", problemID)
	fmt.Fprintf(bw, "Source: %s\n", it.Source)
	fmt.Fprintf(bw, "Destination: %s\n\n", it.Destination)

	for i, s := range it.Segments {
		fmt.Fprintf(bw, "Segment %d: %s from %s to %s\n", i+1, s.Mode, place(s.FromName, s.From), place(s.ToName, s.To))
		fmt.Fprintf(bw, "%sDistance: %.2f km", segmentIndent, s.Dist)
		if showCost {
			fmt.Fprintf(bw, ", Cost: Tk%.2f", s.Cost)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw)
	if !it.Found() {
		fmt.Fprintln(bw, "No route found")
	}
	if showCost {
		fmt.Fprintf(bw, "Total Cost: Tk%.2f\n", it.Total)
	} else {
		fmt.Fprintf(bw, "Total Distance: %.2f km\n", it.Total)
	}
	return bw.Flush()
}

// place "name (lon,lat)" or just the coordinates for unnamed points.
func place(name string, loc datastructure.Location) string {
	if name == "" {
		return loc.String()
	}
	return name + " " + loc.String()
}
