package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Afroza0808/1638-GraphProject/pkg/config"
	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/network"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slog"
)

// Stats counts of one csv file. Skipped rows are blank, too short or
// without a parsable distance or two coordinates.
type Stats struct {
	Rows     int
	Skipped  int
	Edges    int
	Stations int
}

func (s Stats) add(o Stats) Stats {
	return Stats{
		Rows:     s.Rows + o.Rows,
		Skipped:  s.Skipped + o.Skipped,
		Edges:    s.Edges + o.Edges,
		Stations: s.Stations + o.Stations,
	}
}

type Loader struct {
	g        *network.Graph
	log      *slog.Logger
	progress io.Writer
}

// NewLoader progress receives the progress bars, nil hides them.
func NewLoader(g *network.Graph, log *slog.Logger, progress io.Writer) *Loader {
	if log == nil {
		log = slog.Default()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Loader{g: g, log: log, progress: progress}
}

// Load builds a network from the road map and the three transit files. A
// missing road map is an error, a missing transit file only leaves that
// line out of the network.
func Load(data config.DataConfig, log *slog.Logger, progress io.Writer) (*network.Graph, error) {
	g := network.NewGraph()
	l := NewLoader(g, log, progress)

	total, err := l.LoadRoadmap(data.Roadmap, "[cyan][1/4][reset] loading road network...")
	if err != nil {
		return nil, err
	}

	transit := []struct {
		path string
		mode datastructure.TransportMode
		desc string
	}{
		{data.Metro, datastructure.Metro, "[cyan][2/4][reset] loading metro network..."},
		{data.Bikolpo, datastructure.BusBikolpo, "[cyan][3/4][reset] loading Bikolpo bus network..."},
		{data.Uttara, datastructure.BusUttara, "[cyan][4/4][reset] loading Uttara bus network..."},
	}
	for _, t := range transit {
		if t.path == "" {
			continue
		}
		stats, err := l.LoadTransit(t.path, t.mode, t.desc)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				l.log.Warn("transit file not found, skipping", slog.String("file", t.path), slog.String("mode", t.mode.String()))
				continue
			}
			return nil, err
		}
		total = total.add(stats)
	}

	l.log.Info("network loaded",
		slog.Int("locations", g.LocationCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("stations", g.StationCount()),
		slog.Int("rows", total.Rows),
		slog.Int("skipped", total.Skipped))
	return g, nil
}

func (l *Loader) LoadRoadmap(path, desc string) (Stats, error) {
	var stats Stats
	err := l.withFile(path, desc, func(r io.Reader) error {
		var err error
		stats, err = l.ReadRoadmap(r)
		return err
	})
	if err != nil {
		return stats, err
	}
	l.log.Info("road segments loaded", slog.String("file", path), slog.Int("edges", stats.Edges),
		slog.Int("rows", stats.Rows), slog.Int("skipped", stats.Skipped))
	return stats, nil
}

func (l *Loader) LoadTransit(path string, mode datastructure.TransportMode, desc string) (Stats, error) {
	var stats Stats
	err := l.withFile(path, desc, func(r io.Reader) error {
		var err error
		stats, err = l.ReadTransit(r, mode)
		return err
	})
	if err != nil {
		return stats, err
	}
	l.log.Info("transit segments loaded", slog.String("file", path), slog.String("mode", mode.String()),
		slog.Int("edges", stats.Edges), slog.Int("stations", stats.Stations/2), slog.Int("skipped", stats.Skipped))
	return stats, nil
}

func (l *Loader) withFile(path, desc string, read func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	size := int64(-1)
	if fi, err := f.Stat(); err == nil {
		size = fi.Size()
	}

	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(l.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	pr := progressbar.NewReader(f, bar)
	if err := read(&pr); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// ReadRoadmap rows "label, lon, lat, lon, lat, ..., x, distance". The row
// distance is split evenly over its hops and every hop becomes a car edge in
// both directions.
func (l *Loader) ReadRoadmap(r io.Reader) (Stats, error) {
	return l.readRows(r, 3, func(fields []string, stats *Stats) bool {
		coords := parseCoords(fields)
		if len(coords) < 2 {
			return false
		}
		total, err := parseFloat(fields[len(fields)-1])
		if err != nil {
			return false
		}

		segmentDist := total / float64(len(coords)-1)
		for i := 0; i+1 < len(coords); i++ {
			stats.Edges += l.addBidirectional(coords[i], coords[i+1], segmentDist, datastructure.Car, fields[0])
		}
		return true
	})
}

// ReadTransit rows "label, lon, lat, ..., start name, end name". Hop
// distances are great-circle distances, and the first and last coordinates
// are registered as named stations of mode.
func (l *Loader) ReadTransit(r io.Reader, mode datastructure.TransportMode) (Stats, error) {
	return l.readRows(r, 4, func(fields []string, stats *Stats) bool {
		coords := parseCoords(fields)
		if len(coords) < 2 {
			return false
		}

		startName := strings.TrimSpace(fields[len(fields)-2])
		endName := strings.TrimSpace(fields[len(fields)-1])
		l.g.AddStation(mode, coords[0], startName)
		l.g.AddStation(mode, coords[len(coords)-1], endName)
		stats.Stations += 2

		for i := 0; i+1 < len(coords); i++ {
			dist := coords[i].DistanceTo(coords[i+1])
			stats.Edges += l.addBidirectional(coords[i], coords[i+1], dist, mode, fields[0])
		}
		return true
	})
}

func (l *Loader) addBidirectional(a, b datastructure.Location, dist float64, mode datastructure.TransportMode, name string) int {
	forward := datastructure.NewEdge(a, b, dist, mode)
	forward.Name = name
	backward := datastructure.NewEdge(b, a, dist, mode)
	backward.Name = name
	l.g.AddEdge(forward)
	l.g.AddEdge(backward)
	return 2
}

func (l *Loader) readRows(r io.Reader, minFields int, row func(fields []string, stats *Stats) bool) (Stats, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var stats Stats
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		stats.Rows++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				stats.Skipped++
				continue
			}
			return stats, err
		}
		if len(fields) < minFields || !row(fields, &stats) {
			stats.Skipped++
		}
	}
	return stats, nil
}

// parseCoords lon,lat pairs starting at field 1, leaving the two trailing
// fields out. Stops at the first pair that does not parse.
func parseCoords(fields []string) []datastructure.Location {
	coords := make([]datastructure.Location, 0, len(fields)/2)
	for i := 1; i+1 < len(fields)-2; i += 2 {
		lon, err := parseFloat(fields[i])
		if err != nil {
			break
		}
		lat, err := parseFloat(fields[i+1])
		if err != nil {
			break
		}
		coords = append(coords, datastructure.NewLocation(lat, lon))
	}
	return coords
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
