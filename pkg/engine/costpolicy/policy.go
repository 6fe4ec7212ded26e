package costpolicy

import (
	"fmt"
	"sort"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
)

// per km fares in Taka
const (
	CarRate   = 20.0
	MetroRate = 5.0
	BusRate   = 7.0
)

type Objective int

const (
	// ObjectiveDistance minimize km, segment costs are zero.
	ObjectiveDistance Objective = iota
	// ObjectiveCost minimize money, distance x per mode rate.
	ObjectiveCost
)

func (o Objective) String() string {
	if o == ObjectiveDistance {
		return "distance"
	}
	return "cost"
}

func (o Objective) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Objective) UnmarshalText(b []byte) error {
	switch string(b) {
	case "distance":
		*o = ObjectiveDistance
	case "cost":
		*o = ObjectiveCost
	default:
		return fmt.Errorf("unknown objective %q", string(b))
	}
	return nil
}

type Kind int

const (
	KindDistance Kind = iota
	KindEconomy
	KindAllModes
)

func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindEconomy:
		return "economy"
	case KindAllModes:
		return "all_modes"
	default:
		return "unknown"
	}
}

// Policy a search objective: the modes it may use (keys of Rates) and how an
// edge is weighted.
type Policy struct {
	Kind      Kind
	Objective Objective
	Rates     map[datastructure.TransportMode]float64
}

var (
	Distance = Policy{
		Kind:      KindDistance,
		Objective: ObjectiveDistance,
		Rates:     map[datastructure.TransportMode]float64{datastructure.Car: 1.0},
	}
	Economy = Policy{
		Kind:      KindEconomy,
		Objective: ObjectiveCost,
		Rates: map[datastructure.TransportMode]float64{
			datastructure.Car:   CarRate,
			datastructure.Metro: MetroRate,
		},
	}
	AllModes = Policy{
		Kind:      KindAllModes,
		Objective: ObjectiveCost,
		Rates: map[datastructure.TransportMode]float64{
			datastructure.Car:        CarRate,
			datastructure.Metro:      MetroRate,
			datastructure.BusBikolpo: BusRate,
			datastructure.BusUttara:  BusRate,
		},
	}
)

func (p Policy) AllowedModes() datastructure.ModeSet {
	s := make(datastructure.ModeSet, len(p.Rates))
	for m := range p.Rates {
		s[m] = struct{}{}
	}
	return s
}

// Modes allowed modes in ascending order.
func (p Policy) Modes() []datastructure.TransportMode {
	modes := make([]datastructure.TransportMode, 0, len(p.Rates))
	for m := range p.Rates {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// EdgeCost search weight of e.
func (p Policy) EdgeCost(e datastructure.Edge) float64 {
	if p.Objective == ObjectiveDistance {
		return e.Dist
	}
	return e.Dist * p.Rates[e.Mode]
}

// SegmentCost money spent travelling dist km by mode. Walking is free and
// distance policies do not price segments.
func (p Policy) SegmentCost(mode datastructure.TransportMode, dist float64) float64 {
	if p.Objective == ObjectiveDistance || mode == datastructure.Walk {
		return 0
	}
	return dist * p.Rates[mode]
}
