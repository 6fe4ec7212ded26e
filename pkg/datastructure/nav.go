package datastructure

import (
	"fmt"
	"strings"
)

type TransportMode int

const (
	Walk TransportMode = iota
	Car
	Metro
	BusBikolpo
	BusUttara
)

var AllModes = []TransportMode{Walk, Car, Metro, BusBikolpo, BusUttara}

func (m TransportMode) String() string {
	switch m {
	case Walk:
		return "Walk"
	case Car:
		return "Car"
	case Metro:
		return "Metro"
	case BusBikolpo:
		return "Bikolpo Bus"
	case BusUttara:
		return "Uttara Bus"
	default:
		return "Unknown"
	}
}

// Code short machine name used in json and config files.
func (m TransportMode) Code() string {
	switch m {
	case Walk:
		return "walk"
	case Car:
		return "car"
	case Metro:
		return "metro"
	case BusBikolpo:
		return "bus_bikolpo"
	case BusUttara:
		return "bus_uttara"
	default:
		return "unknown"
	}
}

func ParseTransportMode(s string) (TransportMode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllModes {
		if want == m.Code() || want == strings.ToLower(m.String()) {
			return m, nil
		}
	}
	return Walk, fmt.Errorf("unknown transport mode %q", s)
}

func (m TransportMode) MarshalText() ([]byte, error) {
	return []byte(m.Code()), nil
}

func (m *TransportMode) UnmarshalText(b []byte) error {
	mode, err := ParseTransportMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ModeSet set of transport modes a search may traverse.
type ModeSet map[TransportMode]struct{}

func NewModeSet(modes ...TransportMode) ModeSet {
	s := make(ModeSet, len(modes))
	for _, m := range modes {
		s[m] = struct{}{}
	}
	return s
}

func (s ModeSet) Contains(m TransportMode) bool {
	_, ok := s[m]
	return ok
}
