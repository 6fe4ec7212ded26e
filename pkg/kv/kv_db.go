package kv

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Afroza0808/1638-GraphProject/pkg/datastructure"
	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

const routePrefix = "route/"

// KVDB itinerary cache on an in-memory pebble store. Entries are keyed by the
// problem id and the raw query points, not the snapped ones.
type KVDB struct {
	db         *pebble.DB
	mu         sync.Mutex
	entries    int
	maxEntries int
}

func NewKVDB(db *pebble.DB, maxEntries int) *KVDB {
	return &KVDB{db: db, maxEntries: maxEntries}
}

// OpenMemKVDB opens a pebble instance backed by memory only. maxEntries <= 0
// means unbounded.
func OpenMemKVDB(maxEntries int) (*KVDB, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, fmt.Errorf("open in-memory pebble: %w", err)
	}
	return NewKVDB(db, maxEntries), nil
}

func RouteKey(problemID int, source, destination datastructure.Location) []byte {
	return []byte(fmt.Sprintf("%s%d/%g,%g/%g,%g", routePrefix, problemID,
		source.Lat, source.Lon, destination.Lat, destination.Lon))
}

func (k *KVDB) SaveItinerary(problemID int, source, destination datastructure.Location, it itinerary.Itinerary) error {
	val, err := CompressItinerary(it)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.maxEntries > 0 && k.entries >= k.maxEntries {
		if err := k.clear(); err != nil {
			return err
		}
	}
	if err := k.db.Set(RouteKey(problemID, source, destination), val, pebble.NoSync); err != nil {
		return fmt.Errorf("save itinerary: %w", err)
	}
	k.entries++
	return nil
}

// GetItinerary ok is false on a cache miss.
func (k *KVDB) GetItinerary(problemID int, source, destination datastructure.Location) (itinerary.Itinerary, bool, error) {
	val, closer, err := k.db.Get(RouteKey(problemID, source, destination))
	if errors.Is(err, pebble.ErrNotFound) {
		return itinerary.Itinerary{}, false, nil
	}
	if err != nil {
		return itinerary.Itinerary{}, false, fmt.Errorf("get itinerary: %w", err)
	}
	defer closer.Close()

	it, err := LoadItinerary(val)
	if err != nil {
		return itinerary.Itinerary{}, false, err
	}
	return it, true, nil
}

func (k *KVDB) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.entries
}

// clear drops every cached route. Caller holds mu.
func (k *KVDB) clear() error {
	end := []byte(routePrefix)
	end[len(end)-1]++
	if err := k.db.DeleteRange([]byte(routePrefix), end, pebble.NoSync); err != nil {
		return fmt.Errorf("evict itineraries: %w", err)
	}
	k.entries = 0
	return nil
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
