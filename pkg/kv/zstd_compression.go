package kv

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/Afroza0808/1638-GraphProject/pkg/itinerary"
	"github.com/DataDog/zstd"
)

func Encode(it itinerary.Itinerary) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(it); err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	return buf.Bytes(), nil
}

func Decode(bb []byte) (itinerary.Itinerary, error) {
	var it itinerary.Itinerary
	if err := gob.NewDecoder(bytes.NewReader(bb)).Decode(&it); err != nil {
		return itinerary.Itinerary{}, fmt.Errorf("decode itinerary: %w", err)
	}
	return it, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

func CompressItinerary(it itinerary.Itinerary) ([]byte, error) {
	bb, err := Encode(it)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func LoadItinerary(bbCompressed []byte) (itinerary.Itinerary, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return itinerary.Itinerary{}, fmt.Errorf("decompress itinerary: %w", err)
	}
	return Decode(bb)
}
