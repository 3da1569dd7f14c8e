package model

import (
	"errors"
	"fmt"
)

// Location is the storage category of a product.
type Location string

// Locations.
const (
	LocationFridge  Location = "fridge"
	LocationFreezer Location = "freezer"
	LocationPantry  Location = "pantry"
)

// ErrUnknownLocation is returned for locations outside fridge, freezer and pantry.
var ErrUnknownLocation = errors.New("unknown location")

// Locations returns all storage locations.
func Locations() []Location {
	return []Location{LocationFridge, LocationFreezer, LocationPantry}
}

// ParseLocation validates a location string. Matching is exact.
func ParseLocation(s string) (Location, error) {
	switch l := Location(s); l {
	case LocationFridge, LocationFreezer, LocationPantry:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocation, s)
}
