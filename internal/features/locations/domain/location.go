package domain

import (
	"fmt"
	"math"
)

// LocationKind distinguishes the candidate pools a search can draw from.
type LocationKind string

const (
	// KindGeneral matches any geocodable address.
	KindGeneral LocationKind = "general"
	// KindAirport restricts candidates to the airport catalog.
	KindAirport LocationKind = "airport"
)

// Location represents a resolved geographic point. Once attached to a
// finalized transport leg it is never mutated.
type Location struct {
	// Address is the human-readable address of the point.
	Address string `json:"address"`
	// Latitude is the latitude in decimal degrees.
	Latitude float64 `json:"latitude"`
	// Longitude is the longitude in decimal degrees.
	Longitude float64 `json:"longitude"`
	// Kind records which candidate pool the location came from.
	Kind LocationKind `json:"kind"`
}

// Airport represents one entry of the airport catalog.
type Airport struct {
	// Name is the official airport name.
	Name string `json:"name"`
	// City is the city the airport serves.
	City string `json:"city"`
	// Country is the airport's country.
	Country string `json:"country"`
	// Code is the primary airport code.
	Code string `json:"code"`
	// IATACode is the IATA code, when distinct from Code.
	IATACode string `json:"iata_code"`
	// Latitude is the latitude in decimal degrees.
	Latitude float64 `json:"latitude"`
	// Longitude is the longitude in decimal degrees.
	Longitude float64 `json:"longitude"`
}

// Location converts the airport into a selectable Location candidate.
func (a Airport) Location() Location {
	return Location{
		Address:   fmt.Sprintf("%s (%s) - %s, %s", a.Name, a.Code, a.City, a.Country),
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		Kind:      KindAirport,
	}
}

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometers between two points.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// DistanceKm returns the great-circle distance between two locations.
func DistanceKm(from, to Location) float64 {
	return HaversineKm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}
