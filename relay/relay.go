// Package relay turns the VPN client's raw relay listing into
// distance-ranked, city-level relay candidates for one country.
package relay

import "fmt"

// CityRecord is one relay city parsed from the raw catalog listing.
// Country and City are lowercase short codes; coordinates are as printed
// by the catalog (see the longitude note on Rank).
type CityRecord struct {
	Country   string
	City      string
	Latitude  float64
	Longitude float64
}

// Ranked is a CityRecord with its great-circle distance from the home
// reference. The ordered slice of Ranked values for one country is the
// candidate list: ascending by DistanceKm, recomputed on every run.
type Ranked struct {
	Country    string
	City       string
	DistanceKm float64
}

// Ident returns the country-city identifier prefix shared with the
// daemon's relay hostnames, e.g. "de-ber".
func (r Ranked) Ident() string {
	return r.Country + "-" + r.City
}

// String renders the candidate with its distance rounded to one decimal.
// Full precision is kept in DistanceKm for sorting.
func (r Ranked) String() string {
	return fmt.Sprintf("%s (%.1f km)", r.Ident(), r.DistanceKm)
}
