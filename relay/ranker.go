// Package relay turns the VPN client's raw relay listing into
// distance-ranked, city-level relay candidates for one country.
// This file contains the great-circle distance ranking.
package relay

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371.0

// Haversine calculates the great-circle distance in kilometers between
// two points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Rank orders city records by ascending distance from the given home
// point. The sort is stable: cities at equal distance keep their
// catalog encounter order. An empty input yields an empty list; the
// caller decides whether that is an error.
//
// Coordinates go into the formula exactly as the catalog printed them.
// The catalog labels longitudes °W but the magnitudes are fed in
// unnegated, matching the behavior this tool replaces; the ordering is
// consistent as long as the home longitude follows the same convention.
func Rank(homeLat, homeLon float64, records []CityRecord) []Ranked {
	ranked := make([]Ranked, 0, len(records))
	for _, rec := range records {
		ranked = append(ranked, Ranked{
			Country:    rec.Country,
			City:       rec.City,
			DistanceKm: Haversine(homeLat, homeLon, rec.Latitude, rec.Longitude),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// LocateIndex finds the candidate whose country and city match the
// currently active relay. A relay that is not in the list maps to
// index 0, so cycling restarts from the nearest candidate.
func LocateIndex(candidates []Ranked, country, city string) int {
	for i, c := range candidates {
		if c.Country == country && c.City == city {
			return i
		}
	}
	return 0
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
