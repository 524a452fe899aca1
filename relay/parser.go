// Package relay turns the VPN client's raw relay listing into
// distance-ranked, city-level relay candidates for one country.
// This file contains the catalog parser.
package relay

import (
	"regexp"
	"strconv"
	"strings"
)

// parenCode extracts the short code from "Name (code)" lines.
var parenCode = regexp.MustCompile(`\(([^)]+)\)`)

// Parser states for the line-oriented scan of the catalog text.
// A country header carries no leading indentation; everything under it
// (cities, servers) is indented.
const (
	scanningForCountry = iota
	inCountryBlock
)

// ParseCatalog extracts the city records of one target country from the
// raw relay listing. The listing is a sequence of country blocks:
//
//	Germany (de)
//		Berlin (ber) @ 52.52437°N, 13.41053°W
//			de-ber-wg-001 (185.213.155.66) - WireGuard, hosted by 31173
//
// Scanning stops at the first country header after the target block, so
// a single contiguous block per country is assumed. An absent country
// yields an empty (nil) result, not an error. City lines whose code or
// coordinates don't parse are skipped.
func ParseCatalog(catalog, country string) []CityRecord {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		return nil
	}

	var records []CityRecord
	state := scanningForCountry

	for _, line := range strings.Split(catalog, "\n") {
		if line == "" {
			continue
		}

		if isCountryHeader(line) {
			if state == inCountryBlock {
				// Past the target's block; nothing left to scan.
				break
			}
			if strings.ToLower(headerCode(line)) == country {
				state = inCountryBlock
			}
			continue
		}

		if state != inCountryBlock {
			continue
		}

		if rec, ok := parseCityLine(line, country); ok {
			records = append(records, rec)
		}
	}

	return records
}

// isCountryHeader reports whether a line starts a new country block.
// Headers are the only lines without leading indentation.
func isCountryHeader(line string) bool {
	return line[0] != ' ' && line[0] != '\t'
}

// headerCode returns the parenthesized country code of a header line,
// or "" when the header carries none.
func headerCode(line string) string {
	m := parenCode.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseCityLine parses one indented line of a country block into a city
// record. Server lines (deeper indentation, no coordinate suffix) and
// malformed city lines return ok=false and are dropped by the caller.
func parseCityLine(line, country string) (CityRecord, bool) {
	// A city line carries a "@ <lat>°N, <lon>°W" coordinate suffix.
	at := strings.Index(line, "@")
	if at < 0 {
		return CityRecord{}, false
	}

	code := strings.ToLower(headerCode(line[:at]))
	if code == "" || strings.ContainsAny(code, " \t") {
		return CityRecord{}, false
	}

	lat, lon, ok := parseCoordinates(line[at+1:])
	if !ok {
		return CityRecord{}, false
	}

	return CityRecord{
		Country:   country,
		City:      code,
		Latitude:  lat,
		Longitude: lon,
	}, true
}

// parseCoordinates parses the "<lat>°N, <lon>°W" suffix of a city line.
// The longitude is returned exactly as printed: a magnitude labeled °W,
// not negated. Ranking feeds it into the distance formula unchanged.
func parseCoordinates(s string) (lat, lon float64, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := parseDegrees(parts[0], "°N")
	if err != nil {
		return 0, 0, false
	}
	lon, err = parseDegrees(parts[1], "°W")
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func parseDegrees(s, suffix string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), suffix))
	return strconv.ParseFloat(s, 64)
}
