package relay

import (
	"reflect"
	"testing"
)

const sampleCatalog = "Albania (al)\n" +
	"\tTirana (tia) @ 41.32754°N, 19.81854°W\n" +
	"\t\tal-tia-wg-001 (31.171.153.66) - WireGuard, hosted by iRegister (rented)\n" +
	"Germany (de)\n" +
	"\tBerlin (ber) @ 52.52437°N, 13.41053°W\n" +
	"\t\tde-ber-wg-001 (185.213.155.66) - WireGuard, hosted by 31173 (rented)\n" +
	"\t\tde-ber-wg-002 (185.213.155.67) - WireGuard, hosted by 31173 (rented)\n" +
	"\tDusseldorf (dus) @ 51.22172°N, 6.77616°W\n" +
	"\tFrankfurt (fra) @ 50.11552°N, 8.68417°W\n" +
	"\t\tde-fra-wg-001 (185.213.154.66) - WireGuard, hosted by M247 (rented)\n" +
	"Netherlands (nl)\n" +
	"\tAmsterdam (ams) @ 52.37403°N, 4.88969°W\n" +
	"\t\tnl-ams-wg-001 (185.65.134.66) - WireGuard, hosted by 31173 (rented)\n"

func TestParseCatalog(t *testing.T) {
	records := ParseCatalog(sampleCatalog, "de")

	want := []CityRecord{
		{Country: "de", City: "ber", Latitude: 52.52437, Longitude: 13.41053},
		{Country: "de", City: "dus", Latitude: 51.22172, Longitude: 6.77616},
		{Country: "de", City: "fra", Latitude: 50.11552, Longitude: 8.68417},
	}

	if !reflect.DeepEqual(records, want) {
		t.Errorf("ParseCatalog() = %+v, want %+v", records, want)
	}
}

func TestParseCatalog_FirstCountry(t *testing.T) {
	records := ParseCatalog(sampleCatalog, "al")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].City != "tia" {
		t.Errorf("City = %q, want %q", records[0].City, "tia")
	}
}

func TestParseCatalog_MissingCountry(t *testing.T) {
	records := ParseCatalog(sampleCatalog, "xx")

	// A country absent from the catalog is a normal empty result.
	if len(records) != 0 {
		t.Errorf("expected empty result, got %+v", records)
	}
}

func TestParseCatalog_EmptyTarget(t *testing.T) {
	if records := ParseCatalog(sampleCatalog, ""); len(records) != 0 {
		t.Errorf("expected empty result for empty country, got %+v", records)
	}
}

func TestParseCatalog_Idempotent(t *testing.T) {
	first := ParseCatalog(sampleCatalog, "de")
	second := ParseCatalog(sampleCatalog, "de")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("parse is not idempotent: %+v vs %+v", first, second)
	}
}

func TestParseCatalog_SkipsMalformedCityLines(t *testing.T) {
	catalog := "Germany (de)\n" +
		"\tBerlin (ber) @ 52.52437°N, 13.41053°W\n" +
		"\tBroken (dus) @ not-a-number°N, 6.77616°W\n" +
		"\tNoCode @ 50.0°N, 8.0°W\n" +
		"\tNoCoordinates (fra)\n" +
		"\tFrankfurt (fra) @ 50.11552°N, 8.68417°W\n"

	records := ParseCatalog(catalog, "de")

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].City != "ber" || records[1].City != "fra" {
		t.Errorf("unexpected cities: %+v", records)
	}
}

func TestParseCatalog_StopsAfterTargetBlock(t *testing.T) {
	// A second block claiming the same country after another header
	// must not be scanned: one contiguous block per country.
	catalog := "Germany (de)\n" +
		"\tBerlin (ber) @ 52.52437°N, 13.41053°W\n" +
		"Netherlands (nl)\n" +
		"\tAmsterdam (ams) @ 52.37403°N, 4.88969°W\n" +
		"Germany (de)\n" +
		"\tFrankfurt (fra) @ 50.11552°N, 8.68417°W\n"

	records := ParseCatalog(catalog, "de")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d: %+v", len(records), records)
	}
	if records[0].City != "ber" {
		t.Errorf("City = %q, want %q", records[0].City, "ber")
	}
}

func TestParseCatalog_LowercasesCodes(t *testing.T) {
	catalog := "Germany (DE)\n" +
		"\tBerlin (BER) @ 52.52437°N, 13.41053°W\n"

	records := ParseCatalog(catalog, "de")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].City != "ber" || records[0].Country != "de" {
		t.Errorf("codes not lowercased: %+v", records[0])
	}
}

func TestParseCatalog_NegativeLatitude(t *testing.T) {
	catalog := "Australia (au)\n" +
		"\tAdelaide (adl) @ -34.92866°N, 138.59863°W\n"

	records := ParseCatalog(catalog, "au")

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Latitude != -34.92866 {
		t.Errorf("Latitude = %v, want -34.92866", records[0].Latitude)
	}
}
