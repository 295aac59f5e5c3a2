// Package timezones provides deterministic IANA time zone data, search
// helpers, and a prompt that resolves user input to a canonical zone name
// with close-match suggestions on a miss.
//
// The backing data is a curated list embedded under data/zones.txt. Load a
// full tzdata dump through LoadZones, or hand one to WithZones, when every
// alias matters.
package timezones
