package timezones

import (
	"sort"
	"strings"
)

// Search returns up to limit zones matching query, case-insensitively.
// Prefix matches sort before substring matches, alphabetical within each
// group. A limit of 0 means opts.DefaultLimit.
func Search(zones []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return topZones(zones, limit, opts)
	}

	var prefix, inner []string
	for _, zone := range zones {
		lower := strings.ToLower(zone)
		switch {
		case strings.HasPrefix(lower, query):
			prefix = append(prefix, zone)
		case strings.Contains(lower, query):
			inner = append(inner, zone)
		}
	}
	sort.Strings(prefix)
	sort.Strings(inner)

	out := append(prefix, inner...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// topZones answers an empty query: the head of the list when the options ask
// for it, nothing otherwise.
func topZones(zones []string, limit int, opts Options) []string {
	if opts.EmptySearchMode != EmptySearchTop {
		return nil
	}
	if len(zones) > limit {
		zones = zones[:limit]
	}
	return append([]string(nil), zones...)
}

// Completions adapts Search into the func(line) []string shape line editors
// expect for dynamic completion, searching with opts.DefaultLimit.
func Completions(zones []string, opts Options) func(string) []string {
	return func(line string) []string {
		return Search(zones, line, 0, opts)
	}
}
