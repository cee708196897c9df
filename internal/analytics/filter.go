// Package analytics turns the prepared table into the filtered view, the
// KPI summary, and the aggregate tables behind each dashboard chart. Every
// function here is pure over its input rows; the server calls them fresh on
// each request.
package analytics

import (
	"sort"

	"merchdash/internal/dataset"
	"merchdash/internal/models"
)

// Filter is the user-controlled state narrowing the dashboard view. The
// four predicates combine conjunctively: continent membership, device
// membership, and the inclusive day range bounds.
type Filter struct {
	Continents []string
	Devices    []string
	Start      models.Day
	End        models.Day
}

// DefaultFilter is the view state before the user touches any control:
// the configured continents, every device present, and the full day range
// present in the data.
func DefaultFilter(rows []dataset.Row, defaultContinents []string) Filter {
	start, end, _ := DayRange(rows)
	return Filter{
		Continents: defaultContinents,
		Devices:    Devices(rows),
		Start:      start,
		End:        end,
	}
}

// Apply returns exactly the rows satisfying all four predicates.
func Apply(rows []dataset.Row, f Filter) []dataset.Row {
	continents := toSet(f.Continents)
	devices := toSet(f.Devices)

	filtered := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		if !continents[row.Continent] || !devices[row.Device] {
			continue
		}
		if row.DateDay.Before(f.Start.Time) || row.DateDay.After(f.End.Time) {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}

// Continents lists the distinct continents present, sorted.
func Continents(rows []dataset.Row) []string {
	return distinct(rows, func(r dataset.Row) string { return r.Continent })
}

// Devices lists the distinct devices present, sorted.
func Devices(rows []dataset.Row) []string {
	return distinct(rows, func(r dataset.Row) string { return r.Device })
}

// DayRange returns the min and max calendar day present. ok is false for an
// empty table.
func DayRange(rows []dataset.Row) (start, end models.Day, ok bool) {
	for _, row := range rows {
		if !ok {
			start, end, ok = row.DateDay, row.DateDay, true
			continue
		}
		if row.DateDay.Before(start.Time) {
			start = row.DateDay
		}
		if row.DateDay.After(end.Time) {
			end = row.DateDay
		}
	}
	return start, end, ok
}

func distinct(rows []dataset.Row, key func(dataset.Row) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, row := range rows {
		k := key(row)
		if !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	sort.Strings(values)
	return values
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
