// Package pipeline implements the preparation run: join raw events to the
// product catalog, clean them, find the trim cutoff from add-to-cart
// activity, and persist the flattened table the dashboard reads.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"merchdash/internal/models"
)

var (
	// ErrDuplicateCatalogID means the catalog join key is not unique, which
	// would make the join fan out. The run aborts instead of producing a
	// silently wrong artifact.
	ErrDuplicateCatalogID = errors.New("duplicate catalog id")

	// ErrNoCartEvents means no add_to_cart event appears anywhere in the
	// dataset, so the cutoff detection has nothing to work with.
	ErrNoCartEvents = errors.New("no add_to_cart events in dataset")
)

// Stats summarizes one preparation run.
type Stats struct {
	EventsRead         int
	CatalogRead        int
	UnmatchedDropped   int
	CountriesDefaulted int
	Cutoff             *models.Day
	RowsTrimmed        int
	RowsWritten        int
}

type Pipeline struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// Run executes the full preparation pipeline. Any error aborts the run
// before the output file is replaced.
func (p *Pipeline) Run(eventsPath, catalogPath, outputPath string) (*Stats, error) {
	events, err := ReadEvents(eventsPath)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	catalog, err := ReadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	p.log.Info().
		Int("events", len(events)).
		Int("catalog_items", len(catalog)).
		Msg("inputs loaded")

	flat, stats, err := Flatten(events, catalog)
	if err != nil {
		return nil, fmt.Errorf("join: %w", err)
	}
	p.log.Info().
		Int("rows", len(flat)).
		Int("unmatched_dropped", stats.UnmatchedDropped).
		Int("countries_defaulted", stats.CountriesDefaulted).
		Msg("events flattened")

	cutoff, found, err := CutoffDay(BuildHistogram(flat))
	if err != nil {
		return nil, fmt.Errorf("cutoff detection: %w", err)
	}

	trimmed := flat
	if found {
		trimmed = Trim(flat, cutoff)
		stats.Cutoff = &cutoff
		p.log.Info().
			Stringer("cutoff", cutoff).
			Int("rows_trimmed", len(flat)-len(trimmed)).
			Msg("dataset trimmed past last zero-cart day")
	} else {
		p.log.Info().Msg("every day has cart activity, nothing to trim")
	}
	stats.RowsTrimmed = len(flat) - len(trimmed)

	if err := WriteFlatEvents(outputPath, trimmed); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	stats.RowsWritten = len(trimmed)
	p.log.Info().
		Int("rows", len(trimmed)).
		Str("path", outputPath).
		Msg("prepared dataset written")

	return stats, nil
}

// Flatten inner-joins events onto the catalog by item id, drops events
// without a catalog match, defaults missing countries to the UNK sentinel,
// and derives the calendar day from each event timestamp. A catalog with a
// repeated id is a data-integrity error.
func Flatten(events []models.Event, catalog []models.CatalogItem) ([]models.FlatEvent, *Stats, error) {
	byID := make(map[string]models.CatalogItem, len(catalog))
	for _, item := range catalog {
		if _, seen := byID[item.ID]; seen {
			return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateCatalogID, item.ID)
		}
		byID[item.ID] = item
	}

	stats := &Stats{EventsRead: len(events), CatalogRead: len(catalog)}
	flat := make([]models.FlatEvent, 0, len(events))
	for _, ev := range events {
		item, ok := byID[ev.ItemID]
		if !ok {
			stats.UnmatchedDropped++
			continue
		}
		country := ev.Country
		if country == "" {
			country = models.CountryUnknown
			stats.CountriesDefaulted++
		}
		flat = append(flat, models.FlatEvent{
			Type:       ev.Type,
			Date:       ev.Date,
			Country:    country,
			Device:     ev.Device,
			UserID:     ev.UserID,
			PriceInUSD: ev.PriceInUSD,
			Category:   item.Category,
			Brand:      item.Brand,
			DateDay:    ev.Date.Day(),
		})
	}
	return flat, stats, nil
}

// Histogram counts events per calendar day and event type. Combinations
// absent from the data count as zero.
type Histogram map[models.Day]map[string]int

func BuildHistogram(rows []models.FlatEvent) Histogram {
	h := make(Histogram)
	for _, row := range rows {
		counts, ok := h[row.DateDay]
		if !ok {
			counts = make(map[string]int)
			h[row.DateDay] = counts
		}
		counts[row.Type]++
	}
	return h
}

func (h Histogram) Count(day models.Day, eventType string) int {
	return h[day][eventType]
}

func (h Histogram) hasType(eventType string) bool {
	for _, counts := range h {
		if counts[eventType] > 0 {
			return true
		}
	}
	return false
}

// CutoffDay returns the most recent day whose add_to_cart count is zero.
// found is false when every observed day has cart activity, in which case
// trimming is a no-op. A dataset with no add_to_cart events at all makes the
// cutoff ill-defined and is reported as ErrNoCartEvents.
func CutoffDay(h Histogram) (cutoff models.Day, found bool, err error) {
	if !h.hasType(models.TypeAddToCart) {
		return models.Day{}, false, ErrNoCartEvents
	}
	for day := range h {
		if h.Count(day, models.TypeAddToCart) != 0 {
			continue
		}
		if !found || day.After(cutoff.Time) {
			cutoff = day
			found = true
		}
	}
	return cutoff, found, nil
}

// Trim retains rows strictly after the cutoff day.
func Trim(rows []models.FlatEvent, cutoff models.Day) []models.FlatEvent {
	trimmed := make([]models.FlatEvent, 0, len(rows))
	for _, row := range rows {
		if row.DateDay.After(cutoff.Time) {
			trimmed = append(trimmed, row)
		}
	}
	return trimmed
}
