// Package dataset loads the prepared table for the dashboard. The load
// happens once per process and the result is read-only afterwards; every
// filter change recomputes over the same in-memory rows.
package dataset

import (
	"fmt"
	"sync"

	"merchdash/internal/geo"
	"merchdash/internal/models"
	"merchdash/internal/pipeline"
)

// Row is a flattened event augmented with its continent. The continent is
// derived at load time and never persisted.
type Row struct {
	models.FlatEvent
	Continent string `json:"continent"`
}

type Store struct {
	path string

	once sync.Once
	rows []Row
	err  error
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Rows returns the continent-augmented table, reading the source file on
// the first call only. A load failure is sticky for the process lifetime.
func (s *Store) Rows() ([]Row, error) {
	s.once.Do(func() {
		flat, err := pipeline.ReadFlatEvents(s.path)
		if err != nil {
			s.err = fmt.Errorf("load dataset %s: %w", s.path, err)
			return
		}
		rows := make([]Row, len(flat))
		for i, ev := range flat {
			rows[i] = Row{FlatEvent: ev, Continent: geo.Continent(ev.Country)}
		}
		s.rows = rows
	})
	return s.rows, s.err
}

// HealthCheck reports whether the dataset is loadable.
func (s *Store) HealthCheck() error {
	_, err := s.Rows()
	return err
}
