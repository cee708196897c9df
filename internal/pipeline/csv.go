package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"merchdash/internal/models"
)

func ReadEvents(path string) ([]models.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var events []models.Event
	if err := gocsv.UnmarshalFile(f, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return events, nil
}

func ReadCatalog(path string) ([]models.CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []models.CatalogItem
	if err := gocsv.UnmarshalFile(f, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return items, nil
}

func ReadFlatEvents(path string) ([]models.FlatEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []models.FlatEvent
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// WriteFlatEvents persists the prepared table. It writes to a temp file in
// the target directory and renames it into place, so a failed run never
// leaves a partial artifact behind.
func WriteFlatEvents(path string, rows []models.FlatEvent) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".prepared-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := gocsv.MarshalFile(&rows, tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
