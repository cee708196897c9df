package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dayLayout      = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Day is a calendar date with the time-of-day discarded. Values are
// normalized to midnight UTC so Day is usable as a map key.
type Day struct {
	time.Time
}

// NewDay truncates t to its calendar date.
func NewDay(t time.Time) Day {
	return Day{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayLayout, value)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", value, err)
	}
	return NewDay(t), nil
}

func (d Day) String() string {
	return d.Format(dayLayout)
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return Day{d.AddDate(0, 0, 1)}
}

func (d *Day) UnmarshalCSV(value string) error {
	parsed, err := ParseDay(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Day) MarshalCSV() (string, error) {
	return d.String(), nil
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Day) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDay(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateTime is an event timestamp. The raw exports are not consistent about
// the format, so parsing accepts the common variants.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	dateTimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	dayLayout,
}

func ParseDateTime(value string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return DateTime{t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid timestamp %q", value)
}

// Day truncates the timestamp to its calendar date.
func (dt DateTime) Day() Day {
	return NewDay(dt.Time)
}

func (dt *DateTime) UnmarshalCSV(value string) error {
	parsed, err := ParseDateTime(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

func (dt DateTime) MarshalCSV() (string, error) {
	return dt.Format(dateTimeLayout), nil
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dt.Format(dateTimeLayout) + `"`), nil
}

// Money is a nullable USD amount. Rows that are not purchases usually carry
// no price; those parse as the zero Money with Valid false and round-trip
// through CSV as an empty field.
type Money struct {
	Decimal decimal.Decimal
	Valid   bool
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d, Valid: true}
}

func MoneyFromFloat(value float64) Money {
	return NewMoney(decimal.NewFromFloat(value))
}

func (m *Money) UnmarshalCSV(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		*m = Money{}
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", value, err)
	}
	*m = NewMoney(d)
	return nil
}

func (m Money) MarshalCSV() (string, error) {
	if !m.Valid {
		return "", nil
	}
	return m.Decimal.String(), nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return m.Decimal.MarshalJSON()
}
