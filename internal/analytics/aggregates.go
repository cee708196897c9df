package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"merchdash/internal/dataset"
	"merchdash/internal/models"
)

// Summary holds the three dashboard KPIs. TotalRevenue and AvgOrderValue
// are computed over purchase rows; UniqueUsers over the whole filtered
// view. AvgOrderValue is nil when there are no purchases, which renders as
// an explicit no-data value rather than NaN.
type Summary struct {
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	AvgOrderValue *decimal.Decimal `json:"avg_order_value"`
	UniqueUsers   int              `json:"unique_users"`
}

func Summarize(rows []dataset.Row) Summary {
	total := decimal.Zero
	purchases := 0
	users := make(map[string]bool)

	for _, row := range rows {
		users[row.UserID] = true
		if row.Type != models.TypePurchase {
			continue
		}
		purchases++
		if row.PriceInUSD.Valid {
			total = total.Add(row.PriceInUSD.Decimal)
		}
	}

	summary := Summary{TotalRevenue: total, UniqueUsers: len(users)}
	if purchases > 0 {
		avg := total.Div(decimal.NewFromInt(int64(purchases)))
		summary.AvgOrderValue = &avg
	}
	return summary
}

// TrendPoint is one line-chart observation: purchase revenue for one day on
// one device.
type TrendPoint struct {
	DateDay models.Day      `json:"date_day"`
	Device  string          `json:"device"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesTrend sums purchase revenue by day and device, ordered by date for
// line rendering.
func SalesTrend(rows []dataset.Row) []TrendPoint {
	type key struct {
		day    models.Day
		device string
	}
	sums := make(map[key]decimal.Decimal)
	for _, row := range rows {
		if row.Type != models.TypePurchase || !row.PriceInUSD.Valid {
			continue
		}
		k := key{row.DateDay, row.Device}
		sums[k] = sums[k].Add(row.PriceInUSD.Decimal)
	}

	points := make([]TrendPoint, 0, len(sums))
	for k, revenue := range sums {
		points = append(points, TrendPoint{DateDay: k.day, Device: k.device, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].DateDay.Equal(points[j].DateDay.Time) {
			return points[i].DateDay.Before(points[j].DateDay.Time)
		}
		return points[i].Device < points[j].Device
	})
	return points
}

// CategoryCount is one bar of the top-categories chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// TopCategories counts purchase rows per category, descending by count.
func TopCategories(rows []dataset.Row) []CategoryCount {
	counts := make(map[string]int)
	for _, row := range rows {
		if row.Type == models.TypePurchase {
			counts[row.Category]++
		}
	}

	out := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// DeviceContinentCount is one cell of the device-by-continent heatmap,
// counted over all event types.
type DeviceContinentCount struct {
	Continent string `json:"continent"`
	Device    string `json:"device"`
	Count     int    `json:"count"`
}

func DeviceByContinent(rows []dataset.Row) []DeviceContinentCount {
	type key struct {
		continent string
		device    string
	}
	counts := make(map[key]int)
	for _, row := range rows {
		counts[key{row.Continent, row.Device}]++
	}

	out := make([]DeviceContinentCount, 0, len(counts))
	for k, count := range counts {
		out = append(out, DeviceContinentCount{Continent: k.continent, Device: k.device, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Continent != out[j].Continent {
			return out[i].Continent < out[j].Continent
		}
		return out[i].Device < out[j].Device
	})
	return out
}

// PricePoint is one raw scatter observation, not a summary statistic.
type PricePoint struct {
	Brand string          `json:"brand"`
	Price decimal.Decimal `json:"price_in_usd"`
}

// PriceByBrand returns the individual brand/price pairs across all event
// types. Rows without a price carry no observation and are skipped.
func PriceByBrand(rows []dataset.Row) []PricePoint {
	points := make([]PricePoint, 0, len(rows))
	for _, row := range rows {
		if row.PriceInUSD.Valid {
			points = append(points, PricePoint{Brand: row.Brand, Price: row.PriceInUSD.Decimal})
		}
	}
	return points
}

// FunnelStage is one bar of the conversion funnel.
type FunnelStage struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Funnel counts rows per event type. Types named in stages come first in
// that order; types observed in the data but not configured follow, sorted
// by name, so nothing present in the view is dropped.
func Funnel(rows []dataset.Row, stages []string) []FunnelStage {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.Type]++
	}

	out := make([]FunnelStage, 0, len(counts))
	for _, stage := range stages {
		if count, ok := counts[stage]; ok {
			out = append(out, FunnelStage{Type: stage, Count: count})
			delete(counts, stage)
		}
	}

	rest := make([]string, 0, len(counts))
	for eventType := range counts {
		rest = append(rest, eventType)
	}
	sort.Strings(rest)
	for _, eventType := range rest {
		out = append(out, FunnelStage{Type: eventType, Count: counts[eventType]})
	}
	return out
}
