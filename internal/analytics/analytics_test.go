package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"merchdash/internal/dataset"
	"merchdash/internal/models"
)

type rowSpec struct {
	eventType string
	day       string
	continent string
	device    string
	userID    string
	price     string // empty means no price
	category  string
	brand     string
}

func buildRows(t *testing.T, specs []rowSpec) []dataset.Row {
	t.Helper()
	rows := make([]dataset.Row, 0, len(specs))
	for _, s := range specs {
		d, err := models.ParseDay(s.day)
		require.NoError(t, err)
		price := models.Money{}
		if s.price != "" {
			dec, err := decimal.NewFromString(s.price)
			require.NoError(t, err)
			price = models.NewMoney(dec)
		}
		rows = append(rows, dataset.Row{
			FlatEvent: models.FlatEvent{
				Type:       s.eventType,
				Device:     s.device,
				UserID:     s.userID,
				PriceInUSD: price,
				Category:   s.category,
				Brand:      s.brand,
				DateDay:    d,
			},
			Continent: s.continent,
		})
	}
	return rows
}

func sampleRows(t *testing.T) []dataset.Row {
	return buildRows(t, []rowSpec{
		{"view", "2024-01-01", "Europe", "desktop", "u1", "", "shirt", "X"},
		{"purchase", "2024-01-01", "Europe", "desktop", "u1", "20", "shirt", "X"},
		{"purchase", "2024-01-02", "Europe", "mobile", "u2", "10", "hat", "Y"},
		{"purchase", "2024-01-02", "North America", "desktop", "u3", "40", "shirt", "X"},
		{"add_to_cart", "2024-01-03", "Europe", "mobile", "u2", "", "hat", "Y"},
	})
}

func TestApplyIsTheConjunctionOfAllPredicates(t *testing.T) {
	rows := sampleRows(t)
	start, _ := models.ParseDay("2024-01-01")
	end, _ := models.ParseDay("2024-01-02")

	filtered := Apply(rows, Filter{
		Continents: []string{"Europe"},
		Devices:    []string{"desktop"},
		Start:      start,
		End:        end,
	})

	require.Len(t, filtered, 2)
	for _, row := range filtered {
		assert.Equal(t, "Europe", row.Continent)
		assert.Equal(t, "desktop", row.Device)
	}
}

func TestApplyDateRangeIsInclusive(t *testing.T) {
	rows := sampleRows(t)
	d, _ := models.ParseDay("2024-01-02")

	filtered := Apply(rows, Filter{
		Continents: []string{"Europe", "North America"},
		Devices:    []string{"desktop", "mobile"},
		Start:      d,
		End:        d,
	})
	require.Len(t, filtered, 2)
	for _, row := range filtered {
		assert.Equal(t, d, row.DateDay)
	}
}

func TestDefaultFilterCoversEverythingPresent(t *testing.T) {
	rows := sampleRows(t)
	f := DefaultFilter(rows, []string{"Europe"})

	assert.Equal(t, []string{"Europe"}, f.Continents)
	assert.Equal(t, []string{"desktop", "mobile"}, f.Devices)
	assert.Equal(t, "2024-01-01", f.Start.String())
	assert.Equal(t, "2024-01-03", f.End.String())
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleRows(t))

	assert.Equal(t, "70", s.TotalRevenue.String())
	require.NotNil(t, s.AvgOrderValue)
	wantAvg := decimal.NewFromInt(70).Div(decimal.NewFromInt(3))
	assert.True(t, s.AvgOrderValue.Equal(wantAvg), "got %s", s.AvgOrderValue)
	// Unique users counts the whole view, not only purchases.
	assert.Equal(t, 3, s.UniqueUsers)
}

func TestSummarizeEmptyView(t *testing.T) {
	s := Summarize(nil)

	assert.True(t, s.TotalRevenue.IsZero())
	assert.Nil(t, s.AvgOrderValue)
	assert.Equal(t, 0, s.UniqueUsers)
}

func TestSummarizeViewWithoutPurchases(t *testing.T) {
	rows := buildRows(t, []rowSpec{
		{"view", "2024-01-01", "Europe", "desktop", "u1", "", "shirt", "X"},
		{"add_to_cart", "2024-01-01", "Europe", "desktop", "u2", "", "shirt", "X"},
	})
	s := Summarize(rows)

	assert.True(t, s.TotalRevenue.IsZero())
	assert.Nil(t, s.AvgOrderValue)
	assert.Equal(t, 2, s.UniqueUsers)
}

func TestSalesTrendGroupsPurchasesByDayAndDevice(t *testing.T) {
	rows := sampleRows(t)
	rows = append(rows, buildRows(t, []rowSpec{
		{"purchase", "2024-01-01", "Europe", "desktop", "u1", "5", "hat", "Y"},
	})...)

	points := SalesTrend(rows)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01-01", points[0].DateDay.String())
	assert.Equal(t, "desktop", points[0].Device)
	assert.Equal(t, "25", points[0].Revenue.String())

	assert.Equal(t, "2024-01-02", points[1].DateDay.String())
	assert.Equal(t, "desktop", points[1].Device)
	assert.Equal(t, "40", points[1].Revenue.String())

	assert.Equal(t, "2024-01-02", points[2].DateDay.String())
	assert.Equal(t, "mobile", points[2].Device)
	assert.Equal(t, "10", points[2].Revenue.String())
}

func TestTopCategoriesCountsPurchasesDescending(t *testing.T) {
	counts := TopCategories(sampleRows(t))
	require.Len(t, counts, 2)
	assert.Equal(t, CategoryCount{Category: "shirt", Count: 2}, counts[0])
	assert.Equal(t, CategoryCount{Category: "hat", Count: 1}, counts[1])
}

func TestDeviceByContinentCountsAllEventTypes(t *testing.T) {
	cells := DeviceByContinent(sampleRows(t))
	require.Len(t, cells, 3)
	assert.Equal(t, DeviceContinentCount{Continent: "Europe", Device: "desktop", Count: 2}, cells[0])
	assert.Equal(t, DeviceContinentCount{Continent: "Europe", Device: "mobile", Count: 2}, cells[1])
	assert.Equal(t, DeviceContinentCount{Continent: "North America", Device: "desktop", Count: 1}, cells[2])
}

func TestPriceByBrandKeepsRawObservations(t *testing.T) {
	points := PriceByBrand(sampleRows(t))
	require.Len(t, points, 3)
	assert.Equal(t, "X", points[0].Brand)
	assert.Equal(t, "20", points[0].Price.String())
}

func TestFunnelOrdersConfiguredStagesFirst(t *testing.T) {
	rows := buildRows(t, []rowSpec{
		{"purchase", "2024-01-01", "Europe", "desktop", "u1", "5", "shirt", "X"},
		{"view", "2024-01-01", "Europe", "desktop", "u1", "", "shirt", "X"},
		{"view", "2024-01-01", "Europe", "desktop", "u2", "", "shirt", "X"},
		{"refund", "2024-01-02", "Europe", "desktop", "u1", "", "shirt", "X"},
	})

	stages := Funnel(rows, []string{"view", "add_to_cart", "purchase"})
	require.Len(t, stages, 3)
	assert.Equal(t, FunnelStage{Type: "view", Count: 2}, stages[0])
	assert.Equal(t, FunnelStage{Type: "purchase", Count: 1}, stages[1])
	// Unconfigured types still show up, after the configured stages.
	assert.Equal(t, FunnelStage{Type: "refund", Count: 1}, stages[2])
}

func TestAggregatesOverEmptyViewReturnZeroRows(t *testing.T) {
	assert.Empty(t, SalesTrend(nil))
	assert.Empty(t, TopCategories(nil))
	assert.Empty(t, DeviceByContinent(nil))
	assert.Empty(t, PriceByBrand(nil))
	assert.Empty(t, Funnel(nil, []string{"view"}))
}
