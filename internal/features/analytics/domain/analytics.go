package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned when an analytics request names an unknown
// time period.
var ErrInvalidPeriod = errors.New("invalid time period")

// chartPalette is the fixed color cycle assigned to goods groups, in
// first-occurrence order.
var chartPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#06b6d4", "#f97316", "#ec4899",
}

// ColorForIndex returns the display color for the nth goods group.
func ColorForIndex(i int) string {
	return chartPalette[i%len(chartPalette)]
}

// Period is a reporting window ending now.
type Period string

const (
	Period7Days   Period = "7days"
	Period30Days  Period = "30days"
	Period2Months Period = "2months"
	Period6Months Period = "6months"
	Period1Year   Period = "1year"
)

// ParsePeriod validates and converts a raw period string.
func ParsePeriod(raw string) (Period, error) {
	p := Period(raw)
	if _, ok := periodDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, raw)
	}
	return p, nil
}

var periodDays = map[Period]int{
	Period7Days:   7,
	Period30Days:  30,
	Period2Months: 60,
	Period6Months: 180,
	Period1Year:   365,
}

// Start returns the beginning of the window that ends at now.
func (p Period) Start(now time.Time) time.Time {
	return now.AddDate(0, 0, -periodDays[p])
}

// GoodsBreakdown is the per-good aggregate used for charts.
type GoodsBreakdown struct {
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
	Emissions float64 `json:"emissions"`
	Distance  float64 `json:"distance"`
	Count     int     `json:"count"`
	Color     string  `json:"color"`
}

// Report is the analytics summary for one reporting period.
type Report struct {
	TimePeriod     Period           `json:"time_period"`
	TotalShipments int              `json:"total_shipments"`
	TotalCost      float64          `json:"total_cost"`
	TotalEmissions float64          `json:"total_emissions"`
	TotalDistance  float64          `json:"total_distance"`
	GoodsBreakdown []GoodsBreakdown `json:"goods_breakdown"`

	UpstreamEmissions     float64 `json:"upstream_emissions"`
	DownstreamEmissions   float64 `json:"downstream_emissions"`
	CompanyOwnedEmissions float64 `json:"company_owned_emissions"`

	AverageCostPerShipment      float64 `json:"average_cost_per_shipment"`
	AverageEmissionsPerShipment float64 `json:"average_emissions_per_shipment"`
}

// ScatterPoint is one shipment plotted as cost against emissions.
type ScatterPoint struct {
	GoodName   string  `json:"good_name"`
	Cost       float64 `json:"cost"`
	Emissions  float64 `json:"emissions"`
	Quantity   float64 `json:"quantity"`
	ShipmentID string  `json:"shipment_id"`
	// CostPerEmission is omitted when the shipment has zero emissions.
	CostPerEmission *float64 `json:"cost_per_emission,omitempty"`
}

// ScatterTotals sums emissions per GHG category across the scatter points.
type ScatterTotals struct {
	UpstreamEmissions     float64 `json:"upstream_emissions"`
	DownstreamEmissions   float64 `json:"downstream_emissions"`
	CompanyOwnedEmissions float64 `json:"company_owned_emissions"`
	TotalEmissions        float64 `json:"total_emissions"`
}

// ScatterReport partitions shipments by GHG category for scatter charts.
type ScatterReport struct {
	Upstream     []ScatterPoint `json:"upstream"`
	Downstream   []ScatterPoint `json:"downstream"`
	CompanyOwned []ScatterPoint `json:"company_owned"`
	Totals       ScatterTotals  `json:"totals"`
}
