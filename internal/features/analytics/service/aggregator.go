package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"freight-emissions/internal/features/analytics/domain"
	shipments "freight-emissions/internal/features/shipments/domain"
	"freight-emissions/internal/features/shipments/ports"
)

// Aggregator derives analytics reports from the stored shipment list.
// Aggregation itself is pure; the same shipment list always produces the
// same report.
type Aggregator struct {
	repo ports.ShipmentRepository
	now  func() time.Time
}

// NewAggregator creates an Aggregator over the shipment store.
func NewAggregator(repo ports.ShipmentRepository) *Aggregator {
	return &Aggregator{
		repo: repo,
		now:  time.Now,
	}
}

// Report aggregates shipments created within the named period.
func (a *Aggregator) Report(ctx context.Context, rawPeriod string) (domain.Report, error) {
	period, err := domain.ParsePeriod(rawPeriod)
	if err != nil {
		return domain.Report{}, err
	}

	list, err := a.repo.List(ctx)
	if err != nil {
		return domain.Report{}, fmt.Errorf("failed to load shipments: %w", err)
	}

	return Aggregate(list, period, a.now().UTC()), nil
}

// Scatter partitions all stored shipments by GHG category.
func (a *Aggregator) Scatter(ctx context.Context) (domain.ScatterReport, error) {
	list, err := a.repo.List(ctx)
	if err != nil {
		return domain.ScatterReport{}, fmt.Errorf("failed to load shipments: %w", err)
	}

	return ScatterOf(list), nil
}

// Aggregate builds the period report from a shipment list. Goods groups keep
// the insertion order of their first occurrence; colors cycle through the
// fixed palette by group index.
func Aggregate(list []shipments.Shipment, period domain.Period, now time.Time) domain.Report {
	start := period.Start(now)

	report := domain.Report{
		TimePeriod:     period,
		GoodsBreakdown: []domain.GoodsBreakdown{},
	}

	index := make(map[string]int)
	for _, s := range list {
		if s.CreatedAt.Before(start) || s.CreatedAt.After(now) {
			continue
		}

		report.TotalShipments++
		report.TotalCost += s.TotalCost
		report.TotalEmissions += s.TotalEmission
		report.TotalDistance += s.TotalDistance
		report.UpstreamEmissions += s.UpstreamEmissions
		report.DownstreamEmissions += s.DownstreamEmissions
		report.CompanyOwnedEmissions += s.CompanyOwnedEmissions

		i, ok := index[s.Good.Name]
		if !ok {
			i = len(report.GoodsBreakdown)
			index[s.Good.Name] = i
			report.GoodsBreakdown = append(report.GoodsBreakdown, domain.GoodsBreakdown{
				Name:  s.Good.Name,
				Color: domain.ColorForIndex(i),
			})
		}
		report.GoodsBreakdown[i].Cost += s.TotalCost
		report.GoodsBreakdown[i].Emissions += s.TotalEmission
		report.GoodsBreakdown[i].Distance += s.TotalDistance
		report.GoodsBreakdown[i].Count++
	}

	if report.TotalShipments > 0 {
		report.AverageCostPerShipment = round2(report.TotalCost / float64(report.TotalShipments))
		report.AverageEmissionsPerShipment = round2(report.TotalEmissions / float64(report.TotalShipments))
	}
	report.TotalCost = round2(report.TotalCost)
	report.TotalEmissions = round2(report.TotalEmissions)
	report.TotalDistance = round2(report.TotalDistance)
	report.UpstreamEmissions = round2(report.UpstreamEmissions)
	report.DownstreamEmissions = round2(report.DownstreamEmissions)
	report.CompanyOwnedEmissions = round2(report.CompanyOwnedEmissions)

	return report
}

// ScatterOf builds the category scatter report from a shipment list.
// Shipments with neither cost nor emissions are skipped.
func ScatterOf(list []shipments.Shipment) domain.ScatterReport {
	report := domain.ScatterReport{
		Upstream:     []domain.ScatterPoint{},
		Downstream:   []domain.ScatterPoint{},
		CompanyOwned: []domain.ScatterPoint{},
	}

	for _, s := range list {
		if s.TotalCost == 0 && s.TotalEmission == 0 {
			continue
		}

		point := domain.ScatterPoint{
			GoodName:   s.Good.Name,
			Cost:       round2(s.TotalCost),
			Emissions:  round2(s.TotalEmission),
			Quantity:   s.Good.Quantity,
			ShipmentID: s.ID,
		}
		if s.TotalEmission != 0 {
			cpe := round2(s.TotalCost / s.TotalEmission)
			point.CostPerEmission = &cpe
		}

		switch s.Good.Category {
		case shipments.CategoryUpstream:
			report.Upstream = append(report.Upstream, point)
			report.Totals.UpstreamEmissions += s.TotalEmission
		case shipments.CategoryDownstream:
			report.Downstream = append(report.Downstream, point)
			report.Totals.DownstreamEmissions += s.TotalEmission
		case shipments.CategoryCompanyOwned:
			report.CompanyOwned = append(report.CompanyOwned, point)
			report.Totals.CompanyOwnedEmissions += s.TotalEmission
		}
	}

	report.Totals.TotalEmissions = round2(report.Totals.UpstreamEmissions +
		report.Totals.DownstreamEmissions + report.Totals.CompanyOwnedEmissions)
	report.Totals.UpstreamEmissions = round2(report.Totals.UpstreamEmissions)
	report.Totals.DownstreamEmissions = round2(report.Totals.DownstreamEmissions)
	report.Totals.CompanyOwnedEmissions = round2(report.Totals.CompanyOwnedEmissions)

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
