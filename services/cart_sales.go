package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/CardozoMartin/distri-back/models"
)

// Sales aggregation: read-only windows over paid carts. Empty windows
// yield zero totals, never an error.

// SalesForDay returns today's paid carts.
func (s *cartServiceImpl) SalesForDay(ctx context.Context) ([]models.Cart, *ServiceError) {
	start, end := dayWindow(s.now())
	carts, err := s.carts.FindPaidBetween(ctx, start, end)
	if err != nil {
		s.logger.Error("daily carts query failed", zap.Error(err))
		return nil, unexpectedError("No se pudieron obtener las ventas del día")
	}
	return carts, nil
}

// DailySales sums today's paid carts.
func (s *cartServiceImpl) DailySales(ctx context.Context) (*models.SalesSummary, *ServiceError) {
	start, end := dayWindow(s.now())
	return s.summarize(ctx, start, end)
}

// SalesComparison pairs today's totals with yesterday's.
func (s *cartServiceImpl) SalesComparison(ctx context.Context) (*models.SalesComparison, *ServiceError) {
	todayStart, todayEnd := dayWindow(s.now())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	today, serr := s.summarize(ctx, todayStart, todayEnd)
	if serr != nil {
		return nil, serr
	}
	yesterday, serr := s.summarize(ctx, yesterdayStart, todayStart)
	if serr != nil {
		return nil, serr
	}

	return &models.SalesComparison{Current: *today, Previous: *yesterday}, nil
}

// MonthlySales sums the current month's paid carts.
func (s *cartServiceImpl) MonthlySales(ctx context.Context) (*models.SalesSummary, *ServiceError) {
	start, end := monthWindow(s.now())
	return s.summarize(ctx, start, end)
}

// MonthlySalesComparison pairs the current month's totals with the
// previous month's.
func (s *cartServiceImpl) MonthlySalesComparison(ctx context.Context) (*models.SalesComparison, *ServiceError) {
	currentStart, currentEnd := monthWindow(s.now())
	previousStart := currentStart.AddDate(0, -1, 0)

	current, serr := s.summarize(ctx, currentStart, currentEnd)
	if serr != nil {
		return nil, serr
	}
	previous, serr := s.summarize(ctx, previousStart, currentStart)
	if serr != nil {
		return nil, serr
	}

	return &models.SalesComparison{Current: *current, Previous: *previous}, nil
}

func (s *cartServiceImpl) summarize(ctx context.Context, from, to time.Time) (*models.SalesSummary, *ServiceError) {
	carts, err := s.carts.FindPaidBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("sales query failed",
			zap.Time("from", from), zap.Time("to", to), zap.Error(err))
		return nil, unexpectedError("No se pudieron calcular las ventas")
	}

	summary := &models.SalesSummary{}
	for _, cart := range carts {
		summary.TotalSales += cart.Total
		summary.TotalOrders++
	}
	return summary, nil
}

// dayWindow returns [startOfDay, startOfNextDay) for t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// monthWindow returns [startOfMonth, startOfNextMonth) for t.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
