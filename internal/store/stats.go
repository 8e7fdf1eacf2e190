package store

import (
	"fmt"
	"time"

	"tableside/internal/domain"
)

// categories is the fixed set the dashboard renders filter tabs for.
var categories = []string{"Appetizers", "Main Course", "Desserts", "Beverages"}

// Stats recomputes the dashboard snapshot from scratch on every call.
// "Today" is supplied by the caller so the store stays deterministic.
func (s *Store) Stats(now time.Time) domain.Stats {
	today := day(now)

	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{
		TotalOrders:       len(s.orders),
		TotalReservations: len(s.reservations),
		MenuItems:         len(s.menu),
		Categories:        categories,
	}

	revenue := 0.0
	for _, order := range s.orders {
		switch order.Status {
		case domain.OrderPending:
			stats.PendingOrders++
		case domain.OrderPreparing:
			stats.PreparingOrders++
		case domain.OrderCompleted:
			stats.CompletedOrders++
			revenue += order.Total
		}
	}
	stats.TotalRevenue = fmt.Sprintf("%.2f", round2(revenue))

	for _, res := range s.reservations {
		if res.Date == today {
			stats.TodayReservations++
		}
	}

	for _, table := range s.tables {
		switch table.Status {
		case domain.TableAvailable:
			stats.AvailableTables++
		case domain.TableOccupied:
			stats.OccupiedTables++
		case domain.TableReserved:
			stats.ReservedTables++
		}
	}
	return stats
}
