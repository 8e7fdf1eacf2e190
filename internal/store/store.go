// Package store owns all restaurant state: the menu catalog, orders,
// reservations and tables. Every operation runs under one RWMutex, so
// concurrent HTTP handlers cannot interleave id assignment or the
// order/table status cascade. State lives in memory only and resets on
// restart.
package store

import (
	"math"
	"sync"
	"time"

	"tableside/internal/domain"
)

const dateLayout = "2006-01-02"

// Store is the single owner of the four collections. The optional
// publisher and popularity collaborators are nil-safe: when unset the
// corresponding side channel is simply skipped.
type Store struct {
	mu sync.RWMutex

	menu         []domain.MenuItem
	orders       []domain.Order
	reservations []domain.Reservation
	tables       []domain.Table

	nextMenuID        int
	nextOrderID       int
	nextReservationID int

	publisher  EventPublisher
	popularity PopularityRecorder
}

func New(publisher EventPublisher, popularity PopularityRecorder) *Store {
	return &Store{
		nextMenuID:        1,
		nextOrderID:       1,
		nextReservationID: 1,
		publisher:         publisher,
		popularity:        popularity,
	}
}

// round2 rounds half away from zero to 2 decimal places. All money
// amounts in the store go through it.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func day(now time.Time) string {
	return now.Format(dateLayout)
}
