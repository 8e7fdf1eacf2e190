package store

import (
	"context"
	"time"

	"tableside/internal/domain"
)

// DiningStore is the full operation surface consumed by the HTTP layer.
type DiningStore interface {
	ListMenu(category string) []domain.MenuItem
	CreateMenuItem(in domain.MenuItemInput) (domain.MenuItem, error)
	UpdateMenuItem(id int, patch domain.MenuItemPatch) (domain.MenuItem, error)
	DeleteMenuItem(id int) error
	TopMenuItems(ctx context.Context, now time.Time, limit int) []domain.PopularItem

	ListOrders(status string) []domain.Order
	GetOrder(id int) (domain.Order, error)
	CreateOrder(ctx context.Context, in domain.OrderInput, now time.Time) (domain.Order, error)
	SetOrderStatus(ctx context.Context, id int, status domain.OrderStatus, now time.Time) (domain.Order, error)

	ListReservations(date string) []domain.Reservation
	CreateReservation(in domain.ReservationInput) (domain.Reservation, error)
	DeleteReservation(id int) error

	ListTables() []domain.Table
	GetTable(id int) (domain.Table, error)
	SetTableStatus(id int, status domain.TableStatus) (domain.Table, error)

	Stats(now time.Time) domain.Stats
}

// EventPublisher pushes order lifecycle events to an external stream.
// Publishing is best effort and never blocks a mutation.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// PopularityRecorder mirrors per-item daily order counts into an external
// leaderboard.
type PopularityRecorder interface {
	RecordOrderItems(ctx context.Context, day string, items []domain.OrderItem) error
	TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error)
}

var _ DiningStore = (*Store)(nil)
