package store

import (
	"context"
	"time"

	"tableside/internal/domain"
)

func (s *Store) ListOrders(status string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := []domain.Order{}
	for _, order := range s.orders {
		if status == "" || string(order.Status) == status {
			orders = append(orders, order)
		}
	}
	return orders
}

func (s *Store) GetOrder(id int) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return domain.Order{}, &NotFoundError{Message: "Order not found"}
}

// CreateOrder validates the payload, snapshots the line items, computes
// the total and occupies the referenced table when it is available. The
// timestamp comes from the caller so the store never reads the wall
// clock.
func (s *Store) CreateOrder(ctx context.Context, in domain.OrderInput, now time.Time) (domain.Order, error) {
	if in.TableNumber == 0 || len(in.Items) == 0 {
		return domain.Order{}, &ValidationError{Message: "Table number and items are required"}
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return domain.Order{}, &ValidationError{Message: "Item quantity must be at least 1"}
		}
		if item.Price < 0 {
			return domain.Order{}, &ValidationError{Message: "Item price cannot be negative"}
		}
	}

	total := 0.0
	items := make([]domain.OrderItem, len(in.Items))
	for i, item := range in.Items {
		items[i] = item
		total += item.Price * float64(item.Quantity)
	}

	s.mu.Lock()
	order := domain.Order{
		ID:          s.nextOrderID,
		TableNumber: in.TableNumber,
		Items:       items,
		Total:       round2(total),
		Status:      domain.OrderPending,
		Timestamp:   now,
	}
	s.nextOrderID++
	s.orders = append(s.orders, order)
	s.occupyTableLocked(in.TableNumber)
	s.mu.Unlock()

	if s.popularity != nil {
		_ = s.popularity.RecordOrderItems(ctx, day(now), items)
	}
	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   now,
	})
	return order, nil
}

// SetOrderStatus applies a lifecycle transition. Reaching a terminal
// status triggers the table cascade: the table is freed only when no
// other active order references it, and becomes reserved instead of
// available when a confirmed reservation holds it for today.
func (s *Store) SetOrderStatus(ctx context.Context, id int, status domain.OrderStatus, now time.Time) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, &ValidationError{Message: "Invalid order status"}
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return domain.Order{}, &NotFoundError{Message: "Order not found"}
	}

	current := s.orders[idx].Status
	if !current.CanTransitionTo(status) {
		s.mu.Unlock()
		return domain.Order{}, &InvalidTransitionError{From: current, To: status}
	}

	s.orders[idx].Status = status
	order := s.orders[idx]
	if status.Terminal() {
		s.releaseTableLocked(order.TableNumber, day(now))
	}
	s.mu.Unlock()

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventStatusChanged,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   now,
	})
	return order, nil
}

// occupyTableLocked marks the referenced table occupied if it exists and
// is currently available. Unknown table numbers are tolerated: orders do
// not enforce referential integrity to tables.
func (s *Store) occupyTableLocked(number int) {
	for i := range s.tables {
		if s.tables[i].Number == number {
			if s.tables[i].Status == domain.TableAvailable {
				s.tables[i].Status = domain.TableOccupied
			}
			return
		}
	}
}

// releaseTableLocked recomputes a table's status from all orders that
// reference it, never from the single order that just changed. It is a
// no-op when another active order still holds the table, which makes
// repeated invocations idempotent.
func (s *Store) releaseTableLocked(number int, today string) {
	for _, order := range s.orders {
		if order.TableNumber == number && order.Status.Active() {
			return
		}
	}

	next := domain.TableAvailable
	for _, res := range s.reservations {
		if res.TableNumber != nil && *res.TableNumber == number &&
			res.Status == domain.ReservationConfirmed && res.Date == today {
			next = domain.TableReserved
			break
		}
	}

	for i := range s.tables {
		if s.tables[i].Number == number {
			s.tables[i].Status = next
			return
		}
	}
}

func (s *Store) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishOrderEvent(ctx, event)
}
