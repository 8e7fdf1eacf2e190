package store

import (
	"time"

	"tableside/internal/domain"
)

func intPtr(v int) *int { return &v }

// Seed loads the demo dataset the frontend was built against. It
// replaces any existing state, so it is meant to run once at startup.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.menu = []domain.MenuItem{
		{ID: 1, Name: "Bruschetta", Category: "Appetizers", Price: 8.99, Description: "Toasted bread with tomatoes, garlic, and basil", Available: true},
		{ID: 2, Name: "Caesar Salad", Category: "Appetizers", Price: 9.99, Description: "Fresh romaine lettuce with Caesar dressing and croutons", Available: true},
		{ID: 3, Name: "Grilled Salmon", Category: "Main Course", Price: 24.99, Description: "Fresh Atlantic salmon with lemon butter sauce", Available: true},
		{ID: 4, Name: "Ribeye Steak", Category: "Main Course", Price: 32.99, Description: "12oz prime ribeye steak with garlic butter", Available: true},
		{ID: 5, Name: "Margherita Pizza", Category: "Main Course", Price: 14.99, Description: "Classic pizza with mozzarella, tomatoes, and basil", Available: true},
		{ID: 6, Name: "Tiramisu", Category: "Desserts", Price: 7.99, Description: "Classic Italian coffee-flavored dessert", Available: true},
		{ID: 7, Name: "Chocolate Lava Cake", Category: "Desserts", Price: 8.99, Description: "Warm chocolate cake with molten center", Available: true},
		{ID: 8, Name: "Fresh Lemonade", Category: "Beverages", Price: 3.99, Description: "Freshly squeezed lemonade", Available: true},
		{ID: 9, Name: "Iced Coffee", Category: "Beverages", Price: 4.99, Description: "Cold brew coffee with ice", Available: true},
		{ID: 10, Name: "Red Wine", Category: "Beverages", Price: 12.99, Description: "House red wine", Available: true},
	}

	s.orders = []domain.Order{
		{
			ID:          1,
			TableNumber: 5,
			Items: []domain.OrderItem{
				{MenuItemID: 1, Name: "Bruschetta", Quantity: 2, Price: 8.99},
				{MenuItemID: 3, Name: "Grilled Salmon", Quantity: 1, Price: 24.99},
			},
			Total:     42.97,
			Status:    domain.OrderPending,
			Timestamp: time.Date(2025, time.November, 8, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          2,
			TableNumber: 3,
			Items: []domain.OrderItem{
				{MenuItemID: 4, Name: "Ribeye Steak", Quantity: 2, Price: 32.99},
				{MenuItemID: 10, Name: "Red Wine", Quantity: 2, Price: 12.99},
			},
			Total:     91.96,
			Status:    domain.OrderPreparing,
			Timestamp: time.Date(2025, time.November, 8, 15, 0, 0, 0, time.UTC),
		},
		{
			ID:          3,
			TableNumber: 7,
			Items: []domain.OrderItem{
				{MenuItemID: 5, Name: "Margherita Pizza", Quantity: 1, Price: 14.99},
				{MenuItemID: 8, Name: "Fresh Lemonade", Quantity: 1, Price: 3.99},
			},
			Total:     18.98,
			Status:    domain.OrderCompleted,
			Timestamp: time.Date(2025, time.November, 8, 13, 15, 0, 0, time.UTC),
		},
	}

	s.reservations = []domain.Reservation{
		{ID: 1, CustomerName: "John Smith", Email: "john@example.com", Phone: "555-0100", Date: "2025-11-09", Time: "19:00", Guests: 4, TableNumber: intPtr(5), Status: domain.ReservationConfirmed},
		{ID: 2, CustomerName: "Sarah Johnson", Email: "sarah@example.com", Phone: "555-0101", Date: "2025-11-09", Time: "20:00", Guests: 2, TableNumber: intPtr(3), Status: domain.ReservationConfirmed},
		{ID: 3, CustomerName: "Michael Brown", Email: "michael@example.com", Phone: "555-0102", Date: "2025-11-10", Time: "18:30", Guests: 6, TableNumber: intPtr(8), Status: domain.ReservationPending},
	}

	s.tables = []domain.Table{
		{ID: 1, Number: 1, Seats: 2, Status: domain.TableAvailable},
		{ID: 2, Number: 2, Seats: 2, Status: domain.TableAvailable},
		{ID: 3, Number: 3, Seats: 4, Status: domain.TableOccupied},
		{ID: 4, Number: 4, Seats: 4, Status: domain.TableAvailable},
		{ID: 5, Number: 5, Seats: 4, Status: domain.TableOccupied},
		{ID: 6, Number: 6, Seats: 6, Status: domain.TableAvailable},
		{ID: 7, Number: 7, Seats: 6, Status: domain.TableOccupied},
		{ID: 8, Number: 8, Seats: 8, Status: domain.TableAvailable},
		{ID: 9, Number: 9, Seats: 2, Status: domain.TableReserved},
		{ID: 10, Number: 10, Seats: 4, Status: domain.TableAvailable},
	}

	s.nextMenuID = 11
	s.nextOrderID = 4
	s.nextReservationID = 4
}
