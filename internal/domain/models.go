package domain

import "time"

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

// OrderItem is a snapshot of a menu item taken at order-creation time.
// It never follows later menu edits or deletions.
type OrderItem struct {
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Order struct {
	ID          int         `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	Timestamp   time.Time   `json:"timestamp"`
}

type Reservation struct {
	ID           int               `json:"id"`
	CustomerName string            `json:"customerName"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Guests       int               `json:"guests"`
	TableNumber  *int              `json:"tableNumber"`
	Status       ReservationStatus `json:"status"`
}

type Table struct {
	ID     int         `json:"id"`
	Number int         `json:"number"`
	Seats  int         `json:"seats"`
	Status TableStatus `json:"status"`
}

// Stats is the dashboard snapshot. TotalRevenue is a pre-formatted
// 2-decimal string because that is what the frontend renders verbatim.
type Stats struct {
	TotalOrders       int      `json:"totalOrders"`
	PendingOrders     int      `json:"pendingOrders"`
	PreparingOrders   int      `json:"preparingOrders"`
	CompletedOrders   int      `json:"completedOrders"`
	TotalRevenue      string   `json:"totalRevenue"`
	TotalReservations int      `json:"totalReservations"`
	TodayReservations int      `json:"todayReservations"`
	AvailableTables   int      `json:"availableTables"`
	OccupiedTables    int      `json:"occupiedTables"`
	ReservedTables    int      `json:"reservedTables"`
	MenuItems         int      `json:"menuItems"`
	Categories        []string `json:"categories"`
}

// PopularItem is one row of the daily popularity leaderboard.
type PopularItem struct {
	MenuItemID int    `json:"menuItemId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

type OrderEvent struct {
	Type        string      `json:"type"`
	OrderID     int         `json:"order_id"`
	TableNumber int         `json:"table_number"`
	Status      OrderStatus `json:"status"`
	Total       float64     `json:"total"`
	Timestamp   time.Time   `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)
