package domain

// MenuItemInput is the creation payload for a menu item. Available is a
// pointer so an omitted flag can default to true while an explicit false
// is preserved.
type MenuItemInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
}

// MenuItemPatch is a field-level partial update. Nil fields are left
// untouched; explicit zero values (empty string, 0, false) still apply.
type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
}

type OrderInput struct {
	TableNumber int         `json:"tableNumber"`
	Items       []OrderItem `json:"items"`
}

type ReservationInput struct {
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Guests       int    `json:"guests"`
	TableNumber  *int   `json:"tableNumber"`
}
