package httpapi

import (
	"tableside/internal/store"

	"github.com/gorilla/mux"
)

type Handler struct {
	Store store.DiningStore
	// PublicURL is the externally reachable base URL encoded into order
	// QR codes.
	PublicURL string
}

func NewHandler(s store.DiningStore, publicURL string) *Handler {
	return &Handler{Store: s, PublicURL: publicURL}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")

	// /api/menu/popular must be registered before /api/menu/{id}.
	r.HandleFunc("/api/menu/popular", h.getPopularMenuItems).Methods("GET")
	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/reservations", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations", h.createReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", h.deleteReservation).Methods("DELETE")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.updateTableStatus).Methods("PUT")

	r.HandleFunc("/api/stats", h.getStats).Methods("GET")
}
