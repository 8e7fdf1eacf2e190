package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tableside/internal/domain"
	"tableside/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.ListOrders(r.URL.Query().Get("status"))
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Store.GetOrder(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.Store.CreateOrder(r.Context(), in, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.IncOrderCreated()
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	// An empty status echoes the current order back, matching the
	// frontend's expectations for a no-op update.
	if payload.Status == "" {
		order, err := h.Store.GetOrder(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
		return
	}

	order, err := h.Store.SetOrderStatus(r.Context(), id, payload.Status, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.IncOrderTransition(string(order.Status))
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	order, err := h.Store.GetOrder(id)
	if err != nil {
		writeError(w, err)
		return
	}

	png, err := qrcode.Encode(fmt.Sprintf("%s/order.html?id=%d", h.PublicURL, order.ID), qrcode.Medium, 256)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate QR code"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
