package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tableside/internal/domain"
	"tableside/internal/metrics"

	"github.com/gorilla/mux"
)

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	reservations := h.Store.ListReservations(r.URL.Query().Get("date"))
	writeJSON(w, http.StatusOK, reservations)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	var in domain.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	res, err := h.Store.CreateReservation(in)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.IncReservationCreated()
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Store.DeleteReservation(id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Reservation deleted successfully")
}
