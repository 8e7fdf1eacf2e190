package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tableside/internal/domain"
	"tableside/internal/metrics"

	"github.com/gorilla/mux"
)

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.ListTables())
}

func (h *Handler) updateTableStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status domain.TableStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if payload.Status == "" {
		table, err := h.Store.GetTable(id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, table)
		return
	}

	table, err := h.Store.SetTableStatus(id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.IncTableOverride(string(table.Status))
	writeJSON(w, http.StatusOK, table)
}
