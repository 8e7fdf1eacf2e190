package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tableside/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items := h.Store.ListMenu(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var in domain.MenuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.Store.CreateMenuItem(in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var patch domain.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.Store.UpdateMenuItem(id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Store.DeleteMenuItem(id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Menu item deleted successfully")
}

func (h *Handler) getPopularMenuItems(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	top := h.Store.TopMenuItems(r.Context(), time.Now(), limit)
	writeJSON(w, http.StatusOK, top)
}
