package gamification

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return Handler{service: service}
}

func (h *Handler) GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.GetViewerFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	summary, err := h.service.Summary(r.Context(), viewer.ID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load summary", "")
		return
	}

	response.Success(w, summary, "successfully")
}

func (h *Handler) CompleteCardHandler(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.GetViewerFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	cardID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || cardID <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid card id", map[string]string{
			"id": "card id must be a positive integer",
		})
		return
	}

	award, err := h.service.CompleteCard(r.Context(), viewer.ID, cardID, time.Now())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Card not found", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to complete card", "")
		return
	}

	response.Success(w, award, "successfully")
}
