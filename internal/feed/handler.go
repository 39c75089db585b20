package feed

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return Handler{service: service}
}

// GetFeedHandler serves GET /feed?mood_id=. Anonymous requests are allowed
// and get the lowest membership tier.
func (h *Handler) GetFeedHandler(w http.ResponseWriter, r *http.Request) {
	viewer, _ := auth.GetViewerFromContext(r)

	var moodID *int
	if raw := r.URL.Query().Get("mood_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid mood_id", map[string]string{
				"mood_id": "mood_id must be an integer",
			})
			return
		}
		moodID = &id
	}

	cards, err := h.service.ComposeFeed(r.Context(), viewer, moodID, time.Now())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load feed", "")
		return
	}

	if cards == nil {
		cards = []Card{}
	}

	response.Success(w, map[string]interface{}{
		"cards": cards,
	}, "successfully")
}
