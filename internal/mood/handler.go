package mood

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/response"
)

var validate = validator.New()

type Handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return Handler{service: service}
}

func (h *Handler) ListMoodsHandler(w http.ResponseWriter, r *http.Request) {
	moods, err := h.service.ListMoods(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load moods", "")
		return
	}

	if moods == nil {
		moods = []Mood{}
	}

	response.Success(w, moods, "successfully")
}

func (h *Handler) CheckInHandler(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.GetViewerFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"mood_id": "mood_id is required and must be positive",
		})
		return
	}

	result, err := h.service.CheckIn(r.Context(), viewer.ID, req.MoodID, time.Now())
	if err != nil {
		if errors.Is(err, ErrUnknownMood) {
			response.Error(w, http.StatusBadRequest, "Unknown mood", map[string]string{
				"mood_id": "mood does not exist or is inactive",
			})
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to check in", "")
		return
	}

	response.Success(w, result, "successfully")
}

func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	viewer, ok := auth.GetViewerFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			days = n
		}
	}

	logs, err := h.service.History(r.Context(), viewer.ID, days)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load mood history", "")
		return
	}

	if logs == nil {
		logs = []MoodLog{}
	}

	response.Success(w, logs, "successfully")
}
