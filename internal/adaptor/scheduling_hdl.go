package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SchedulingHandler struct {
	service usecase.SchedulingService
	log     *zap.Logger
}

func NewSchedulingHandler(service usecase.SchedulingService, log *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{
		service: service,
		log:     log.With(zap.String("handler", "scheduling")),
	}
}

// CreateScreening handles POST /api/screenings
func (h *SchedulingHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScreeningRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening scheduled successfully", screening)
}

// GetScreeningByID handles GET /api/screenings/{id}
func (h *SchedulingHandler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid screening ID", nil)
		return
	}

	screening, err := h.service.GetScreeningByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get screening")
		return
	}

	utils.ResponseSuccess(w, "Screening retrieved successfully", screening)
}

// GetDailyBoard handles GET /api/screenings?date=YYYY-MM-DD
func (h *SchedulingHandler) GetDailyBoard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	board, err := h.service.GetDailyBoard(r.Context(), date)
	if err != nil {
		handleServiceError(h.log, w, err, "get daily board")
		return
	}

	utils.ResponseSuccess(w, "Screenings retrieved successfully", board)
}

// GetRoomSchedule handles GET /api/rooms/{id}/screenings?date=YYYY-MM-DD
func (h *SchedulingHandler) GetRoomSchedule(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	schedule, err := h.service.GetRoomSchedule(r.Context(), roomID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "get room schedule")
		return
	}

	utils.ResponseSuccess(w, "Room schedule retrieved successfully", schedule)
}

// DeleteScreening handles DELETE /api/screenings/{id}
func (h *SchedulingHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid screening ID", nil)
		return
	}

	if err := h.service.DeleteScreening(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "Screening deleted successfully", nil)
}
