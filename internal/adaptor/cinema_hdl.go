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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// CreateRoom handles POST /api/rooms
func (h *CinemaHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}

// GetRooms handles GET /api/rooms
func (h *CinemaHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "Rooms retrieved successfully", rooms)
}

// UpdateRoomStatus handles PATCH /api/rooms/{id}/status
func (h *CinemaHandler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	var req request.RoomStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateRoomStatus(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "update room status")
		return
	}

	utils.ResponseSuccess(w, "Room status updated successfully", nil)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *CinemaHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted successfully", nil)
}

// AddSeats handles POST /api/rooms/{id}/seats
func (h *CinemaHandler) AddSeats(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	var reqs []request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if len(reqs) == 0 {
		utils.ResponseBadRequest(w, "At least one seat is required", nil)
		return
	}

	for _, req := range reqs {
		if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", validationErrors)
			return
		}
	}

	seats, err := h.service.AddSeats(r.Context(), id, reqs)
	if err != nil {
		handleServiceError(h.log, w, err, "add seats")
		return
	}

	utils.ResponseCreated(w, "Seats added successfully", seats)
}

// GetRoomSeats handles GET /api/rooms/{id}/seats
func (h *CinemaHandler) GetRoomSeats(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	seats, err := h.service.GetRoomSeats(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get room seats")
		return
	}

	utils.ResponseSuccess(w, "Seats retrieved successfully", seats)
}

// UpdateSeatStatus handles PATCH /api/seats/{id}/status
func (h *CinemaHandler) UpdateSeatStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid seat ID", nil)
		return
	}

	var req request.SeatStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateSeatStatus(r.Context(), id, &req); err != nil {
		handleServiceError(h.log, w, err, "update seat status")
		return
	}

	utils.ResponseSuccess(w, "Seat status updated successfully", nil)
}

// CreateTariff handles POST /api/tariffs
func (h *CinemaHandler) CreateTariff(w http.ResponseWriter, r *http.Request) {
	var req request.TariffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	tariff, err := h.service.CreateTariff(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tariff")
		return
	}

	utils.ResponseCreated(w, "Tariff created successfully", tariff)
}

// GetTariffs handles GET /api/tariffs
func (h *CinemaHandler) GetTariffs(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.service.GetTariffs(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get tariffs")
		return
	}

	utils.ResponseSuccess(w, "Tariffs retrieved successfully", tariffs)
}

// DeleteTariff handles DELETE /api/tariffs/{id}
func (h *CinemaHandler) DeleteTariff(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tariff ID", nil)
		return
	}

	if err := h.service.DeleteTariff(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete tariff")
		return
	}

	utils.ResponseSuccess(w, "Tariff deleted successfully", nil)
}

// CreateStaff handles POST /api/staff
func (h *CinemaHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.StaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "Staff member created successfully", staff)
}

// GetStaff handles GET /api/staff
func (h *CinemaHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.GetStaff(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved successfully", staff)
}

// DeleteStaff handles DELETE /api/staff/{id}
func (h *CinemaHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid staff ID", nil)
		return
	}

	if err := h.service.DeleteStaff(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete staff")
		return
	}

	utils.ResponseSuccess(w, "Staff member deleted successfully", nil)
}
