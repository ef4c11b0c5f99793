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

type TicketingHandler struct {
	service usecase.TicketingService
	log     *zap.Logger
}

func NewTicketingHandler(service usecase.TicketingService, log *zap.Logger) *TicketingHandler {
	return &TicketingHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticketing")),
	}
}

// SellTicket handles POST /api/tickets
func (h *TicketingHandler) SellTicket(w http.ResponseWriter, r *http.Request) {
	var req request.SellTicketRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.SellTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "sell ticket")
		return
	}

	utils.ResponseCreated(w, "Ticket sold successfully", ticket)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketingHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ticket ID", nil)
		return
	}

	ticket, err := h.service.GetTicketByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket retrieved successfully", ticket)
}

// UpdateTicketStatus handles PATCH /api/tickets/{id}/status
func (h *TicketingHandler) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ticket ID", nil)
		return
	}

	var req request.UpdateTicketStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.UpdateTicketStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update ticket status")
		return
	}

	utils.ResponseSuccess(w, "Ticket status updated successfully", ticket)
}

// ListAvailableSeats handles GET /api/screenings/{id}/seats
func (h *TicketingHandler) ListAvailableSeats(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid screening ID", nil)
		return
	}

	seats, err := h.service.ListAvailableSeats(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "list available seats")
		return
	}

	utils.ResponseSuccess(w, "Available seats retrieved successfully", seats)
}

// GetCustomerHistory handles GET /api/customers/{id}/tickets
func (h *TicketingHandler) GetCustomerHistory(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	history, err := h.service.GetCustomerHistory(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get customer history")
		return
	}

	utils.ResponseSuccess(w, "Ticket history retrieved successfully", history)
}
