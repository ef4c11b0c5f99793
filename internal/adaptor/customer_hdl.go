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

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// RegisterCustomer handles POST /api/customers
func (h *CustomerHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	customer, err := h.service.RegisterCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "register customer")
		return
	}

	utils.ResponseCreated(w, "Customer registered successfully", customer)
}

// GetCustomers handles GET /api/customers with optional search
func (h *CustomerHandler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if term := query.Get("search"); term != "" {
		customers, err := h.service.SearchCustomers(r.Context(), term)
		if err != nil {
			handleServiceError(h.log, w, err, "search customers")
			return
		}
		utils.ResponseSuccess(w, "Customers retrieved successfully", customers)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	customers, err := h.service.GetCustomers(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get customers")
		return
	}

	utils.ResponseSuccess(w, "Customers retrieved successfully", customers)
}

// GetCustomerByID handles GET /api/customers/{id}
func (h *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	customer, err := h.service.GetCustomerByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get customer")
		return
	}

	utils.ResponseSuccess(w, "Customer retrieved successfully", customer)
}

// UpdateCustomer handles PUT /api/customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	var req request.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "Customer updated successfully", customer)
}

// DeleteCustomer handles DELETE /api/customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid customer ID", nil)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, "Customer deleted successfully", nil)
}
