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

type PromotionHandler struct {
	service usecase.PromotionService
	log     *zap.Logger
}

func NewPromotionHandler(service usecase.PromotionService, log *zap.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		log:     log.With(zap.String("handler", "promotion")),
	}
}

// CreatePromotion handles POST /api/promotions
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req request.PromotionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	promotion, err := h.service.CreatePromotion(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create promotion")
		return
	}

	utils.ResponseCreated(w, "Promotion created successfully", promotion)
}

// GetPromotions handles GET /api/promotions
func (h *PromotionHandler) GetPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.service.GetPromotions(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get promotions")
		return
	}

	utils.ResponseSuccess(w, "Promotions retrieved successfully", promotions)
}

// DeletePromotion handles DELETE /api/promotions/{id}
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid promotion ID", nil)
		return
	}

	if err := h.service.DeletePromotion(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete promotion")
		return
	}

	utils.ResponseSuccess(w, "Promotion deleted successfully", nil)
}
