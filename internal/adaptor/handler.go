package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Scheduling *SchedulingHandler
	Ticketing  *TicketingHandler
	Catalog    *CatalogHandler
	Customer   *CustomerHandler
	Cinema     *CinemaHandler
	Promotion  *PromotionHandler
	Review     *ReviewHandler
	Report     *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Scheduling: NewSchedulingHandler(service.Scheduling, log),
		Ticketing:  NewTicketingHandler(service.Ticketing, log),
		Catalog:    NewCatalogHandler(service.Catalog, log),
		Customer:   NewCustomerHandler(service.Customer, log),
		Cinema:     NewCinemaHandler(service.Cinema, log),
		Promotion:  NewPromotionHandler(service.Promotion, log),
		Review:     NewReviewHandler(service.Review, log),
		Report:     NewReportHandler(service.Report, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Business
// conflicts become 409, missing records 404, bad input 400, the rest 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrSchedulingConflict),
		errors.Is(err, usecase.ErrSeatAlreadyTaken),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrReviewExists),
		errors.Is(err, usecase.ErrRoomUnavailable),
		errors.Is(err, usecase.ErrSeatUnavailable),
		errors.Is(err, usecase.ErrScreeningHasSales):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrScreeningNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidTimeRange):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "already taken"),
		strings.Contains(err.Error(), "must not be"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
