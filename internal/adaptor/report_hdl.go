package adaptor

import (
	"net/http"

	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetDailyRevenue handles GET /api/reports/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) GetDailyRevenue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "Query parameters 'from' and 'to' are required", nil)
		return
	}

	report, err := h.service.GetDailyRevenue(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "get daily revenue")
		return
	}

	utils.ResponseSuccess(w, "Revenue report retrieved successfully", report)
}

// GetTopFilms handles GET /api/reports/top-films?limit=N
func (h *ReportHandler) GetTopFilms(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	report, err := h.service.GetTopFilms(r.Context(), limit)
	if err != nil {
		handleServiceError(h.log, w, err, "get top films")
		return
	}

	utils.ResponseSuccess(w, "Top films retrieved successfully", report)
}
