package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type ReportService interface {
	GetDailyRevenue(ctx context.Context, from, to string) ([]response.DailyRevenueResponse, error)
	GetTopFilms(ctx context.Context, limit int) ([]response.FilmPopularityResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(
	repo *repository.Repository,
	log *zap.Logger,
) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GetDailyRevenue(ctx context.Context, from, to string) ([]response.DailyRevenueResponse, error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := utils.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	rows, err := s.repo.Report.DailyRevenue(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("get daily revenue: %w", err)
	}
	return response.DailyRevenueToResponse(rows), nil
}

func (s *reportService) GetTopFilms(ctx context.Context, limit int) ([]response.FilmPopularityResponse, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := s.repo.Report.TopFilms(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get top films: %w", err)
	}
	return response.TopFilmsToResponse(rows), nil
}
