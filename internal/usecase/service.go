package usecase

import (
	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Scheduling SchedulingService
	Ticketing  TicketingService
	Pricing    PricingService
	Catalog    CatalogService
	Customer   CustomerService
	Cinema     CinemaService
	Promotion  PromotionService
	Review     ReviewService
	Report     ReportService
}

func NewService(repo *repository.Repository, clk clock.Clock, log *zap.Logger) *Service {
	pricing := NewPricingService(repo, clk, log)

	return &Service{
		Scheduling: NewSchedulingService(repo, log),
		Ticketing:  NewTicketingService(repo, pricing, clk, log),
		Pricing:    pricing,
		Catalog:    NewCatalogService(repo, log),
		Customer:   NewCustomerService(repo, log),
		Cinema:     NewCinemaService(repo, log),
		Promotion:  NewPromotionService(repo, log),
		Review:     NewReviewService(repo, clk, log),
		Report:     NewReportService(repo, log),
	}
}
