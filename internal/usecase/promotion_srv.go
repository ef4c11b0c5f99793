package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type PromotionService interface {
	CreatePromotion(ctx context.Context, req *request.PromotionRequest) (*response.PromotionResponse, error)
	GetPromotions(ctx context.Context) ([]response.PromotionResponse, error)
	DeletePromotion(ctx context.Context, promotionID int64) error
}

type promotionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPromotionService(
	repo *repository.Repository,
	log *zap.Logger,
) PromotionService {
	return &promotionService{
		repo: repo,
		log:  log.With(zap.String("service", "promotion")),
	}
}

func (s *promotionService) CreatePromotion(ctx context.Context, req *request.PromotionRequest) (*response.PromotionResponse, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must not be before start date")
	}

	promotion := &entity.Promotion{
		Name:            req.Name,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartDate:       startDate,
		EndDate:         endDate,
		Category:        req.Category,
	}

	if err := s.repo.Promotion.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	s.log.Info("Promotion created",
		zap.Int64("promotion_id", promotion.ID),
		zap.String("name", promotion.Name),
		zap.Float64("discount_percent", promotion.DiscountPercent),
	)

	resp := response.PromotionToResponse(promotion)
	return &resp, nil
}

func (s *promotionService) GetPromotions(ctx context.Context) ([]response.PromotionResponse, error) {
	promotions, err := s.repo.Promotion.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get promotions: %w", err)
	}
	return response.PromotionsToResponse(promotions), nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, promotionID int64) error {
	promotion, err := s.repo.Promotion.FindByID(ctx, promotionID)
	if err != nil {
		return fmt.Errorf("get promotion: %w", err)
	}
	if promotion == nil {
		return fmt.Errorf("promotion not found")
	}

	if err := s.repo.Promotion.Delete(ctx, promotionID); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}

	s.log.Info("Promotion deleted", zap.Int64("promotion_id", promotionID))
	return nil
}
