package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type PricingService interface {
	// CalculatePrice returns the amount to charge for a seat at the given
	// screening. The second return value is the promotion actually applied:
	// nil when none was requested or the requested one was not usable.
	CalculatePrice(ctx context.Context, screeningID int64, promotionID *int64) (float64, *int64, error)
}

type pricingService struct {
	repo  *repository.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewPricingService(
	repo *repository.Repository,
	clk clock.Clock,
	log *zap.Logger,
) PricingService {
	return &pricingService{
		repo:  repo,
		clock: clk,
		log:   log.With(zap.String("service", "pricing")),
	}
}

// CalculatePrice starts from the base price of the screening's tariff and
// applies the requested promotion only if its date window covers today.
// A missing or lapsed promotion is not an error: the sale goes through at
// full price.
func (s *pricingService) CalculatePrice(ctx context.Context, screeningID int64, promotionID *int64) (float64, *int64, error) {
	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return 0, nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return 0, nil, ErrScreeningNotFound
	}

	tariff, err := s.repo.Tariff.FindByID(ctx, screening.TariffID)
	if err != nil {
		return 0, nil, fmt.Errorf("get tariff: %w", err)
	}
	if tariff == nil {
		return 0, nil, fmt.Errorf("tariff not found")
	}

	price := tariff.BasePrice
	var applied *int64

	if promotionID != nil {
		promotion, err := s.repo.Promotion.FindByID(ctx, *promotionID)
		if err != nil {
			return 0, nil, fmt.Errorf("get promotion: %w", err)
		}
		if promotion != nil && promotion.ActiveOn(s.clock.Now()) {
			price = price * (1 - promotion.DiscountPercent/100)
			applied = promotionID
		} else {
			s.log.Debug("Promotion not applicable, charging full price",
				zap.Int64("promotion_id", *promotionID),
				zap.Int64("screening_id", screeningID),
			)
		}
	}

	price = utils.Round2(price)
	if price < 0 {
		price = 0
	}

	return price, applied, nil
}
