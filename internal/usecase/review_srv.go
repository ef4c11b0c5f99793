package usecase

import (
	"context"
	"fmt"

	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	GetFilmReviews(ctx context.Context, filmID int64) ([]response.ReviewResponse, error)
	GetFilmReviewSummary(ctx context.Context, filmID int64) (*response.ReviewSummaryResponse, error)
}

type reviewService struct {
	repo  *repository.Repository
	clock clock.Clock
	log   *zap.Logger
}

func NewReviewService(
	repo *repository.Repository,
	clk clock.Clock,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		repo:  repo,
		clock: clk,
		log:   log.With(zap.String("service", "review")),
	}
}

// CreateReview records one rating per customer per film.
func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	customer, err := s.repo.Customer.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	film, err := s.repo.Film.FindByID(ctx, req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, fmt.Errorf("film not found")
	}

	exists, err := s.repo.Review.ExistsByCustomerAndFilm(ctx, req.CustomerID, req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("check review: %w", err)
	}
	if exists {
		return nil, ErrReviewExists
	}

	review := &entity.Review{
		Rating:     req.Rating,
		CustomerID: req.CustomerID,
		FilmID:     req.FilmID,
		CreatedAt:  s.clock.Now(),
	}
	if req.Comment != "" {
		review.Comment = &req.Comment
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrReviewExists
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("film_id", req.FilmID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetFilmReviews(ctx context.Context, filmID int64) ([]response.ReviewResponse, error) {
	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, fmt.Errorf("film not found")
	}

	reviews, err := s.repo.Review.FindByFilmID(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}
	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) GetFilmReviewSummary(ctx context.Context, filmID int64) (*response.ReviewSummaryResponse, error) {
	summary, err := s.repo.Review.FilmSummary(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("get review summary: %w", err)
	}
	if summary == nil {
		return nil, fmt.Errorf("film not found")
	}

	resp := response.SummaryToResponse(summary)
	return &resp, nil
}
