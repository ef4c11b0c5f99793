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

type CatalogService interface {
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	GetFilmByID(ctx context.Context, filmID int64) (*response.FilmResponse, error)
	GetFilms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error)
	SearchFilms(ctx context.Context, term string) ([]response.FilmResponse, error)
	GetFilmsByGenre(ctx context.Context, genre string) ([]response.FilmResponse, error)
	DeleteFilm(ctx context.Context, filmID int64) error

	CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	GetDirectors(ctx context.Context) ([]response.DirectorResponse, error)
	DeleteDirector(ctx context.Context, directorID int64) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(
	repo *repository.Repository,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	director, err := s.repo.Director.FindByID(ctx, req.DirectorID)
	if err != nil {
		return nil, fmt.Errorf("get director: %w", err)
	}
	if director == nil {
		return nil, fmt.Errorf("director not found")
	}

	film := &entity.Film{
		Title:       req.Title,
		RuntimeMin:  req.RuntimeMin,
		Genre:       req.Genre,
		Rating:      req.Rating,
		ReleaseYear: req.ReleaseYear,
		DirectorID:  req.DirectorID,
	}

	if err := s.repo.Film.Create(ctx, film); err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.log.Info("Film created", zap.Int64("film_id", film.ID), zap.String("title", film.Title))

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *catalogService) GetFilmByID(ctx context.Context, filmID int64) (*response.FilmResponse, error) {
	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, fmt.Errorf("film not found")
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *catalogService) GetFilms(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FilmResponse], error) {
	films, err := s.repo.Film.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("get films: %w", err)
	}

	total, err := s.repo.Film.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count films: %w", err)
	}

	return response.NewPaginatedResponse(response.FilmsToResponse(films), req.Page, req.Limit(), total), nil
}

func (s *catalogService) SearchFilms(ctx context.Context, term string) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.SearchByTitle(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}
	return response.FilmsToResponse(films), nil
}

func (s *catalogService) GetFilmsByGenre(ctx context.Context, genre string) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("get films by genre: %w", err)
	}
	return response.FilmsToResponse(films), nil
}

func (s *catalogService) DeleteFilm(ctx context.Context, filmID int64) error {
	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return fmt.Errorf("film not found")
	}

	if err := s.repo.Film.Delete(ctx, filmID); err != nil {
		return fmt.Errorf("delete film: %w", err)
	}

	s.log.Info("Film deleted", zap.Int64("film_id", filmID))
	return nil
}

func (s *catalogService) CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	director := &entity.Director{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Nationality: req.Nationality,
	}

	if req.BirthDate != nil {
		birth, err := utils.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		director.BirthDate = &birth
	}

	if err := s.repo.Director.Create(ctx, director); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created", zap.Int64("director_id", director.ID))

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *catalogService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.repo.Director.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}
	return response.DirectorsToResponse(directors), nil
}

func (s *catalogService) DeleteDirector(ctx context.Context, directorID int64) error {
	director, err := s.repo.Director.FindByID(ctx, directorID)
	if err != nil {
		return fmt.Errorf("get director: %w", err)
	}
	if director == nil {
		return fmt.Errorf("director not found")
	}

	if err := s.repo.Director.Delete(ctx, directorID); err != nil {
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.Int64("director_id", directorID))
	return nil
}
