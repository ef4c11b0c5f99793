package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type SchedulingService interface {
	CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error)
	GetScreeningByID(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error)
	GetDailyBoard(ctx context.Context, date string) ([]response.BoardEntryResponse, error)
	GetRoomSchedule(ctx context.Context, roomID int64, date string) ([]response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID int64) error
}

type schedulingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSchedulingService(
	repo *repository.Repository,
	log *zap.Logger,
) SchedulingService {
	return &schedulingService{
		repo: repo,
		log:  log.With(zap.String("service", "scheduling")),
	}
}

// CreateScreening places a screening in a room, rejecting any interval that
// overlaps an existing screening there on the same day. Intervals are
// half-open, so a screening may start exactly when the previous one ends.
// The overlap check and the insert run in one transaction; the unique
// constraint on (room_id, date, starts_at) backs up the check under
// concurrent requests.
func (s *schedulingService) CreateScreening(ctx context.Context, req *request.CreateScreeningRequest) (*response.ScreeningResponse, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	startsAt, err := utils.CombineDateTime(date, req.StartTime)
	if err != nil {
		return nil, err
	}

	film, err := s.repo.Film.FindByID(ctx, req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("get film: %w", err)
	}
	if film == nil {
		return nil, fmt.Errorf("film not found")
	}

	var endsAt time.Time
	if req.EndTime == "" {
		endsAt = startsAt.Add(time.Duration(film.RuntimeMin) * time.Minute)
	} else {
		endsAt, err = utils.CombineDateTime(date, req.EndTime)
		if err != nil {
			return nil, err
		}
	}
	if !endsAt.After(startsAt) {
		return nil, ErrInvalidTimeRange
	}

	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}
	if room.Status != entity.RoomStatusActive {
		return nil, ErrRoomUnavailable
	}

	screening := &entity.Screening{
		Date:     date,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		FilmID:   req.FilmID,
		RoomID:   req.RoomID,
		StaffID:  req.StaffID,
		TariffID: req.TariffID,
	}

	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		overlaps, err := s.repo.Screening.ExistsOverlap(ctx, req.RoomID, date, startsAt, endsAt, nil)
		if err != nil {
			return fmt.Errorf("check overlap: %w", err)
		}
		if overlaps {
			return ErrSchedulingConflict
		}

		if err := s.repo.Screening.Create(ctx, screening); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrSchedulingConflict
			}
			return fmt.Errorf("create screening: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Screening scheduled",
		zap.Int64("screening_id", screening.ID),
		zap.Int64("room_id", screening.RoomID),
		zap.String("date", req.Date),
		zap.String("start_time", req.StartTime),
	)

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *schedulingService) GetScreeningByID(ctx context.Context, screeningID int64) (*response.ScreeningResponse, error) {
	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, ErrScreeningNotFound
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

// GetDailyBoard lists the screenings of one day that still have seats to
// sell, ordered by start time.
func (s *schedulingService) GetDailyBoard(ctx context.Context, date string) ([]response.BoardEntryResponse, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	summaries, err := s.repo.Screening.ListOnDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list screenings on date: %w", err)
	}

	return response.SummariesToBoard(summaries), nil
}

func (s *schedulingService) GetRoomSchedule(ctx context.Context, roomID int64, date string) ([]response.ScreeningResponse, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	screenings, err := s.repo.Screening.FindByRoomAndDate(ctx, roomID, day)
	if err != nil {
		return nil, fmt.Errorf("list room screenings: %w", err)
	}

	schedule := make([]response.ScreeningResponse, 0, len(screenings))
	for _, sc := range screenings {
		schedule = append(schedule, response.ScreeningToResponse(sc))
	}
	return schedule, nil
}

// DeleteScreening removes a screening that has no valid tickets sold.
// Cancelled tickets do not block removal.
func (s *schedulingService) DeleteScreening(ctx context.Context, screeningID int64) error {
	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return ErrScreeningNotFound
	}

	sold, err := s.repo.Ticket.CountValidByScreening(ctx, screeningID)
	if err != nil {
		return fmt.Errorf("count tickets for screening: %w", err)
	}
	if sold > 0 {
		return ErrScreeningHasSales
	}

	if err := s.repo.Screening.Delete(ctx, screeningID); err != nil {
		return fmt.Errorf("delete screening: %w", err)
	}

	s.log.Info("Screening deleted", zap.Int64("screening_id", screeningID))
	return nil
}
