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

// CinemaService manages the physical side of the cinema: rooms, their seats,
// the tariffs applied to screenings, and the staff roster.
type CinemaService interface {
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetRooms(ctx context.Context) ([]response.RoomResponse, error)
	UpdateRoomStatus(ctx context.Context, roomID int64, req *request.RoomStatusRequest) error
	DeleteRoom(ctx context.Context, roomID int64) error

	AddSeats(ctx context.Context, roomID int64, reqs []request.SeatRequest) ([]response.SeatResponse, error)
	GetRoomSeats(ctx context.Context, roomID int64) ([]response.SeatResponse, error)
	UpdateSeatStatus(ctx context.Context, seatID int64, req *request.SeatStatusRequest) error

	CreateTariff(ctx context.Context, req *request.TariffRequest) (*response.TariffResponse, error)
	GetTariffs(ctx context.Context) ([]response.TariffResponse, error)
	DeleteTariff(ctx context.Context, tariffID int64) error

	CreateStaff(ctx context.Context, req *request.StaffRequest) (*response.StaffResponse, error)
	GetStaff(ctx context.Context) ([]response.StaffResponse, error)
	DeleteStaff(ctx context.Context, staffID int64) error
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(
	repo *repository.Repository,
	log *zap.Logger,
) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	status := entity.RoomStatus(req.Status)
	if status == "" {
		status = entity.RoomStatusActive
	}

	room := &entity.Room{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   status,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created", zap.Int64("room_id", room.ID), zap.Int("number", room.Number))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *cinemaService) GetRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return response.RoomsToResponse(rooms), nil
}

func (s *cinemaService) UpdateRoomStatus(ctx context.Context, roomID int64, req *request.RoomStatusRequest) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room not found")
	}

	if err := s.repo.Room.UpdateStatus(ctx, roomID, entity.RoomStatus(req.Status)); err != nil {
		return fmt.Errorf("update room status: %w", err)
	}

	s.log.Info("Room status changed",
		zap.Int64("room_id", roomID),
		zap.String("status", req.Status),
	)
	return nil
}

func (s *cinemaService) DeleteRoom(ctx context.Context, roomID int64) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room not found")
	}

	if err := s.repo.Room.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.Int64("room_id", roomID))
	return nil
}

func (s *cinemaService) AddSeats(ctx context.Context, roomID int64, reqs []request.SeatRequest) ([]response.SeatResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	seats := make([]*entity.Seat, 0, len(reqs))
	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		for _, r := range reqs {
			seat := &entity.Seat{
				RoomID:   roomID,
				RowLabel: r.RowLabel,
				Number:   r.Number,
				Status:   entity.SeatStatusAvailable,
			}
			if err := s.repo.Seat.Create(ctx, seat); err != nil {
				return fmt.Errorf("create seat %s%d: %w", r.RowLabel, r.Number, err)
			}
			seats = append(seats, seat)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seats added", zap.Int64("room_id", roomID), zap.Int("count", len(seats)))
	return response.SeatsToResponse(seats), nil
}

func (s *cinemaService) GetRoomSeats(ctx context.Context, roomID int64) ([]response.SeatResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room not found")
	}

	seats, err := s.repo.Seat.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get seats: %w", err)
	}
	return response.SeatsToResponse(seats), nil
}

func (s *cinemaService) UpdateSeatStatus(ctx context.Context, seatID int64, req *request.SeatStatusRequest) error {
	seat, err := s.repo.Seat.FindByID(ctx, seatID)
	if err != nil {
		return fmt.Errorf("get seat: %w", err)
	}
	if seat == nil {
		return fmt.Errorf("seat not found")
	}

	if err := s.repo.Seat.UpdateStatus(ctx, seatID, entity.SeatStatus(req.Status)); err != nil {
		return fmt.Errorf("update seat status: %w", err)
	}
	return nil
}

func (s *cinemaService) CreateTariff(ctx context.Context, req *request.TariffRequest) (*response.TariffResponse, error) {
	tariff := &entity.Tariff{
		Name:        req.Name,
		BasePrice:   utils.Round2(req.BasePrice),
		DayOfWeek:   req.DayOfWeek,
		Description: req.Description,
	}
	if req.TimeBand != nil {
		band := entity.TimeBand(*req.TimeBand)
		tariff.TimeBand = &band
	}

	if err := s.repo.Tariff.Create(ctx, tariff); err != nil {
		return nil, fmt.Errorf("create tariff: %w", err)
	}

	s.log.Info("Tariff created", zap.Int64("tariff_id", tariff.ID), zap.String("name", tariff.Name))

	resp := response.TariffToResponse(tariff)
	return &resp, nil
}

func (s *cinemaService) GetTariffs(ctx context.Context) ([]response.TariffResponse, error) {
	tariffs, err := s.repo.Tariff.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tariffs: %w", err)
	}
	return response.TariffsToResponse(tariffs), nil
}

func (s *cinemaService) DeleteTariff(ctx context.Context, tariffID int64) error {
	tariff, err := s.repo.Tariff.FindByID(ctx, tariffID)
	if err != nil {
		return fmt.Errorf("get tariff: %w", err)
	}
	if tariff == nil {
		return fmt.Errorf("tariff not found")
	}

	if err := s.repo.Tariff.Delete(ctx, tariffID); err != nil {
		return fmt.Errorf("delete tariff: %w", err)
	}
	return nil
}

func (s *cinemaService) CreateStaff(ctx context.Context, req *request.StaffRequest) (*response.StaffResponse, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	staff := &entity.Staff{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		Role:         entity.StaffRole(req.Role),
	}

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username already taken")
		}
		return nil, fmt.Errorf("create staff: %w", err)
	}

	s.log.Info("Staff member created",
		zap.Int64("staff_id", staff.ID),
		zap.String("username", staff.Username),
		zap.String("role", req.Role),
	)

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (s *cinemaService) GetStaff(ctx context.Context) ([]response.StaffResponse, error) {
	members, err := s.repo.Staff.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return response.StaffListToResponse(members), nil
}

func (s *cinemaService) DeleteStaff(ctx context.Context, staffID int64) error {
	staff, err := s.repo.Staff.FindByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("get staff: %w", err)
	}
	if staff == nil {
		return fmt.Errorf("staff not found")
	}

	if err := s.repo.Staff.Delete(ctx, staffID); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}

	s.log.Info("Staff member deleted", zap.Int64("staff_id", staffID))
	return nil
}
