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

type TicketingService interface {
	SellTicket(ctx context.Context, req *request.SellTicketRequest) (*response.TicketResponse, error)
	GetTicketByID(ctx context.Context, ticketID int64) (*response.TicketResponse, error)
	UpdateTicketStatus(ctx context.Context, ticketID int64, req *request.UpdateTicketStatusRequest) (*response.TicketResponse, error)
	ListAvailableSeats(ctx context.Context, screeningID int64) ([]response.SeatResponse, error)
	GetCustomerHistory(ctx context.Context, customerID int64) ([]response.TicketHistoryResponse, error)
}

type ticketingService struct {
	repo    *repository.Repository
	pricing PricingService
	clock   clock.Clock
	log     *zap.Logger
}

func NewTicketingService(
	repo *repository.Repository,
	pricing PricingService,
	clk clock.Clock,
	log *zap.Logger,
) TicketingService {
	return &ticketingService{
		repo:    repo,
		pricing: pricing,
		clock:   clk,
		log:     log.With(zap.String("service", "ticketing")),
	}
}

// SellTicket issues one ticket for one seat at one screening. A seat with a
// valid ticket cannot be sold again; a cancelled ticket frees the seat. The
// occupancy check and the insert run in one transaction, and the partial
// unique index on valid tickets backs up the check under concurrent sales.
func (s *ticketingService) SellTicket(ctx context.Context, req *request.SellTicketRequest) (*response.TicketResponse, error) {
	screening, err := s.repo.Screening.FindByID(ctx, req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, ErrScreeningNotFound
	}

	seat, err := s.repo.Seat.FindByID(ctx, req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("get seat: %w", err)
	}
	if seat == nil {
		return nil, fmt.Errorf("seat not found")
	}
	if seat.RoomID != screening.RoomID || seat.Status == entity.SeatStatusMaintenance {
		return nil, ErrSeatUnavailable
	}

	customer, err := s.repo.Customer.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	price, appliedPromotion, err := s.pricing.CalculatePrice(ctx, req.ScreeningID, req.PromotionID)
	if err != nil {
		return nil, err
	}

	ticket := &entity.Ticket{
		ScreeningID: req.ScreeningID,
		CustomerID:  req.CustomerID,
		SeatID:      req.SeatID,
		PromotionID: appliedPromotion,
		Status:      entity.TicketStatusValid,
		Price:       price,
		IssuedAt:    s.clock.Now(),
	}

	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context) error {
		taken, err := s.repo.Ticket.SeatTaken(ctx, req.ScreeningID, req.SeatID)
		if err != nil {
			return fmt.Errorf("check seat: %w", err)
		}
		if taken {
			return ErrSeatAlreadyTaken
		}

		if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrSeatAlreadyTaken
			}
			return fmt.Errorf("create ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Ticket sold",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("screening_id", req.ScreeningID),
		zap.Int64("seat_id", req.SeatID),
		zap.Float64("price", price),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *ticketingService) GetTicketByID(ctx context.Context, ticketID int64) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket not found")
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// UpdateTicketStatus writes the new status without checking the old one:
// a used ticket can be cancelled and a cancelled ticket revalidated.
// Revalidation can fail with a conflict if the seat was resold meanwhile.
func (s *ticketingService) UpdateTicketStatus(ctx context.Context, ticketID int64, req *request.UpdateTicketStatusRequest) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket not found")
	}

	status := entity.TicketStatus(req.Status)
	updated, err := s.repo.Ticket.UpdateStatus(ctx, ticketID, status)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSeatAlreadyTaken
		}
		return nil, fmt.Errorf("update ticket status: %w", err)
	}
	if !updated {
		return nil, fmt.Errorf("ticket not found")
	}

	s.log.Info("Ticket status changed",
		zap.Int64("ticket_id", ticketID),
		zap.String("from", string(ticket.Status)),
		zap.String("to", req.Status),
	)

	ticket.Status = status
	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// ListAvailableSeats returns the seats of the screening's room that have no
// valid ticket, ordered by row and number. Listing does not reserve.
func (s *ticketingService) ListAvailableSeats(ctx context.Context, screeningID int64) ([]response.SeatResponse, error) {
	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get screening: %w", err)
	}
	if screening == nil {
		return nil, ErrScreeningNotFound
	}

	seats, err := s.repo.Seat.FindAvailableForScreening(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("list available seats: %w", err)
	}

	return response.SeatsToResponse(seats), nil
}

func (s *ticketingService) GetCustomerHistory(ctx context.Context, customerID int64) ([]response.TicketHistoryResponse, error) {
	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer not found")
	}

	rows, err := s.repo.Ticket.FindHistoryByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get ticket history: %w", err)
	}

	return response.HistoryToResponse(rows), nil
}
