package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var saleDay = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// newTicketingFixture seeds one active room with four seats, one screening
// at 18:00 on the sale day priced 8.00, one customer, and a 20% promotion
// valid through the sale day.
func newTicketingFixture(t *testing.T) (*testEnv, TicketingService) {
	t.Helper()

	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.rooms.Create(ctx, &entity.Room{Number: 1, Capacity: 4, Status: entity.RoomStatusActive}))
	for _, s := range []entity.Seat{
		{RoomID: 1, RowLabel: "A", Number: 1, Status: entity.SeatStatusAvailable},
		{RoomID: 1, RowLabel: "A", Number: 2, Status: entity.SeatStatusAvailable},
		{RoomID: 1, RowLabel: "B", Number: 1, Status: entity.SeatStatusAvailable},
		{RoomID: 1, RowLabel: "B", Number: 2, Status: entity.SeatStatusAvailable},
	} {
		seat := s
		require.NoError(t, env.seats.Create(ctx, &seat))
	}

	require.NoError(t, env.films.Create(ctx, &entity.Film{Title: "Inception", RuntimeMin: 148, DirectorID: 1}))
	require.NoError(t, env.tariffs.Create(ctx, &entity.Tariff{Name: "Standard", BasePrice: 8.00}))
	require.NoError(t, env.customers.Create(ctx, &entity.Customer{FirstName: "Mario", LastName: "Rossi", Email: "mario.rossi@email.com"}))

	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.screenings.Create(ctx, &entity.Screening{
		Date:     day,
		StartsAt: day.Add(18 * time.Hour),
		EndsAt:   day.Add(21 * time.Hour),
		FilmID:   1,
		RoomID:   1,
		StaffID:  1,
		TariffID: 1,
	}))

	require.NoError(t, env.promotions.Create(ctx, &entity.Promotion{
		Name:            "Student Discount",
		DiscountPercent: 20,
		StartDate:       day.AddDate(0, 0, -10),
		EndDate:         day.AddDate(0, 0, 20),
	}))

	clk := clock.NewFixed(saleDay)
	pricing := NewPricingService(env.repo, clk, zap.NewNop())
	return env, NewTicketingService(env.repo, pricing, clk, zap.NewNop())
}

func sellReq(seatID int64, promotionID *int64) *request.SellTicketRequest {
	return &request.SellTicketRequest{
		ScreeningID: 1,
		CustomerID:  1,
		SeatID:      seatID,
		PromotionID: promotionID,
	}
}

func TestSellTicket(t *testing.T) {
	t.Run("sells a free seat at full price", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		ticket, err := svc.SellTicket(context.Background(), sellReq(1, nil))
		require.NoError(t, err)

		assert.Equal(t, entity.TicketStatusValid, ticket.Status)
		assert.Equal(t, 8.00, ticket.Price)
		assert.Nil(t, ticket.PromotionID)
		assert.Equal(t, saleDay, ticket.IssuedAt)
	})

	t.Run("applies an active promotion", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		promoID := int64(1)
		ticket, err := svc.SellTicket(context.Background(), sellReq(1, &promoID))
		require.NoError(t, err)

		assert.Equal(t, 6.40, ticket.Price)
		require.NotNil(t, ticket.PromotionID)
		assert.Equal(t, promoID, *ticket.PromotionID)
	})

	t.Run("charges full price when the promotion has lapsed", func(t *testing.T) {
		env, svc := newTicketingFixture(t)
		ctx := context.Background()

		expired := &entity.Promotion{
			Name:            "Last Summer",
			DiscountPercent: 50,
			StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, env.promotions.Create(ctx, expired))

		ticket, err := svc.SellTicket(ctx, sellReq(1, &expired.ID))
		require.NoError(t, err)

		assert.Equal(t, 8.00, ticket.Price)
		assert.Nil(t, ticket.PromotionID)
	})

	t.Run("charges full price for an unknown promotion", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		missing := int64(99)
		ticket, err := svc.SellTicket(context.Background(), sellReq(1, &missing))
		require.NoError(t, err)

		assert.Equal(t, 8.00, ticket.Price)
		assert.Nil(t, ticket.PromotionID)
	})

	t.Run("rejects a seat that already has a valid ticket", func(t *testing.T) {
		_, svc := newTicketingFixture(t)
		ctx := context.Background()

		_, err := svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)

		_, err = svc.SellTicket(ctx, sellReq(1, nil))
		assert.ErrorIs(t, err, ErrSeatAlreadyTaken)
	})

	t.Run("resells a seat after cancellation", func(t *testing.T) {
		_, svc := newTicketingFixture(t)
		ctx := context.Background()

		ticket, err := svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)

		_, err = svc.UpdateTicketStatus(ctx, ticket.ID, &request.UpdateTicketStatusRequest{Status: "cancelled"})
		require.NoError(t, err)

		resold, err := svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)
		assert.NotEqual(t, ticket.ID, resold.ID)
	})

	t.Run("rejects a seat from another room", func(t *testing.T) {
		env, svc := newTicketingFixture(t)
		ctx := context.Background()

		require.NoError(t, env.rooms.Create(ctx, &entity.Room{Number: 2, Capacity: 1, Status: entity.RoomStatusActive}))
		other := &entity.Seat{RoomID: 2, RowLabel: "A", Number: 1, Status: entity.SeatStatusAvailable}
		require.NoError(t, env.seats.Create(ctx, other))

		_, err := svc.SellTicket(ctx, sellReq(other.ID, nil))
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})

	t.Run("rejects a seat under maintenance", func(t *testing.T) {
		env, svc := newTicketingFixture(t)
		ctx := context.Background()

		require.NoError(t, env.seats.UpdateStatus(ctx, 1, entity.SeatStatusMaintenance))

		_, err := svc.SellTicket(ctx, sellReq(1, nil))
		assert.ErrorIs(t, err, ErrSeatUnavailable)
	})

	t.Run("rejects an unknown screening", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		req := sellReq(1, nil)
		req.ScreeningID = 99
		_, err := svc.SellTicket(context.Background(), req)
		assert.ErrorIs(t, err, ErrScreeningNotFound)
	})
}

func TestUpdateTicketStatus(t *testing.T) {
	t.Run("marks a ticket used", func(t *testing.T) {
		_, svc := newTicketingFixture(t)
		ctx := context.Background()

		ticket, err := svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)

		updated, err := svc.UpdateTicketStatus(ctx, ticket.ID, &request.UpdateTicketStatusRequest{Status: "used"})
		require.NoError(t, err)
		assert.Equal(t, entity.TicketStatusUsed, updated.Status)
	})

	t.Run("rejects revalidation when the seat was resold", func(t *testing.T) {
		_, svc := newTicketingFixture(t)
		ctx := context.Background()

		first, err := svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)

		_, err = svc.UpdateTicketStatus(ctx, first.ID, &request.UpdateTicketStatusRequest{Status: "cancelled"})
		require.NoError(t, err)

		_, err = svc.SellTicket(ctx, sellReq(1, nil))
		require.NoError(t, err)

		_, err = svc.UpdateTicketStatus(ctx, first.ID, &request.UpdateTicketStatusRequest{Status: "valid"})
		assert.ErrorIs(t, err, ErrSeatAlreadyTaken)
	})

	t.Run("reports a missing ticket", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		_, err := svc.UpdateTicketStatus(context.Background(), 42, &request.UpdateTicketStatusRequest{Status: "used"})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestListAvailableSeats(t *testing.T) {
	t.Run("orders seats and shrinks after each sale", func(t *testing.T) {
		_, svc := newTicketingFixture(t)
		ctx := context.Background()

		seats, err := svc.ListAvailableSeats(ctx, 1)
		require.NoError(t, err)
		require.Len(t, seats, 4)
		assert.Equal(t, "A", seats[0].RowLabel)
		assert.Equal(t, 1, seats[0].Number)
		assert.Equal(t, "B", seats[3].RowLabel)
		assert.Equal(t, 2, seats[3].Number)

		// Listing does not reserve: ask again, same answer.
		again, err := svc.ListAvailableSeats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, seats, again)

		_, err = svc.SellTicket(ctx, sellReq(seats[0].ID, nil))
		require.NoError(t, err)

		remaining, err := svc.ListAvailableSeats(ctx, 1)
		require.NoError(t, err)
		require.Len(t, remaining, 3)
		for _, s := range remaining {
			assert.NotEqual(t, seats[0].ID, s.ID)
		}
	})

	t.Run("reports an unknown screening", func(t *testing.T) {
		_, svc := newTicketingFixture(t)

		_, err := svc.ListAvailableSeats(context.Background(), 99)
		assert.ErrorIs(t, err, ErrScreeningNotFound)
	})
}
