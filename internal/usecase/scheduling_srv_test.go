package usecase

import (
	"context"
	"testing"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSchedulingFixture(t *testing.T) (*testEnv, SchedulingService) {
	t.Helper()

	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.rooms.Create(ctx, &entity.Room{Number: 1, Capacity: 100, Status: entity.RoomStatusActive}))
	require.NoError(t, env.films.Create(ctx, &entity.Film{Title: "La Dolce Vita", RuntimeMin: 174, Genre: "Drama", DirectorID: 1}))
	require.NoError(t, env.tariffs.Create(ctx, &entity.Tariff{Name: "Standard", BasePrice: 8.00}))

	return env, NewSchedulingService(env.repo, zap.NewNop())
}

func screeningReq(start, end string) *request.CreateScreeningRequest {
	return &request.CreateScreeningRequest{
		Date:      "2026-09-01",
		StartTime: start,
		EndTime:   end,
		FilmID:    1,
		RoomID:    1,
		StaffID:   1,
		TariffID:  1,
	}
}

func TestCreateScreening(t *testing.T) {
	t.Run("schedules a screening", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		resp, err := svc.CreateScreening(context.Background(), screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "2026-09-01", resp.Date)
		assert.Equal(t, "18:00", resp.StartTime)
		assert.Equal(t, "21:00", resp.EndTime)
	})

	t.Run("derives end time from film runtime", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		resp, err := svc.CreateScreening(context.Background(), screeningReq("18:00", ""))
		require.NoError(t, err)

		// 174 minutes after 18:00
		assert.Equal(t, "20:54", resp.EndTime)
	})

	t.Run("rejects overlapping intervals in the same room", func(t *testing.T) {
		tests := []struct {
			name       string
			start, end string
		}{
			{"identical interval", "18:00", "21:00"},
			{"starts inside", "19:00", "22:00"},
			{"ends inside", "17:00", "18:01"},
			{"contains existing", "17:00", "22:00"},
			{"contained by existing", "19:00", "20:00"},
			{"one minute overlap at end", "20:59", "23:00"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, svc := newSchedulingFixture(t)
				ctx := context.Background()

				_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
				require.NoError(t, err)

				_, err = svc.CreateScreening(ctx, screeningReq(tt.start, tt.end))
				assert.ErrorIs(t, err, ErrSchedulingConflict)
			})
		}
	})

	t.Run("allows back to back screenings", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)
		ctx := context.Background()

		_, err := svc.CreateScreening(ctx, screeningReq("10:00", "12:00"))
		require.NoError(t, err)

		// Starting exactly at the previous end is not an overlap.
		_, err = svc.CreateScreening(ctx, screeningReq("12:00", "14:00"))
		require.NoError(t, err)

		_, err = svc.CreateScreening(ctx, screeningReq("08:00", "10:00"))
		require.NoError(t, err)
	})

	t.Run("allows same interval in another room", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		require.NoError(t, env.rooms.Create(ctx, &entity.Room{Number: 2, Capacity: 80, Status: entity.RoomStatusActive}))

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		req := screeningReq("18:00", "21:00")
		req.RoomID = 2
		_, err = svc.CreateScreening(ctx, req)
		require.NoError(t, err)
	})

	t.Run("allows same interval on another date", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)
		ctx := context.Background()

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		req := screeningReq("18:00", "21:00")
		req.Date = "2026-09-02"
		_, err = svc.CreateScreening(ctx, req)
		require.NoError(t, err)
	})

	t.Run("rejects an inverted time range", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		_, err := svc.CreateScreening(context.Background(), screeningReq("21:00", "18:00"))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("rejects a room under maintenance", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		require.NoError(t, env.rooms.UpdateStatus(ctx, 1, entity.RoomStatusMaintenance))

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})

	t.Run("rejects an unknown film", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		req := screeningReq("18:00", "21:00")
		req.FilmID = 99
		_, err := svc.CreateScreening(context.Background(), req)
		assert.ErrorContains(t, err, "not found")
	})
}

func TestDeleteScreening(t *testing.T) {
	t.Run("deletes an existing screening", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		resp, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		require.NoError(t, svc.DeleteScreening(ctx, resp.ID))

		got, err := env.screenings.FindByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("reports a missing screening", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		err := svc.DeleteScreening(context.Background(), 42)
		assert.ErrorIs(t, err, ErrScreeningNotFound)
	})

	t.Run("refuses a screening with valid tickets sold", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		resp, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		ticket := &entity.Ticket{ScreeningID: resp.ID, CustomerID: 1, SeatID: 1, Status: entity.TicketStatusValid, Price: 8.00}
		require.NoError(t, env.tickets.Create(ctx, ticket))

		err = svc.DeleteScreening(ctx, resp.ID)
		assert.ErrorIs(t, err, ErrScreeningHasSales)

		// A cancelled ticket no longer blocks removal.
		changed, err := env.tickets.UpdateStatus(ctx, ticket.ID, entity.TicketStatusCancelled)
		require.NoError(t, err)
		require.True(t, changed)

		require.NoError(t, svc.DeleteScreening(ctx, resp.ID))
	})
}

func TestGetDailyBoard(t *testing.T) {
	t.Run("lists screenings ordered by start time", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)
		_, err = svc.CreateScreening(ctx, screeningReq("10:00", "12:00"))
		require.NoError(t, err)

		otherDay := screeningReq("18:00", "21:00")
		otherDay.Date = "2026-09-02"
		_, err = svc.CreateScreening(ctx, otherDay)
		require.NoError(t, err)

		board, err := svc.GetDailyBoard(ctx, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, board, 2)

		assert.Equal(t, "10:00", board[0].StartTime)
		assert.Equal(t, "18:00", board[1].StartTime)
		assert.Equal(t, "La Dolce Vita", board[0].FilmTitle)
		assert.Equal(t, 1, board[0].RoomNumber)
		assert.Equal(t, 8.00, board[0].BasePrice)
		assert.Equal(t, 100, board[0].SeatsRemaining)

		// Valid tickets shrink the remaining count.
		require.NoError(t, env.tickets.Create(ctx, &entity.Ticket{
			ScreeningID: board[0].ScreeningID, CustomerID: 1, SeatID: 1, Status: entity.TicketStatusValid, Price: 8.00,
		}))

		board, err = svc.GetDailyBoard(ctx, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, board, 2)
		assert.Equal(t, 99, board[0].SeatsRemaining)
	})

	t.Run("drops sold out screenings", func(t *testing.T) {
		env, svc := newSchedulingFixture(t)
		ctx := context.Background()

		require.NoError(t, env.rooms.Create(ctx, &entity.Room{Number: 2, Capacity: 2, Status: entity.RoomStatusActive}))

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)

		small := screeningReq("15:00", "17:00")
		small.RoomID = 2
		resp, err := svc.CreateScreening(ctx, small)
		require.NoError(t, err)

		first := &entity.Ticket{ScreeningID: resp.ID, CustomerID: 1, SeatID: 1, Status: entity.TicketStatusValid, Price: 8.00}
		require.NoError(t, env.tickets.Create(ctx, first))
		require.NoError(t, env.tickets.Create(ctx, &entity.Ticket{
			ScreeningID: resp.ID, CustomerID: 1, SeatID: 2, Status: entity.TicketStatusValid, Price: 8.00,
		}))

		board, err := svc.GetDailyBoard(ctx, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, board, 1)
		assert.Equal(t, "18:00", board[0].StartTime)

		// Cancelling a ticket puts the screening back on the board.
		changed, err := env.tickets.UpdateStatus(ctx, first.ID, entity.TicketStatusCancelled)
		require.NoError(t, err)
		require.True(t, changed)

		board, err = svc.GetDailyBoard(ctx, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, board, 2)
		assert.Equal(t, "15:00", board[0].StartTime)
		assert.Equal(t, 1, board[0].SeatsRemaining)
	})
}

func TestGetRoomSchedule(t *testing.T) {
	t.Run("returns screenings ordered by start time", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)
		ctx := context.Background()

		_, err := svc.CreateScreening(ctx, screeningReq("18:00", "21:00"))
		require.NoError(t, err)
		_, err = svc.CreateScreening(ctx, screeningReq("10:00", "12:00"))
		require.NoError(t, err)

		schedule, err := svc.GetRoomSchedule(ctx, 1, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.Equal(t, "10:00", schedule[0].StartTime)
		assert.Equal(t, "18:00", schedule[1].StartTime)
	})

	t.Run("reports an unknown room", func(t *testing.T) {
		_, svc := newSchedulingFixture(t)

		_, err := svc.GetRoomSchedule(context.Background(), 99, "2026-09-01")
		assert.ErrorContains(t, err, "not found")
	})
}
