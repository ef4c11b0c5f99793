package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// brokenRows mimics a result set whose connection drops mid-stream:
// Next returns false and the failure is only visible through Err.
type brokenRows struct{ err error }

func (r brokenRows) Close()                                       {}
func (r brokenRows) Err() error                                   { return r.err }
func (r brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r brokenRows) Next() bool                                   { return false }
func (r brokenRows) Scan(dest ...any) error                       { return nil }
func (r brokenRows) Values() ([]any, error)                       { return nil, nil }
func (r brokenRows) RawValues() [][]byte                          { return nil }
func (r brokenRows) Conn() *pgx.Conn                              { return nil }

type brokenDB struct{ err error }

func (db brokenDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return brokenRows{err: db.err}, nil
}

func (db brokenDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("not used")
}

func (db brokenDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	panic("not used")
}

func (db brokenDB) Begin(ctx context.Context) (pgx.Tx, error) { panic("not used") }

func (db brokenDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	panic("not used")
}

func (db brokenDB) Ping(ctx context.Context) error { return nil }

func (db brokenDB) Close() {}

func TestListQueriesSurfaceRowsErr(t *testing.T) {
	connErr := errors.New("unexpected EOF")
	db := brokenDB{err: connErr}
	log := zap.NewNop()
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("room list", func(t *testing.T) {
		rooms, err := NewRoomRepository(db, log).FindAll(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, rooms)
	})

	t.Run("daily screening board", func(t *testing.T) {
		board, err := NewScreeningRepository(db, log).ListOnDate(ctx, date)
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, board)
	})

	t.Run("customer ticket history", func(t *testing.T) {
		history, err := NewTicketRepository(db, log).FindHistoryByCustomer(ctx, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, connErr)
		assert.Nil(t, history)
	})
}
