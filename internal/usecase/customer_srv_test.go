package usecase

import (
	"context"
	"testing"

	"cinema-manager/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func registerReq(email string) *request.RegisterCustomerRequest {
	return &request.RegisterCustomerRequest{
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     email,
	}
}

func TestRegisterCustomer(t *testing.T) {
	t.Run("registers a new customer", func(t *testing.T) {
		env := newTestEnv()
		svc := NewCustomerService(env.repo, zap.NewNop())

		customer, err := svc.RegisterCustomer(context.Background(), registerReq("mario.rossi@email.com"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), customer.ID)
		assert.Equal(t, "mario.rossi@email.com", customer.Email)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		env := newTestEnv()
		svc := NewCustomerService(env.repo, zap.NewNop())
		ctx := context.Background()

		_, err := svc.RegisterCustomer(ctx, registerReq("mario.rossi@email.com"))
		require.NoError(t, err)

		_, err = svc.RegisterCustomer(ctx, registerReq("mario.rossi@email.com"))
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdateCustomer(t *testing.T) {
	t.Run("rejects changing to a taken email", func(t *testing.T) {
		env := newTestEnv()
		svc := NewCustomerService(env.repo, zap.NewNop())
		ctx := context.Background()

		first, err := svc.RegisterCustomer(ctx, registerReq("mario.rossi@email.com"))
		require.NoError(t, err)
		_, err = svc.RegisterCustomer(ctx, registerReq("luca.bianchi@email.com"))
		require.NoError(t, err)

		taken := "luca.bianchi@email.com"
		_, err = svc.UpdateCustomer(ctx, first.ID, &request.UpdateCustomerRequest{Email: &taken})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("updates fields selectively", func(t *testing.T) {
		env := newTestEnv()
		svc := NewCustomerService(env.repo, zap.NewNop())
		ctx := context.Background()

		created, err := svc.RegisterCustomer(ctx, registerReq("mario.rossi@email.com"))
		require.NoError(t, err)

		phone := "3331234567"
		updated, err := svc.UpdateCustomer(ctx, created.ID, &request.UpdateCustomerRequest{Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, "Mario", updated.FirstName)
		assert.Equal(t, "mario.rossi@email.com", updated.Email)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)
	})
}
