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

func newReviewFixture(t *testing.T) ReviewService {
	t.Helper()

	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.customers.Create(ctx, &entity.Customer{FirstName: "Mario", LastName: "Rossi", Email: "mario.rossi@email.com"}))
	require.NoError(t, env.films.Create(ctx, &entity.Film{Title: "La Dolce Vita", RuntimeMin: 174, DirectorID: 1}))

	clk := clock.NewFixed(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	return NewReviewService(env.repo, clk, zap.NewNop())
}

func TestCreateReview(t *testing.T) {
	t.Run("records a rating", func(t *testing.T) {
		svc := newReviewFixture(t)

		review, err := svc.CreateReview(context.Background(), &request.ReviewRequest{
			CustomerID: 1, FilmID: 1, Rating: 9, Comment: "Beautiful film!",
		})
		require.NoError(t, err)

		assert.Equal(t, 9, review.Rating)
		require.NotNil(t, review.Comment)
		assert.Equal(t, "Beautiful film!", *review.Comment)
	})

	t.Run("rejects a second review for the same film", func(t *testing.T) {
		svc := newReviewFixture(t)
		ctx := context.Background()

		_, err := svc.CreateReview(ctx, &request.ReviewRequest{CustomerID: 1, FilmID: 1, Rating: 9})
		require.NoError(t, err)

		_, err = svc.CreateReview(ctx, &request.ReviewRequest{CustomerID: 1, FilmID: 1, Rating: 5})
		assert.ErrorIs(t, err, ErrReviewExists)
	})

	t.Run("rejects an unknown film", func(t *testing.T) {
		svc := newReviewFixture(t)

		_, err := svc.CreateReview(context.Background(), &request.ReviewRequest{CustomerID: 1, FilmID: 99, Rating: 7})
		assert.ErrorContains(t, err, "not found")
	})
}
