package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-manager/internal/clock"
	"cinema-manager/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPricingFixture(t *testing.T, basePrice float64) (*testEnv, PricingService) {
	t.Helper()

	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.tariffs.Create(ctx, &entity.Tariff{Name: "Standard", BasePrice: basePrice}))

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

	return env, NewPricingService(env.repo, clock.NewFixed(saleDay), zap.NewNop())
}

func TestCalculatePrice(t *testing.T) {
	t.Run("returns the tariff base price without a promotion", func(t *testing.T) {
		_, svc := newPricingFixture(t, 8.00)

		price, applied, err := svc.CalculatePrice(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Equal(t, 8.00, price)
		assert.Nil(t, applied)
	})

	t.Run("rounds discounted prices to cents", func(t *testing.T) {
		env, svc := newPricingFixture(t, 9.99)
		ctx := context.Background()

		promo := &entity.Promotion{
			Name:            "Weekday",
			DiscountPercent: 15,
			StartDate:       saleDay.AddDate(0, 0, -1),
			EndDate:         saleDay.AddDate(0, 0, 1),
		}
		require.NoError(t, env.promotions.Create(ctx, promo))

		// 9.99 * 0.85 = 8.4915, charged as 8.49
		price, applied, err := svc.CalculatePrice(ctx, 1, &promo.ID)
		require.NoError(t, err)
		assert.Equal(t, 8.49, price)
		require.NotNil(t, applied)
	})

	t.Run("a full discount makes the ticket free", func(t *testing.T) {
		env, svc := newPricingFixture(t, 10.00)
		ctx := context.Background()

		promo := &entity.Promotion{
			Name:            "Free Entry",
			DiscountPercent: 100,
			StartDate:       saleDay.AddDate(0, 0, -1),
			EndDate:         saleDay.AddDate(0, 0, 1),
		}
		require.NoError(t, env.promotions.Create(ctx, promo))

		price, _, err := svc.CalculatePrice(ctx, 1, &promo.ID)
		require.NoError(t, err)
		assert.Equal(t, 0.00, price)
	})

	t.Run("a promotion valid on its last day still applies", func(t *testing.T) {
		env, svc := newPricingFixture(t, 10.00)
		ctx := context.Background()

		promo := &entity.Promotion{
			Name:            "Closing Day",
			DiscountPercent: 10,
			StartDate:       saleDay.AddDate(0, 0, -10),
			EndDate:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, env.promotions.Create(ctx, promo))

		price, applied, err := svc.CalculatePrice(ctx, 1, &promo.ID)
		require.NoError(t, err)
		assert.Equal(t, 9.00, price)
		require.NotNil(t, applied)
	})

	t.Run("reports a missing screening", func(t *testing.T) {
		_, svc := newPricingFixture(t, 8.00)

		_, _, err := svc.CalculatePrice(context.Background(), 99, nil)
		assert.ErrorIs(t, err, ErrScreeningNotFound)
	})
}
