package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePromotion(
	r chi.Router,
	promotionHandler *adaptor.PromotionHandler,
) {
	r.Route("/api/promotions", func(r chi.Router) {
		r.Get("/", promotionHandler.GetPromotions)
		r.Post("/", promotionHandler.CreatePromotion)
		r.Delete("/{id}", promotionHandler.DeletePromotion)
	})
}
