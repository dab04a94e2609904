package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/veloracommerce/velora-backend/api/responses"
	"github.com/veloracommerce/velora-backend/api/validators"
	reviewsvc "github.com/veloracommerce/velora-backend/internal/reviews"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/logger"
)

type createReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Title     string    `json:"title" validate:"required,max=120"`
	Review    string    `json:"review" validate:"required"`
}

// CreateReview records a user's review for a product, one per product.
func CreateReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		var payload createReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.Create(r.Context(), reviewsvc.CreateReviewInput{
			ProductID: payload.ProductID,
			UserID:    payload.UserID,
			Rating:    payload.Rating,
			Title:     validators.SanitizeString(payload.Title, 120),
			Review:    validators.SanitizeString(payload.Review, 0),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Success", review)
	}
}

// ListProductReviews returns a product's reviews, newest first.
func ListProductReviews(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		productID, err := parseUUIDParam(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reviews, err := svc.ListByProduct(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Success", reviews)
	}
}
