package controllers

import (
	"net/http"
	"strings"

	"github.com/veloracommerce/velora-backend/api/responses"
	catalogsvc "github.com/veloracommerce/velora-backend/internal/catalog"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/logger"
	"github.com/veloracommerce/velora-backend/pkg/pagination"
)

// ListCategories returns the top level categories with their children.
func ListCategories(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		categories, err := svc.ListCategories(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Success", categories)
	}
}

// CategoryProducts returns a sorted, paginated page of a category's products.
// The sort key is forwarded verbatim; unknown keys fall back to newest first.
func CategoryProducts(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := parseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sortBy := strings.TrimSpace(r.URL.Query().Get("sortBy"))
		page := pagination.FromQuery(r.URL.Query())

		result, err := svc.ListCategoryProducts(r.Context(), id, sortBy, page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "Success", result)
	}
}
