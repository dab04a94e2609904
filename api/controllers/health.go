package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/veloracommerce/velora-backend/api/responses"
	"github.com/veloracommerce/velora-backend/pkg/config"
	pkgerrors "github.com/veloracommerce/velora-backend/pkg/errors"
	"github.com/veloracommerce/velora-backend/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Velora-Env", cfg.App.Env)
		responses.WriteSuccess(w, "Success", map[string]string{"status": "live"})
	}
}

// HealthReady verifies the API's backing stores before reporting ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, db, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Velora-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]string{}
		var failures error
		for name, dep := range map[string]pinger{"postgres": db, "redis": cache} {
			if dep == nil {
				checks[name] = "skipped"
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				failures = multierr.Append(failures, err)
				continue
			}
			checks[name] = "up"
		}

		if failures != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, failures, "dependency unavailable").WithDetails(checks))
			return
		}
		checks["status"] = "ready"
		responses.WriteSuccess(w, "Success", checks)
	}
}
