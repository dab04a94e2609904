package cron

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/veloracommerce/velora-backend/pkg/logger"
)

const cartRetentionDays = 90

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartPruneRepo interface {
	DeleteStaleWithTx(tx *gorm.DB, cutoff time.Time) (int64, error)
	DeleteOrphanedWithTx(tx *gorm.DB) (int64, error)
}

// CartPruneJobParams configure the cart prune job.
type CartPruneJobParams struct {
	Logger     *logger.Logger
	DB         txRunner
	Repository cartPruneRepo
	Retention  int
}

// NewCartPruneJob builds the job that clears abandoned and orphaned cart lines.
func NewCartPruneJob(params CartPruneJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db runner required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	retention := params.Retention
	if retention <= 0 {
		retention = cartRetentionDays
	}
	return &cartPruneJob{
		logg:      params.Logger,
		db:        params.DB,
		repo:      params.Repository,
		retention: retention,
		now:       time.Now,
	}, nil
}

type cartPruneJob struct {
	logg      *logger.Logger
	db        txRunner
	repo      cartPruneRepo
	retention int
	now       func() time.Time
}

func (j *cartPruneJob) Name() string { return "cart-prune" }

func (j *cartPruneJob) Run(ctx context.Context) error {
	cutoff := j.now().UTC().Add(-time.Duration(j.retention) * 24 * time.Hour)
	var stale, orphaned int64
	err := j.db.WithTx(ctx, func(tx *gorm.DB) error {
		rows, err := j.repo.DeleteStaleWithTx(tx, cutoff)
		if err != nil {
			return fmt.Errorf("delete stale lines: %w", err)
		}
		stale = rows
		rows, err = j.repo.DeleteOrphanedWithTx(tx)
		if err != nil {
			return fmt.Errorf("delete orphaned lines: %w", err)
		}
		orphaned = rows
		return nil
	})
	if err != nil {
		return fmt.Errorf("cart prune: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"cutoff":         cutoff,
		"retention_days": j.retention,
		"stale_rows":     stale,
		"orphaned_rows":  orphaned,
	})
	j.logg.Info(logCtx, "cart prune complete")
	return nil
}
