package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"nexus-backend-go/internal/models"
	"nexus-backend-go/internal/store"
)

// DashboardStats runs the four dashboard counts concurrently.
func DashboardStats(ctx context.Context, st *store.Store) (models.DashboardStats, error) {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := st.CountProducts(ctx)
		stats.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := st.CountTestimonials(ctx)
		stats.TotalTestimonials = n
		return err
	})
	g.Go(func() error {
		n, err := st.CountDemoRequests(ctx, "")
		stats.TotalDemoRequests = n
		return err
	})
	g.Go(func() error {
		n, err := st.CountDemoRequests(ctx, models.StatusPending)
		stats.PendingRequests = n
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, err
	}
	return stats, nil
}
