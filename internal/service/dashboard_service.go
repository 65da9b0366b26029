package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nextup-mentor/nextup-api/internal/models"
	appErrors "github.com/nextup-mentor/nextup-api/pkg/errors"
)

type dashboardPackageLister interface {
	ListActive(ctx context.Context) ([]models.Package, error)
}

type dashboardEnrollmentLister interface {
	List(ctx context.Context, status models.EnrollmentStatus) ([]models.Enrollment, error)
}

type dashboardMessageLister interface {
	List(ctx context.Context) ([]models.Message, error)
}

type dashboardDestinationLister interface {
	List(ctx context.Context) ([]models.Destination, error)
}

// DashboardService loads the admin dashboard snapshot.
type DashboardService struct {
	packages     dashboardPackageLister
	enrollments  dashboardEnrollmentLister
	messages     dashboardMessageLister
	destinations dashboardDestinationLister
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewDashboardService constructs a DashboardService over the raw repositories
// so the admin always sees uncached data.
func NewDashboardService(packages dashboardPackageLister, enrollments dashboardEnrollmentLister, messages dashboardMessageLister, destinations dashboardDestinationLister, metrics *MetricsService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		packages:     packages,
		enrollments:  enrollments,
		messages:     messages,
		destinations: destinations,
		metrics:      metrics,
		logger:       logger,
	}
}

// Snapshot fetches all four collections in parallel. The first failure
// cancels the remaining fetches and no partial snapshot is returned.
func (s *DashboardService) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	snapshot := &models.DashboardSnapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer s.observe("dashboard_packages", time.Now())
		snapshot.Packages, err = s.packages.ListActive(gctx)
		return err
	})
	g.Go(func() (err error) {
		defer s.observe("dashboard_enrollments", time.Now())
		snapshot.Enrollments, err = s.enrollments.List(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		defer s.observe("dashboard_messages", time.Now())
		snapshot.Messages, err = s.messages.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		defer s.observe("dashboard_destinations", time.Now())
		snapshot.Destinations, err = s.destinations.List(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard fetch failed", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard")
	}

	if snapshot.Packages == nil {
		snapshot.Packages = []models.Package{}
	}
	if snapshot.Enrollments == nil {
		snapshot.Enrollments = []models.Enrollment{}
	}
	if snapshot.Messages == nil {
		snapshot.Messages = []models.Message{}
	}
	if snapshot.Destinations == nil {
		snapshot.Destinations = []models.Destination{}
	}
	snapshot.Stats = models.ComputeStats(snapshot.Packages, snapshot.Enrollments, snapshot.Messages, snapshot.Destinations)
	return snapshot, nil
}

func (s *DashboardService) observe(label string, start time.Time) {
	s.metrics.ObserveDBQuery(label, time.Since(start))
}
