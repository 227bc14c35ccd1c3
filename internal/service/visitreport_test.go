package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
	"github.com/psharda/fieldforce/backend/internal/service"
)

// ---- mock repo -------------------------------------------------------------

// mockVisitReportRepo is a hand-written test double for repo.VisitReportRepo.
type mockVisitReportRepo struct {
	create  func(ctx context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error)
	list    func(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error)
	listAll func(ctx context.Context) ([]domain.DailyVisitReport, error)
}

func (m *mockVisitReportRepo) Create(ctx context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
	return m.create(ctx, v)
}
func (m *mockVisitReportRepo) List(ctx context.Context, p domain.PaginationParams) ([]domain.DailyVisitReport, int64, error) {
	return m.list(ctx, p)
}
func (m *mockVisitReportRepo) ListAll(ctx context.Context) ([]domain.DailyVisitReport, error) {
	return m.listAll(ctx)
}

// compile-time check: mockVisitReportRepo must satisfy repo.VisitReportRepo.
var _ repo.VisitReportRepo = (*mockVisitReportRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validVisitReport() domain.DailyVisitReport {
	return domain.DailyVisitReport{
		ReportDate:      time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC),
		DealerType:      "Dealer",
		Location:        "Ranchi",
		Latitude:        23.34,
		Longitude:       85.31,
		VisitType:       "Scheduled",
		SalesBagsCement: 120,
		BrandSelling:    []string{"Star", "Amrit"},
		Feedbacks:       "All good",
		CheckInTime:     time.Date(2025, 8, 18, 9, 30, 0, 0, time.UTC),
	}
}

// ---- Create ----------------------------------------------------------------

func TestVisitReportService_Create_OK(t *testing.T) {
	var captured domain.DailyVisitReport

	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			captured = v
			return v, nil
		},
	})

	got, err := svc.Create(context.Background(), validVisitReport())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID must be generated")
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.Equal(t, []string{"Star", "Amrit"}, captured.BrandSelling)
}

// A client-fabricated identity or timestamp never survives creation: the
// service overwrites all three regardless of what arrives in the input.
func TestVisitReportService_Create_OverwritesComputedFields(t *testing.T) {
	forgedID := uuid.New()
	forgedTime := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	input := validVisitReport()
	input.ID = forgedID
	input.CreatedAt = forgedTime
	input.UpdatedAt = forgedTime

	var captured domain.DailyVisitReport
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			captured = v
			return v, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEqual(t, forgedID, got.ID)
	assert.NotEqual(t, forgedTime, captured.CreatedAt)
	assert.NotEqual(t, forgedTime, captured.UpdatedAt)
}

func TestVisitReportService_Create_TrimsBrands(t *testing.T) {
	input := validVisitReport()
	input.BrandSelling = []string{" Star ", "", "  ", "Amrit"}

	var captured domain.DailyVisitReport
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			captured = v
			return v, nil
		},
	})

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, []string{"Star", "Amrit"}, captured.BrandSelling)
}

func TestVisitReportService_Create_EmptyBrands(t *testing.T) {
	inserted := false
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, _ domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			inserted = true
			return domain.DailyVisitReport{}, nil
		},
	})

	for _, brands := range [][]string{nil, {}, {"", "   "}} {
		input := validVisitReport()
		input.BrandSelling = brands

		_, err := svc.Create(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrValidation, "brands %v", brands)
	}
	assert.False(t, inserted, "nothing may be persisted on validation failure")
}

func TestVisitReportService_Create_BlankOptionalsBecomeNil(t *testing.T) {
	blank := "   "
	kept := "Sharma Traders"

	input := validVisitReport()
	input.DealerName = &blank
	input.SubDealerName = &kept
	input.AnyRemarks = &blank

	var captured domain.DailyVisitReport
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, v domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			captured = v
			return v, nil
		},
	})

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, captured.DealerName, "blank dealerName must be stored as absent")
	assert.Nil(t, captured.AnyRemarks)
	require.NotNil(t, captured.SubDealerName)
	assert.Equal(t, kept, *captured.SubDealerName)
}

func TestVisitReportService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		create: func(_ context.Context, _ domain.DailyVisitReport) (domain.DailyVisitReport, error) {
			return domain.DailyVisitReport{}, repoErr
		},
	})

	_, err := svc.Create(context.Background(), validVisitReport())

	assert.ErrorIs(t, err, repoErr)
}

// ---- List ------------------------------------------------------------------

func TestVisitReportService_List_OK(t *testing.T) {
	reports := []domain.DailyVisitReport{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}

	svc := service.NewVisitReportService(&mockVisitReportRepo{
		list: func(_ context.Context, _ domain.PaginationParams) ([]domain.DailyVisitReport, int64, error) {
			return reports, 2, nil
		},
	})

	got, total, err := svc.List(context.Background(), domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.EqualValues(t, 2, total)
}

func TestVisitReportService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewVisitReportService(&mockVisitReportRepo{
		list: func(_ context.Context, _ domain.PaginationParams) ([]domain.DailyVisitReport, int64, error) {
			return nil, 0, nil
		},
	})

	got, _, err := svc.List(context.Background(), domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
