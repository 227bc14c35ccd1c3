package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

// visitReportFixture returns a report ready for insertion. The ID and
// timestamps are supplied by the caller side in production (the service), so
// the fixture sets them too.
func visitReportFixture() domain.DailyVisitReport {
	dealer := "Sharma Traders"
	now := time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC)
	return domain.DailyVisitReport{
		ID:              uuid.New(),
		ReportDate:      time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC),
		DealerType:      "Dealer",
		DealerName:      &dealer,
		Location:        "Ranchi",
		Latitude:        23.34,
		Longitude:       85.31,
		VisitType:       "Scheduled",
		SalesBagsCement: 120,
		BrandSelling:    []string{"Star", "Amrit"},
		Feedbacks:       "All good",
		CheckInTime:     time.Date(2025, 8, 18, 9, 30, 0, 0, time.UTC),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestVisitReportRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVisitReportRepo(tx)
	ctx := context.Background()

	input := visitReportFixture()

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.ID, got.ID, "caller-supplied ID must be persisted as-is")
	assert.True(t, got.ReportDate.Equal(input.ReportDate))
	require.NotNil(t, got.DealerName)
	assert.Equal(t, *input.DealerName, *got.DealerName)
	assert.Equal(t, []string{"Star", "Amrit"}, got.BrandSelling)
	assert.Equal(t, input.SalesBagsCement, got.SalesBagsCement)
	assert.True(t, got.CheckInTime.Equal(input.CheckInTime))
	assert.Nil(t, got.CheckOutTime)
	assert.Nil(t, got.SubDealerName, "absent optionals stay NULL")
	assert.Nil(t, got.AnyRemarks)
}

func TestVisitReportRepo_Create_WithCheckOut(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVisitReportRepo(tx)

	input := visitReportFixture()
	checkOut := time.Date(2025, 8, 18, 16, 45, 0, 0, time.UTC)
	input.CheckOutTime = &checkOut

	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, got.CheckOutTime)
	assert.True(t, got.CheckOutTime.Equal(checkOut))
}

func TestVisitReportRepo_List_NewestFirst(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVisitReportRepo(tx)
	ctx := context.Background()

	older := visitReportFixture()
	older.ReportDate = time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)
	newer := visitReportFixture()
	newer.ReportDate = time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)

	_, err := r.Create(ctx, older)
	require.NoError(t, err)
	_, err = r.Create(ctx, newer)
	require.NoError(t, err)

	got, total, err := r.List(ctx, domain.PaginationParams{Page: 1, Limit: 20})

	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID, "newest report first")
	assert.Equal(t, older.ID, got[1].ID)
}

func TestVisitReportRepo_ListAll_OldestFirst(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVisitReportRepo(tx)
	ctx := context.Background()

	older := visitReportFixture()
	older.ReportDate = time.Date(2025, 8, 17, 0, 0, 0, 0, time.UTC)
	newer := visitReportFixture()
	newer.ReportDate = time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)

	_, err := r.Create(ctx, newer)
	require.NoError(t, err)
	_, err = r.Create(ctx, older)
	require.NoError(t, err)

	got, err := r.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, older.ID, got[0].ID, "export reads in chronological order")
}

func TestVisitReportRepo_Create_DuplicateID(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewVisitReportRepo(tx)
	ctx := context.Background()

	input := visitReportFixture()
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	_, err = r.Create(ctx, input)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
