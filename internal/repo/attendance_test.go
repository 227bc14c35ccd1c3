package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
	"github.com/psharda/fieldforce/backend/testutil"
)

// newTestTx opens a single transaction that is rolled back automatically when
// the test finishes, so tests never leave rows behind.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// mustCreateUser inserts a user row within the test transaction and returns
// its id. Attendance and most other tables reference users, so nearly every
// repo test needs one.
func mustCreateUser(t *testing.T, tx pgx.Tx) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		"Test Salesperson", fmt.Sprintf("test-%s@example.com", uuid.NewString()), "x",
	).Scan(&id)
	require.NoError(t, err, "create test user")
	return id
}

// checkInFixture returns an attendance record ready for insertion.
func checkInFixture(userID int64) domain.Attendance {
	accuracy := 4.5
	return domain.Attendance{
		UserID:              userID,
		AttendanceDate:      "2025-08-18",
		LocationName:        "Ranchi Depot",
		InTime:              time.Date(2025, 8, 18, 9, 0, 0, 0, time.UTC),
		InTimeImageCaptured: true,
		InTimeLatitude:      23.34,
		InTimeLongitude:     85.31,
		InTimeAccuracy:      &accuracy,
	}
}

func checkOutFixture(userID int64) domain.CheckOut {
	return domain.CheckOut{
		UserID:         userID,
		AttendanceDate: "2025-08-18",
		ImageCaptured:  true,
		Location:       domain.GeoPoint{Latitude: 23.35, Longitude: 85.32},
	}
}

func TestAttendanceRepo_CheckIn(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	userID := mustCreateUser(t, tx)
	input := checkInFixture(userID)

	got, err := r.CheckIn(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.UUID{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "2025-08-18", got.AttendanceDate)
	assert.Equal(t, input.LocationName, got.LocationName)
	assert.True(t, got.InTime.Equal(input.InTime), "InTime mismatch")
	assert.True(t, got.InTimeImageCaptured)
	require.NotNil(t, got.InTimeAccuracy)
	assert.Equal(t, *input.InTimeAccuracy, *got.InTimeAccuracy)
	assert.Nil(t, got.OutTime, "new record must be open")
	assert.Nil(t, got.OutTimeLatitude)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestAttendanceRepo_CheckIn_DuplicateDay(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	userID := mustCreateUser(t, tx)
	first, err := r.CheckIn(ctx, checkInFixture(userID))
	require.NoError(t, err)

	_, err = r.CheckIn(ctx, checkInFixture(userID))
	assert.ErrorIs(t, err, domain.ErrConflict, "unique constraint must map to conflict")

	// The first record is untouched by the failed insert.
	got, err := r.GetByUserAndDate(ctx, userID, "2025-08-18")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.True(t, got.InTime.Equal(first.InTime))
}

func TestAttendanceRepo_CheckIn_SameDateDifferentUsers(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	user1 := mustCreateUser(t, tx)
	user2 := mustCreateUser(t, tx)

	_, err := r.CheckIn(ctx, checkInFixture(user1))
	require.NoError(t, err)
	_, err = r.CheckIn(ctx, checkInFixture(user2))
	require.NoError(t, err, "uniqueness is scoped per user, not per date")
}

func TestAttendanceRepo_GetByUserAndDate_NotFound(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)

	userID := mustCreateUser(t, tx)
	_, err := r.GetByUserAndDate(context.Background(), userID, "2025-08-18")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceRepo_CheckOut(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	userID := mustCreateUser(t, tx)
	created, err := r.CheckIn(ctx, checkInFixture(userID))
	require.NoError(t, err)

	outTime := time.Date(2025, 8, 18, 17, 30, 0, 0, time.UTC)
	got, err := r.CheckOut(ctx, checkOutFixture(userID), outTime)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID, "check-out must complete the same record")
	require.NotNil(t, got.OutTime)
	assert.True(t, got.OutTime.Equal(outTime), "OutTime mismatch")
	require.NotNil(t, got.OutTimeImageCaptured)
	assert.True(t, *got.OutTimeImageCaptured)
	require.NotNil(t, got.OutTimeLatitude)
	assert.Equal(t, 23.35, *got.OutTimeLatitude)
	// In-side fields survive untouched.
	assert.True(t, got.InTime.Equal(created.InTime))
	assert.Equal(t, created.LocationName, got.LocationName)
}

func TestAttendanceRepo_CheckOut_AlreadyCheckedOut(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	userID := mustCreateUser(t, tx)
	_, err := r.CheckIn(ctx, checkInFixture(userID))
	require.NoError(t, err)

	outTime := time.Date(2025, 8, 18, 17, 30, 0, 0, time.UTC)
	first, err := r.CheckOut(ctx, checkOutFixture(userID), outTime)
	require.NoError(t, err)

	_, err = r.CheckOut(ctx, checkOutFixture(userID), outTime.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrNotFound, "a closed record matches no open row")

	// The first check-out's values stand.
	got, err := r.GetByUserAndDate(ctx, userID, "2025-08-18")
	require.NoError(t, err)
	require.NotNil(t, got.OutTime)
	assert.True(t, got.OutTime.Equal(*first.OutTime))
}

func TestAttendanceRepo_CheckOut_NeverCheckedIn(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)

	userID := mustCreateUser(t, tx)
	_, err := r.CheckOut(context.Background(), checkOutFixture(userID), time.Now().UTC())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceRepo_List_Filters(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	user1 := mustCreateUser(t, tx)
	user2 := mustCreateUser(t, tx)

	_, err := r.CheckIn(ctx, checkInFixture(user1))
	require.NoError(t, err)
	second := checkInFixture(user1)
	second.AttendanceDate = "2025-08-19"
	second.InTime = second.InTime.Add(24 * time.Hour)
	_, err = r.CheckIn(ctx, second)
	require.NoError(t, err)
	_, err = r.CheckIn(ctx, checkInFixture(user2))
	require.NoError(t, err)

	p := domain.PaginationParams{Page: 1, Limit: 20}

	// No filters: everything in this transaction's view.
	all, total, err := r.List(ctx, nil, nil, p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 3)
	assert.GreaterOrEqual(t, total, int64(3))

	// By user.
	byUser, total, err := r.List(ctx, &user1, nil, p)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, "2025-08-19", byUser[0].AttendanceDate, "newest check-in first")

	// By user and date.
	date := "2025-08-18"
	byDay, total, err := r.List(ctx, &user1, &date, p)
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, date, byDay[0].AttendanceDate)
}

func TestAttendanceRepo_List_Pagination(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewAttendanceRepo(tx)
	ctx := context.Background()

	userID := mustCreateUser(t, tx)
	for day := 1; day <= 3; day++ {
		in := checkInFixture(userID)
		in.AttendanceDate = fmt.Sprintf("2025-08-%02d", day)
		in.InTime = time.Date(2025, 8, day, 9, 0, 0, 0, time.UTC)
		_, err := r.CheckIn(ctx, in)
		require.NoError(t, err)
	}

	page2, total, err := r.List(ctx, &userID, nil, domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, page2, 1)
	assert.Equal(t, "2025-08-01", page2[0].AttendanceDate, "oldest record lands on the last page")
}
