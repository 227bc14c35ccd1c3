package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// AttendanceRepo defines the persistence operations for daily attendance.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type AttendanceRepo interface {
	// CheckIn inserts a new attendance record with all out-side fields NULL
	// and returns the persisted record. Returns domain.ErrConflict if a record
	// already exists for (UserID, AttendanceDate) — the table carries a unique
	// constraint so a race between two concurrent check-ins loses here.
	CheckIn(ctx context.Context, a domain.Attendance) (domain.Attendance, error)

	// GetByUserAndDate retrieves the attendance record for one user and one
	// calendar day. Returns domain.ErrNotFound if none exists.
	GetByUserAndDate(ctx context.Context, userID int64, date string) (domain.Attendance, error)

	// CheckOut populates the out-side fields of the still-open record matching
	// (co.UserID, co.AttendanceDate) in a single atomic UPDATE.
	// Returns domain.ErrNotFound if there is no open record — either the user
	// never checked in that day or already checked out.
	CheckOut(ctx context.Context, co domain.CheckOut, outTime time.Time) (domain.Attendance, error)

	// List returns attendance records filtered by optional user and date,
	// newest check-in first, with the total count for pagination.
	List(ctx context.Context, userID *int64, date *string, p domain.PaginationParams) ([]domain.Attendance, int64, error)
}

// pgAttendanceRepo is the Postgres implementation of AttendanceRepo.
type pgAttendanceRepo struct {
	db db
}

// NewAttendanceRepo constructs an AttendanceRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewAttendanceRepo(db db) AttendanceRepo {
	return &pgAttendanceRepo{db: db}
}

const attendanceColumns = `
	id, user_id, to_char(attendance_date, 'YYYY-MM-DD'), location_name,
	in_time, in_time_image_captured, in_time_image_url,
	in_time_latitude, in_time_longitude, in_time_accuracy, in_time_speed, in_time_heading, in_time_altitude,
	out_time, out_time_image_captured, out_time_image_url,
	out_time_latitude, out_time_longitude, out_time_accuracy, out_time_speed, out_time_heading, out_time_altitude,
	created_at, updated_at`

func (r *pgAttendanceRepo) CheckIn(ctx context.Context, a domain.Attendance) (domain.Attendance, error) {
	const q = `
		INSERT INTO attendance (
			user_id, attendance_date, location_name,
			in_time, in_time_image_captured, in_time_image_url,
			in_time_latitude, in_time_longitude, in_time_accuracy, in_time_speed, in_time_heading, in_time_altitude
		)
		VALUES (
			@user_id, @attendance_date, @location_name,
			@in_time, @in_time_image_captured, @in_time_image_url,
			@in_time_latitude, @in_time_longitude, @in_time_accuracy, @in_time_speed, @in_time_heading, @in_time_altitude
		)
		RETURNING` + attendanceColumns

	args := pgx.NamedArgs{
		"user_id":                a.UserID,
		"attendance_date":        a.AttendanceDate,
		"location_name":          a.LocationName,
		"in_time":                a.InTime,
		"in_time_image_captured": a.InTimeImageCaptured,
		"in_time_image_url":      a.InTimeImageURL, // nil becomes NULL
		"in_time_latitude":       a.InTimeLatitude,
		"in_time_longitude":      a.InTimeLongitude,
		"in_time_accuracy":       a.InTimeAccuracy,
		"in_time_speed":          a.InTimeSpeed,
		"in_time_heading":        a.InTimeHeading,
		"in_time_altitude":       a.InTimeAltitude,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAttendance(row)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("repo.AttendanceRepo.CheckIn: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgAttendanceRepo) GetByUserAndDate(ctx context.Context, userID int64, date string) (domain.Attendance, error) {
	q := `SELECT` + attendanceColumns + `
		FROM attendance
		WHERE user_id = @user_id AND attendance_date = @attendance_date`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "attendance_date": date})
	result, err := scanAttendance(row)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("repo.AttendanceRepo.GetByUserAndDate: %w", mapPgError(err))
	}
	return result, nil
}

// CheckOut writes the full out-side field set in one UPDATE so the record is
// never left partially checked out. The "out_time IS NULL" predicate makes the
// precondition and the write atomic: a second concurrent check-out matches
// zero rows and reports not found.
func (r *pgAttendanceRepo) CheckOut(ctx context.Context, co domain.CheckOut, outTime time.Time) (domain.Attendance, error) {
	q := `
		UPDATE attendance
		SET out_time                = @out_time,
		    out_time_image_captured = @out_time_image_captured,
		    out_time_image_url      = @out_time_image_url,
		    out_time_latitude       = @out_time_latitude,
		    out_time_longitude      = @out_time_longitude,
		    out_time_accuracy       = @out_time_accuracy,
		    out_time_speed          = @out_time_speed,
		    out_time_heading        = @out_time_heading,
		    out_time_altitude       = @out_time_altitude,
		    updated_at              = now()
		WHERE user_id = @user_id AND attendance_date = @attendance_date AND out_time IS NULL
		RETURNING` + attendanceColumns

	args := pgx.NamedArgs{
		"user_id":                 co.UserID,
		"attendance_date":         co.AttendanceDate,
		"out_time":                outTime,
		"out_time_image_captured": co.ImageCaptured,
		"out_time_image_url":      co.ImageURL,
		"out_time_latitude":       co.Location.Latitude,
		"out_time_longitude":      co.Location.Longitude,
		"out_time_accuracy":       co.Location.Accuracy,
		"out_time_speed":          co.Location.Speed,
		"out_time_heading":        co.Location.Heading,
		"out_time_altitude":       co.Location.Altitude,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanAttendance(row)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("repo.AttendanceRepo.CheckOut: %w", mapPgError(err))
	}
	return result, nil
}

func (r *pgAttendanceRepo) List(ctx context.Context, userID *int64, date *string, p domain.PaginationParams) ([]domain.Attendance, int64, error) {
	q := `SELECT` + attendanceColumns + `
		FROM attendance
		WHERE (@user_id::bigint IS NULL OR user_id = @user_id)
		  AND (@attendance_date::date IS NULL OR attendance_date = @attendance_date)
		ORDER BY in_time DESC
		LIMIT @limit OFFSET @offset`

	args := pgx.NamedArgs{
		"user_id":         userID,
		"attendance_date": date,
		"limit":           p.Limit,
		"offset":          p.Offset(),
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.AttendanceRepo.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.AttendanceRepo.List: scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.AttendanceRepo.List: rows: %w", err)
	}

	const countQ = `
		SELECT COUNT(*) FROM attendance
		WHERE (@user_id::bigint IS NULL OR user_id = @user_id)
		  AND (@attendance_date::date IS NULL OR attendance_date = @attendance_date)`
	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"user_id": userID, "attendance_date": date}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.AttendanceRepo.List: count: %w", err)
	}
	return out, total, nil
}

// scanAttendance maps a single database row into a domain.Attendance.
func scanAttendance(s scanner) (domain.Attendance, error) {
	var (
		a       domain.Attendance
		id      pgtype.UUID
		outTime pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &a.UserID, &a.AttendanceDate, &a.LocationName,
		&a.InTime, &a.InTimeImageCaptured, &a.InTimeImageURL,
		&a.InTimeLatitude, &a.InTimeLongitude, &a.InTimeAccuracy, &a.InTimeSpeed, &a.InTimeHeading, &a.InTimeAltitude,
		&outTime, &a.OutTimeImageCaptured, &a.OutTimeImageURL,
		&a.OutTimeLatitude, &a.OutTimeLongitude, &a.OutTimeAccuracy, &a.OutTimeSpeed, &a.OutTimeHeading, &a.OutTimeAltitude,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Attendance{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	if outTime.Valid {
		t := outTime.Time
		a.OutTime = &t
	}
	return a, nil
}
