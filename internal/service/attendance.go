// Package service implements the business rules of the FieldForce API.
// Services sit between handlers and repos: they own preconditions, computed
// fields, and normalization, and return domain sentinel errors for handlers
// to map onto HTTP statuses.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/repo"
)

// AttendanceService implements the two-phase daily attendance life cycle:
// NoRecord → CheckedIn → CheckedOut (terminal for that date).
type AttendanceService struct {
	attendance repo.AttendanceRepo
}

// NewAttendanceService constructs an AttendanceService backed by the provided repo.
func NewAttendanceService(attendance repo.AttendanceRepo) *AttendanceService {
	return &AttendanceService{attendance: attendance}
}

// CheckIn creates the attendance record for (UserID, AttendanceDate) with the
// check-in timestamp computed server-side and all out-side fields null.
// Returns domain.ErrConflict if the user already checked in that day — either
// via the precondition lookup or, on a lost insert race, via the table's
// unique constraint.
// Returns domain.ErrValidation if AttendanceDate is not a YYYY-MM-DD date.
func (s *AttendanceService) CheckIn(ctx context.Context, in domain.CheckIn) (domain.Attendance, error) {
	if err := validDate(in.AttendanceDate); err != nil {
		return domain.Attendance{}, err
	}

	_, err := s.attendance.GetByUserAndDate(ctx, in.UserID, in.AttendanceDate)
	if err == nil {
		return domain.Attendance{}, fmt.Errorf("service.AttendanceService.CheckIn: %w", domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Attendance{}, fmt.Errorf("service.AttendanceService.CheckIn: %w", err)
	}

	record := domain.Attendance{
		UserID:              in.UserID,
		AttendanceDate:      in.AttendanceDate,
		LocationName:        in.LocationName,
		InTime:              time.Now().UTC(),
		InTimeImageCaptured: in.ImageCaptured,
		InTimeImageURL:      in.ImageURL,
		InTimeLatitude:      in.Location.Latitude,
		InTimeLongitude:     in.Location.Longitude,
		InTimeAccuracy:      in.Location.Accuracy,
		InTimeSpeed:         in.Location.Speed,
		InTimeHeading:       in.Location.Heading,
		InTimeAltitude:      in.Location.Altitude,
	}

	created, err := s.attendance.CheckIn(ctx, record)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("service.AttendanceService.CheckIn: %w", err)
	}
	return created, nil
}

// CheckOut populates the out-side fields of the open record for
// (UserID, AttendanceDate). The check-out timestamp is computed server-side.
// Returns domain.ErrNotFound if the user has no open check-in that day —
// either no record exists or it was already checked out.
// Returns domain.ErrValidation if AttendanceDate is not a YYYY-MM-DD date.
func (s *AttendanceService) CheckOut(ctx context.Context, in domain.CheckOut) (domain.Attendance, error) {
	if err := validDate(in.AttendanceDate); err != nil {
		return domain.Attendance{}, err
	}

	updated, err := s.attendance.CheckOut(ctx, in, time.Now().UTC())
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("service.AttendanceService.CheckOut: %w", err)
	}
	return updated, nil
}

// List returns attendance records filtered by optional user and date.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AttendanceService) List(ctx context.Context, userID *int64, date *string, p domain.PaginationParams) ([]domain.Attendance, int64, error) {
	if date != nil {
		if err := validDate(*date); err != nil {
			return nil, 0, err
		}
	}
	records, total, err := s.attendance.List(ctx, userID, date, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.AttendanceService.List: %w", err)
	}
	if records == nil {
		records = []domain.Attendance{}
	}
	return records, total, nil
}

// validDate rejects anything that is not a real YYYY-MM-DD calendar date.
func validDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return nil
}
