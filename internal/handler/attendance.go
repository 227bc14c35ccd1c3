package handler

import (
	"errors"
	"net/http"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// checkInRequest is the payload for POST /api/attendance/check-in.
// The check-in timestamp is never part of the payload — it is computed
// server-side, so a client-supplied value cannot override it.
type checkInRequest struct {
	UserID              int64    `json:"userId" validate:"required"`
	AttendanceDate      string   `json:"attendanceDate" validate:"required,datetime=2006-01-02"`
	LocationName        string   `json:"locationName" validate:"required"`
	InTimeImageCaptured bool     `json:"inTimeImageCaptured"`
	InTimeImageURL      *string  `json:"inTimeImageUrl"`
	Latitude            float64  `json:"latitude" validate:"latitude"`
	Longitude           float64  `json:"longitude" validate:"longitude"`
	Accuracy            *float64 `json:"accuracy"`
	Speed               *float64 `json:"speed"`
	Heading             *float64 `json:"heading"`
	Altitude            *float64 `json:"altitude"`
}

// checkOutRequest is the payload for POST /api/attendance/check-out.
type checkOutRequest struct {
	UserID               int64    `json:"userId" validate:"required"`
	AttendanceDate       string   `json:"attendanceDate" validate:"required,datetime=2006-01-02"`
	OutTimeImageCaptured bool     `json:"outTimeImageCaptured"`
	OutTimeImageURL      *string  `json:"outTimeImageUrl"`
	Latitude             float64  `json:"latitude" validate:"latitude"`
	Longitude            float64  `json:"longitude" validate:"longitude"`
	Accuracy             *float64 `json:"accuracy"`
	Speed                *float64 `json:"speed"`
	Heading              *float64 `json:"heading"`
	Altitude             *float64 `json:"altitude"`
}

// CheckIn handles POST /api/attendance/check-in.
// 201 with the new record; 400 if the user already checked in that day.
func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	var body checkInRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, violations(err, false))
		return
	}

	record, err := s.attendance.CheckIn(r.Context(), domain.CheckIn{
		UserID:         body.UserID,
		AttendanceDate: body.AttendanceDate,
		LocationName:   body.LocationName,
		ImageCaptured:  body.InTimeImageCaptured,
		ImageURL:       body.InTimeImageURL,
		Location: domain.GeoPoint{
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Accuracy:  body.Accuracy,
			Speed:     body.Speed,
			Heading:   body.Heading,
			Altitude:  body.Altitude,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			respondError(w, http.StatusBadRequest, "User has already checked in today")
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, "attendanceDate must be a valid YYYY-MM-DD date")
		default:
			s.log.Error("check-in failed", "userId", body.UserID, "error", err)
			respondInternal(w)
		}
		return
	}

	respondCreated(w, "Attendance", record)
}

// CheckOut handles POST /api/attendance/check-out.
// 200 with the updated record; 404 if no open check-in exists for that day.
func (s *Server) CheckOut(w http.ResponseWriter, r *http.Request) {
	var body checkOutRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, violations(err, false))
		return
	}

	record, err := s.attendance.CheckOut(r.Context(), domain.CheckOut{
		UserID:         body.UserID,
		AttendanceDate: body.AttendanceDate,
		ImageCaptured:  body.OutTimeImageCaptured,
		ImageURL:       body.OutTimeImageURL,
		Location: domain.GeoPoint{
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Accuracy:  body.Accuracy,
			Speed:     body.Speed,
			Heading:   body.Heading,
			Altitude:  body.Altitude,
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "No check-in record found for today or already checked out")
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, "attendanceDate must be a valid YYYY-MM-DD date")
		default:
			s.log.Error("check-out failed", "userId", body.UserID, "error", err)
			respondInternal(w)
		}
		return
	}

	respondOK(w, "Checked out successfully", record)
}

// ListAttendance handles GET /api/attendance?userId=&date=&page=&limit=.
func (s *Server) ListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := domain.NewPaginationParams(q.Get("page"), q.Get("limit"))

	var userID *int64
	if raw := q.Get("userId"); raw != "" {
		id, err := parseInt64(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "userId must be an integer")
			return
		}
		userID = &id
	}
	var date *string
	if raw := q.Get("date"); raw != "" {
		date = &raw
	}

	records, total, err := s.attendance.List(r.Context(), userID, date, p)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, "date must be a valid YYYY-MM-DD date")
			return
		}
		s.log.Error("attendance list failed", "error", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: listPayload{
			Items:      records,
			Pagination: pagination{Page: p.Page, Limit: p.Limit, Total: total},
		},
	})
}
