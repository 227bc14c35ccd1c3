// Package domain contains the core data types for the FieldForce API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and storage format for calendar-day fields
// (attendance date, plan date, leave dates). Timestamps use RFC 3339.
const DateLayout = "2006-01-02"

// GeoPoint carries the geolocation sample captured by the mobile client at
// check-in or check-out. Latitude and longitude are always present; the
// remaining readings depend on the device and stay nil when not reported.
type GeoPoint struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Heading   *float64 `json:"heading,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
}

// Attendance represents one user's attendance for one calendar day.
// At most one record exists per (UserID, AttendanceDate); the out-side fields
// are nil until the user checks out, and a record is never deleted.
type Attendance struct {
	ID             uuid.UUID `json:"id"`
	UserID         int64     `json:"userId"`
	AttendanceDate string    `json:"attendanceDate"` // YYYY-MM-DD
	LocationName   string    `json:"locationName"`

	InTime              time.Time `json:"inTimeTimestamp"`
	InTimeImageCaptured bool      `json:"inTimeImageCaptured"`
	InTimeImageURL      *string   `json:"inTimeImageUrl,omitempty"`
	InTimeLatitude      float64   `json:"inTimeLatitude"`
	InTimeLongitude     float64   `json:"inTimeLongitude"`
	InTimeAccuracy      *float64  `json:"inTimeAccuracy,omitempty"`
	InTimeSpeed         *float64  `json:"inTimeSpeed,omitempty"`
	InTimeHeading       *float64  `json:"inTimeHeading,omitempty"`
	InTimeAltitude      *float64  `json:"inTimeAltitude,omitempty"`

	OutTime              *time.Time `json:"outTimeTimestamp"`
	OutTimeImageCaptured *bool      `json:"outTimeImageCaptured,omitempty"`
	OutTimeImageURL      *string    `json:"outTimeImageUrl,omitempty"`
	OutTimeLatitude      *float64   `json:"outTimeLatitude,omitempty"`
	OutTimeLongitude     *float64   `json:"outTimeLongitude,omitempty"`
	OutTimeAccuracy      *float64   `json:"outTimeAccuracy,omitempty"`
	OutTimeSpeed         *float64   `json:"outTimeSpeed,omitempty"`
	OutTimeHeading       *float64   `json:"outTimeHeading,omitempty"`
	OutTimeAltitude      *float64   `json:"outTimeAltitude,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CheckIn is the input for the first attendance transition of a day.
type CheckIn struct {
	UserID         int64
	AttendanceDate string // YYYY-MM-DD
	LocationName   string
	ImageCaptured  bool
	ImageURL       *string
	Location       GeoPoint
}

// CheckOut is the input for the second (and final) attendance transition.
// It matches the open record by (UserID, AttendanceDate).
type CheckOut struct {
	UserID         int64
	AttendanceDate string // YYYY-MM-DD
	ImageCaptured  bool
	ImageURL       *string
	Location       GeoPoint
}
