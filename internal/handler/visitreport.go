package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// brandList accepts the "brands sold" field in either of the two shapes the
// mobile client has historically sent: a JSON array of strings, or one
// comma-separated string ("Star, Amrit"). Both decode to a trimmed list with
// empty elements dropped.
type brandList []string

func (b *brandList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		var out []string
		for _, part := range strings.Split(s, ",") {
			if t := strings.TrimSpace(part); t != "" {
				out = append(out, t)
			}
		}
		*b = out
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*b = out
	return nil
}

// visitReportRequest is the payload for POST /api/daily-visit-reports.
// Date-bearing fields arrive as strings in either YYYY-MM-DD or RFC 3339
// form and are converted to concrete times before persisting. Several
// optional text fields may arrive as "" and are normalized to absent by the
// service, not rejected.
type visitReportRequest struct {
	ReportDate            string    `json:"reportDate" validate:"required"`
	DealerType            string    `json:"dealerType" validate:"required,oneof=Dealer 'Sub Dealer'"`
	DealerName            *string   `json:"dealerName"`
	SubDealerName         *string   `json:"subDealerName"`
	Location              string    `json:"location" validate:"required"`
	Latitude              float64   `json:"latitude" validate:"latitude"`
	Longitude             float64   `json:"longitude" validate:"longitude"`
	VisitType             string    `json:"visitType" validate:"required"`
	SalesBagsCement       int       `json:"salesBagsCement" validate:"min=0"`
	BrandSelling          brandList `json:"brandSelling" validate:"required,min=1"`
	ContactPerson         *string   `json:"contactPerson"`
	ContactNo             *string   `json:"contactNo"`
	Feedbacks             string    `json:"feedbacks" validate:"required"`
	SolutionBySalesperson *string   `json:"solutionBySalesperson"`
	AnyRemarks            *string   `json:"anyRemarks"`
	CheckInTime           string    `json:"checkInTime" validate:"required"`
	CheckOutTime          *string   `json:"checkOutTime"`
	InTimeImageURL        *string   `json:"inTimeImageUrl"`
	OutTimeImageURL       *string   `json:"outTimeImageUrl"`
}

// CreateVisitReport handles POST /api/daily-visit-reports.
// Violation details for this endpoint include the originally received value,
// because coerced payloads from the field are the hardest to debug blind.
func (s *Server) CreateVisitReport(w http.ResponseWriter, r *http.Request) {
	var body visitReportRequest
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(body); err != nil {
		respondValidation(w, violations(err, true))
		return
	}

	reportDate, ok := parseFlexibleTime(body.ReportDate)
	if !ok {
		respondValidation(w, []FieldViolation{dateViolation("reportDate", body.ReportDate)})
		return
	}
	checkIn, ok := parseFlexibleTime(body.CheckInTime)
	if !ok {
		respondValidation(w, []FieldViolation{dateViolation("checkInTime", body.CheckInTime)})
		return
	}
	var checkOut *time.Time
	if body.CheckOutTime != nil && *body.CheckOutTime != "" {
		t, ok := parseFlexibleTime(*body.CheckOutTime)
		if !ok {
			respondValidation(w, []FieldViolation{dateViolation("checkOutTime", *body.CheckOutTime)})
			return
		}
		checkOut = &t
	}

	created, err := s.reports.Create(r.Context(), domain.DailyVisitReport{
		ReportDate:            reportDate,
		DealerType:            body.DealerType,
		DealerName:            body.DealerName,
		SubDealerName:         body.SubDealerName,
		Location:              body.Location,
		Latitude:              body.Latitude,
		Longitude:             body.Longitude,
		VisitType:             body.VisitType,
		SalesBagsCement:       body.SalesBagsCement,
		BrandSelling:          body.BrandSelling,
		ContactPerson:         body.ContactPerson,
		ContactNo:             body.ContactNo,
		Feedbacks:             body.Feedbacks,
		SolutionBySalesperson: body.SolutionBySalesperson,
		AnyRemarks:            body.AnyRemarks,
		CheckInTime:           checkIn,
		CheckOutTime:          checkOut,
		InTimeImageURL:        body.InTimeImageURL,
		OutTimeImageURL:       body.OutTimeImageURL,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondValidation(w, []FieldViolation{{
				Field:   "brandSelling",
				Message: "brandSelling must contain at least one brand",
				Code:    "min",
				Value:   body.BrandSelling,
			}})
			return
		}
		s.log.Error("create failed", "entity", "Daily Visit Report", "error", err)
		respondInternal(w)
		return
	}

	respondCreated(w, "Daily Visit Report", created)
}

// ListVisitReports handles GET /api/daily-visit-reports?page=&limit=.
func (s *Server) ListVisitReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := domain.NewPaginationParams(q.Get("page"), q.Get("limit"))

	reports, total, err := s.reports.List(r.Context(), p)
	if err != nil {
		s.log.Error("list failed", "entity", "Daily Visit Report", "error", err)
		respondInternal(w)
		return
	}

	respondJSON(w, http.StatusOK, envelope{
		Success: true,
		Data: listPayload{
			Items:      reports,
			Pagination: pagination{Page: p.Page, Limit: p.Limit, Total: total},
		},
	})
}

// parseFlexibleTime accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseFlexibleTime(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func dateViolation(field, raw string) FieldViolation {
	return FieldViolation{
		Field:   field,
		Message: field + " must be an RFC 3339 timestamp or a YYYY-MM-DD date",
		Code:    "datetime",
		Value:   raw,
	}
}
