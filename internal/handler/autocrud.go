package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/psharda/fieldforce/backend/internal/domain"
)

// CreateResource is the generic submission pipeline: one value of this type
// registers one POST endpoint performing decode → validate → build → insert →
// envelope, so per-entity handlers carry no boilerplate.
//
// Req is the typed request DTO carrying `validate` tags. Server-owned fields
// (timestamps, statuses, identifiers) do not appear on Req, so a client that
// submits them has those values silently discarded by the decode — Build
// computes them fresh on every request.
type CreateResource[Req any, Rec any] struct {
	// Path is the URL segment under the API prefix, e.g. "collection-reports".
	Path string

	// Label is the human-readable entity name used in response messages and
	// log lines, e.g. "Collection Report".
	Label string

	// Build maps the validated request onto the record to persist, applying
	// all server-computed fields.
	Build func(req Req) Rec

	// Insert persists exactly one record and returns it with any values the
	// database assigned.
	Insert func(ctx context.Context, rec Rec) (Rec, error)
}

// Register mounts the creation endpoint on r.
func (res CreateResource[Req, Rec]) Register(r chi.Router, v *validator.Validate, log *slog.Logger) {
	r.Post("/"+res.Path, func(w http.ResponseWriter, req *http.Request) {
		var body Req
		if err := decodeJSON(req, &body); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := v.Struct(body); err != nil {
			respondValidation(w, violations(err, false))
			return
		}

		created, err := res.Insert(req.Context(), res.Build(body))
		if err != nil {
			log.Error("create failed", "entity", res.Label, "error", err)
			respondInternal(w)
			return
		}

		respondCreated(w, res.Label, created)
	})
}

// ListResource registers the matching GET endpoint: a paginated, unfiltered
// select over one entity.
type ListResource[Rec any] struct {
	Path  string
	Label string
	List  func(ctx context.Context, p domain.PaginationParams) ([]Rec, int64, error)
}

// Register mounts the list endpoint on r.
func (res ListResource[Rec]) Register(r chi.Router, log *slog.Logger) {
	r.Get("/"+res.Path, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		p := domain.NewPaginationParams(q.Get("page"), q.Get("limit"))

		items, total, err := res.List(req.Context(), p)
		if err != nil {
			log.Error("list failed", "entity", res.Label, "error", err)
			respondInternal(w)
			return
		}
		if items == nil {
			items = []Rec{}
		}

		respondJSON(w, http.StatusOK, envelope{
			Success: true,
			Data: listPayload{
				Items:      items,
				Pagination: pagination{Page: p.Page, Limit: p.Limit, Total: total},
			},
		})
	})
}
