package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psharda/fieldforce/backend/internal/domain"
	"github.com/psharda/fieldforce/backend/internal/handler"
)

// testEnvelope mirrors the uniform response envelope for assertions.
type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Code    string `json:"code"`
		Value   any    `json:"value"`
	} `json:"details"`
}

// jsonBody marshals v for use as a request body.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// doJSON runs one request through the handler and decodes the envelope.
func doJSON(t *testing.T, h http.Handler, method, target string, body io.Reader) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env), "response must be an envelope")
	return rec, env
}

// getRequest builds a bare GET request and recorder for non-JSON endpoints.
func getRequest(t *testing.T, target string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder()
}

// mockStore is a generic test double for the per-entity store interfaces used
// by the create/list pipeline. Unset fields behave as a working empty store, so
// tests only wire the entity they exercise.
type mockStore[T any] struct {
	create func(ctx context.Context, rec T) (T, error)
	list   func(ctx context.Context, p domain.PaginationParams) ([]T, int64, error)
}

func (m *mockStore[T]) Create(ctx context.Context, rec T) (T, error) {
	if m.create != nil {
		return m.create(ctx, rec)
	}
	return rec, nil
}

func (m *mockStore[T]) List(ctx context.Context, p domain.PaginationParams) ([]T, int64, error) {
	if m.list != nil {
		return m.list(ctx, p)
	}
	return nil, 0, nil
}

// compile-time checks: mockStore must satisfy every store interface.
var (
	_ handler.DealerStore           = (*mockStore[domain.Dealer])(nil)
	_ handler.BrandMappingStore     = (*mockStore[domain.DealerBrandMapping])(nil)
	_ handler.CollectionReportStore = (*mockStore[domain.CollectionReport])(nil)
	_ handler.DDPStore              = (*mockStore[domain.DDPReport])(nil)
	_ handler.SalesOrderStore       = (*mockStore[domain.SalesOrder])(nil)
	_ handler.LeaveStore            = (*mockStore[domain.LeaveApplication])(nil)
	_ handler.JourneyPlanStore      = (*mockStore[domain.PermanentJourneyPlan])(nil)
)

// serverDeps bundles the mocks a test injects. Zero-value fields are filled
// with inert defaults by newTestHandler.
type serverDeps struct {
	attendance handler.AttendanceServicer
	reports    handler.VisitReportServicer
	auth       handler.AuthServicer
	export     handler.ExportServicer
	entities   handler.Entities
}

// newTestHandler builds the full router around the given mocks, with logging
// discarded. Entity stores left nil are replaced with empty mockStores because
// route registration takes their method values up front.
func newTestHandler(deps serverDeps) http.Handler {
	if deps.entities.Dealers == nil {
		deps.entities.Dealers = &mockStore[domain.Dealer]{}
	}
	if deps.entities.BrandMappings == nil {
		deps.entities.BrandMappings = &mockStore[domain.DealerBrandMapping]{}
	}
	if deps.entities.CollectionReports == nil {
		deps.entities.CollectionReports = &mockStore[domain.CollectionReport]{}
	}
	if deps.entities.DDP == nil {
		deps.entities.DDP = &mockStore[domain.DDPReport]{}
	}
	if deps.entities.SalesOrders == nil {
		deps.entities.SalesOrders = &mockStore[domain.SalesOrder]{}
	}
	if deps.entities.Leaves == nil {
		deps.entities.Leaves = &mockStore[domain.LeaveApplication]{}
	}
	if deps.entities.JourneyPlans == nil {
		deps.entities.JourneyPlans = &mockStore[domain.PermanentJourneyPlan]{}
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := handler.NewServer(deps.attendance, deps.reports, deps.auth, deps.export, deps.entities, log)
	return srv.Router()
}
