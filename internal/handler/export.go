package handler

import (
	"fmt"
	"net/http"
	"time"
)

// ExportVisitReports handles GET /api/daily-visit-reports/export.
// It streams an XLSX workbook of all visit reports. The filename carries the
// export date so repeated downloads don't clobber each other.
func (s *Server) ExportVisitReports(w http.ResponseWriter, r *http.Request) {
	f, err := s.export.Export(r.Context())
	if err != nil {
		s.log.Error("export failed", "entity", "Daily Visit Report", "error", err)
		respondInternal(w)
		return
	}
	defer func() { _ = f.Close() }()

	filename := fmt.Sprintf("visit-reports-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := f.Write(w); err != nil {
		// Headers are already sent; all we can do is log.
		s.log.Error("export write failed", "error", err)
	}
}
