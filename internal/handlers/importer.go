package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/services"
)

// SheetImporter defines the interface that the importer service must implement.
type SheetImporter interface {
	ImportAll(ctx context.Context, actorID *int64) (*models.ImportReport, error)
}

// NewImportHandler returns the HTTP handler for the spreadsheet sync.
// @Summary Spreadsheet import
// @Description Admin-only destructive full-replace sync of broker listings from the shared spreadsheet.
// @Tags import
// @Produce json
// @Param X-User-Id header int true "Acting admin id"
// @Success 200 {object} models.ImportReport
// @Failure 401 {object} handlers.ErrorResponse "Authentication required"
// @Failure 403 {object} handlers.ErrorResponse "Admin access required"
// @Router /import [post]
func NewImportHandler(svc SheetImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		report, err := svc.ImportAll(r.Context(), actorIDFromRequest(r))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAuthRequired):
				writeError(w, http.StatusUnauthorized, "Authentication required")
			case errors.Is(err, services.ErrAdminRequired):
				writeError(w, http.StatusForbidden, "Admin access required")
			case errors.Is(err, services.ErrNoBrokers):
				writeError(w, http.StatusNotFound, "No brokers found")
			default:
				logger.Log.Errorw("import failed", "err", err)
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Import failed: %s", err.Error()))
			}
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
