package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"

	"github.com/mmynk/groupledger/internal/export"
	"github.com/mmynk/groupledger/internal/models"
)

// ExportHandler serves GET /groups/{groupID}/export.csv.
type ExportHandler struct {
	*Core
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(core *Core) *ExportHandler {
	return &ExportHandler{Core: core}
}

// ServeHTTP writes the group's expenses as a CSV attachment.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	groupID := chi.URLParam(r, "groupID")
	slog.Info("Export request received", "group_id", groupID)

	ledger, err := h.store.GetGroupLedger(ctx, groupID)
	if err != nil {
		writeHTTPError(w, err)
		return
	}

	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		writeHTTPError(w, err)
		return
	}
	byID := make(map[int64]models.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	// Render fully before writing so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := export.WriteLedger(&buf, ledger, byID); err != nil {
		slog.Error("Export failed", "group_id", groupID, "error", err)
		writeHTTPError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "expenses-"+groupID+".csv"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("Failed to write export", "group_id", groupID, "error", err)
	}
}

// writeHTTPError writes err with the HTTP status matching its Connect code.
func writeHTTPError(w http.ResponseWriter, err error) {
	connectErr := connectError(err)
	status := http.StatusInternalServerError
	switch connectErr.Code() {
	case connect.CodeInvalidArgument:
		status = http.StatusBadRequest
	case connect.CodeNotFound:
		status = http.StatusNotFound
	case connect.CodeFailedPrecondition:
		status = http.StatusPreconditionFailed
	}
	http.Error(w, connectErr.Message(), status)
}
