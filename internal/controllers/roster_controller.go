package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/internal/repositories"
	"roster-system/internal/services"
	"roster-system/pkg/config"
	apperrors "roster-system/pkg/errors"
	"roster-system/pkg/filestorage"
	"roster-system/pkg/utils"
)

const summaryCacheKey = "roster:last_summary"

var allowedUploadExts = map[string]bool{".xlsx": true, ".xlsm": true, ".xls": true}

type RosterController struct {
	ingestion   services.IngestionServiceInterface
	reader      *services.RosterReader
	rosterRepo  repositories.RosterRepositoryInterface
	fileStorage filestorage.FileStorageInterface
	cache       repositories.CacheRepositoryInterface
	cfg         *config.Config
	logger      *zap.Logger
}

func NewRosterController(
	ingestion services.IngestionServiceInterface,
	reader *services.RosterReader,
	rosterRepo repositories.RosterRepositoryInterface,
	fileStorage filestorage.FileStorageInterface,
	cache repositories.CacheRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) *RosterController {
	return &RosterController{
		ingestion:   ingestion,
		reader:      reader,
		rosterRepo:  rosterRepo,
		fileStorage: fileStorage,
		cache:       cache,
		cfg:         cfg,
		logger:      logger,
	}
}

// Import receives a roster workbook, runs the ingestion pipeline over the
// main-roster and attrition sheets, and returns the per-table summary.
func (ctrl *RosterController) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "no file provided", err), ctrl.logger)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return utils.ErrorResponse(c,
			apperrors.NewHttpError(http.StatusBadRequest, fmt.Sprintf("unsupported file type %q", ext), apperrors.ErrBadRequest),
			ctrl.logger)
	}

	savedPath, err := ctrl.fileStorage.Save(fileHeader)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "failed to store uploaded file", err), ctrl.logger)
	}

	rosterRows, err := ctrl.reader.Read(savedPath, ctrl.cfg.Roster.RosterSheet)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusBadRequest, "could not read roster sheet", err), ctrl.logger)
	}

	// The attrition sheet is optional; a workbook without one still
	// imports the main roster.
	attritionRows, err := ctrl.reader.Read(savedPath, ctrl.cfg.Roster.AttritionSheet)
	if err != nil {
		ctrl.logger.Warn("attrition sheet not readable, continuing without it", zap.Error(err))
		attritionRows = nil
	}

	summary, err := ctrl.ingestion.Run(c.Request().Context(), rosterRows, attritionRows)
	if err != nil {
		return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "ingestion aborted", err), ctrl.logger)
	}

	ctrl.cacheSummary(c, summary)
	return utils.SuccessResponse(c, summary, "roster imported", http.StatusOK)
}

func (ctrl *RosterController) cacheSummary(c echo.Context, summary *dto.IngestionSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		ctrl.logger.Error("failed to encode summary for cache", zap.Error(err))
		return
	}
	if err := ctrl.cache.Set(c.Request().Context(), summaryCacheKey, payload, ctrl.cfg.Roster.SummaryCacheTTL); err != nil {
		ctrl.logger.Error("failed to cache ingestion summary", zap.Error(err))
	}
}

// Summary returns the summary of the most recent import.
func (ctrl *RosterController) Summary(c echo.Context) error {
	raw, err := ctrl.cache.Get(c.Request().Context(), summaryCacheKey)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	var summary dto.IngestionSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}
	return utils.SuccessResponse(c, summary, "last ingestion summary", http.StatusOK)
}

var exportHeaders = []string{
	"Name", "Last Name", "First Name", "Batch", "Agent ID", "Odoo ID",
	"BO User", "Axonify", "Supervisor", "Manager", "Tier", "Shift",
	"Schedule", "Department", "Role", "Phase 1 Date", "Phase 2 Date",
	"Phase 3 Date", "Hire Date",
}

// Export streams one role table as an xlsx workbook.
func (ctrl *RosterController) Export(c echo.Context) error {
	table := c.QueryParam("table")
	if table == "" {
		table = "agents"
	}

	records, err := ctrl.rosterRepo.ListRecords(c.Request().Context(), table)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &exportHeaders); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	for i, rec := range records {
		row := []interface{}{
			rec.Name, rec.LastName, rec.FirstName, rec.Batch.String,
			rec.AgentID.String, rec.OdooID.String, rec.BOUser.String,
			rec.Axonify.String, rec.Supervisor.String, rec.Manager.String,
			rec.Tier.String, rec.Shift.String, rec.Schedule.String,
			rec.Department.String, rec.Role.String,
			formatDate(rec.Phase1Date), formatDate(rec.Phase2Date),
			formatDate(rec.Phase3Date), formatDate(rec.HireDate),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return utils.ErrorResponse(c, err, ctrl.logger)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, table))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func formatDate(t null.Time) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format("2006-01-02")
}
