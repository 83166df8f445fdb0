package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/internal/repositories"
	"roster-system/pkg/constants"
	apperrors "roster-system/pkg/errors"
)

// Sheet labels used in per-row error entries.
const (
	SheetRoster    = "roster"
	SheetAttrition = "attrition"
)

type IngestionServiceInterface interface {
	Run(ctx context.Context, rosterRows, attritionRows []dto.RawRow) (*dto.IngestionSummary, error)
	Preview(rosterRows []dto.RawRow) map[string]int
}

// IngestionService drives the pipeline: normalize, classify, upsert, and
// accumulate the summary. All per-row failures are contained; only a
// storage-level failure aborts the batch.
type IngestionService struct {
	rosterRepo    repositories.RosterRepositoryInterface
	attritionRepo repositories.AttritionRepositoryInterface
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewIngestionService(
	rosterRepo repositories.RosterRepositoryInterface,
	attritionRepo repositories.AttritionRepositoryInterface,
	validate *validator.Validate,
	logger *zap.Logger,
) IngestionServiceInterface {
	return &IngestionService{
		rosterRepo:    rosterRepo,
		attritionRepo: attritionRepo,
		validate:      validate,
		logger:        logger,
	}
}

// Run processes both sheets in source row order. The returned summary is a
// fresh value per call; nothing is shared between runs.
func (s *IngestionService) Run(ctx context.Context, rosterRows, attritionRows []dto.RawRow) (*dto.IngestionSummary, error) {
	summary := dto.NewIngestionSummary()

	for _, raw := range rosterRows {
		summary.TotalRows++

		row := NormalizeRosterRow(raw)

		table, ok := ClassifyRole(row.Role)
		if !ok {
			reason := fmt.Sprintf("unclassified role: %s", strings.TrimSpace(raw.Get(ColRole)))
			s.logger.Debug("skipping roster row", zap.Int("position", raw.Position), zap.String("reason", reason))
			summary.AddError(SheetRoster, raw.Position, reason)
			continue
		}

		if err := s.validate.Struct(row); err != nil {
			summary.AddError(SheetRoster, raw.Position, "missing required name fields")
			continue
		}

		result, err := s.rosterRepo.Upsert(ctx, table, row)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateKey) {
				s.logger.Warn("duplicate key on roster row", zap.Int("position", raw.Position), zap.Error(err))
				summary.AddError(SheetRoster, raw.Position, err.Error())
				continue
			}
			return summary, fmt.Errorf("roster row %d: %w", raw.Position, err)
		}

		switch result.Outcome {
		case repositories.OutcomeInserted:
			summary.AddInserted(table)
		case repositories.OutcomeUpdated:
			summary.AddUpdated(table)
		}
	}

	for _, raw := range attritionRows {
		summary.TotalRows++

		row := NormalizeAttritionRow(raw)
		ComputeTenure(&row)

		if err := s.validate.Struct(row); err != nil {
			summary.AddError(SheetAttrition, raw.Position, "missing required name fields")
			continue
		}

		result, err := s.attritionRepo.Upsert(ctx, row)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateKey) {
				s.logger.Warn("duplicate key on attrition row", zap.Int("position", raw.Position), zap.Error(err))
				summary.AddError(SheetAttrition, raw.Position, err.Error())
				continue
			}
			return summary, fmt.Errorf("attrition row %d: %w", raw.Position, err)
		}

		switch result.Outcome {
		case repositories.OutcomeInserted:
			summary.AddInserted(constants.TableAttrition)
		case repositories.OutcomeUpdated:
			summary.AddUpdated(constants.TableAttrition)
		}
	}

	s.logger.Info("ingestion complete",
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// Preview classifies roster rows without touching storage, for dry runs.
// Unclassifiable rows are counted under "unclassified".
func (s *IngestionService) Preview(rosterRows []dto.RawRow) map[string]int {
	counts := make(map[string]int)
	for _, raw := range rosterRows {
		row := NormalizeRosterRow(raw)
		if table, ok := ClassifyRole(row.Role); ok {
			counts[table]++
		} else {
			counts["unclassified"]++
		}
	}
	return counts
}
