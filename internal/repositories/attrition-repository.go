package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/pkg/constants"
)

type AttritionRepositoryInterface interface {
	Upsert(ctx context.Context, row dto.AttritionRow) (UpsertResult, error)
}

type AttritionRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAttritionRepository(storage *pgxpool.Pool, logger *zap.Logger) AttritionRepositoryInterface {
	return &AttritionRepository{storage: storage, logger: logger}
}

// Upsert merges one departure row into the attrition table with the same
// identity discipline as the role tables.
func (r *AttritionRepository) Upsert(ctx context.Context, row dto.AttritionRow) (UpsertResult, error) {
	var result UpsertResult
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		existingID, err := resolveIdentity(ctx, tx, constants.TableAttrition, row.AgentID, row.OdooID, r.logger)
		if err != nil {
			return err
		}

		if existingID > 0 {
			if err := r.update(ctx, tx, existingID, row); err != nil {
				return err
			}
			result = UpsertResult{Outcome: OutcomeUpdated, RecordID: existingID}
			return nil
		}

		newID, err := r.insert(ctx, tx, row)
		if err != nil {
			return err
		}
		result = UpsertResult{Outcome: OutcomeInserted, RecordID: newID}
		return nil
	})
	if err != nil {
		return UpsertResult{}, classifyWriteError(err)
	}
	return result, nil
}

func (r *AttritionRepository) update(ctx context.Context, tx pgx.Tx, id uint64, row dto.AttritionRow) error {
	query, args, err := psql.Update(constants.TableAttrition).
		SetMap(map[string]interface{}{
			"name":             row.Name,
			"last_name":        row.LastName,
			"first_name":       row.FirstName,
			"batch":            row.Batch,
			"supervisor":       row.Supervisor,
			"manager":          row.Manager,
			"tier":             row.Tier,
			"shift":            row.Shift,
			"schedule":         row.Schedule,
			"department":       row.Department,
			"role":             row.Role,
			"hire_date":        row.HireDate,
			"termination_date": row.TerminationDate,
			"term_reason":      row.TermReason,
			"voluntary":        row.Voluntary,
			"tenure_days":      row.TenureDays,
			"tenure_months":    row.TenureMonths,
			"tenure_years":     row.TenureYears,
			"updated_at":       sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building attrition update: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("updating attrition record %d: %w", id, err)
	}
	return nil
}

func (r *AttritionRepository) insert(ctx context.Context, tx pgx.Tx, row dto.AttritionRow) (uint64, error) {
	query, args, err := psql.Insert(constants.TableAttrition).
		SetMap(map[string]interface{}{
			"name":             row.Name,
			"last_name":        row.LastName,
			"first_name":       row.FirstName,
			"batch":            row.Batch,
			"agent_id":         row.AgentID,
			"odoo_id":          row.OdooID,
			"supervisor":       row.Supervisor,
			"manager":          row.Manager,
			"tier":             row.Tier,
			"shift":            row.Shift,
			"schedule":         row.Schedule,
			"department":       row.Department,
			"role":             row.Role,
			"hire_date":        row.HireDate,
			"termination_date": row.TerminationDate,
			"term_reason":      row.TermReason,
			"voluntary":        row.Voluntary,
			"tenure_days":      row.TenureDays,
			"tenure_months":    row.TenureMonths,
			"tenure_years":     row.TenureYears,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building attrition insert: %w", err)
	}

	var id uint64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting attrition record: %w", err)
	}
	return id, nil
}
