package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/internal/entities"
	"roster-system/pkg/constants"
	apperrors "roster-system/pkg/errors"
)

const rosterSelectColumns = "id, name, last_name, first_name, batch, agent_id, odoo_id, bo_user, axonify, supervisor, manager, tier, shift, schedule, department, role, phase_1_date, phase_2_date, phase_3_date, hire_date, created_at, updated_at"

type RosterRepositoryInterface interface {
	Upsert(ctx context.Context, table string, row dto.RosterRow) (UpsertResult, error)
	ListRecords(ctx context.Context, table string) ([]entities.RosterRecord, error)
}

type RosterRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRosterRepository(storage *pgxpool.Pool, logger *zap.Logger) RosterRepositoryInterface {
	return &RosterRepository{storage: storage, logger: logger}
}

// Upsert merges one normalized roster row into the named role table.
// Identity resolution and the write happen in one transaction so the
// read-then-write pair is serialized per row. Exactly one record is
// inserted or updated per call.
func (r *RosterRepository) Upsert(ctx context.Context, table string, row dto.RosterRow) (UpsertResult, error) {
	if !constants.IsRoleTable(table) {
		return UpsertResult{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownTable, table)
	}

	var result UpsertResult
	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		existingID, err := resolveIdentity(ctx, tx, table, row.AgentID, row.OdooID, r.logger)
		if err != nil {
			return err
		}

		if existingID > 0 {
			if err := r.update(ctx, tx, table, existingID, row); err != nil {
				return err
			}
			result = UpsertResult{Outcome: OutcomeUpdated, RecordID: existingID}
			return nil
		}

		newID, err := r.insert(ctx, tx, table, row)
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

// update overwrites the non-identity fields, last write wins. Identity
// columns and created_at stay untouched.
func (r *RosterRepository) update(ctx context.Context, tx pgx.Tx, table string, id uint64, row dto.RosterRow) error {
	query, args, err := psql.Update(table).
		SetMap(map[string]interface{}{
			"name":         row.Name,
			"last_name":    row.LastName,
			"first_name":   row.FirstName,
			"batch":        row.Batch,
			"bo_user":      row.BOUser,
			"axonify":      row.Axonify,
			"supervisor":   row.Supervisor,
			"manager":      row.Manager,
			"tier":         row.Tier,
			"shift":        row.Shift,
			"schedule":     row.Schedule,
			"department":   row.Department,
			"role":         row.Role,
			"phase_1_date": row.Phase1Date,
			"phase_2_date": row.Phase2Date,
			"phase_3_date": row.Phase3Date,
			"hire_date":    row.HireDate,
			"updated_at":   sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update for %s: %w", table, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("updating record %d in %s: %w", id, table, err)
	}
	return nil
}

func (r *RosterRepository) insert(ctx context.Context, tx pgx.Tx, table string, row dto.RosterRow) (uint64, error) {
	query, args, err := psql.Insert(table).
		SetMap(map[string]interface{}{
			"name":         row.Name,
			"last_name":    row.LastName,
			"first_name":   row.FirstName,
			"batch":        row.Batch,
			"agent_id":     row.AgentID,
			"odoo_id":      row.OdooID,
			"bo_user":      row.BOUser,
			"axonify":      row.Axonify,
			"supervisor":   row.Supervisor,
			"manager":      row.Manager,
			"tier":         row.Tier,
			"shift":        row.Shift,
			"schedule":     row.Schedule,
			"department":   row.Department,
			"role":         row.Role,
			"phase_1_date": row.Phase1Date,
			"phase_2_date": row.Phase2Date,
			"phase_3_date": row.Phase3Date,
			"hire_date":    row.HireDate,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building insert for %s: %w", table, err)
	}

	var id uint64
	if err := tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting into %s: %w", table, err)
	}
	return id, nil
}

// ListRecords returns all records of one role table in id order, used by
// the export endpoint.
func (r *RosterRepository) ListRecords(ctx context.Context, table string) ([]entities.RosterRecord, error) {
	if !constants.IsRoleTable(table) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownTable, table)
	}

	query, args, err := psql.Select(rosterSelectColumns).From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select for %s: %w", table, err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	records := make([]entities.RosterRecord, 0)
	for rows.Next() {
		var rec entities.RosterRecord
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.LastName, &rec.FirstName, &rec.Batch,
			&rec.AgentID, &rec.OdooID, &rec.BOUser, &rec.Axonify,
			&rec.Supervisor, &rec.Manager, &rec.Tier, &rec.Shift,
			&rec.Schedule, &rec.Department, &rec.Role,
			&rec.Phase1Date, &rec.Phase2Date, &rec.Phase3Date, &rec.HireDate,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning %s record: %w", table, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
