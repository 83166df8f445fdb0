package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	apperrors "roster-system/pkg/errors"
)

// UpsertOutcome tells the caller whether a row created a new record or
// refreshed an existing one.
type UpsertOutcome string

const (
	OutcomeInserted UpsertOutcome = "inserted"
	OutcomeUpdated  UpsertOutcome = "updated"
)

// UpsertResult is the per-row result of the merge: the outcome and the
// surrogate key of the record that was written.
type UpsertResult struct {
	Outcome  UpsertOutcome
	RecordID uint64
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// resolveIdentity finds an existing record matching the (agent_id, odoo_id)
// pair. Lookup order is agent_id first, odoo_id second. If the two
// identifiers resolve to different records, the agent_id match wins and a
// warning is logged; the two records are never merged. Returns 0 when
// nothing matches, including when both identifiers are null (such rows are
// always inserted as new, with the documented duplication risk).
func resolveIdentity(ctx context.Context, q querier, table string, agentID, odooID null.String, logger *zap.Logger) (uint64, error) {
	byAgent, err := lookupByColumn(ctx, q, table, "agent_id", agentID)
	if err != nil {
		return 0, err
	}
	byOdoo, err := lookupByColumn(ctx, q, table, "odoo_id", odooID)
	if err != nil {
		return 0, err
	}

	if byAgent > 0 && byOdoo > 0 && byAgent != byOdoo {
		logger.Warn("identity conflict: identifiers resolve to different records, preferring agent_id match",
			zap.String("table", table),
			zap.String("agent_id", agentID.String),
			zap.String("odoo_id", odooID.String),
			zap.Uint64("agent_match", byAgent),
			zap.Uint64("odoo_match", byOdoo),
		)
	}

	if byAgent > 0 {
		return byAgent, nil
	}
	return byOdoo, nil
}

func lookupByColumn(ctx context.Context, q querier, table, column string, value null.String) (uint64, error) {
	if !value.Valid {
		return 0, nil
	}

	query, args, err := psql.Select("id").From(table).Where(sq.Eq{column: value.String}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building lookup query for %s.%s: %w", table, column, err)
	}

	var id uint64
	err = q.QueryRow(ctx, query, args...).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("looking up %s by %s: %w", table, column, err)
	}
	return id, nil
}

// classifyWriteError maps a unique-constraint violation to ErrDuplicateKey
// so the orchestrator can contain it per-row; everything else passes
// through and aborts the batch.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: constraint %s", apperrors.ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}
