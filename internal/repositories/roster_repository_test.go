package repositories

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roster-system/internal/dto"
	"roster-system/pkg/constants"
	apperrors "roster-system/pkg/errors"
	"roster-system/pkg/migrate"
)

var testPool *pgxpool.Pool

// TestMain connects to the database named by TEST_DATABASE_URL and applies
// the schema. Without the variable the integration tests are skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	if err := migrate.Up(ctx, dsn); err != nil {
		log.Fatalf("could not apply schema to test database: %v", err)
	}

	var err error
	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("could not connect to test database: %v", err)
	}
	defer testPool.Close()

	os.Exit(m.Run())
}

func requireDatabase(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE agents, supervisors, trainers, quality_analysts, operations_managers, attrition RESTART IDENTITY`)
	require.NoError(t, err)
}

func sampleRow(agentID, odooID string) dto.RosterRow {
	row := dto.RosterRow{
		Name:      null.StringFrom("Smith, John"),
		LastName:  null.StringFrom("Smith"),
		FirstName: null.StringFrom("John"),
		Role:      null.StringFrom("Agent"),
		Tier:      null.StringFrom("T1"),
	}
	if agentID != "" {
		row.AgentID = null.StringFrom(agentID)
	}
	if odooID != "" {
		row.OdooID = null.StringFrom(odooID)
	}
	return row
}

func TestRosterRepository_Integration_InsertThenUpdate(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	ctx := context.Background()

	first, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-001", "9001"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeInserted, first.Outcome)

	changed := sampleRow("AG-001", "9001")
	changed.Tier = null.StringFrom("T2")
	second, err := repo.Upsert(ctx, constants.TableAgents, changed)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, second.Outcome)
	assert.Equal(t, first.RecordID, second.RecordID)

	records, err := repo.ListRecords(ctx, constants.TableAgents)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "T2", records[0].Tier.String)
	assert.Equal(t, "AG-001", records[0].AgentID.String)
}

func TestRosterRepository_Integration_MatchByOdooID(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	ctx := context.Background()

	first, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("", "9001"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeInserted, first.Outcome)

	second, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("", "9001"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, second.Outcome)
	assert.Equal(t, first.RecordID, second.RecordID)
}

func TestRosterRepository_Integration_ConflictPrefersAgentID(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	ctx := context.Background()

	a, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-001", ""))
	require.NoError(t, err)
	b, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-002", "9002"))
	require.NoError(t, err)
	require.NotEqual(t, a.RecordID, b.RecordID)

	// agent_id points at record a, odoo_id at record b: the agent match wins.
	res, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-001", "9002"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, res.Outcome)
	assert.Equal(t, a.RecordID, res.RecordID)

	// Still two records; nothing was merged.
	records, err := repo.ListRecords(ctx, constants.TableAgents)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRosterRepository_Integration_NoIdentifiersAlwaysInserts(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	ctx := context.Background()

	first, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("", ""))
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("", ""))
	require.NoError(t, err)

	assert.Equal(t, OutcomeInserted, first.Outcome)
	assert.Equal(t, OutcomeInserted, second.Outcome)
	assert.NotEqual(t, first.RecordID, second.RecordID)
}

func TestRosterRepository_Integration_NewAgentIDExistingOdooID(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	ctx := context.Background()

	_, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-001", "9001"))
	require.NoError(t, err)

	// New agent_id, existing odoo_id: resolves to the odoo match and
	// updates it, so no violation.
	res, err := repo.Upsert(ctx, constants.TableAgents, sampleRow("AG-NEW", "9001"))
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, res.Outcome)
}

func TestRosterRepository_Integration_UnknownTable(t *testing.T) {
	requireDatabase(t)

	repo := NewRosterRepository(testPool, zap.NewNop())
	_, err := repo.Upsert(context.Background(), "users; DROP TABLE agents", sampleRow("AG-001", ""))
	assert.ErrorIs(t, err, apperrors.ErrUnknownTable)
}

func TestAttritionRepository_Integration_Upsert(t *testing.T) {
	requireDatabase(t)
	cleanupTables(t)

	repo := NewAttritionRepository(testPool, zap.NewNop())
	ctx := context.Background()

	row := dto.AttritionRow{
		Name:       null.StringFrom("Doe, Jane"),
		LastName:   null.StringFrom("Doe"),
		FirstName:  null.StringFrom("Jane"),
		AgentID:    null.StringFrom("AG-777"),
		TenureDays: null.IntFrom(1096),
	}

	first, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, OutcomeInserted, first.Outcome)

	second, err := repo.Upsert(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, second.Outcome)
	assert.Equal(t, first.RecordID, second.RecordID)
}
