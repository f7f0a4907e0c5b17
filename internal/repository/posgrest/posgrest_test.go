package posgrest_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirzany/pam-backend/internal/models"
	"github.com/hirzany/pam-backend/internal/repository/posgrest"
)

const testOrderID = "PAM-42-1700000000000"

func newLedgerWithMock(t *testing.T) (*posgrest.LedgerRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
	})
	assert.NoError(t, err)

	return posgrest.NewLedger(gdb), mock
}

func ledgerRows(id int, outcome models.Outcome) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "outcome", "processed_at"}).
		AddRow(id, testOrderID, string(outcome), time.Now().UTC())
}

func emptyLedgerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "outcome", "processed_at"})
}

func TestCommitIfAbsent_FirstDeliveryInserts(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(emptyLedgerRows())
	mock.ExpectQuery(`INSERT INTO "payment_outcomes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeSuccess)

	assert.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Empty(t, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_TerminalOutcomeIsFinal(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(ledgerRows(3, models.OutcomeSuccess))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeFailed)

	assert.NoError(t, err)
	assert.False(t, result.Committed)
	assert.Equal(t, models.OutcomeSuccess, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_PendingUpgradesToTerminal(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(ledgerRows(7, models.OutcomePending))
	mock.ExpectExec(`UPDATE "payment_outcomes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeSuccess)

	assert.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, models.OutcomePending, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_PendingOverPendingNotCommitted(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(ledgerRows(7, models.OutcomePending))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomePending)

	assert.NoError(t, err)
	assert.False(t, result.Committed)
	assert.Equal(t, models.OutcomePending, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_LostInsertRaceReplaysAgainstWinner(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	// First attempt loses the insert race on the unique index.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(emptyLedgerRows())
	mock.ExpectQuery(`INSERT INTO "payment_outcomes"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	// Replay sees the winner's row.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(ledgerRows(9, models.OutcomeSuccess))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeSuccess)

	assert.NoError(t, err)
	assert.False(t, result.Committed)
	assert.Equal(t, models.OutcomeSuccess, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_ReplayedTerminalUpgradesFreshPending(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(emptyLedgerRows())
	mock.ExpectQuery(`INSERT INTO "payment_outcomes"`).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	// The racing writer inserted PENDING; the terminal replay still lands.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnRows(ledgerRows(9, models.OutcomePending))
	mock.ExpectExec(`UPDATE "payment_outcomes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeFailed)

	assert.NoError(t, err)
	assert.True(t, result.Committed)
	assert.Equal(t, models.OutcomePending, result.Prior)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitIfAbsent_DatabaseErrorSurfaces(t *testing.T) {
	ledger, mock := newLedgerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "payment_outcomes"`).
		WillReturnError(&pgconn.PgError{Code: "57P01", Message: "terminating connection due to administrator command"})
	mock.ExpectRollback()

	result, err := ledger.CommitIfAbsent(context.Background(), testOrderID, models.OutcomeSuccess)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}
