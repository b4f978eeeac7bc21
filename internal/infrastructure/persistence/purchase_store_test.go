package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/purchase-system/backend/internal/domain/bom"
	"github.com/purchase-system/backend/internal/domain/purchasing"
	"github.com/purchase-system/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGormPurchaseTx_FindNetwork(t *testing.T) {
	t.Run("locks and returns the budget line", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormPurchaseStore(gormDB)

		rows := sqlmock.NewRows([]string{"network", "balance"}).
			AddRow("NETWORK-A", "1500.00")

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "networks" WHERE network = \$1 .* FOR UPDATE`).
			WithArgs("NETWORK-A", 1).
			WillReturnRows(rows)
		mock.ExpectCommit()

		var network *purchasing.Network
		err := store.WithinTransaction(context.Background(), func(tx purchasing.PurchaseTx) error {
			var err error
			network, err = tx.FindNetwork(context.Background(), "NETWORK-A")
			return err
		})

		assert.NoError(t, err)
		assert.NotNil(t, network)
		assert.True(t, network.Balance.Equal(decimal.RequireFromString("1500.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for unknown network", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormPurchaseStore(gormDB)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "networks" WHERE network = \$1`).
			WithArgs("UNKNOWN", 1).
			WillReturnRows(sqlmock.NewRows([]string{"network", "balance"}))
		mock.ExpectRollback()

		err := store.WithinTransaction(context.Background(), func(tx purchasing.PurchaseTx) error {
			_, err := tx.FindNetwork(context.Background(), "UNKNOWN")
			return err
		})

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPurchaseTx_DeductNetworkBalance(t *testing.T) {
	t.Run("deducts from the balance", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormPurchaseStore(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "networks" SET .*balance.* WHERE network = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.WithinTransaction(context.Background(), func(tx purchasing.PurchaseTx) error {
			return tx.DeductNetworkBalance(context.Background(), "NETWORK-A", decimal.RequireFromString("250.00"))
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPurchaseTx_UpdateLineStatus(t *testing.T) {
	t.Run("missing line is not an error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		store := NewGormPurchaseStore(gormDB)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "bom_projects" SET .* WHERE no_project = \$\d+ AND no_part = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := store.WithinTransaction(context.Background(), func(tx purchasing.PurchaseTx) error {
			return tx.UpdateLineStatus(context.Background(), "P-100", "DROPPED-PART", bom.LineStatusPO)
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPurchaseRepository_TotalSpentByProject(t *testing.T) {
	t.Run("sums purchase totals", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormPurchaseRepository(gormDB)

		mock.ExpectQuery(`SELECT SUM\(total\) FROM "purchases" WHERE no_project = \$1`).
			WithArgs("P-100").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("1234.56"))

		total, err := repo.TotalSpentByProject(context.Background(), "P-100")

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("1234.56")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero for project without purchases", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormPurchaseRepository(gormDB)

		mock.ExpectQuery(`SELECT SUM\(total\) FROM "purchases" WHERE no_project = \$1`).
			WithArgs("P-EMPTY").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

		total, err := repo.TotalSpentByProject(context.Background(), "P-EMPTY")

		assert.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
