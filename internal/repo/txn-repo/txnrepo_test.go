package txnrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/pagemint/pagemint/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Transaction created", func(t *testing.T) {
		instanceID := 7
		txn := &domain.Transaction{
			ClientID:    1,
			Type:        domain.TxnTypeExpense,
			Amount:      10.0,
			Status:      domain.TxnStatusCompleted,
			Description: "purchase of text-to-article",
			InstanceID:  &instanceID,
		}
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
			WithArgs(1, domain.TxnTypeExpense, 10.0, domain.TxnStatusCompleted,
				"purchase of text-to-article", &instanceID, (*string)(nil)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

		created, err := repo.Create(context.Background(), txn)

		assert.NoError(t, err)
		assert.Equal(t, 5, created.ID)
		assert.Equal(t, now, created.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		txn := &domain.Transaction{ClientID: 1, Type: domain.TxnTypeIncome, Amount: 5.0, Status: domain.TxnStatusCompleted}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
			WithArgs(1, domain.TxnTypeIncome, 5.0, domain.TxnStatusCompleted,
				"", (*int)(nil), (*string)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), txn)

		assert.Error(t, err)
	})
}

func TestRepository_FindByClientID(t *testing.T) {
	repo, mock := NewMock(t)

	columns := []string{"id", "client_id", "type", "amount", "status", "description", "instance_id", "idempotency_key", "created_at"}

	t.Run("Transactions found", func(t *testing.T) {
		instanceID := 7
		key := "idem-1"
		newer := time.Now()
		older := newer.Add(-time.Hour)
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(2, 1, domain.TxnTypeExpense, 10.0, domain.TxnStatusCompleted, "purchase of text-to-article", &instanceID, &key, newer).
				AddRow(1, 1, domain.TxnTypeIncome, 5.0, domain.TxnStatusCompleted, "referral reward", (*int)(nil), (*string)(nil), older))

		txns, err := repo.FindByClientID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Len(t, txns, 2)
		assert.Equal(t, domain.TxnTypeExpense, txns[0].Type)
		assert.Equal(t, &instanceID, txns[0].InstanceID)
		assert.Nil(t, txns[1].InstanceID)
	})

	t.Run("No transactions", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(2).
			WillReturnRows(pgxmock.NewRows(columns))

		txns, err := repo.FindByClientID(context.Background(), 2)

		assert.NoError(t, err)
		assert.Empty(t, txns)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		_, err := repo.FindByClientID(context.Background(), 1)

		assert.Error(t, err)
	})
}
