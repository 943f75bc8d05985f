package txnrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (client_id, type, amount, status, description, instance_id, idempotency_key)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		txn.ClientID, txn.Type, txn.Amount, txn.Status, txn.Description, txn.InstanceID, txn.IdempotencyKey,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByClientID(ctx context.Context, clientID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, client_id, type, amount, status, description, instance_id, idempotency_key, created_at
        FROM transactions
        WHERE client_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.ClientID, &txn.Type, &txn.Amount, &txn.Status,
			&txn.Description, &txn.InstanceID, &txn.IdempotencyKey, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
