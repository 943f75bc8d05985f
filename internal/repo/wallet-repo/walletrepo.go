package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByClientID(ctx context.Context, clientID int) (*domain.Wallet, error) {
	query := `
        SELECT id, client_id, balance, spent_total
        FROM wallets
        WHERE client_id = $1
    `
	row := r.db.QueryRow(ctx, query, clientID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.ClientID, &wallet.Balance, &wallet.SpentTotal)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, clientID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (client_id, balance, spent_total)
        VALUES ($1, 0, 0)
        RETURNING id, client_id, balance, spent_total
    `
	row := r.db.QueryRow(ctx, query, clientID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.ClientID, &wallet.Balance, &wallet.SpentTotal)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// Credit adds amount to a wallet. Used for referral earnings; debits
// happen only inside the instance repo's atomic purchase.
func (r *Repository) Credit(ctx context.Context, clientID int, amount float64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `
		UPDATE wallets
		SET balance = balance + $1
		WHERE client_id = $2
		RETURNING id, client_id, balance, spent_total
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, amount, clientID)
		err := row.Scan(&wallet.ID, &wallet.ClientID, &wallet.Balance, &wallet.SpentTotal)
		if err != nil {
			zap.L().Error("failed to credit wallet", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
