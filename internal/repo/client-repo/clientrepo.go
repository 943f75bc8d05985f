package clientrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.Client, error) {
	var client domain.Client
	err := repo.db.QueryRow(ctx,
		"SELECT id, login, password_hash, display_name, referral_code, referred_by FROM clients WHERE login = $1",
		login,
	).Scan(&client.ID, &client.Login, &client.PasswordHash, &client.DisplayName, &client.ReferralCode, &client.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.Error(err))
		return nil, err
	}
	return &client, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.Client, error) {
	var client domain.Client
	err := repo.db.QueryRow(ctx,
		"SELECT id, login, password_hash, display_name, referral_code, referred_by FROM clients WHERE id = $1",
		id,
	).Scan(&client.ID, &client.Login, &client.PasswordHash, &client.DisplayName, &client.ReferralCode, &client.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find client", zap.Error(err))
		return nil, err
	}
	return &client, nil
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Client, error) {
	var client domain.Client
	err := repo.db.QueryRow(ctx,
		"SELECT id, login, password_hash, display_name, referral_code, referred_by FROM clients WHERE referral_code = $1",
		code,
	).Scan(&client.ID, &client.Login, &client.PasswordHash, &client.DisplayName, &client.ReferralCode, &client.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find client by referral code", zap.Error(err))
		return nil, err
	}
	return &client, nil
}

func (repo *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (login, password_hash, display_name, referral_code, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query,
		client.Login, client.PasswordHash, client.DisplayName, client.ReferralCode, client.ReferredBy,
	).Scan(&client.ID)
	if err != nil {
		zap.L().Error("can't save client", zap.Error(err))
		return nil, err
	}
	return client, nil
}
