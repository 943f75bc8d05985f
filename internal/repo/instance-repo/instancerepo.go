package instancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/pg"
)

const (
	uniqueViolationCode = "23505"

	usageIDConstraint        = "tool_instances_usage_id_key"
	idempotencyKeyConstraint = "transactions_idempotency_key_key"
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

// Purchase re-verifies the balance, debits the wallet, inserts the
// instance row and records the expense transaction as one unit.
// Nothing persists unless every step succeeds. The created instance,
// including its usage id, is returned directly so callers never need
// to re-query "most recent instance" under concurrency.
func (r *Repository) Purchase(ctx context.Context, p domain.PurchaseParams) (*domain.ToolInstance, error) {
	var instance domain.ToolInstance

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var balance float64
		row := r.db.QueryRow(ctx, `
			SELECT balance
			FROM wallets
			WHERE client_id = $1
			FOR UPDATE
		`, p.ClientID)
		if err := row.Scan(&balance); err != nil {
			if err == pgx.ErrNoRows {
				return domain.ErrNotFound
			}
			zap.L().Error("can't lock wallet for purchase", zap.Error(err))
			return err
		}
		if balance < p.Price {
			return domain.ErrInsufficientFunds
		}

		if p.Price > 0 {
			_, err := r.db.Exec(ctx, `
				UPDATE wallets
				SET balance = balance - $1, spent_total = spent_total + $1
				WHERE client_id = $2
			`, p.Price, p.ClientID)
			if err != nil {
				zap.L().Error("can't debit wallet", zap.Error(err))
				return err
			}
		}

		row = r.db.QueryRow(ctx, `
			INSERT INTO tool_instances (client_id, tool_id, usage_id, title, source_ref_url, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, client_id, tool_id, usage_id, title, source_ref_url, site_url, status, created_at
		`, p.ClientID, p.ToolID, p.UsageID, p.Title, p.SourceRefURL, domain.StatusAllocated)
		err := row.Scan(&instance.ID, &instance.ClientID, &instance.ToolID, &instance.UsageID,
			&instance.Title, &instance.SourceRefURL, &instance.SiteURL, &instance.Status, &instance.CreatedAt)
		if err != nil {
			if translated := translateUnique(err); translated != nil {
				return translated
			}
			zap.L().Error("can't insert instance", zap.Error(err))
			return err
		}

		var key *string
		if p.IdempotencyKey != "" {
			key = &p.IdempotencyKey
		}
		_, err = r.db.Exec(ctx, `
			INSERT INTO transactions (client_id, type, amount, status, description, instance_id, idempotency_key)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, p.ClientID, domain.TxnTypeExpense, p.Price, domain.TxnStatusCompleted,
			"purchase of "+p.ToolID, instance.ID, key)
		if err != nil {
			if translated := translateUnique(err); translated != nil {
				return translated
			}
			zap.L().Error("can't record purchase transaction", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// translateUnique maps driver-level uniqueness violations onto the
// domain taxonomy so the allocator's retry loop can tell a usage-id
// collision apart from a replayed idempotency key.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case usageIDConstraint:
		return domain.ErrAllocationConflict
	case idempotencyKeyConstraint:
		return domain.ErrDuplicateRequest
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.ToolInstance, error) {
	query := `
        SELECT id, client_id, tool_id, usage_id, title, source_ref_url, site_url, status, created_at
        FROM tool_instances
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var instance domain.ToolInstance
	err := row.Scan(&instance.ID, &instance.ClientID, &instance.ToolID, &instance.UsageID,
		&instance.Title, &instance.SourceRefURL, &instance.SiteURL, &instance.Status, &instance.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find instance", zap.Error(err))
		return nil, err
	}
	return &instance, nil
}

func (r *Repository) FindByClientAndTool(ctx context.Context, clientID int, toolID string) ([]domain.ToolInstance, error) {
	query := `
        SELECT id, client_id, tool_id, usage_id, title, source_ref_url, site_url, status, created_at
        FROM tool_instances
        WHERE client_id = $1 AND tool_id = $2
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, clientID, toolID)
	if err != nil {
		zap.L().Error("can't get instances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var instances []domain.ToolInstance
	for rows.Next() {
		var instance domain.ToolInstance
		err := rows.Scan(&instance.ID, &instance.ClientID, &instance.ToolID, &instance.UsageID,
			&instance.Title, &instance.SourceRefURL, &instance.SiteURL, &instance.Status, &instance.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan instance row", zap.Error(err))
			return nil, err
		}
		instances = append(instances, instance)
	}
	return instances, nil
}

// FindByIdempotencyKey resolves the instance allocated by an earlier
// attempt of the same logical purchase, if any.
func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.ToolInstance, error) {
	query := `
        SELECT i.id, i.client_id, i.tool_id, i.usage_id, i.title, i.source_ref_url, i.site_url, i.status, i.created_at
        FROM tool_instances i
        JOIN transactions t ON t.instance_id = i.id
        WHERE t.idempotency_key = $1
    `
	row := r.db.QueryRow(ctx, query, key)

	var instance domain.ToolInstance
	err := row.Scan(&instance.ID, &instance.ClientID, &instance.ToolID, &instance.UsageID,
		&instance.Title, &instance.SourceRefURL, &instance.SiteURL, &instance.Status, &instance.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find instance by idempotency key", zap.Error(err))
		return nil, err
	}
	return &instance, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE tool_instances
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update instance status", zap.Error(err))
		return err
	}
	return nil
}

// SetSiteURL attaches the public address exactly once. A second call
// for the same instance fails with domain.ErrAlreadyFinalized.
func (r *Repository) SetSiteURL(ctx context.Context, id int, siteURL string) error {
	query := `
        UPDATE tool_instances
        SET site_url = $1, status = $2
        WHERE id = $3 AND site_url = ''
        RETURNING id
    `
	var updated int
	err := r.db.QueryRow(ctx, query, siteURL, domain.StatusFinalized, id).Scan(&updated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrAlreadyFinalized
		}
		zap.L().Error("failed to set site url", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM tool_instances
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to delete instance", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
