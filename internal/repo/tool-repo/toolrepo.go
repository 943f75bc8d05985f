package toolrepo

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

func (r *Repository) FindByToolID(ctx context.Context, toolID string) (*domain.Tool, error) {
	query := `
        SELECT id, tool_id, display_name, unit_price, active
        FROM tools
        WHERE tool_id = $1
    `
	row := r.db.QueryRow(ctx, query, toolID)
	var tool domain.Tool
	err := row.Scan(&tool.ID, &tool.ToolID, &tool.DisplayName, &tool.UnitPrice, &tool.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find tool", zap.Error(err))
		return nil, err
	}
	return &tool, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Tool, error) {
	query := `
        SELECT id, tool_id, display_name, unit_price, active
        FROM tools
        WHERE active = TRUE
        ORDER BY tool_id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tools", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var tool domain.Tool
		if err := rows.Scan(&tool.ID, &tool.ToolID, &tool.DisplayName, &tool.UnitPrice, &tool.Active); err != nil {
			zap.L().Error("can't scan tool row", zap.Error(err))
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
