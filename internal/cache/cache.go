// Package cache holds the advisory redis cache. Cached values back
// display reads only; the purchase path always reads the ledger fresh.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/internal/domain"
)

const (
	balanceTTL = 30 * time.Second
	toolsTTL   = 5 * time.Minute
)

type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: cfg.Redis}),
	}
}

func balanceKey(clientID int) string {
	return fmt.Sprintf("wallet:balance:%d", clientID)
}

func (c *Cache) GetBalance(ctx context.Context, clientID int) (float64, bool) {
	val, err := c.rdb.Get(ctx, balanceKey(clientID)).Result()
	if err != nil {
		return 0, false
	}
	balance, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return balance, true
}

func (c *Cache) SetBalance(ctx context.Context, clientID int, balance float64) {
	err := c.rdb.Set(ctx, balanceKey(clientID), strconv.FormatFloat(balance, 'f', -1, 64), balanceTTL).Err()
	if err != nil {
		zap.L().Warn("failed to cache balance", zap.Int("clientID", clientID), zap.Error(err))
	}
}

// InvalidateBalance drops the cached balance after any wallet
// mutation so the next display read goes to the ledger.
func (c *Cache) InvalidateBalance(ctx context.Context, clientID int) {
	if err := c.rdb.Del(ctx, balanceKey(clientID)).Err(); err != nil {
		zap.L().Warn("failed to invalidate balance cache", zap.Int("clientID", clientID), zap.Error(err))
	}
}

const toolsKey = "tools:active"

func (c *Cache) GetTools(ctx context.Context) ([]domain.Tool, bool) {
	val, err := c.rdb.Get(ctx, toolsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tools []domain.Tool
	if err := json.Unmarshal(val, &tools); err != nil {
		return nil, false
	}
	return tools, true
}

func (c *Cache) SetTools(ctx context.Context, tools []domain.Tool) {
	data, err := json.Marshal(tools)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, toolsKey, data, toolsTTL).Err(); err != nil {
		zap.L().Warn("failed to cache tool list", zap.Error(err))
	}
}
