package provisionservice

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/pkg/ident"
)

const (
	maxAllocationRetries = 3
	allocationRetryDelay = 100 * time.Millisecond
)

type InstanceRepo interface {
	Purchase(ctx context.Context, p domain.PurchaseParams) (*domain.ToolInstance, error)
	FindByID(ctx context.Context, id int) (*domain.ToolInstance, error)
	FindByClientAndTool(ctx context.Context, clientID int, toolID string) ([]domain.ToolInstance, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.ToolInstance, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	SetSiteURL(ctx context.Context, id int, siteURL string) error
	Delete(ctx context.Context, id int) error
}

type ToolRepo interface {
	FindByToolID(ctx context.Context, toolID string) (*domain.Tool, error)
	ListActive(ctx context.Context) ([]domain.Tool, error)
}

type ToolCache interface {
	GetTools(ctx context.Context) ([]domain.Tool, bool)
	SetTools(ctx context.Context, tools []domain.Tool)
}

// Billing is the advisory guard consulted before any expensive work.
type Billing interface {
	CheckBalance(ctx context.Context, clientID int, price float64) (float64, error)
	InvalidateBalance(ctx context.Context, clientID int)
}

var (
	ErrToolUnavailable     = errors.New("tool unavailable")
	ErrAllocationExhausted = errors.New("could not allocate a unique usage id")
)

type Service struct {
	instanceRepo InstanceRepo
	toolRepo     ToolRepo
	cache        ToolCache
	billing      Billing
}

func New(instanceRepo InstanceRepo, toolRepo ToolRepo, cache ToolCache, billing Billing) *Service {
	return &Service{
		instanceRepo: instanceRepo,
		toolRepo:     toolRepo,
		cache:        cache,
		billing:      billing,
	}
}

func (s *Service) GetTool(ctx context.Context, toolID string) (*domain.Tool, error) {
	tool, err := s.toolRepo.FindByToolID(ctx, toolID)
	if err != nil {
		zap.L().Error("failed to look up tool", zap.Error(err))
		return nil, err
	}
	if tool == nil || !tool.Active {
		return nil, ErrToolUnavailable
	}
	return tool, nil
}

func (s *Service) ListTools(ctx context.Context) ([]domain.Tool, error) {
	if tools, ok := s.cache.GetTools(ctx); ok {
		return tools, nil
	}
	tools, err := s.toolRepo.ListActive(ctx)
	if err != nil {
		zap.L().Error("failed to list tools", zap.Error(err))
		return nil, err
	}
	s.cache.SetTools(ctx, tools)
	return tools, nil
}

// Purchase is the allocation primitive. It runs the advisory balance
// check, then executes the atomic debit+allocate, retrying only on a
// usage-id collision, each attempt with a freshly generated id. The
// allocated instance is returned directly; the idempotency key makes
// a replayed request resolve to the instance allocated the first time
// instead of debiting again.
func (s *Service) Purchase(ctx context.Context, clientID int, toolID, title, sourceRefURL, idempotencyKey string) (*domain.ToolInstance, error) {
	tool, err := s.GetTool(ctx, toolID)
	if err != nil {
		return nil, err
	}

	if _, err := s.billing.CheckBalance(ctx, clientID, tool.UnitPrice); err != nil {
		return nil, err
	}

	if idempotencyKey != "" {
		existing, err := s.instanceRepo.FindByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			zap.L().Info("purchase replayed, returning existing instance",
				zap.String("idempotencyKey", idempotencyKey),
				zap.Int("instanceID", existing.ID),
			)
			return existing, nil
		}
	}

	var instance *domain.ToolInstance
	backoff := retry.WithMaxRetries(maxAllocationRetries, retry.NewConstant(allocationRetryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt, err := s.instanceRepo.Purchase(ctx, domain.PurchaseParams{
			ClientID:       clientID,
			ToolID:         toolID,
			Price:          tool.UnitPrice,
			UsageID:        ident.NewUsageID(),
			Title:          title,
			SourceRefURL:   sourceRefURL,
			IdempotencyKey: idempotencyKey,
		})
		if errors.Is(err, domain.ErrAllocationConflict) {
			zap.L().Warn("usage id collision, retrying purchase", zap.String("toolID", toolID))
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		instance = attempt
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAllocationConflict) {
			return nil, ErrAllocationExhausted
		}
		if errors.Is(err, domain.ErrDuplicateRequest) && idempotencyKey != "" {
			// Lost a race against a concurrent attempt of the same
			// logical request; its instance is the result.
			existing, findErr := s.instanceRepo.FindByIdempotencyKey(ctx, idempotencyKey)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		zap.L().Error("purchase failed", zap.Error(err))
		return nil, err
	}

	s.billing.InvalidateBalance(ctx, clientID)
	return instance, nil
}
