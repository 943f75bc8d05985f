package provisionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockInstanceRepo, *MockToolRepo, *MockToolCache, *MockBilling) {
	ctrl := gomock.NewController(t)
	instanceRepo := NewMockInstanceRepo(ctrl)
	toolRepo := NewMockToolRepo(ctrl)
	cache := NewMockToolCache(ctrl)
	billing := NewMockBilling(ctrl)
	service := New(instanceRepo, toolRepo, cache, billing)
	defer ctrl.Finish()
	return service, instanceRepo, toolRepo, cache, billing
}

var articleTool = &domain.Tool{ID: 2, ToolID: "text-to-article", DisplayName: "Text to Article", UnitPrice: 10, Active: true}

func TestGetTool(t *testing.T) {
	service, _, toolRepo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Active tool found",
			prepareMock: func() {
				toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
			},
		},
		{
			name: "Unknown tool",
			prepareMock: func() {
				toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(nil, nil)
			},
			expectedError: ErrToolUnavailable,
		},
		{
			name: "Inactive tool",
			prepareMock: func() {
				toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").
					Return(&domain.Tool{ToolID: "text-to-article", Active: false}, nil)
			},
			expectedError: ErrToolUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			_, err := service.GetTool(context.Background(), "text-to-article")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListTools(t *testing.T) {
	service, _, toolRepo, cache, _ := NewMock(t)
	tools := []domain.Tool{*articleTool}

	t.Run("Cache hit", func(t *testing.T) {
		cache.EXPECT().GetTools(gomock.Any()).Return(tools, true)
		got, err := service.ListTools(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, tools, got)
	})

	t.Run("Cache miss warms cache", func(t *testing.T) {
		cache.EXPECT().GetTools(gomock.Any()).Return(nil, false)
		toolRepo.EXPECT().ListActive(gomock.Any()).Return(tools, nil)
		cache.EXPECT().SetTools(gomock.Any(), tools)
		got, err := service.ListTools(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, tools, got)
	})
}

func TestPurchase(t *testing.T) {
	t.Run("Successful purchase returns the allocated instance directly", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(50.0, nil)
		instanceRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
		instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.PurchaseParams) (*domain.ToolInstance, error) {
				assert.Equal(t, 1, p.ClientID)
				assert.Equal(t, 10.0, p.Price)
				assert.Len(t, p.UsageID, 8)
				return &domain.ToolInstance{ID: 42, ClientID: 1, ToolID: p.ToolID, UsageID: p.UsageID, Status: domain.StatusAllocated}, nil
			})
		billing.EXPECT().InvalidateBalance(gomock.Any(), 1)

		instance, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "key-1")

		assert.NoError(t, err)
		assert.Equal(t, 42, instance.ID)
		assert.NotEmpty(t, instance.UsageID)
	})

	t.Run("Insufficient funds abort before allocation", func(t *testing.T) {
		service, _, toolRepo, _, billing := NewMock(t)

		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(3.0, domain.ErrInsufficientFunds)

		_, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "")

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	})

	t.Run("Allocation conflict retries with a fresh usage id", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(50.0, nil)

		var seen []string
		first := instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.PurchaseParams) (*domain.ToolInstance, error) {
				seen = append(seen, p.UsageID)
				return nil, domain.ErrAllocationConflict
			})
		instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).After(first).DoAndReturn(
			func(_ context.Context, p domain.PurchaseParams) (*domain.ToolInstance, error) {
				seen = append(seen, p.UsageID)
				return &domain.ToolInstance{ID: 43, UsageID: p.UsageID}, nil
			})
		billing.EXPECT().InvalidateBalance(gomock.Any(), 1)

		instance, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "")

		assert.NoError(t, err)
		assert.Len(t, seen, 2)
		assert.NotEqual(t, seen[0], seen[1], "retry must generate a new usage id")
		assert.Equal(t, seen[1], instance.UsageID)
	})

	t.Run("Exhausted retries surface allocation failure", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(50.0, nil)
		instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrAllocationConflict).Times(4)

		_, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "")

		assert.ErrorIs(t, err, ErrAllocationExhausted)
	})

	t.Run("Replayed idempotency key returns the first allocation", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		existing := &domain.ToolInstance{ID: 42, ClientID: 1, ToolID: "text-to-article", UsageID: "ab12cd34"}
		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(40.0, nil)
		instanceRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(existing, nil)

		instance, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "key-1")

		assert.NoError(t, err)
		assert.Equal(t, existing, instance)
	})

	t.Run("Idempotency race resolves to the winning allocation", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		existing := &domain.ToolInstance{ID: 42, UsageID: "ab12cd34"}
		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(40.0, nil)
		instanceRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
		instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateRequest)
		instanceRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(existing, nil)

		instance, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "key-1")

		assert.NoError(t, err)
		assert.Equal(t, existing, instance)
	})

	t.Run("Non-conflict errors are not retried", func(t *testing.T) {
		service, instanceRepo, toolRepo, _, billing := NewMock(t)

		toolRepo.EXPECT().FindByToolID(gomock.Any(), "text-to-article").Return(articleTool, nil)
		billing.EXPECT().CheckBalance(gomock.Any(), 1, 10.0).Return(50.0, nil)
		instanceRepo.EXPECT().Purchase(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")).Times(1)

		_, err := service.Purchase(context.Background(), 1, "text-to-article", "My Page", "", "")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrAllocationExhausted)
	})
}
