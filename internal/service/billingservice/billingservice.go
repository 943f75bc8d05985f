package billingservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
)

type WalletRepo interface {
	GetByClientID(ctx context.Context, clientID int) (*domain.Wallet, error)
	Create(ctx context.Context, clientID int) (*domain.Wallet, error)
	Credit(ctx context.Context, clientID int, amount float64) (*domain.Wallet, error)
}

type TxnRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByClientID(ctx context.Context, clientID int) ([]domain.Transaction, error)
}

// BalanceCache is advisory. It serves display reads only; CheckBalance
// never consults it.
type BalanceCache interface {
	GetBalance(ctx context.Context, clientID int) (float64, bool)
	SetBalance(ctx context.Context, clientID int, balance float64)
	InvalidateBalance(ctx context.Context, clientID int)
}

type Service struct {
	walletRepo WalletRepo
	txnRepo    TxnRepo
	cache      BalanceCache
}

func New(walletRepo WalletRepo, txnRepo TxnRepo, cache BalanceCache) *Service {
	return &Service{
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		cache:      cache,
	}
}

// DisplayBalance returns the balance for presentation, served from the
// cache when warm.
func (s *Service) DisplayBalance(ctx context.Context, clientID int) (float64, error) {
	if balance, ok := s.cache.GetBalance(ctx, clientID); ok {
		return balance, nil
	}
	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return 0, err
	}
	if wallet == nil {
		return 0, domain.ErrNotFound
	}
	s.cache.SetBalance(ctx, clientID, wallet.Balance)
	return wallet.Balance, nil
}

// CheckBalance reads the balance fresh from the ledger and compares it
// against price. Advisory only: it reserves nothing, the atomic
// purchase re-verifies inside its transaction.
func (s *Service) CheckBalance(ctx context.Context, clientID int, price float64) (float64, error) {
	wallet, err := s.walletRepo.GetByClientID(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return 0, err
	}
	if wallet == nil {
		return 0, domain.ErrNotFound
	}
	if wallet.Balance < price {
		return wallet.Balance, domain.ErrInsufficientFunds
	}
	return wallet.Balance, nil
}

func (s *Service) CreateWallet(ctx context.Context, clientID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// CreditReferral pays a referral reward into the referrer's wallet and
// records the matching income transaction.
func (s *Service) CreditReferral(ctx context.Context, referrerID int, amount float64, referredLogin string) error {
	if _, err := s.walletRepo.Credit(ctx, referrerID, amount); err != nil {
		zap.L().Error("failed to credit referrer", zap.Error(err))
		return err
	}
	s.cache.InvalidateBalance(ctx, referrerID)

	_, err := s.txnRepo.Create(ctx, &domain.Transaction{
		ClientID:    referrerID,
		Type:        domain.TxnTypeIncome,
		Amount:      amount,
		Status:      domain.TxnStatusCompleted,
		Description: fmt.Sprintf("referral reward for %s", referredLogin),
	})
	if err != nil {
		zap.L().Error("failed to record referral transaction", zap.Error(err))
		return err
	}
	return nil
}

// InvalidateBalance drops the cached display balance after a purchase.
func (s *Service) InvalidateBalance(ctx context.Context, clientID int) {
	s.cache.InvalidateBalance(ctx, clientID)
}

func (s *Service) ListTransactions(ctx context.Context, clientID int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindByClientID(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
