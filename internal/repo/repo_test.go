package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/pg"
	clientrepo "github.com/pagemint/pagemint/internal/repo/client-repo"
	instancerepo "github.com/pagemint/pagemint/internal/repo/instance-repo"
	toolrepo "github.com/pagemint/pagemint/internal/repo/tool-repo"
	txnrepo "github.com/pagemint/pagemint/internal/repo/txn-repo"
	walletrepo "github.com/pagemint/pagemint/internal/repo/wallet-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.ClientRepo)
	assert.NotNil(t, repo.WalletRepo)
	assert.NotNil(t, repo.ToolRepo)
	assert.NotNil(t, repo.TxnRepo)
	assert.NotNil(t, repo.InstanceRepo)

	assert.IsType(t, &clientrepo.Repository{}, repo.ClientRepo)
	assert.IsType(t, &walletrepo.Repository{}, repo.WalletRepo)
	assert.IsType(t, &toolrepo.Repository{}, repo.ToolRepo)
	assert.IsType(t, &txnrepo.Repository{}, repo.TxnRepo)
	assert.IsType(t, &instancerepo.Repository{}, repo.InstanceRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
