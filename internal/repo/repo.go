package repo

import (
	"github.com/pagemint/pagemint/internal/pg"
	clientrepo "github.com/pagemint/pagemint/internal/repo/client-repo"
	instancerepo "github.com/pagemint/pagemint/internal/repo/instance-repo"
	toolrepo "github.com/pagemint/pagemint/internal/repo/tool-repo"
	txnrepo "github.com/pagemint/pagemint/internal/repo/txn-repo"
	walletrepo "github.com/pagemint/pagemint/internal/repo/wallet-repo"
	"github.com/pagemint/pagemint/internal/service/billingservice"
	"github.com/pagemint/pagemint/internal/service/provisionservice"
)

// ClientRepo and InstanceRepo stay concrete: they back several services,
// each of which declares its own narrow interface over them.
type Repositories struct {
	ClientRepo   *clientrepo.Repository
	WalletRepo   billingservice.WalletRepo
	ToolRepo     provisionservice.ToolRepo
	TxnRepo      billingservice.TxnRepo
	InstanceRepo *instancerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	clientRepo := clientrepo.New(conn)
	walletRepo := walletrepo.New(conn, txManager)
	toolRepo := toolrepo.New(conn)
	txnRepo := txnrepo.New(conn)
	instanceRepo := instancerepo.New(conn, txManager)

	return &Repositories{
		ClientRepo:   clientRepo,
		WalletRepo:   walletRepo,
		ToolRepo:     toolRepo,
		TxnRepo:      txnRepo,
		InstanceRepo: instanceRepo,
	}
}
