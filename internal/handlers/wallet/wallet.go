package wallet

import (
	"context"
	"net/http"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/dto"
	"github.com/pagemint/pagemint/pkg/auth"
	"github.com/pagemint/pagemint/pkg/utils"
)

type Service interface {
	DisplayBalance(ctx context.Context, clientID int) (float64, error)
	CreateWallet(ctx context.Context, clientID int) (*domain.Wallet, error)
	CreditReferral(ctx context.Context, referrerID int, amount float64, referredLogin string) error
	ListTransactions(ctx context.Context, clientID int) ([]domain.Transaction, error)
}

type WalletHandler struct {
	billingService Service
}

func New(billingService Service) *WalletHandler {
	return &WalletHandler{
		billingService: billingService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current wallet balance
//	@Description	Retrieve the current wallet balance for the authenticated client.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response			"Client not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/client/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)

	balance, err := h.billingService.DisplayBalance(r.Context(), clientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance: balance,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Get the wallet transaction history for the authenticated client, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTransactionsResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response					"No transactions"
//	@Failure		401	{object}	utils.Response					"Client not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/client/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(auth.ClientIDKey).(int)

	txns, err := h.billingService.ListTransactions(r.Context(), clientID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	resp := make([]dto.GetTransactionsResponseDTO, 0, len(txns))
	for _, txn := range txns {
		resp = append(resp, dto.GetTransactionsResponseDTO{
			Type:        txn.Type,
			Amount:      txn.Amount,
			Status:      txn.Status,
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
