package dto

import "time"

type WalletResponseDTO struct {
	Balance float64 `json:"balance" example:"42.5"`
}

type GetTransactionsResponseDTO struct {
	Type        string    `json:"type" example:"expense"`
	Amount      float64   `json:"amount" example:"10"`
	Status      string    `json:"status" example:"completed"`
	Description string    `json:"description" example:"text-to-article purchase"`
	CreatedAt   time.Time `json:"created_at" example:"2026-01-09T16:09:57+03:00"`
}
