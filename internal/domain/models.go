package domain

import "time"

type Client struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	ReferralCode string    `db:"referral_code"`
	ReferredBy   *int      `db:"referred_by"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID         int     `db:"id"`
	ClientID   int     `db:"client_id"`
	Balance    float64 `db:"balance"`
	SpentTotal float64 `db:"spent_total"`
}

type Tool struct {
	ID          int     `db:"id"`
	ToolID      string  `db:"tool_id"`
	DisplayName string  `db:"display_name"`
	UnitPrice   float64 `db:"unit_price"`
	Active      bool    `db:"active"`
}

const (
	// StatusAllocated — purchase succeeded, nothing uploaded yet;
	StatusAllocated string = "allocated"
	// StatusImagesUploaded — every image asset is live in storage;
	StatusImagesUploaded string = "images_uploaded"
	// StatusPagePublished — index.html is live, site_url not yet set;
	StatusPagePublished string = "page_published"
	// StatusFinalized — site_url attached, instance immutable.
	StatusFinalized string = "finalized"
)

type ToolInstance struct {
	ID           int       `db:"id"`
	ClientID     int       `db:"client_id"`
	ToolID       string    `db:"tool_id"`
	UsageID      string    `db:"usage_id"`
	Title        string    `db:"title"`
	SourceRefURL string    `db:"source_ref_url"`
	SiteURL      string    `db:"site_url"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

// ImageAsset is one validated upload passed through to publishing.
type ImageAsset struct {
	Name        string
	ContentType string
	Data        []byte
}

// Content is the logical artifact produced by generation and consumed
// by publishing: either passthrough images or a bilingual article.
type Content struct {
	Title           string
	TitleTranslated string
	BodyEN          string
	BodyAR          string
	Images          []ImageAsset
}

// PurchaseParams describes one atomic purchase attempt. UsageID is
// generated per attempt; a collision surfaces as ErrAllocationConflict
// and the allocator retries with a fresh one.
type PurchaseParams struct {
	ClientID       int
	ToolID         string
	Price          float64
	UsageID        string
	Title          string
	SourceRefURL   string
	IdempotencyKey string
}

const (
	TxnTypeIncome  string = "income"
	TxnTypeExpense string = "expense"

	TxnStatusPending   string = "pending"
	TxnStatusCompleted string = "completed"
	TxnStatusFailed    string = "failed"
)

type Transaction struct {
	ID             int       `db:"id"`
	ClientID       int       `db:"client_id"`
	Type           string    `db:"type"`
	Amount         float64   `db:"amount"`
	Status         string    `db:"status"`
	Description    string    `db:"description"`
	InstanceID     *int      `db:"instance_id"`
	IdempotencyKey *string   `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}
