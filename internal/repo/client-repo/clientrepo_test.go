package clientrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/pagemint/pagemint/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func clientColumns() []string {
	return []string{"id", "login", "password_hash", "display_name", "referral_code", "referred_by"}
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.Client
	}{
		{
			name:  "Client exists",
			login: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, login, password_hash, display_name, referral_code, referred_by FROM clients WHERE login = $1")).
					WithArgs("alice").
					WillReturnRows(pgxmock.NewRows(clientColumns()).
						AddRow(1, "alice", "hashed", "alice", "A1B2C3D4E5", nil))
			},
			result: &domain.Client{ID: 1, Login: "alice", PasswordHash: "hashed", DisplayName: "alice", ReferralCode: "A1B2C3D4E5"},
		},
		{
			name:  "Client does not exist",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "alice",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE login = $1")).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Client exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(1).
			WillReturnRows(pgxmock.NewRows(clientColumns()).
				AddRow(1, "alice", "hashed", "alice", "A1B2C3D4E5", nil))

		client, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "alice", client.Login)
	})

	t.Run("Client does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		client, err := repo.FindByID(context.Background(), 99)

		assert.NoError(t, err)
		assert.Nil(t, client)
	})
}

func TestRepository_FindByReferralCode(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Code resolves to referrer", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE referral_code = $1")).
			WithArgs("A1B2C3D4E5").
			WillReturnRows(pgxmock.NewRows(clientColumns()).
				AddRow(9, "alice", "hashed", "alice", "A1B2C3D4E5", nil))

		client, err := repo.FindByReferralCode(context.Background(), "A1B2C3D4E5")

		assert.NoError(t, err)
		assert.Equal(t, 9, client.ID)
	})

	t.Run("Unknown code", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE referral_code = $1")).
			WithArgs("WRONG").
			WillReturnError(pgx.ErrNoRows)

		client, err := repo.FindByReferralCode(context.Background(), "WRONG")

		assert.NoError(t, err)
		assert.Nil(t, client)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Client created", func(t *testing.T) {
		referrerID := 9
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clients")).
			WithArgs("bob", "hashed", "bob", "F6G7H8I9J0", &referrerID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(2))

		client, err := repo.Create(context.Background(), &domain.Client{
			Login:        "bob",
			PasswordHash: "hashed",
			DisplayName:  "bob",
			ReferralCode: "F6G7H8I9J0",
			ReferredBy:   &referrerID,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, client.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clients")).
			WithArgs("bob", "hashed", "bob", "F6G7H8I9J0", (*int)(nil)).
			WillReturnError(errors.New("database error"))

		_, err := repo.Create(context.Background(), &domain.Client{
			Login:        "bob",
			PasswordHash: "hashed",
			DisplayName:  "bob",
			ReferralCode: "F6G7H8I9J0",
		})

		assert.Error(t, err)
	})
}
