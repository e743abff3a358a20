package repository

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "password_hash", "phone_number", "gender", "date_of_birth", "membership_status", "created_at"}

func sampleUser() *model.User {
	return &model.User{
		Name:             "Raikka Pulkkinen",
		Email:            "email@email.com",
		PasswordHash:     "$2a$10$hash",
		PhoneNumber:      "123-456-7890",
		Gender:           "yes",
		DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		MembershipStatus: model.MembershipActive,
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPostgresUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), user.Name, user.Email, user.PasswordHash, user.PhoneNumber,
			user.Gender, user.DateOfBirth, user.MembershipStatus, user.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Len(t, user.ID, 24)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_Create_Duplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)
	user := sampleUser()

	mock.ExpectExec("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), user)

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Empty(t, user.ID)
}

func TestPostgresUserRepository_FindByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)
	u := sampleUser()
	id := model.NewID()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
		WithArgs(u.Email).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(id, u.Name, u.Email, u.PasswordHash, u.PhoneNumber,
			u.Gender, u.DateOfBirth, u.MembershipStatus, u.CreatedAt))

	found, err := repo.FindByEmail(context.Background(), u.Email)

	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, u.PasswordHash, found.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_FindByEmail_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "ghost@email.com")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresUserRepository_FindByID_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), model.NewID())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresUserRepository_Count(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPostgresUserRepository(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
